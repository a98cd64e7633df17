package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_ActivateDeactivate(t *testing.T) {
	r := New()

	_, ok := r.Active()
	assert.False(t, ok)

	r.Activate("happy-path")
	name, ok := r.Active()
	assert.True(t, ok)
	assert.Equal(t, "happy-path", name)

	r.Activate("error-path")
	name, _ = r.Active()
	assert.Equal(t, "error-path", name)

	r.Deactivate()
	_, ok = r.Active()
	assert.False(t, ok)
}

func TestRegistry_ActivationResetsCounts(t *testing.T) {
	r := New()
	r.Activate("s1")
	r.RecordMatch("req-1")
	r.RecordMatch("req-1")
	r.RecordMatch("req-2")

	assert.Equal(t, 2, r.Count("req-1"))
	assert.Equal(t, 1, r.Count("req-2"))

	r.Activate("s2")
	assert.Zero(t, r.Count("req-1"))
	assert.Zero(t, r.Count("req-2"))
}

func TestRegistry_DeactivateResetsCounts(t *testing.T) {
	r := New()
	r.Activate("s1")
	r.RecordMatch("req-1")
	r.Deactivate()
	assert.Zero(t, r.Count("req-1"))
	assert.Empty(t, r.Counts())
}

func TestRegistry_CountsSnapshotIsDetached(t *testing.T) {
	r := New()
	r.RecordMatch("a")
	snapshot := r.Counts()
	snapshot["a"] = 99
	assert.Equal(t, 1, r.Count("a"))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := New()
	r.Activate("s")

	const goroutines = 20
	const perGoroutine = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				r.RecordMatch("shared")
				r.Count("shared")
				r.Active()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, r.Count("shared"))
}
