// Package registry tracks which scenario is active and how many times
// each mock has been matched.
package registry

import "sync"

// Registry holds the mutable execution state shared by concurrent calls:
// the active scenario name and per-mock match counters. The zero value is
// not usable; construct with New. All methods are safe for concurrent use.
//
// A Registry is owned by a single engine instance, so parallel test
// processes with their own engines never interfere.
type Registry struct {
	mu     sync.RWMutex
	active string
	counts map[string]int
}

// New returns an empty registry with no active scenario.
func New() *Registry {
	return &Registry{counts: make(map[string]int)}
}

// Activate marks the named scenario active and resets all match counters.
// The swap and the reset happen under one lock, so no reader observes a
// partially reset state.
func (r *Registry) Activate(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = name
	r.counts = make(map[string]int)
}

// Deactivate clears the active scenario and all match counters.
func (r *Registry) Deactivate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = ""
	r.counts = make(map[string]int)
}

// Active returns the active scenario name, if any.
func (r *Registry) Active() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active, r.active != ""
}

// RecordMatch increments the counter for a mock request ID.
func (r *Registry) RecordMatch(requestID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[requestID]++
}

// Count returns how many times the given mock request has matched since
// the last activation.
func (r *Registry) Count(requestID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[requestID]
}

// Counts returns a snapshot of all match counters.
func (r *Registry) Counts() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make(map[string]int, len(r.counts))
	for id, n := range r.counts {
		snapshot[id] = n
	}
	return snapshot
}
