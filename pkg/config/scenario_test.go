package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getbankmock/bankmock/pkg/backend"
	"github.com/getbankmock/bankmock/pkg/engine"
)

const sampleYAML = `
scenarios:
  - name: plaid_happy_path
    provider: plaid
    description: Plaid sandbox responses
    active: true
    mocks:
      - method: POST
        path: /accounts/get
        response:
          status: 200
          headers:
            Content-Type: application/json
          body:
            accounts: []
            request_id: req_1
      - method: GET
        path: /accounts/{id}
        response:
          body: '{"balance": 100}'
      - method: POST
        path: /payments
        body:
          currency: GBP
        headers:
          Authorization: "*"
        sequence: 5
        response:
          status: 201
          body: '{"id": "pay_1"}'
          delay_ms: 10
  - name: teller_happy_path
    provider: teller
    mocks:
      - method: GET
        path: /accounts
        response:
          body: "[]"
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 2)

	sc := f.Scenarios[0]
	assert.Equal(t, "plaid_happy_path", sc.Name)
	assert.Equal(t, "plaid", sc.Provider)
	assert.True(t, sc.Active)
	require.Len(t, sc.Mocks, 3)

	// Structured bodies are re-encoded as JSON.
	assert.JSONEq(t, `{"accounts": [], "request_id": "req_1"}`, string(sc.Mocks[0].Response.Body))
	// Scalar bodies pass through verbatim.
	assert.Equal(t, `{"balance": 100}`, string(sc.Mocks[1].Response.Body))

	pay := sc.Mocks[2]
	assert.JSONEq(t, `{"currency": "GBP"}`, string(pay.Body))
	require.NotNil(t, pay.Sequence)
	assert.Equal(t, 5, *pay.Sequence)
	assert.Equal(t, 10, pay.Response.DelayMS)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"missing name", "scenarios:\n  - provider: plaid\n"},
		{"missing provider", "scenarios:\n  - name: s\n"},
		{"duplicate name", "scenarios:\n  - name: s\n    provider: plaid\n  - name: s\n    provider: teller\n"},
		{"missing method", "scenarios:\n  - name: s\n    provider: plaid\n    mocks:\n      - path: /a\n"},
		{"missing path", "scenarios:\n  - name: s\n    provider: plaid\n    mocks:\n      - method: GET\n"},
		{"two active", "scenarios:\n  - name: a\n    provider: plaid\n    active: true\n  - name: b\n    provider: teller\n    active: true\n"},
		{"unknown key", "scenarios:\n  - name: s\n    provider: plaid\n    unknown: true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseExpandsEnvVars(t *testing.T) {
	t.Setenv("BANKMOCK_PROVIDER", "plaid")
	f, err := Parse([]byte("scenarios:\n  - name: s\n    provider: ${BANKMOCK_PROVIDER}\n"))
	require.NoError(t, err)
	assert.Equal(t, "plaid", f.Scenarios[0].Provider)
}

func TestLoadAndApply(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	b := engine.NewInMemory()
	require.NoError(t, LoadAndApply(ctx, b, path))

	active, ok := b.ActiveScenario()
	require.True(t, ok)
	assert.Equal(t, "plaid_happy_path", active)

	resp, err := backend.Get(ctx, b, "/accounts/acc_1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance": 100}`, resp.Body)

	resp, err = backend.PostWithHeaders(ctx, b, "/payments",
		map[string]any{"currency": "GBP"},
		map[string]string{"Authorization": "Bearer tok"})
	require.NoError(t, err)
	assert.Equal(t, 201, resp.Status)

	// Status defaults to 200 when the file leaves it out.
	resp, err = backend.Post(ctx, b, "/accounts/get", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, "application/json", resp.Header("Content-Type"))
}

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"),
		[]byte("scenarios:\n  - name: a\n    provider: plaid\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"),
		[]byte("scenarios:\n  - name: b\n    provider: teller\n"), 0o644))

	f, err := LoadGlob(filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 2)
	assert.Equal(t, "a", f.Scenarios[0].Name)
	assert.Equal(t, "b", f.Scenarios[1].Name)
}

func TestLoadGlobRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "providers")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "plaid.yaml"),
		[]byte("scenarios:\n  - name: plaid\n    provider: plaid\n"), 0o644))

	f, err := LoadGlob(filepath.Join(dir, "**", "*.yaml"))
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 1)
}

func TestLoadGlobDuplicateAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	content := "scenarios:\n  - name: dup\n    provider: plaid\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(content), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(content), 0o644))

	_, err := LoadGlob(filepath.Join(dir, "*.yaml"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
