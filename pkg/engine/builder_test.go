package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getbankmock/bankmock/pkg/backend"
)

func TestBuilderScriptsAndActivates(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	err := NewBuilder(b).
		Scenario(ctx, "plaid_link", "plaid").
		OnPost("/link/token/create").RespondOK(ctx, `{"link_token": "link-sandbox-abc"}`).
		OnGet("/accounts/{account_id}").RespondOK(ctx, `{"balance": 100}`).
		Activate(ctx)
	require.NoError(t, err)

	active, ok := b.ActiveScenario()
	require.True(t, ok)
	assert.Equal(t, "plaid_link", active)

	resp, err := backend.Get(ctx, b, "/accounts/acc_1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance": 100}`, resp.Body)
}

func TestBuilderRespondJSON(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	err := NewBuilder(b).
		Scenario(ctx, "s", "truelayer").
		OnGet("/me").RespondJSON(ctx, map[string]any{"client_id": "tl-client", "scopes": []string{"accounts"}}).
		Activate(ctx)
	require.NoError(t, err)

	resp, err := backend.Get(ctx, b, "/me")
	require.NoError(t, err)
	assert.Equal(t, "application/json", resp.Header("Content-Type"))

	var body struct {
		ClientID string   `json:"client_id"`
		Scopes   []string `json:"scopes"`
	}
	require.NoError(t, resp.JSON(&body))
	assert.Equal(t, "tl-client", body.ClientID)
	assert.Equal(t, []string{"accounts"}, body.Scopes)
}

func TestBuilderRespondError(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	err := NewBuilder(b).
		Scenario(ctx, "s", "gocardless").
		OnPost("/payments").RespondError(ctx, 422, `{"error": "validation_failed"}`).
		Activate(ctx)
	require.NoError(t, err)

	resp, err := backend.Post(ctx, b, "/payments", map[string]any{"amount": 100})
	require.NoError(t, err)
	assert.Equal(t, 422, resp.Status)
}

func TestBuilderConstraints(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	err := NewBuilder(b).
		Scenario(ctx, "s", "yapily").
		OnPost("/payment-requests").
		WithBody(`{"type": "DOMESTIC_PAYMENT"}`).
		WithHeaders(`{"Authorization": "*"}`).
		RespondOK(ctx, `{"id": "pr-1"}`).
		Activate(ctx)
	require.NoError(t, err)

	resp, err := backend.PostWithHeaders(ctx, b, "/payment-requests",
		map[string]any{"type": "DOMESTIC_PAYMENT", "amount": 25},
		map[string]string{"Authorization": "Bearer tok"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)

	_, err = backend.Post(ctx, b, "/payment-requests", map[string]any{"type": "DOMESTIC_PAYMENT"})
	require.Error(t, err)
	assert.True(t, backend.IsNoMatch(err))
}

func TestBuilderSequence(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	err := NewBuilder(b).
		Scenario(ctx, "s", "mx").
		OnGet("/jobs/{guid}").WithSequence(2).RespondOK(ctx, `{"status": "done"}`).
		OnGet("/jobs/{guid}").WithSequence(1).RespondOK(ctx, `{"status": "pending"}`).
		Activate(ctx)
	require.NoError(t, err)

	resp, err := backend.Get(ctx, b, "/jobs/JOB-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status": "pending"}`, resp.Body)
}

func TestBuilderErrorShortCircuits(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	// Bad path pattern fails at Respond time; later calls are no-ops and
	// the first error is what comes back.
	err := NewBuilder(b).
		Scenario(ctx, "s", "plaid").
		OnGet("/bad/[").RespondOK(ctx, `{}`).
		OnGet("/fine").RespondOK(ctx, `{}`).
		Activate(ctx)
	require.Error(t, err)
	assert.True(t, backend.IsConfig(err))

	_, ok := b.ActiveScenario()
	assert.False(t, ok)
}

func TestBuilderExpectationWithoutScenario(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	err := NewBuilder(b).
		OnGet("/accounts").RespondOK(ctx, `[]`).
		Build()
	require.Error(t, err)
	assert.True(t, backend.IsConfig(err))
}

func TestBuilderDanglingExpectation(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	err := NewBuilder(b).
		Scenario(ctx, "s", "plaid").
		OnGet("/accounts").
		Build()
	require.Error(t, err)
	assert.True(t, backend.IsConfig(err))
}

func TestBuilderUseExistingScenario(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)
	mustScenario(t, b, "existing", "teller")

	err := NewBuilder(b).
		Use("existing").
		OnGet("/accounts").RespondOK(ctx, `[]`).
		Activate(ctx)
	require.NoError(t, err)

	resp, err := backend.Get(ctx, b, "/accounts")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
}
