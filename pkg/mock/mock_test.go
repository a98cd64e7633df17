package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScenario_Validate(t *testing.T) {
	assert.NoError(t, NewScenario("happy-path", "plaid").Validate())
	assert.NoError(t, NewScenario("happy-path", "plaid").WithDescription("all green").Validate())

	err := NewScenario("", "plaid").Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	err = NewScenario("happy-path", "").Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider")
}

func TestCreateMockRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     *CreateMockRequest
		wantErr string
	}{
		{
			name: "plain path",
			req:  Get("/accounts"),
		},
		{
			name: "placeholder path",
			req:  Get("/accounts/{account_id}/transactions"),
		},
		{
			name: "wildcard path",
			req:  Get("/institutions/{*}"),
		},
		{
			name: "all constraints",
			req: Post("/transfers").
				WithBodyPattern(`{"amount":"*"}`).
				WithHeadersPattern(`{"Authorization":"*"}`).
				WithSequence(3),
		},
		{
			name:    "unsupported method",
			req:     &CreateMockRequest{Method: "FETCH", PathPattern: "/x"},
			wantErr: "method",
		},
		{
			name:    "lowercase method",
			req:     &CreateMockRequest{Method: "get", PathPattern: "/x"},
			wantErr: "method",
		},
		{
			name:    "empty path",
			req:     &CreateMockRequest{Method: "GET"},
			wantErr: "pathPattern",
		},
		{
			name:    "uncompilable path",
			req:     Get("/accounts/["),
			wantErr: "pathPattern",
		},
		{
			name:    "headers pattern not a JSON map",
			req:     Get("/x").WithHeadersPattern("not json"),
			wantErr: "headersPattern",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Field)
		})
	}
}

func TestCreateMockResponse_Validate(t *testing.T) {
	assert.NoError(t, OK("body").Validate())
	assert.NoError(t, NoContent().Validate())
	assert.NoError(t, RateLimited().Validate())
	assert.NoError(t, OK("slow").WithDelay(50).Validate())

	err := OK("x").WithStatus(99).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statusCode")

	err = OK("x").WithStatus(600).Validate()
	require.Error(t, err)

	err = OK("x").WithDelay(-1).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delayMs")
}

func TestResponseConstructors(t *testing.T) {
	assert.Equal(t, 200, OK("").StatusCode)
	assert.Equal(t, 201, Created("").StatusCode)
	assert.Equal(t, 204, NoContent().StatusCode)
	assert.Equal(t, 400, BadRequest("").StatusCode)
	assert.Equal(t, 401, Unauthorized("").StatusCode)
	assert.Equal(t, 404, NotFound("").StatusCode)
	assert.Equal(t, 500, InternalError("").StatusCode)
	assert.Equal(t, 429, RateLimited().StatusCode)
}

func TestJSON(t *testing.T) {
	resp, err := JSON(map[string]any{"balance": 100})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"balance":100}`, resp.Body)
	assert.Equal(t, `{"Content-Type": "application/json"}`, resp.Headers)

	_, err = JSON(func() {})
	assert.Error(t, err)
}

func TestHeaderMap(t *testing.T) {
	r := &MockResponse{Headers: `{"Content-Type":"application/json","X-Request-Id":"abc"}`}
	assert.Equal(t, map[string]string{
		"Content-Type": "application/json",
		"X-Request-Id": "abc",
	}, r.HeaderMap())

	assert.Empty(t, (&MockResponse{}).HeaderMap())
	assert.Empty(t, (&MockResponse{Headers: "not json"}).HeaderMap())
}
