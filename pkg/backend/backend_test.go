package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBackend captures the last request and returns a fixed response.
type recordingBackend struct {
	last *Request
	resp *Response
	err  error
}

func (b *recordingBackend) Execute(_ context.Context, req *Request) (*Response, error) {
	b.last = req
	if b.err != nil {
		return nil, b.err
	}
	return b.resp, nil
}

func TestNormalizeMethod(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"get", "GET", true},
		{"GET", "GET", true},
		{" post ", "POST", true},
		{"Delete", "DELETE", true},
		{"patch", "PATCH", true},
		{"TRACE", "TRACE", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeMethod(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestHelpers_BuildExpectedRequests(t *testing.T) {
	b := &recordingBackend{resp: OK("{}")}
	ctx := context.Background()

	_, err := Get(ctx, b, "/accounts")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, b.last.Method)
	assert.Equal(t, "/accounts", b.last.URL)
	assert.Empty(t, b.last.Body)

	_, err = Post(ctx, b, "/transfers", map[string]any{"amount": 5})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, b.last.Method)
	assert.JSONEq(t, `{"amount":5}`, b.last.Body)

	_, err = GetWithHeaders(ctx, b, "/me", map[string]string{"Authorization": "Bearer t"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer t", b.last.Headers["Authorization"])

	_, err = Delete(ctx, b, "/items/1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, b.last.Method)
}

func TestPost_UnencodableBody(t *testing.T) {
	b := &recordingBackend{resp: OK("{}")}
	_, err := Post(context.Background(), b, "/x", func() {})
	require.Error(t, err)
	assert.True(t, IsConfig(err))
}

func TestResponse_Helpers(t *testing.T) {
	assert.Equal(t, 200, OK("body").Status)
	assert.Equal(t, 201, Created("body").Status)
	assert.Equal(t, 204, NoContent().Status)
	assert.Equal(t, 503, Error(503, "oops").Status)

	assert.True(t, OK("").IsSuccess())
	assert.True(t, NoContent().IsSuccess())
	assert.False(t, Error(404, "").IsSuccess())

	var v struct {
		Balance int `json:"balance"`
	}
	require.NoError(t, OK(`{"balance":100}`).JSON(&v))
	assert.Equal(t, 100, v.Balance)
}

func TestResponse_Header_CaseInsensitive(t *testing.T) {
	r := &Response{Status: 200, Headers: map[string]string{"Content-Type": "application/json"}}
	assert.Equal(t, "application/json", r.Header("content-type"))
	assert.Equal(t, "application/json", r.Header("CONTENT-TYPE"))
	assert.Empty(t, r.Header("X-Missing"))
}

func TestErrorKinds(t *testing.T) {
	cause := fmt.Errorf("boom")

	cfg := NewConfigError("compile path pattern", cause)
	assert.True(t, IsConfig(cfg))
	assert.False(t, IsNoMatch(cfg))
	assert.True(t, errors.Is(cfg, cause))

	nm := NewNoMatchError("GET", "/unknown")
	assert.True(t, IsNoMatch(nm))
	assert.Contains(t, nm.Error(), "GET /unknown")

	st := NewStorageError("list requests", cause)
	assert.True(t, IsStorage(st))
	assert.False(t, IsConfig(st))

	// Wrapping through fmt.Errorf keeps the kind visible.
	wrapped := fmt.Errorf("execute: %w", nm)
	assert.True(t, IsNoMatch(wrapped))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "config", KindConfig.String())
	assert.Equal(t, "no_match", KindNoMatch.String())
	assert.Equal(t, "storage", KindStorage.String())
}
