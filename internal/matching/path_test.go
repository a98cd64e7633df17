package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPath(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		url     string
		want    bool
	}{
		{
			name:    "exact path",
			pattern: "/accounts",
			url:     "/accounts",
			want:    true,
		},
		{
			name:    "named placeholder matches one segment",
			pattern: "/accounts/{id}",
			url:     "/accounts/42",
			want:    true,
		},
		{
			name:    "named placeholder matches opaque id",
			pattern: "/accounts/{id}",
			url:     "/accounts/abc-def",
			want:    true,
		},
		{
			name:    "named placeholder does not span segments",
			pattern: "/accounts/{id}",
			url:     "/accounts/42/transactions",
			want:    false,
		},
		{
			name:    "multiple placeholders",
			pattern: "/users/{user_id}/accounts/{account_id}",
			url:     "/users/u-1/accounts/a-9",
			want:    true,
		},
		{
			name:    "star wildcard matches remainder",
			pattern: "/data/{*}",
			url:     "/data/deep/nested/path",
			want:    true,
		},
		{
			name:    "star wildcard matches empty remainder",
			pattern: "/data/{*}",
			url:     "/data/",
			want:    true,
		},
		{
			name:    "query string discarded",
			pattern: "/accounts/{id}",
			url:     "/accounts/42?expand=balances&page=2",
			want:    true,
		},
		{
			name:    "scheme and host stripped",
			pattern: "/accounts/{id}",
			url:     "https://api.example.com/accounts/42",
			want:    true,
		},
		{
			name:    "http scheme stripped",
			pattern: "/link/token/create",
			url:     "http://sandbox.plaid.com/link/token/create",
			want:    true,
		},
		{
			name:    "anchored at start",
			pattern: "/accounts",
			url:     "/v2/accounts",
			want:    false,
		},
		{
			name:    "anchored at end",
			pattern: "/accounts",
			url:     "/accounts/extra",
			want:    false,
		},
		{
			name:    "plain regex pattern still works",
			pattern: `/accounts/[0-9]+`,
			url:     "/accounts/123",
			want:    true,
		},
		{
			name:    "plain regex pattern rejects non-digits",
			pattern: `/accounts/[0-9]+`,
			url:     "/accounts/abc",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchPath(tt.pattern, tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchPath_InvalidPattern(t *testing.T) {
	got, err := MatchPath("/accounts/[invalid", "/accounts/42")
	require.Error(t, err)
	assert.False(t, got)
	assert.Contains(t, err.Error(), "invalid path pattern")
}

func TestCompilePathPattern(t *testing.T) {
	re, err := CompilePathPattern("/items/{item_id}/notes/{*}")
	require.NoError(t, err)
	assert.True(t, re.MatchString("/items/7/notes/a/b"))
	assert.False(t, re.MatchString("/items/7/8/notes/a"))

	_, err = CompilePathPattern("/items/([bad")
	assert.Error(t, err)
}

func TestRequestPath(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"/accounts/42", "/accounts/42"},
		{"/accounts?limit=5", "/accounts"},
		{"https://api.example.com/v1/items", "/v1/items"},
		{"http://host/", "/"},
		{"https://host.example.com", "/"},
		{"host.example.com/path", "/path"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, RequestPath(tt.url))
		})
	}
}
