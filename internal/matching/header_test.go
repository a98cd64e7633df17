package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchHeaders(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		headers map[string]string
		want    bool
	}{
		{
			name:    "empty pattern matches no headers",
			pattern: "",
			headers: nil,
			want:    true,
		},
		{
			name:    "empty pattern matches any headers",
			pattern: "",
			headers: map[string]string{"X-Key": "abc"},
			want:    true,
		},
		{
			name:    "exact value match",
			pattern: `{"Authorization":"Bearer token-1"}`,
			headers: map[string]string{"Authorization": "Bearer token-1"},
			want:    true,
		},
		{
			name:    "exact value mismatch",
			pattern: `{"Authorization":"Bearer token-1"}`,
			headers: map[string]string{"Authorization": "Bearer token-2"},
			want:    false,
		},
		{
			name:    "wildcard accepts any value",
			pattern: `{"X-Key":"*"}`,
			headers: map[string]string{"X-Key": "anything"},
			want:    true,
		},
		{
			name:    "wildcard still requires presence",
			pattern: `{"X-Key":"*"}`,
			headers: map[string]string{"Other": "x"},
			want:    false,
		},
		{
			name:    "extra actual headers ignored",
			pattern: `{"X-Key":"v"}`,
			headers: map[string]string{"X-Key": "v", "Content-Type": "application/json", "X-Trace": "t"},
			want:    true,
		},
		{
			name:    "all pattern keys required",
			pattern: `{"X-Key":"v","X-Secret":"s"}`,
			headers: map[string]string{"X-Key": "v"},
			want:    false,
		},
		{
			name:    "names compare case-insensitively",
			pattern: `{"content-type":"application/json"}`,
			headers: map[string]string{"Content-Type": "application/json"},
			want:    true,
		},
		{
			name:    "values compare case-sensitively",
			pattern: `{"X-Env":"sandbox"}`,
			headers: map[string]string{"X-Env": "Sandbox"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchHeaders(tt.pattern, tt.headers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchHeaders_InvalidPattern(t *testing.T) {
	tests := []string{
		`not json`,
		`["a","b"]`,
		`{"key": 1}`,
	}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			got, err := MatchHeaders(pattern, map[string]string{"key": "1"})
			require.Error(t, err)
			assert.False(t, got)
		})
	}
}

func TestValidateHeadersPattern(t *testing.T) {
	assert.NoError(t, ValidateHeadersPattern(""))
	assert.NoError(t, ValidateHeadersPattern(`{"X-Key":"*"}`))
	assert.Error(t, ValidateHeadersPattern(`{"X-Key":`))
	assert.Error(t, ValidateHeadersPattern(`42`))
}
