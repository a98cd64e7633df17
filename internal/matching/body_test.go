package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchBody(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		body    string
		want    bool
	}{
		{
			name:    "empty pattern matches anything",
			pattern: "",
			body:    `{"anything": true}`,
			want:    true,
		},
		{
			name:    "empty pattern matches malformed body",
			pattern: "",
			body:    "not json at all {{",
			want:    true,
		},
		{
			name:    "wildcard pattern matches anything",
			pattern: "*",
			body:    "whatever",
			want:    true,
		},
		{
			name:    "wildcard pattern matches empty body",
			pattern: "*",
			body:    "",
			want:    true,
		},
		{
			name:    "constrained pattern rejects missing body",
			pattern: `{"type":"debit"}`,
			body:    "",
			want:    false,
		},
		{
			name:    "subset match ignores extra keys",
			pattern: `{"type":"debit"}`,
			body:    `{"type":"debit","amount":5}`,
			want:    true,
		},
		{
			name:    "subset match rejects wrong value",
			pattern: `{"type":"debit"}`,
			body:    `{"type":"credit","amount":5}`,
			want:    false,
		},
		{
			name:    "subset match rejects missing key",
			pattern: `{"type":"debit","currency":"EUR"}`,
			body:    `{"type":"debit"}`,
			want:    false,
		},
		{
			name:    "nested subset",
			pattern: `{"account":{"type":"checking"}}`,
			body:    `{"account":{"type":"checking","mask":"0000"},"item_id":"x"}`,
			want:    true,
		},
		{
			name:    "value wildcard matches any type value",
			pattern: `{"type":"*"}`,
			body:    `{"type":"credit"}`,
			want:    true,
		},
		{
			name:    "value wildcard still requires key",
			pattern: `{"type":"*"}`,
			body:    `{"kind":"credit"}`,
			want:    false,
		},
		{
			name:    "value wildcard matches non-string value",
			pattern: `{"amount":"*"}`,
			body:    `{"amount":12.5}`,
			want:    true,
		},
		{
			name:    "array pattern requires equal length",
			pattern: `[1,2]`,
			body:    `[1,2,3]`,
			want:    false,
		},
		{
			name:    "array pattern positional match",
			pattern: `[{"id":"*"},{"id":"b"}]`,
			body:    `[{"id":"a","x":1},{"id":"b"}]`,
			want:    true,
		},
		{
			name:    "array pattern positional mismatch",
			pattern: `[{"id":"a"},{"id":"b"}]`,
			body:    `[{"id":"b"},{"id":"a"}]`,
			want:    false,
		},
		{
			name:    "integer pattern matches float body value",
			pattern: `{"amount":100}`,
			body:    `{"amount":100.0}`,
			want:    true,
		},
		{
			name:    "number mismatch",
			pattern: `{"amount":100}`,
			body:    `{"amount":101}`,
			want:    false,
		},
		{
			name:    "boolean and null equality",
			pattern: `{"active":true,"closed_at":null}`,
			body:    `{"active":true,"closed_at":null,"id":1}`,
			want:    true,
		},
		{
			name:    "type mismatch object vs array",
			pattern: `{"items":{}}`,
			body:    `{"items":[]}`,
			want:    false,
		},
		{
			name:    "regex fallback when body is not json",
			pattern: `grant_type=client_credentials`,
			body:    `grant_type=client_credentials&scope=accounts`,
			want:    true,
		},
		{
			name:    "regex fallback no match",
			pattern: `grant_type=refresh_token`,
			body:    `grant_type=client_credentials`,
			want:    false,
		},
		{
			name:    "regex fallback when pattern is not json",
			pattern: `"balance":\s*\d+`,
			body:    `{"balance": 100}`,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchBody(tt.pattern, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchBody_InvalidFallbackRegex(t *testing.T) {
	got, err := MatchBody("[unclosed", "plain text body")
	require.Error(t, err)
	assert.False(t, got)
	assert.Contains(t, err.Error(), "invalid body pattern")
}

func TestSubsetMatch_Scalars(t *testing.T) {
	assert.True(t, SubsetMatch("a", "a"))
	assert.False(t, SubsetMatch("a", "b"))
	assert.True(t, SubsetMatch("*", int64(7)))
	assert.True(t, SubsetMatch(int64(7), 7.0))
	assert.True(t, SubsetMatch(nil, nil))
	assert.False(t, SubsetMatch(nil, "x"))
	assert.False(t, SubsetMatch(true, "true"))
}
