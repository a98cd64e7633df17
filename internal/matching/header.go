package matching

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MatchHeaders reports whether the actual header map satisfies pattern.
//
// An empty pattern constrains nothing. Otherwise pattern must be a JSON
// object of header name to expected value; every pattern key must be
// present in the actual headers with either the exact expected value or
// any value when the pattern value is "*". Actual headers not named by
// the pattern are never checked. Header names compare case-insensitively.
func MatchHeaders(pattern string, headers map[string]string) (bool, error) {
	if pattern == "" {
		return true, nil
	}

	expected, err := parseHeadersPattern(pattern)
	if err != nil {
		return false, err
	}

	actual := make(map[string]string, len(headers))
	for name, value := range headers {
		actual[strings.ToLower(name)] = value
	}

	for name, want := range expected {
		got, present := actual[strings.ToLower(name)]
		if !present {
			return false, nil
		}
		if want != Wildcard && got != want {
			return false, nil
		}
	}
	return true, nil
}

// ValidateHeadersPattern checks that a headers pattern is a decodable
// JSON string map. Empty patterns are valid.
func ValidateHeadersPattern(pattern string) error {
	if pattern == "" {
		return nil
	}
	_, err := parseHeadersPattern(pattern)
	return err
}

func parseHeadersPattern(pattern string) (map[string]string, error) {
	var m map[string]string
	if err := json.Unmarshal([]byte(pattern), &m); err != nil {
		return nil, fmt.Errorf("invalid headers pattern %q: %w", pattern, err)
	}
	return m, nil
}
