package matching

import (
	"fmt"
	"regexp"

	"github.com/ohler55/ojg/oj"
)

// Wildcard accepts any value wherever it appears in a pattern.
const Wildcard = "*"

// MatchBody reports whether body satisfies pattern.
//
// An empty pattern or the "*" wildcard constrains nothing. Otherwise both
// sides are parsed as JSON; when both parse, subset semantics apply (see
// SubsetMatch). When either side is not JSON the pattern is treated as a
// plain regular expression over the raw body text. An uncompilable
// fallback regex is a configuration error.
func MatchBody(pattern, body string) (bool, error) {
	if pattern == "" || pattern == Wildcard {
		return true, nil
	}
	if body == "" {
		return false, nil
	}

	patternJSON, perr := oj.ParseString(pattern)
	bodyJSON, berr := oj.ParseString(body)
	if perr == nil && berr == nil {
		return SubsetMatch(patternJSON, bodyJSON), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("invalid body pattern %q: %w", pattern, err)
	}
	return re.MatchString(body), nil
}

// SubsetMatch recursively compares a parsed JSON pattern against a parsed
// JSON value. An object pattern requires every pattern key to exist in the
// value with a recursively matching entry; extra value keys are ignored.
// An array pattern requires equal length and positional matches. The
// string "*" matches anything. Every other pattern value must equal the
// actual value.
func SubsetMatch(pattern, value any) bool {
	switch p := pattern.(type) {
	case map[string]any:
		v, ok := value.(map[string]any)
		if !ok {
			return false
		}
		for key, pv := range p {
			av, present := v[key]
			if !present || !SubsetMatch(pv, av) {
				return false
			}
		}
		return true
	case []any:
		v, ok := value.([]any)
		if !ok || len(p) != len(v) {
			return false
		}
		for i := range p {
			if !SubsetMatch(p[i], v[i]) {
				return false
			}
		}
		return true
	case string:
		if p == Wildcard {
			return true
		}
		v, ok := value.(string)
		return ok && p == v
	default:
		return scalarEqual(pattern, value)
	}
}

// scalarEqual compares leaf values. JSON numbers are compared by value so
// that an integer literal matches the same quantity written as a float.
func scalarEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
