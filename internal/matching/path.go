package matching

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderRegex finds {name} path template tokens. The {*} wildcard is
// substituted separately since "*" is not an identifier.
var placeholderRegex = regexp.MustCompile(`\{[A-Za-z_][A-Za-z0-9_]*\}`)

// CompilePathPattern expands a path template into an anchored regular
// expression: every {identifier} token matches a single path segment and
// {*} matches any remainder. The rest of the pattern is passed through as
// regex source, so plain regex patterns keep working.
func CompilePathPattern(pattern string) (*regexp.Regexp, error) {
	expanded := strings.ReplaceAll(pattern, "{*}", ".*")
	expanded = placeholderRegex.ReplaceAllString(expanded, "[^/]+")

	re, err := regexp.Compile("^" + expanded + "$")
	if err != nil {
		return nil, fmt.Errorf("invalid path pattern %q: %w", pattern, err)
	}
	return re, nil
}

// MatchPath reports whether the path portion of url satisfies pattern.
// A pattern that does not compile is a configuration error, not a miss.
func MatchPath(pattern, url string) (bool, error) {
	re, err := CompilePathPattern(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(RequestPath(url)), nil
}

// RequestPath reduces a URL to its path: the query string, scheme, and
// host are discarded. A URL with no path component yields "/".
func RequestPath(url string) string {
	path := url
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimPrefix(path, "http://")
	path = strings.TrimPrefix(path, "https://")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[i:]
	}
	return "/"
}
