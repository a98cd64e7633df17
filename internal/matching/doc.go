// Package matching provides the pure predicates that decide whether a
// concrete HTTP call satisfies a stored mock pattern.
//
// Three independent predicate families are exposed; the engine combines
// them with logical AND:
//
//   - MatchPath: path templates with {name} placeholders and {*} wildcards
//   - MatchBody: JSON subset patterns with a regex fallback
//   - MatchHeaders: declarative header subsetting
//
// All functions are stateless and safe for concurrent use. A malformed
// pattern is reported as an error, distinct from a non-matching one.
package matching
