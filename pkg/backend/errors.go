package backend

import (
	"errors"
	"fmt"
)

// ErrorKind classifies backend failures into a closed set so callers can
// branch on category instead of message content.
type ErrorKind int

const (
	// KindConfig marks an invalid mock definition: a path pattern that
	// does not compile, a headers pattern that is not a JSON object, or
	// an unencodable request body.
	KindConfig ErrorKind = iota

	// KindNoMatch marks a request that no mock in the active scenario
	// satisfies, or a request executed with no scenario active.
	KindNoMatch

	// KindStorage marks a failure surfaced by the record store.
	KindStorage
)

// String returns the kind name for logs and error text.
func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindNoMatch:
		return "no_match"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// BackendError is the single error type returned across the backend contract.
type BackendError struct {
	Kind ErrorKind
	Op   string // operation or subject, e.g. "compile path pattern"
	Msg  string
	Err  error // wrapped cause, may be nil
}

func (e *BackendError) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %s: %v", e.Kind, e.Op, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e *BackendError) Unwrap() error { return e.Err }

// NewConfigError wraps a mock configuration failure.
func NewConfigError(op string, err error) *BackendError {
	return &BackendError{Kind: KindConfig, Op: op, Err: err}
}

// NewNoMatchError reports that no mock satisfies the given call.
func NewNoMatchError(method, url string) *BackendError {
	return &BackendError{Kind: KindNoMatch, Op: "match request", Msg: fmt.Sprintf("no mock found for %s %s", method, url)}
}

// NewStorageError wraps a record store failure.
func NewStorageError(op string, err error) *BackendError {
	return &BackendError{Kind: KindStorage, Op: op, Err: err}
}

// kindOf extracts the kind from an error chain.
func kindOf(err error) (ErrorKind, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return 0, false
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindConfig
}

// IsNoMatch reports whether err is a no-match error.
func IsNoMatch(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNoMatch
}

// IsStorage reports whether err is a storage error.
func IsStorage(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindStorage
}
