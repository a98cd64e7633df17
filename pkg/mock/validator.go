package mock

import (
	"fmt"

	"github.com/getbankmock/bankmock/internal/matching"
)

// ValidationError reports an invalid record with the field that failed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
}

// validMethods are the HTTP verbs a MockRequest may expect.
var validMethods = map[string]bool{
	"GET":     true,
	"POST":    true,
	"PUT":     true,
	"DELETE":  true,
	"PATCH":   true,
	"HEAD":    true,
	"OPTIONS": true,
}

// Validate checks a scenario registration.
func (c *CreateScenario) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if c.Provider == "" {
		return &ValidationError{Field: "provider", Message: "provider is required"}
	}
	return nil
}

// Validate checks an expected-request registration. Patterns are compiled
// here so that a bad template fails at registration time, not when the
// first call is matched against it.
func (c *CreateMockRequest) Validate() error {
	if !validMethods[c.Method] {
		return &ValidationError{Field: "method", Message: fmt.Sprintf("unsupported HTTP method: %q", c.Method)}
	}
	if c.PathPattern == "" {
		return &ValidationError{Field: "pathPattern", Message: "pathPattern is required"}
	}
	if _, err := matching.CompilePathPattern(c.PathPattern); err != nil {
		return &ValidationError{Field: "pathPattern", Message: err.Error()}
	}
	if err := matching.ValidateHeadersPattern(c.HeadersPattern); err != nil {
		return &ValidationError{Field: "headersPattern", Message: err.Error()}
	}
	return nil
}

// Validate checks a canned-response registration.
func (c *CreateMockResponse) Validate() error {
	if c.StatusCode < 100 || c.StatusCode > 599 {
		return &ValidationError{Field: "statusCode", Message: fmt.Sprintf("status code out of range: %d", c.StatusCode)}
	}
	if c.DelayMS < 0 {
		return &ValidationError{Field: "delayMs", Message: "delay must not be negative"}
	}
	return nil
}
