// Package mock defines the record types the mock backend persists:
// scenarios, expected requests, and canned responses.
package mock

import (
	"encoding/json"
	"net/http"
	"time"
)

// Scenario is a named, provider-tagged bundle of expected request/response
// pairs. Names are unique across the store; at most one scenario is active
// at a time, tracked by the engine's registry rather than this record.
type Scenario struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Provider    string    `json:"provider" yaml:"provider"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	IsActive    bool      `json:"isActive" yaml:"isActive"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// MockRequest is one expected call within a scenario.
//
// PathPattern is a path template: literal regex with {name} placeholders
// (each matching one path segment) and {*} matching any remainder.
// BodyPattern is either a JSON subset pattern, the literal "*" accepting
// any body, or a plain regex; empty means the body is unconstrained.
// HeadersPattern is a JSON object of header name to expected value, where
// "*" accepts any value; empty means headers are unconstrained.
type MockRequest struct {
	ID             string    `json:"id" yaml:"id"`
	ScenarioID     string    `json:"scenarioId" yaml:"scenarioId"`
	Method         string    `json:"method" yaml:"method"`
	PathPattern    string    `json:"pathPattern" yaml:"pathPattern"`
	BodyPattern    string    `json:"bodyPattern,omitempty" yaml:"bodyPattern,omitempty"`
	HeadersPattern string    `json:"headersPattern,omitempty" yaml:"headersPattern,omitempty"`
	SequenceOrder  int       `json:"sequenceOrder" yaml:"sequenceOrder"`
	TimesMatched   int       `json:"timesMatched" yaml:"timesMatched"`
	CreatedAt      time.Time `json:"createdAt" yaml:"createdAt"`
}

// MockResponse is the canned reply for a MockRequest (1:1).
// Headers is a JSON-encoded string map; Body is returned verbatim.
type MockResponse struct {
	ID         string    `json:"id" yaml:"id"`
	RequestID  string    `json:"requestId" yaml:"requestId"`
	StatusCode int       `json:"statusCode" yaml:"statusCode"`
	Headers    string    `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body       string    `json:"body" yaml:"body"`
	DelayMS    int       `json:"delayMs,omitempty" yaml:"delayMs,omitempty"`
	CreatedAt  time.Time `json:"createdAt" yaml:"createdAt"`
}

// HeaderMap decodes the response headers. Undecodable or empty headers
// yield an empty map; the stored string is advisory, not load-bearing.
func (r *MockResponse) HeaderMap() map[string]string {
	if r.Headers == "" {
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(r.Headers), &m); err != nil {
		return map[string]string{}
	}
	return m
}

// CreateScenario is the input for registering a new scenario.
type CreateScenario struct {
	Name        string `json:"name" yaml:"name"`
	Provider    string `json:"provider" yaml:"provider"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewScenario builds a CreateScenario for the given name and provider tag.
func NewScenario(name, provider string) *CreateScenario {
	return &CreateScenario{Name: name, Provider: provider}
}

// WithDescription sets the optional description.
func (c *CreateScenario) WithDescription(description string) *CreateScenario {
	c.Description = description
	return c
}

// CreateMockRequest is the input for registering an expected request.
// SequenceOrder nil means "append after the scenario's current maximum".
type CreateMockRequest struct {
	Method         string `json:"method" yaml:"method"`
	PathPattern    string `json:"pathPattern" yaml:"pathPattern"`
	BodyPattern    string `json:"bodyPattern,omitempty" yaml:"bodyPattern,omitempty"`
	HeadersPattern string `json:"headersPattern,omitempty" yaml:"headersPattern,omitempty"`
	SequenceOrder  *int   `json:"sequenceOrder,omitempty" yaml:"sequenceOrder,omitempty"`
}

// Get builds an expectation for a GET on the given path pattern.
func Get(pathPattern string) *CreateMockRequest {
	return &CreateMockRequest{Method: http.MethodGet, PathPattern: pathPattern}
}

// Post builds an expectation for a POST on the given path pattern.
func Post(pathPattern string) *CreateMockRequest {
	return &CreateMockRequest{Method: http.MethodPost, PathPattern: pathPattern}
}

// Put builds an expectation for a PUT on the given path pattern.
func Put(pathPattern string) *CreateMockRequest {
	return &CreateMockRequest{Method: http.MethodPut, PathPattern: pathPattern}
}

// Patch builds an expectation for a PATCH on the given path pattern.
func Patch(pathPattern string) *CreateMockRequest {
	return &CreateMockRequest{Method: http.MethodPatch, PathPattern: pathPattern}
}

// Delete builds an expectation for a DELETE on the given path pattern.
func Delete(pathPattern string) *CreateMockRequest {
	return &CreateMockRequest{Method: http.MethodDelete, PathPattern: pathPattern}
}

// WithBodyPattern constrains the request body.
func (c *CreateMockRequest) WithBodyPattern(pattern string) *CreateMockRequest {
	c.BodyPattern = pattern
	return c
}

// WithHeadersPattern constrains request headers with a JSON object pattern.
func (c *CreateMockRequest) WithHeadersPattern(pattern string) *CreateMockRequest {
	c.HeadersPattern = pattern
	return c
}

// WithSequence pins the scan position instead of appending.
func (c *CreateMockRequest) WithSequence(order int) *CreateMockRequest {
	c.SequenceOrder = &order
	return c
}

// CreateMockResponse is the input for the canned reply paired with a
// CreateMockRequest.
type CreateMockResponse struct {
	StatusCode int    `json:"statusCode" yaml:"statusCode"`
	Headers    string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body       string `json:"body" yaml:"body"`
	DelayMS    int    `json:"delayMs,omitempty" yaml:"delayMs,omitempty"`
}

// OK builds a 200 response with the given body.
func OK(body string) *CreateMockResponse {
	return &CreateMockResponse{StatusCode: http.StatusOK, Body: body}
}

// Created builds a 201 response with the given body.
func Created(body string) *CreateMockResponse {
	return &CreateMockResponse{StatusCode: http.StatusCreated, Body: body}
}

// NoContent builds an empty 204 response.
func NoContent() *CreateMockResponse {
	return &CreateMockResponse{StatusCode: http.StatusNoContent}
}

// BadRequest builds a 400 response with the given body.
func BadRequest(body string) *CreateMockResponse {
	return &CreateMockResponse{StatusCode: http.StatusBadRequest, Body: body}
}

// Unauthorized builds a 401 response with the given body.
func Unauthorized(body string) *CreateMockResponse {
	return &CreateMockResponse{StatusCode: http.StatusUnauthorized, Body: body}
}

// NotFound builds a 404 response with the given body.
func NotFound(body string) *CreateMockResponse {
	return &CreateMockResponse{StatusCode: http.StatusNotFound, Body: body}
}

// InternalError builds a 500 response with the given body.
func InternalError(body string) *CreateMockResponse {
	return &CreateMockResponse{StatusCode: http.StatusInternalServerError, Body: body}
}

// RateLimited builds the canned 429 response providers return when a
// client exceeds its quota.
func RateLimited() *CreateMockResponse {
	return &CreateMockResponse{
		StatusCode: http.StatusTooManyRequests,
		Body:       `{"error": "rate_limited", "message": "Too many requests"}`,
	}
}

// JSON builds a 200 response whose body is the JSON encoding of data,
// with a Content-Type header set.
func JSON(data any) (*CreateMockResponse, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &CreateMockResponse{
		StatusCode: http.StatusOK,
		Headers:    `{"Content-Type": "application/json"}`,
		Body:       string(body),
	}, nil
}

// WithStatus overrides the status code.
func (c *CreateMockResponse) WithStatus(status int) *CreateMockResponse {
	c.StatusCode = status
	return c
}

// WithHeaders sets the JSON-encoded response header map.
func (c *CreateMockResponse) WithHeaders(headers string) *CreateMockResponse {
	c.Headers = headers
	return c
}

// WithDelay adds simulated latency before the response is returned.
func (c *CreateMockResponse) WithDelay(delayMS int) *CreateMockResponse {
	c.DelayMS = delayMS
	return c
}
