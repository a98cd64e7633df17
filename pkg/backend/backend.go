package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// Request is an outbound HTTP call as seen by a provider client.
type Request struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    string            `json:"body,omitempty"`
}

// Response is the reply a Backend produces for a Request.
type Response struct {
	Status  int               `json:"status"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    string            `json:"body"`
}

// Backend executes outbound HTTP requests on behalf of provider clients.
// Implementations must be safe for concurrent use.
type Backend interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// NormalizeMethod uppercases an HTTP method and reports whether it is
// one the backend understands.
func NormalizeMethod(method string) (string, bool) {
	m := strings.ToUpper(strings.TrimSpace(method))
	switch m {
	case http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions:
		return m, true
	}
	return m, false
}

// Get executes a GET request with no headers or body.
func Get(ctx context.Context, b Backend, url string) (*Response, error) {
	return b.Execute(ctx, &Request{Method: http.MethodGet, URL: url})
}

// GetWithHeaders executes a GET request with the given headers.
func GetWithHeaders(ctx context.Context, b Backend, url string, headers map[string]string) (*Response, error) {
	return b.Execute(ctx, &Request{Method: http.MethodGet, URL: url, Headers: headers})
}

// Post JSON-encodes body and executes a POST request.
func Post(ctx context.Context, b Backend, url string, body any) (*Response, error) {
	return PostWithHeaders(ctx, b, url, body, nil)
}

// PostWithHeaders JSON-encodes body and executes a POST request with headers.
func PostWithHeaders(ctx context.Context, b Backend, url string, body any, headers map[string]string) (*Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, NewConfigError("encode request body", err)
	}
	return b.Execute(ctx, &Request{Method: http.MethodPost, URL: url, Headers: headers, Body: string(encoded)})
}

// Put JSON-encodes body and executes a PUT request.
func Put(ctx context.Context, b Backend, url string, body any) (*Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, NewConfigError("encode request body", err)
	}
	return b.Execute(ctx, &Request{Method: http.MethodPut, URL: url, Body: string(encoded)})
}

// Patch JSON-encodes body and executes a PATCH request.
func Patch(ctx context.Context, b Backend, url string, body any) (*Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, NewConfigError("encode request body", err)
	}
	return b.Execute(ctx, &Request{Method: http.MethodPatch, URL: url, Body: string(encoded)})
}

// Delete executes a DELETE request with no headers or body.
func Delete(ctx context.Context, b Backend, url string) (*Response, error) {
	return b.Execute(ctx, &Request{Method: http.MethodDelete, URL: url})
}

// DeleteWithHeaders executes a DELETE request with the given headers.
func DeleteWithHeaders(ctx context.Context, b Backend, url string, headers map[string]string) (*Response, error) {
	return b.Execute(ctx, &Request{Method: http.MethodDelete, URL: url, Headers: headers})
}

// OK builds a 200 response with the given body.
func OK(body string) *Response {
	return &Response{Status: http.StatusOK, Headers: map[string]string{}, Body: body}
}

// Created builds a 201 response with the given body.
func Created(body string) *Response {
	return &Response{Status: http.StatusCreated, Headers: map[string]string{}, Body: body}
}

// NoContent builds an empty 204 response.
func NoContent() *Response {
	return &Response{Status: http.StatusNoContent, Headers: map[string]string{}}
}

// Error builds a response with an arbitrary error status.
func Error(status int, body string) *Response {
	return &Response{Status: status, Headers: map[string]string{}, Body: body}
}

// IsSuccess reports whether the status is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal([]byte(r.Body), v)
}

// Header returns a response header value, matching the name
// case-insensitively. Returns "" when absent.
func (r *Response) Header(name string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
