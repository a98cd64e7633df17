package config

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/getbankmock/bankmock/pkg/engine"
	"github.com/getbankmock/bankmock/pkg/mock"
)

// Apply registers every scenario in the file on the backend. The
// scenario marked active, if any, is activated after all scenarios are
// loaded.
func Apply(ctx context.Context, b *engine.MockBackend, f *File) error {
	activate := ""
	for _, sc := range f.Scenarios {
		in := mock.NewScenario(sc.Name, sc.Provider)
		if sc.Description != "" {
			in.WithDescription(sc.Description)
		}
		if _, err := b.CreateScenario(ctx, in); err != nil {
			return err
		}
		for _, m := range sc.Mocks {
			req, resp, err := m.build()
			if err != nil {
				return err
			}
			if _, _, err := b.AddMock(ctx, sc.Name, req, resp); err != nil {
				return err
			}
		}
		if sc.Active {
			activate = sc.Name
		}
	}
	if activate != "" {
		return b.ActivateScenario(ctx, activate)
	}
	return nil
}

// LoadAndApply is Load followed by Apply.
func LoadAndApply(ctx context.Context, b *engine.MockBackend, path string) error {
	f, err := Load(path)
	if err != nil {
		return err
	}
	return Apply(ctx, b, f)
}

func (m *MockConfig) build() (*mock.CreateMockRequest, *mock.CreateMockResponse, error) {
	req := &mock.CreateMockRequest{
		Method:        strings.ToUpper(m.Method),
		PathPattern:   m.Path,
		BodyPattern:   string(m.Body),
		SequenceOrder: m.Sequence,
	}
	if len(m.Headers) > 0 {
		encoded, err := jsonEncode(m.Headers)
		if err != nil {
			return nil, nil, err
		}
		req.HeadersPattern = encoded
	}

	status := m.Response.Status
	if status == 0 {
		status = 200
	}
	resp := &mock.CreateMockResponse{
		StatusCode: status,
		Body:       string(m.Response.Body),
		DelayMS:    m.Response.DelayMS,
	}
	if len(m.Response.Headers) > 0 {
		encoded, err := jsonEncode(m.Response.Headers)
		if err != nil {
			return nil, nil, err
		}
		resp.Headers = encoded
	}
	return req, resp, nil
}

func jsonEncode(v any) (string, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
