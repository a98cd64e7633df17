package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/getbankmock/bankmock/internal/matching"
	"github.com/getbankmock/bankmock/internal/registry"
	"github.com/getbankmock/bankmock/pkg/backend"
	"github.com/getbankmock/bankmock/pkg/logging"
	"github.com/getbankmock/bankmock/pkg/mock"
	"github.com/getbankmock/bankmock/pkg/store"
)

// MockBackend matches outbound HTTP calls against the active scenario's
// expectations and returns their canned responses. It implements
// backend.Backend and is safe for concurrent use.
type MockBackend struct {
	store    store.Store
	registry *registry.Registry
	log      *slog.Logger
}

// New creates a MockBackend over the given store with no active scenario.
func New(st store.Store) *MockBackend {
	return &MockBackend{
		store:    st,
		registry: registry.New(),
		log:      logging.Nop(),
	}
}

// NewInMemory creates a MockBackend over a fresh in-memory store.
func NewInMemory() *MockBackend {
	return New(store.NewMemoryStore())
}

// SetLogger installs a logger for match tracing. Nil is ignored.
func (b *MockBackend) SetLogger(log *slog.Logger) {
	if log != nil {
		b.log = log
	}
}

// Store exposes the underlying record store for test assertions and
// maintenance tooling.
func (b *MockBackend) Store() store.Store { return b.store }

// CreateScenario validates and registers a new scenario.
func (b *MockBackend) CreateScenario(ctx context.Context, in *mock.CreateScenario) (*mock.Scenario, error) {
	if err := in.Validate(); err != nil {
		return nil, backend.NewConfigError("create scenario", err)
	}
	sc, err := b.store.CreateScenario(ctx, in)
	if err != nil {
		return nil, backend.NewStorageError("create scenario", err)
	}
	return sc, nil
}

// AddMock validates and registers an expected request and its canned
// response under the named scenario. Pattern compilation happens here,
// so a broken template fails the test at setup time.
func (b *MockBackend) AddMock(ctx context.Context, scenarioName string, req *mock.CreateMockRequest, resp *mock.CreateMockResponse) (*mock.MockRequest, *mock.MockResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, backend.NewConfigError("add mock", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, nil, backend.NewConfigError("add mock", err)
	}
	created, createdResp, err := b.store.AddMock(ctx, scenarioName, req, resp)
	if err != nil {
		return nil, nil, backend.NewStorageError("add mock", err)
	}
	return created, createdResp, nil
}

// ActivateScenario makes the named scenario the one calls are matched
// against and resets all match counters. The scenario must exist.
func (b *MockBackend) ActivateScenario(ctx context.Context, name string) error {
	if _, err := b.store.GetScenario(ctx, name); err != nil {
		return backend.NewStorageError("activate scenario", err)
	}
	b.registry.Activate(name)
	b.log.Debug("scenario activated", "scenario", name)
	return nil
}

// DeactivateScenario clears the active scenario and all match counters.
func (b *MockBackend) DeactivateScenario() {
	b.registry.Deactivate()
	b.log.Debug("scenario deactivated")
}

// ActiveScenario returns the currently active scenario name, if any.
func (b *MockBackend) ActiveScenario() (string, bool) {
	return b.registry.Active()
}

// GetScenario fetches a scenario by name.
func (b *MockBackend) GetScenario(ctx context.Context, name string) (*mock.Scenario, error) {
	sc, err := b.store.GetScenario(ctx, name)
	if err != nil {
		return nil, backend.NewStorageError("get scenario", err)
	}
	return sc, nil
}

// ListScenarios returns all registered scenarios ordered by name.
func (b *MockBackend) ListScenarios(ctx context.Context) ([]*mock.Scenario, error) {
	scenarios, err := b.store.ListScenarios(ctx)
	if err != nil {
		return nil, backend.NewStorageError("list scenarios", err)
	}
	return scenarios, nil
}

// DeleteScenario removes a scenario and its mocks. Deleting the active
// scenario also deactivates it.
func (b *MockBackend) DeleteScenario(ctx context.Context, name string) error {
	if err := b.store.DeleteScenario(ctx, name); err != nil {
		return backend.NewStorageError("delete scenario", err)
	}
	if active, ok := b.registry.Active(); ok && active == name {
		b.registry.Deactivate()
	}
	return nil
}

// Reset wipes every stored scenario, request, and response, and
// deactivates whatever scenario was active.
func (b *MockBackend) Reset(ctx context.Context) error {
	if err := b.store.Reset(ctx); err != nil {
		return backend.NewStorageError("reset", err)
	}
	b.registry.Deactivate()
	return nil
}

// MatchCount reports how many times the given mock request has matched
// since the last activation.
func (b *MockBackend) MatchCount(requestID string) int {
	return b.registry.Count(requestID)
}

// Execute implements backend.Backend. The call is matched against the
// active scenario; the first full match's response is returned after
// any configured delay. No match is a hard failure.
func (b *MockBackend) Execute(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	matchedReq, matchedResp, err := b.findMatch(ctx, req)
	if err != nil {
		return nil, err
	}
	if matchedReq == nil {
		b.log.Debug("no mock matched", "method", req.Method, "url", req.URL)
		return nil, backend.NewNoMatchError(req.Method, req.URL)
	}

	if matchedResp.DelayMS > 0 {
		// Sleep outside any lock so concurrent calls are not serialized
		// behind simulated latency.
		select {
		case <-time.After(time.Duration(matchedResp.DelayMS) * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	b.registry.RecordMatch(matchedReq.ID)
	b.log.Debug("mock matched",
		"method", req.Method,
		"url", req.URL,
		"pattern", matchedReq.PathPattern,
		"status", matchedResp.StatusCode)

	return &backend.Response{
		Status:  matchedResp.StatusCode,
		Headers: matchedResp.HeaderMap(),
		Body:    matchedResp.Body,
	}, nil
}

// findMatch scans the active scenario's candidates for req.Method in
// sequence order and returns the first full match. Matches are
// non-consuming: the same mock can satisfy repeated calls.
func (b *MockBackend) findMatch(ctx context.Context, req *backend.Request) (*mock.MockRequest, *mock.MockResponse, error) {
	name, ok := b.registry.Active()
	if !ok {
		return nil, nil, nil
	}

	sc, err := b.store.GetScenario(ctx, name)
	if err != nil {
		return nil, nil, backend.NewStorageError("load active scenario", err)
	}

	method, _ := backend.NormalizeMethod(req.Method)
	candidates, err := b.store.ListRequests(ctx, sc.ID, method)
	if err != nil {
		return nil, nil, backend.NewStorageError("list candidate mocks", err)
	}

	for _, candidate := range candidates {
		matched, err := b.matches(candidate, req)
		if err != nil {
			return nil, nil, err
		}
		if !matched {
			continue
		}

		resp, err := b.store.GetResponse(ctx, candidate.ID)
		if err != nil {
			return nil, nil, backend.NewStorageError("load mock response", err)
		}
		return candidate, resp, nil
	}
	return nil, nil, nil
}

// matches evaluates the three pattern families for one candidate. A
// malformed pattern is a configuration error, never a silent skip.
func (b *MockBackend) matches(candidate *mock.MockRequest, req *backend.Request) (bool, error) {
	pathOK, err := matching.MatchPath(candidate.PathPattern, req.URL)
	if err != nil {
		return false, backend.NewConfigError("match path pattern", err)
	}
	if !pathOK {
		return false, nil
	}

	bodyOK, err := matching.MatchBody(candidate.BodyPattern, req.Body)
	if err != nil {
		return false, backend.NewConfigError("match body pattern", err)
	}
	if !bodyOK {
		return false, nil
	}

	headersOK, err := matching.MatchHeaders(candidate.HeadersPattern, req.Headers)
	if err != nil {
		return false, backend.NewConfigError("match headers pattern", err)
	}
	return headersOK, nil
}

// Ensure MockBackend implements the backend contract.
var _ backend.Backend = (*MockBackend)(nil)
