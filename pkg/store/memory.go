package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/getbankmock/bankmock/pkg/mock"
)

// MemoryStore is a thread-safe in-memory Store implementation.
type MemoryStore struct {
	mu        sync.RWMutex
	scenarios map[string]*mock.Scenario // keyed by name
	requests  map[string][]*mock.MockRequest
	responses map[string]*mock.MockResponse // keyed by request ID
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		scenarios: make(map[string]*mock.Scenario),
		requests:  make(map[string][]*mock.MockRequest),
		responses: make(map[string]*mock.MockResponse),
	}
}

// CreateScenario registers a new scenario. The name must be unique.
func (s *MemoryStore) CreateScenario(_ context.Context, in *mock.CreateScenario) (*mock.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.scenarios[in.Name]; exists {
		return nil, fmt.Errorf("create scenario %q: %w", in.Name, ErrDuplicateScenario)
	}

	now := time.Now().UTC()
	sc := &mock.Scenario{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Provider:    in.Provider,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.scenarios[in.Name] = sc

	out := *sc
	return &out, nil
}

// GetScenario fetches a scenario by name.
func (s *MemoryStore) GetScenario(_ context.Context, name string) (*mock.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sc, exists := s.scenarios[name]
	if !exists {
		return nil, fmt.Errorf("get scenario %q: %w", name, ErrScenarioNotFound)
	}
	out := *sc
	return &out, nil
}

// ListScenarios returns all scenarios ordered by name.
func (s *MemoryStore) ListScenarios(_ context.Context) ([]*mock.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*mock.Scenario, 0, len(s.scenarios))
	for _, sc := range s.scenarios {
		out := *sc
		result = append(result, &out)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// DeleteScenario removes a scenario and cascades to its mocks.
func (s *MemoryStore) DeleteScenario(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, exists := s.scenarios[name]
	if !exists {
		return fmt.Errorf("delete scenario %q: %w", name, ErrScenarioNotFound)
	}

	for _, req := range s.requests[sc.ID] {
		delete(s.responses, req.ID)
	}
	delete(s.requests, sc.ID)
	delete(s.scenarios, name)
	return nil
}

// AddMock registers a request/response pair under the named scenario.
func (s *MemoryStore) AddMock(_ context.Context, scenarioName string, req *mock.CreateMockRequest, resp *mock.CreateMockResponse) (*mock.MockRequest, *mock.MockResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, exists := s.scenarios[scenarioName]
	if !exists {
		return nil, nil, fmt.Errorf("add mock to scenario %q: %w", scenarioName, ErrScenarioNotFound)
	}

	order := 0
	if req.SequenceOrder != nil {
		order = *req.SequenceOrder
	} else {
		maxOrder := 0
		for _, existing := range s.requests[sc.ID] {
			if existing.SequenceOrder > maxOrder {
				maxOrder = existing.SequenceOrder
			}
		}
		order = maxOrder + 1
	}

	now := time.Now().UTC()
	created := &mock.MockRequest{
		ID:             uuid.NewString(),
		ScenarioID:     sc.ID,
		Method:         req.Method,
		PathPattern:    req.PathPattern,
		BodyPattern:    req.BodyPattern,
		HeadersPattern: req.HeadersPattern,
		SequenceOrder:  order,
		CreatedAt:      now,
	}
	s.requests[sc.ID] = append(s.requests[sc.ID], created)

	createdResp := &mock.MockResponse{
		ID:         uuid.NewString(),
		RequestID:  created.ID,
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		DelayMS:    resp.DelayMS,
		CreatedAt:  now,
	}
	s.responses[created.ID] = createdResp

	outReq := *created
	outResp := *createdResp
	return &outReq, &outResp, nil
}

// ListRequests returns the scenario's requests for a method, ordered by
// sequence with insertion order breaking ties.
func (s *MemoryStore) ListRequests(_ context.Context, scenarioID, method string) ([]*mock.MockRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*mock.MockRequest
	for _, req := range s.requests[scenarioID] {
		if req.Method == method {
			out := *req
			result = append(result, &out)
		}
	}
	// The backing slice is already in insertion order; a stable sort
	// preserves it among equal sequence values.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SequenceOrder < result[j].SequenceOrder
	})
	return result, nil
}

// GetResponse fetches the response paired with a request ID.
func (s *MemoryStore) GetResponse(_ context.Context, requestID string) (*mock.MockResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp, exists := s.responses[requestID]
	if !exists {
		return nil, fmt.Errorf("get response for request %q: %w", requestID, ErrResponseNotFound)
	}
	out := *resp
	return &out, nil
}

// Reset wipes all stored records.
func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios = make(map[string]*mock.Scenario)
	s.requests = make(map[string][]*mock.MockRequest)
	s.responses = make(map[string]*mock.MockResponse)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
