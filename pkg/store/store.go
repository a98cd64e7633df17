// Package store provides persistence for scenarios, mock requests, and
// mock responses.
//
// Two implementations are included: MemoryStore, the default for unit
// tests, and SQLiteStore, which persists records to a SQLite database.
// Both are safe for concurrent use; the matching engine only depends on
// the Store interface.
package store

import (
	"context"
	"errors"

	"github.com/getbankmock/bankmock/pkg/mock"
)

// Sentinel errors shared by all implementations.
var (
	// ErrScenarioNotFound is returned when a scenario name resolves to
	// no stored scenario.
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrDuplicateScenario is returned when creating a scenario whose
	// name is already taken.
	ErrDuplicateScenario = errors.New("scenario name already exists")

	// ErrResponseNotFound is returned when a mock request has no stored
	// response.
	ErrResponseNotFound = errors.New("mock response not found")
)

// Store is the persistence contract for the mock backend's three record
// types. All operations are fallible; storage failures are surfaced, not
// swallowed.
type Store interface {
	// CreateScenario registers a new scenario. The name must be unique.
	CreateScenario(ctx context.Context, in *mock.CreateScenario) (*mock.Scenario, error)

	// GetScenario fetches a scenario by its unique name.
	GetScenario(ctx context.Context, name string) (*mock.Scenario, error)

	// ListScenarios returns all scenarios ordered by name.
	ListScenarios(ctx context.Context) ([]*mock.Scenario, error)

	// DeleteScenario removes a scenario by name, cascading to its mock
	// requests and their responses. The cascade is atomic.
	DeleteScenario(ctx context.Context, name string) error

	// AddMock registers an expected request and its canned response as a
	// pair, scoped to the named scenario. When the request carries no
	// sequence order it is appended after the scenario's current maximum.
	AddMock(ctx context.Context, scenarioName string, req *mock.CreateMockRequest, resp *mock.CreateMockResponse) (*mock.MockRequest, *mock.MockResponse, error)

	// ListRequests returns the scenario's mock requests filtered by HTTP
	// method, ordered ascending by sequence order with ties broken by
	// insertion order.
	ListRequests(ctx context.Context, scenarioID, method string) ([]*mock.MockRequest, error)

	// GetResponse fetches the single response paired with a mock request.
	GetResponse(ctx context.Context, requestID string) (*mock.MockResponse, error)

	// Reset wipes all scenarios, mock requests, and mock responses.
	Reset(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}
