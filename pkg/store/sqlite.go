package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/getbankmock/bankmock/pkg/mock"
)

// SQLiteStore persists records to a SQLite database. The schema is
// created at open time, so a fresh file (or ":memory:") is immediately
// usable.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS scenarios (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	provider    TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	is_active   INTEGER NOT NULL DEFAULT 1,
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS mock_requests (
	id              TEXT PRIMARY KEY,
	scenario_id     TEXT NOT NULL REFERENCES scenarios(id) ON DELETE CASCADE,
	method          TEXT NOT NULL,
	path_pattern    TEXT NOT NULL,
	body_pattern    TEXT NOT NULL DEFAULT '',
	headers_pattern TEXT NOT NULL DEFAULT '',
	sequence_order  INTEGER NOT NULL,
	times_matched   INTEGER NOT NULL DEFAULT 0,
	created_at      DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS mock_responses (
	id          TEXT PRIMARY KEY,
	request_id  TEXT NOT NULL UNIQUE REFERENCES mock_requests(id) ON DELETE CASCADE,
	status_code INTEGER NOT NULL,
	headers     TEXT NOT NULL DEFAULT '',
	body        TEXT NOT NULL,
	delay_ms    INTEGER NOT NULL DEFAULT 0,
	created_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_mock_requests_scenario_method
	ON mock_requests(scenario_id, method, sequence_order);
`

// NewSQLiteStore opens (or creates) a SQLite database at path and
// initializes the schema. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// The sqlite driver serializes writers; a single connection avoids
	// table-lock errors when tests hammer the store concurrently.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// CreateScenario registers a new scenario. The name must be unique.
func (s *SQLiteStore) CreateScenario(ctx context.Context, in *mock.CreateScenario) (*mock.Scenario, error) {
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

	const q = `INSERT INTO scenarios (id, name, provider, description, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, 1, ?, ?)`
	if _, err := s.db.ExecContext(ctx, q, sc.ID, sc.Name, sc.Provider, sc.Description, sc.CreatedAt, sc.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("create scenario %q: %w", in.Name, ErrDuplicateScenario)
		}
		return nil, fmt.Errorf("create scenario %q: %w", in.Name, err)
	}
	return sc, nil
}

// GetScenario fetches a scenario by name.
func (s *SQLiteStore) GetScenario(ctx context.Context, name string) (*mock.Scenario, error) {
	const q = `SELECT id, name, provider, description, is_active, created_at, updated_at
		FROM scenarios WHERE name = ?`

	var sc mock.Scenario
	err := s.db.QueryRowContext(ctx, q, name).Scan(
		&sc.ID, &sc.Name, &sc.Provider, &sc.Description, &sc.IsActive, &sc.CreatedAt, &sc.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get scenario %q: %w", name, ErrScenarioNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get scenario %q: %w", name, err)
	}
	return &sc, nil
}

// ListScenarios returns all scenarios ordered by name.
func (s *SQLiteStore) ListScenarios(ctx context.Context) ([]*mock.Scenario, error) {
	const q = `SELECT id, name, provider, description, is_active, created_at, updated_at
		FROM scenarios ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var result []*mock.Scenario
	for rows.Next() {
		var sc mock.Scenario
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.Provider, &sc.Description, &sc.IsActive, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		result = append(result, &sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scenarios: %w", err)
	}
	return result, nil
}

// DeleteScenario removes a scenario and cascades to its requests and
// responses inside one transaction.
func (s *SQLiteStore) DeleteScenario(ctx context.Context, name string) error {
	sc, err := s.GetScenario(ctx, name)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete scenario %q: begin: %w", name, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM mock_responses WHERE request_id IN
			(SELECT id FROM mock_requests WHERE scenario_id = ?)`, sc.ID); err != nil {
		return fmt.Errorf("delete scenario %q: responses: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM mock_requests WHERE scenario_id = ?`, sc.ID); err != nil {
		return fmt.Errorf("delete scenario %q: requests: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, sc.ID); err != nil {
		return fmt.Errorf("delete scenario %q: %w", name, err)
	}
	return tx.Commit()
}

// AddMock registers a request/response pair under the named scenario.
func (s *SQLiteStore) AddMock(ctx context.Context, scenarioName string, req *mock.CreateMockRequest, resp *mock.CreateMockResponse) (*mock.MockRequest, *mock.MockResponse, error) {
	sc, err := s.GetScenario(ctx, scenarioName)
	if err != nil {
		return nil, nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("add mock: begin: %w", err)
	}
	defer tx.Rollback()

	order := 0
	if req.SequenceOrder != nil {
		order = *req.SequenceOrder
	} else {
		var maxOrder sql.NullInt64
		err := tx.QueryRowContext(ctx,
			`SELECT MAX(sequence_order) FROM mock_requests WHERE scenario_id = ?`, sc.ID).Scan(&maxOrder)
		if err != nil {
			return nil, nil, fmt.Errorf("add mock: query max order: %w", err)
		}
		order = int(maxOrder.Int64) + 1
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
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO mock_requests (id, scenario_id, method, path_pattern, body_pattern, headers_pattern, sequence_order, times_matched, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?)`,
		created.ID, created.ScenarioID, created.Method, created.PathPattern,
		created.BodyPattern, created.HeadersPattern, created.SequenceOrder, created.CreatedAt); err != nil {
		return nil, nil, fmt.Errorf("add mock: insert request: %w", err)
	}

	createdResp := &mock.MockResponse{
		ID:         uuid.NewString(),
		RequestID:  created.ID,
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		DelayMS:    resp.DelayMS,
		CreatedAt:  now,
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO mock_responses (id, request_id, status_code, headers, body, delay_ms, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
		createdResp.ID, createdResp.RequestID, createdResp.StatusCode,
		createdResp.Headers, createdResp.Body, createdResp.DelayMS, createdResp.CreatedAt); err != nil {
		return nil, nil, fmt.Errorf("add mock: insert response: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("add mock: commit: %w", err)
	}
	return created, createdResp, nil
}

// ListRequests returns the scenario's requests for a method, ordered by
// sequence. The rowid tie-break preserves insertion order among equal
// sequence values.
func (s *SQLiteStore) ListRequests(ctx context.Context, scenarioID, method string) ([]*mock.MockRequest, error) {
	const q = `SELECT id, scenario_id, method, path_pattern, body_pattern, headers_pattern, sequence_order, times_matched, created_at
		FROM mock_requests
		WHERE scenario_id = ? AND method = ?
		ORDER BY sequence_order ASC, rowid ASC`

	rows, err := s.db.QueryContext(ctx, q, scenarioID, method)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var result []*mock.MockRequest
	for rows.Next() {
		var r mock.MockRequest
		if err := rows.Scan(&r.ID, &r.ScenarioID, &r.Method, &r.PathPattern, &r.BodyPattern,
			&r.HeadersPattern, &r.SequenceOrder, &r.TimesMatched, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		result = append(result, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests: %w", err)
	}
	return result, nil
}

// GetResponse fetches the response paired with a request ID.
func (s *SQLiteStore) GetResponse(ctx context.Context, requestID string) (*mock.MockResponse, error) {
	const q = `SELECT id, request_id, status_code, headers, body, delay_ms, created_at
		FROM mock_responses WHERE request_id = ?`

	var r mock.MockResponse
	err := s.db.QueryRowContext(ctx, q, requestID).Scan(
		&r.ID, &r.RequestID, &r.StatusCode, &r.Headers, &r.Body, &r.DelayMS, &r.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get response for request %q: %w", requestID, ErrResponseNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get response for request %q: %w", requestID, err)
	}
	return &r, nil
}

// Reset wipes all three tables in one transaction.
func (s *SQLiteStore) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reset: begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"mock_responses", "mock_requests", "scenarios"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset: clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// isUniqueViolation detects the driver's unique-constraint failure. The
// modernc driver exposes it only through the message text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)
