package engine

import (
	"context"
	"errors"

	"github.com/getbankmock/bankmock/pkg/backend"
	"github.com/getbankmock/bankmock/pkg/mock"
)

// Builder is a fluent way to script a scenario: declare a scenario, chain
// expectations with their canned responses, then activate. The first error
// sticks and short-circuits every later call, so a setup chain is checked
// once at the end instead of after every step.
//
//	err := engine.NewBuilder(b).
//		Scenario(ctx, "plaid_happy_path", "plaid").
//		OnPost("/link/token/create").RespondOK(ctx, linkTokenJSON).
//		OnGet("/accounts/{account_id}").RespondOK(ctx, accountJSON).
//		Activate(ctx)
type Builder struct {
	backend  *MockBackend
	scenario string
	pending  *mock.CreateMockRequest
	err      error
}

// NewBuilder creates a Builder that scripts scenarios on the given backend.
func NewBuilder(b *MockBackend) *Builder {
	return &Builder{backend: b}
}

// Scenario creates a scenario and makes it the target of the following
// expectations.
func (bd *Builder) Scenario(ctx context.Context, name, provider string) *Builder {
	if bd.err != nil {
		return bd
	}
	if _, err := bd.backend.CreateScenario(ctx, mock.NewScenario(name, provider)); err != nil {
		bd.err = err
		return bd
	}
	bd.scenario = name
	return bd
}

// ScenarioWithDescription is Scenario with a human-readable description.
func (bd *Builder) ScenarioWithDescription(ctx context.Context, name, provider, description string) *Builder {
	if bd.err != nil {
		return bd
	}
	in := mock.NewScenario(name, provider).WithDescription(description)
	if _, err := bd.backend.CreateScenario(ctx, in); err != nil {
		bd.err = err
		return bd
	}
	bd.scenario = name
	return bd
}

// Use targets an existing scenario instead of creating one.
func (bd *Builder) Use(name string) *Builder {
	if bd.err != nil {
		return bd
	}
	bd.scenario = name
	return bd
}

// OnGet starts an expectation for a GET on the given path pattern.
func (bd *Builder) OnGet(pathPattern string) *Builder {
	return bd.on(mock.Get(pathPattern))
}

// OnPost starts an expectation for a POST on the given path pattern.
func (bd *Builder) OnPost(pathPattern string) *Builder {
	return bd.on(mock.Post(pathPattern))
}

// OnPut starts an expectation for a PUT on the given path pattern.
func (bd *Builder) OnPut(pathPattern string) *Builder {
	return bd.on(mock.Put(pathPattern))
}

// OnPatch starts an expectation for a PATCH on the given path pattern.
func (bd *Builder) OnPatch(pathPattern string) *Builder {
	return bd.on(mock.Patch(pathPattern))
}

// OnDelete starts an expectation for a DELETE on the given path pattern.
func (bd *Builder) OnDelete(pathPattern string) *Builder {
	return bd.on(mock.Delete(pathPattern))
}

func (bd *Builder) on(req *mock.CreateMockRequest) *Builder {
	if bd.err != nil {
		return bd
	}
	if bd.scenario == "" {
		bd.err = backend.NewConfigError("builder", errors.New("no scenario declared before expectation"))
		return bd
	}
	if bd.pending != nil {
		bd.err = backend.NewConfigError("builder", errors.New("previous expectation has no response"))
		return bd
	}
	bd.pending = req
	return bd
}

// WithBody constrains the pending expectation's request body. The pattern
// is a JSON subset, the literal "*", or a plain regex.
func (bd *Builder) WithBody(pattern string) *Builder {
	if bd.err != nil {
		return bd
	}
	if bd.pending == nil {
		bd.err = backend.NewConfigError("builder", errors.New("WithBody called with no pending expectation"))
		return bd
	}
	bd.pending.WithBodyPattern(pattern)
	return bd
}

// WithHeaders constrains the pending expectation's request headers with a
// JSON object pattern.
func (bd *Builder) WithHeaders(pattern string) *Builder {
	if bd.err != nil {
		return bd
	}
	if bd.pending == nil {
		bd.err = backend.NewConfigError("builder", errors.New("WithHeaders called with no pending expectation"))
		return bd
	}
	bd.pending.WithHeadersPattern(pattern)
	return bd
}

// WithSequence pins the pending expectation's scan position.
func (bd *Builder) WithSequence(order int) *Builder {
	if bd.err != nil {
		return bd
	}
	if bd.pending == nil {
		bd.err = backend.NewConfigError("builder", errors.New("WithSequence called with no pending expectation"))
		return bd
	}
	bd.pending.WithSequence(order)
	return bd
}

// Respond completes the pending expectation with the given response.
func (bd *Builder) Respond(ctx context.Context, resp *mock.CreateMockResponse) *Builder {
	if bd.err != nil {
		return bd
	}
	if bd.pending == nil {
		bd.err = backend.NewConfigError("builder", errors.New("Respond called with no pending expectation"))
		return bd
	}
	req := bd.pending
	bd.pending = nil
	if _, _, err := bd.backend.AddMock(ctx, bd.scenario, req, resp); err != nil {
		bd.err = err
	}
	return bd
}

// RespondOK completes the pending expectation with a 200 and the given body.
func (bd *Builder) RespondOK(ctx context.Context, body string) *Builder {
	return bd.Respond(ctx, mock.OK(body))
}

// RespondJSON completes the pending expectation with a 200 whose body is
// the JSON encoding of data.
func (bd *Builder) RespondJSON(ctx context.Context, data any) *Builder {
	if bd.err != nil {
		return bd
	}
	resp, err := mock.JSON(data)
	if err != nil {
		bd.err = backend.NewConfigError("builder", err)
		return bd
	}
	return bd.Respond(ctx, resp)
}

// RespondError completes the pending expectation with the given error
// status and body.
func (bd *Builder) RespondError(ctx context.Context, status int, body string) *Builder {
	return bd.Respond(ctx, mock.OK(body).WithStatus(status))
}

// RespondDelayed completes the pending expectation with a 200 delivered
// after delayMS milliseconds of simulated latency.
func (bd *Builder) RespondDelayed(ctx context.Context, body string, delayMS int) *Builder {
	return bd.Respond(ctx, mock.OK(body).WithDelay(delayMS))
}

// Activate finishes the chain: the current scenario becomes active and any
// accumulated error is returned.
func (bd *Builder) Activate(ctx context.Context) error {
	if err := bd.Build(); err != nil {
		return err
	}
	return bd.backend.ActivateScenario(ctx, bd.scenario)
}

// Build finishes the chain without activating and returns any accumulated
// error. A dangling expectation with no response is an error.
func (bd *Builder) Build() error {
	if bd.err != nil {
		return bd.err
	}
	if bd.pending != nil {
		return backend.NewConfigError("builder", errors.New("last expectation has no response"))
	}
	return nil
}

// Err reports the first error hit so far without finishing the chain.
func (bd *Builder) Err() error {
	return bd.err
}
