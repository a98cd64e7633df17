// Package fixtures ships ready-made scenarios for the banking providers
// the SDK integrates with. Each provider has a happy-path scenario whose
// canned bodies mirror the provider's sandbox responses, so integration
// tests can run against a fully scripted backend with one call.
package fixtures

import (
	"context"

	"github.com/getbankmock/bankmock/pkg/engine"
	"github.com/getbankmock/bankmock/pkg/mock"
)

// Provider scenario names.
const (
	PlaidScenario      = "plaid_happy_path"
	TrueLayerScenario  = "truelayer_happy_path"
	TellerScenario     = "teller_happy_path"
	GoCardlessScenario = "gocardless_happy_path"
	YapilyScenario     = "yapily_happy_path"
	MXScenario         = "mx_happy_path"
)

// fixture pairs one expected request with its canned response.
type fixture struct {
	req  *mock.CreateMockRequest
	resp *mock.CreateMockResponse
}

func apply(ctx context.Context, b *engine.MockBackend, scenarioName string, fixtures []fixture) error {
	for _, f := range fixtures {
		if _, _, err := b.AddMock(ctx, scenarioName, f.req, f.resp); err != nil {
			return err
		}
	}
	return nil
}

func happyPath(ctx context.Context, name, provider string, fixtures []fixture) (*engine.MockBackend, error) {
	b := engine.NewInMemory()
	if _, err := b.CreateScenario(ctx, mock.NewScenario(name, provider)); err != nil {
		return nil, err
	}
	if err := apply(ctx, b, name, fixtures); err != nil {
		return nil, err
	}
	if err := b.ActivateScenario(ctx, name); err != nil {
		return nil, err
	}
	return b, nil
}

// AllProviders creates a backend preloaded with every provider's
// happy-path scenario. No scenario is active; pick one with
// ActivateScenario.
func AllProviders(ctx context.Context) (*engine.MockBackend, error) {
	b := engine.NewInMemory()
	if err := AddAllProviders(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// AddAllProviders loads every provider's happy-path scenario into an
// existing backend.
func AddAllProviders(ctx context.Context, b *engine.MockBackend) error {
	providers := []struct {
		scenario string
		provider string
		add      func(context.Context, *engine.MockBackend, string) error
	}{
		{PlaidScenario, "plaid", AddPlaidFixtures},
		{TrueLayerScenario, "truelayer", AddTrueLayerFixtures},
		{TellerScenario, "teller", AddTellerFixtures},
		{GoCardlessScenario, "gocardless", AddGoCardlessFixtures},
		{YapilyScenario, "yapily", AddYapilyFixtures},
		{MXScenario, "mx", AddMXFixtures},
	}
	for _, p := range providers {
		if _, err := b.CreateScenario(ctx, mock.NewScenario(p.scenario, p.provider)); err != nil {
			return err
		}
		if err := p.add(ctx, b, p.scenario); err != nil {
			return err
		}
	}
	return nil
}
