package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getbankmock/bankmock/pkg/engine"
	"github.com/getbankmock/bankmock/pkg/fixtures"
	"github.com/getbankmock/bankmock/pkg/mock"
)

var seeders = map[string]struct {
	scenario string
	add      func(context.Context, *engine.MockBackend, string) error
}{
	"plaid":      {fixtures.PlaidScenario, fixtures.AddPlaidFixtures},
	"truelayer":  {fixtures.TrueLayerScenario, fixtures.AddTrueLayerFixtures},
	"teller":     {fixtures.TellerScenario, fixtures.AddTellerFixtures},
	"gocardless": {fixtures.GoCardlessScenario, fixtures.AddGoCardlessFixtures},
	"yapily":     {fixtures.YapilyScenario, fixtures.AddYapilyFixtures},
	"mx":         {fixtures.MXScenario, fixtures.AddMXFixtures},
}

var seedCmd = &cobra.Command{
	Use:   "seed <provider|all>",
	Short: "Seed the database with a provider's happy-path fixtures",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, st, err := openBackend()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		ctx := cmd.Context()
		if args[0] == "all" {
			if err := fixtures.AddAllProviders(ctx, b); err != nil {
				return err
			}
			fmt.Println("seeded all provider scenarios")
			return nil
		}

		s, ok := seeders[args[0]]
		if !ok {
			return fmt.Errorf("unknown provider %q", args[0])
		}
		if _, err := b.CreateScenario(ctx, mock.NewScenario(s.scenario, args[0])); err != nil {
			return err
		}
		if err := s.add(ctx, b, s.scenario); err != nil {
			return err
		}
		fmt.Printf("seeded scenario %q\n", s.scenario)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
