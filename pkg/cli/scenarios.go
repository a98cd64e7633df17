package cli

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/getbankmock/bankmock/pkg/mock"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Inspect scenarios in the database",
}

var scenariosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all scenarios",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, st, err := openBackend()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		scenarios, err := b.ListScenarios(cmd.Context())
		if err != nil {
			return err
		}
		if len(scenarios) == 0 {
			fmt.Println("no scenarios")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPROVIDER\tDESCRIPTION")
		for _, sc := range scenarios {
			fmt.Fprintf(w, "%s\t%s\t%s\n", sc.Name, sc.Provider, sc.Description)
		}
		return w.Flush()
	},
}

var scenariosShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a scenario and its mocks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, st, err := openBackend()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		ctx := cmd.Context()
		sc, err := b.GetScenario(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Name:        %s\n", sc.Name)
		fmt.Printf("Provider:    %s\n", sc.Provider)
		if sc.Description != "" {
			fmt.Printf("Description: %s\n", sc.Description)
		}
		fmt.Printf("Created:     %s\n", sc.CreatedAt.Format("2006-01-02 15:04:05"))

		var requests []*mock.MockRequest
		for _, method := range []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete,
		} {
			reqs, err := st.ListRequests(ctx, sc.ID, method)
			if err != nil {
				return err
			}
			requests = append(requests, reqs...)
		}
		sort.SliceStable(requests, func(i, j int) bool {
			return requests[i].SequenceOrder < requests[j].SequenceOrder
		})

		fmt.Printf("\nMocks (%d):\n", len(requests))
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SEQ\tMETHOD\tPATH\tSTATUS\tDELAY")
		for _, req := range requests {
			resp, err := st.GetResponse(ctx, req.ID)
			if err != nil {
				return err
			}
			delay := ""
			if resp.DelayMS > 0 {
				delay = fmt.Sprintf("%dms", resp.DelayMS)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
				req.SequenceOrder, req.Method, req.PathPattern, resp.StatusCode, delay)
		}
		return w.Flush()
	},
}

var scenariosDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a scenario and its mocks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, st, err := openBackend()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		if err := b.DeleteScenario(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted scenario %q\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
	scenariosCmd.AddCommand(scenariosListCmd)
	scenariosCmd.AddCommand(scenariosShowCmd)
	scenariosCmd.AddCommand(scenariosDeleteCmd)
}
