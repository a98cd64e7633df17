package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every scenario, mock request, and mock response",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, st, err := openBackend()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		if err := b.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("database reset")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
