package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getbankmock/bankmock/pkg/config"
)

var loadGlob bool

var loadCmd = &cobra.Command{
	Use:   "load <file-or-glob>",
	Short: "Load scenarios from a YAML file into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, st, err := openBackend()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		var f *config.File
		if loadGlob {
			f, err = config.LoadGlob(args[0])
		} else {
			f, err = config.Load(args[0])
		}
		if err != nil {
			return err
		}

		if err := config.Apply(cmd.Context(), b, f); err != nil {
			return err
		}
		fmt.Printf("loaded %d scenario(s)\n", len(f.Scenarios))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().BoolVar(&loadGlob, "glob", false, "treat the argument as a glob pattern (supports **)")
}
