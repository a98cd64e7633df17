// Package cli implements the bankmock command-line interface for
// managing scenario databases: listing and inspecting scenarios,
// loading them from YAML files, and seeding provider fixtures.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/getbankmock/bankmock/pkg/engine"
	"github.com/getbankmock/bankmock/pkg/logging"
	"github.com/getbankmock/bankmock/pkg/store"
)

var (
	dbPath   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "bankmock",
	Short:         "Manage scripted scenario databases for the bankmock backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "bankmock.db", "path to the scenario database")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openBackend opens the scenario database named by --db and wraps it in
// a backend. The caller must Close the returned store.
func openBackend() (*engine.MockBackend, store.Store, error) {
	st, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, err
	}
	b := engine.New(st)
	b.SetLogger(logging.NewWithLevel(logging.ParseLevel(logLevel)))
	return b, st, nil
}
