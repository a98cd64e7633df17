// bankmock CLI - manage scenario databases for the mock backend.
package main

import (
	"fmt"
	"os"

	"github.com/getbankmock/bankmock/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.SetBuildInfo(cli.BuildInfo{Version: Version, Commit: Commit, BuildDate: BuildDate})
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bankmock: %v\n", err)
		os.Exit(1)
	}
}
