// Package cli provides the command-line interface for testreport.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"TESTREPORT_VERBOSE"},
	},
}

// NewApp builds the CLI application.
func NewApp() *cli.App {
	return &cli.App{
		Name:    "testreport",
		Usage:   "HTML report generator for test runner output",
		Version: Version,
		Description: `testreport renders self-contained HTML reports from the JSON
payloads produced by the test runner.

Examples:
  testreport generate run.json
  testreport generate --data run.json --output ./reports
  testreport generate run.json --title "Nightly Smoke"`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			generateCommand,
		},
	}
}

// Execute runs the CLI.
func Execute() {
	if err := NewApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
