package main

import (
	"fmt"
	"os"

	"tsr/internal/cli"
	"tsr/internal/cli/commands"
	"tsr/internal/config"
	"tsr/internal/selfcheck"
	"tsr/suite"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "tsr",
		Short:   "Test suite runtime",
		Long:    `A minimal test-execution runtime. Suites register named cases and lifecycle hooks; tsr runs them sequentially, reports each outcome, and keeps the results around for inspection.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Build the registry the commands drive
	reg := suite.NewRegistry()
	selfcheck.Register(reg)

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, reg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
