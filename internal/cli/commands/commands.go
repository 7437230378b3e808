package commands

import (
	"tsr/internal/cli"
	"tsr/internal/config"
	"tsr/internal/execution"
	"tsr/internal/storage"
	"tsr/internal/ui"
	"tsr/suite"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Results *ResultsCommand
	Fails   *FailsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, reg *suite.Registry) *Commands {
	// Initialize dependencies
	filter := execution.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		Run:     NewRunCommand(cfg, reg, filter, jsonStorage, formatter),
		List:    NewListCommand(cfg, reg, filter, formatter),
		Results: NewResultsCommand(cfg, jsonStorage, formatter),
		Fails:   NewFailsCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run registered suites",
		Long:  "Execute every registered suite sequentially and report case outcomes",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter suites by name pattern (supports wildcards, e.g. 'Math*' or '*Stack*')")
	runCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Disable the progress bar")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	runCmd.Flags().BoolVar(&flags.History, "history", false, "Append the run summary to the MySQL history store")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered suites",
		Long:  "Display every registered suite without executing it",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter suites by name pattern (supports wildcards, e.g. 'Math*' or '*Stack*')")
	listCmd.Flags().BoolVarP(&flags.Cases, "cases", "c", false, "List cases under each suite")
	rootCmd.AddCommand(listCmd)

	// Results command
	resultsCmd := &cobra.Command{
		Use:   "results",
		Short: "Show the last run's statistics",
		Long:  "Display the statistics table of the most recent saved run",
		RunE:  c.Results.Execute,
	}
	rootCmd.AddCommand(resultsCmd)

	// Fails command
	failsCmd := &cobra.Command{
		Use:   "fails",
		Short: "View case failures interactively",
		Long:  "Display failures from the last run in an interactive viewer",
		RunE:  c.Fails.Execute,
	}
	rootCmd.AddCommand(failsCmd)
}
