package commands

import (
	"fmt"

	"tsr/internal/config"
	"tsr/internal/execution"
	"tsr/internal/report"
	"tsr/internal/storage"
	"tsr/internal/ui"
	"tsr/suite"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	registry  *suite.Registry
	filter    *execution.Filter
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	reg *suite.Registry,
	filter *execution.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		registry:  reg,
		filter:    filter,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	rc.config.LoadEnv()

	logger := hclog.NewNullLogger()
	if rc.config.Flags.Verbose {
		logger = hclog.New(&hclog.LoggerOptions{Name: "tsr", Level: hclog.Debug})
	}

	// Select suites
	suites := rc.filter.FilterByName(rc.registry.Suites(), rc.config.Flags.Filter)
	if len(suites) == 0 {
		color.Yellow("No suites to run")
		return nil
	}

	total := 0
	for _, s := range suites {
		total += s.Len()
	}

	// Wire listeners
	var listener suite.Listener
	var progress *report.ProgressListener
	if rc.config.Flags.NoProgress {
		listener = report.NewConsoleListener()
	} else {
		progress = report.NewProgressListener(total)
		listener = progress
	}

	// Execute suites
	runner := execution.NewRunner(logger)
	rep, err := runner.Execute(suites, listener)
	if err != nil {
		return err
	}
	if progress != nil {
		progress.Finish()
	}

	// Save results
	output := rep.Output(len(suites))
	if err := rc.storage.Save(output); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	// Append to history if requested
	if rc.config.Flags.History {
		history := storage.NewHistoryStore(rc.config, logger)
		if err := history.Append(output.Meta); err != nil {
			return fmt.Errorf("failed to append run history: %w", err)
		}
	}

	// Print stats
	return rc.formatter.PrintSummary(output)
}
