package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"tsr/internal/config"
	"tsr/internal/execution"
	"tsr/internal/ui"
	"tsr/suite"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	registry  *suite.Registry
	filter    *execution.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	reg *suite.Registry,
	filter *execution.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		registry:  reg,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	suites := lc.filter.FilterByName(lc.registry.Suites(), lc.config.Flags.Filter)
	if len(suites) == 0 {
		color.Yellow("No suites registered")
		return nil
	}

	return lc.formatter.PrintSuiteList(suites, lc.config.Flags.Cases)
}
