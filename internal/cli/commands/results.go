package commands

import (
	"github.com/spf13/cobra"
	"tsr/internal/config"
	"tsr/internal/storage"
	"tsr/internal/ui"
)

// ResultsCommand handles the results command
type ResultsCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewResultsCommand creates a new ResultsCommand
func NewResultsCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *ResultsCommand {
	return &ResultsCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *ResultsCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := rc.storage.Load()
	if err != nil {
		return err
	}

	return rc.formatter.PrintSummary(output)
}
