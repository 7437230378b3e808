package commands

import (
	"github.com/spf13/cobra"
	"tsr/internal/config"
	"tsr/internal/storage"
	"tsr/internal/ui"
)

// FailsCommand handles the fails command
type FailsCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  *ui.FailureViewer
}

// NewFailsCommand creates a new FailsCommand
func NewFailsCommand(cfg *config.Config, st storage.Storage, viewer *ui.FailureViewer) *FailsCommand {
	return &FailsCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (fc *FailsCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := fc.storage.Load()
	if err != nil {
		return err
	}

	return fc.viewer.View(results)
}
