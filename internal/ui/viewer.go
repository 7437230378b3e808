package ui

import "tsr/internal/domain"

// Viewer displays run results in an interactive TUI
type Viewer interface {
	View(results *domain.RunOutput) error
}
