package report

import (
	"time"

	"github.com/fatih/color"
	"tsr/suite"
)

// ConsoleListener prints one line per case outcome.
type ConsoleListener struct{}

// NewConsoleListener creates a new ConsoleListener.
func NewConsoleListener() *ConsoleListener {
	return &ConsoleListener{}
}

func (l *ConsoleListener) Start(c *suite.Case) {}

func (l *ConsoleListener) Ignore(c *suite.Case) {
	color.Yellow("  - %s (ignored)", c)
}

func (l *ConsoleListener) Pass(c *suite.Case, elapsed time.Duration) {
	color.Green("  ✓ %s (%dms)", c, elapsed.Milliseconds())
}

func (l *ConsoleListener) Fail(c *suite.Case, err error, elapsed time.Duration) {
	color.Red("  ✗ %s: %v (%dms)", c, err, elapsed.Milliseconds())
}
