package report

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"tsr/suite"
)

// ProgressListener renders a live progress bar with pass/fail counters
// while the runner walks the suites.
type ProgressListener struct {
	bar     *progressbar.ProgressBar
	passed  int
	failed  int
	ignored int
}

// NewProgressListener creates a progress bar sized to the total case count.
func NewProgressListener(total int) *ProgressListener {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(
			color.CyanString("Running suites: ")+
				color.GreenString("[passed: 0")+
				" | "+
				color.RedString("failed: 0]"),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressListener{bar: bar}
}

func (p *ProgressListener) Start(c *suite.Case) {}

func (p *ProgressListener) Ignore(c *suite.Case) {
	p.ignored++
	p.step()
}

func (p *ProgressListener) Pass(c *suite.Case, elapsed time.Duration) {
	p.passed++
	p.step()
}

func (p *ProgressListener) Fail(c *suite.Case, err error, elapsed time.Duration) {
	p.failed++
	p.step()
}

// Finish completes the progress bar.
func (p *ProgressListener) Finish() {
	p.bar.Finish()
}

func (p *ProgressListener) step() {
	p.bar.Set(p.passed + p.failed + p.ignored)
	p.bar.Describe(
		color.CyanString("Running suites: ") +
			color.GreenString("[passed: %d", p.passed) +
			" | " +
			color.RedString("failed: %d]", p.failed),
	)
}
