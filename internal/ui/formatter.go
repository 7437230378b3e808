package ui

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"tsr/internal/config"
	"tsr/internal/domain"
	"tsr/suite"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintSummary displays the statistics table for a run.
func (f *Formatter) PrintSummary(output *domain.RunOutput) error {
	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                      Suite Run Statistics                     ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Suites")
	color.White("%-27d │\n", meta.Suites)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Cases")
	color.White("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Cases")
	color.Green("%-27d │\n", meta.PassedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Cases")
	color.Red("%-27d │\n", meta.FailedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Ignored Cases")
	color.Yellow("%-27d │\n", meta.IgnoredCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Aborted Suites")
	color.Red("%-27d │\n", meta.AbortedSuites)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedCases == 0 && meta.AbortedSuites == 0 {
		color.Green("✓ All cases passed!")
	} else {
		if meta.FailedCases > 0 {
			color.Red("✗ %d case(s) failed", meta.FailedCases)
			fmt.Println()
			f.printFailureTree(output.Failures)
		}
		for _, ab := range output.Aborted {
			color.Red("✗ suite %s aborted: %s", ab.Suite, ab.Error)
		}
	}

	return nil
}

// printFailureTree prints failed cases grouped under their suite.
func (f *Formatter) printFailureTree(failures []domain.CaseRecord) {
	if len(failures) == 0 {
		return
	}

	grouped := make(map[string][]domain.CaseRecord)
	for _, failure := range failures {
		grouped[failure.Suite] = append(grouped[failure.Suite], failure)
	}

	var names []string
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		if i == len(names)-1 {
			color.Cyan("└── %s", name)
		} else {
			color.Cyan("├── %s", name)
		}
		cases := grouped[name]
		for j, c := range cases {
			var prefix string
			if i == len(names)-1 {
				if j == len(cases)-1 {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if j == len(cases)-1 {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}
			fmt.Printf("%s%s\n", prefix, color.RedString(c.Name))
		}
	}
}

// PrintSuiteList prints the registered suites, optionally with their cases.
func (f *Formatter) PrintSuiteList(suites []suite.Suite, showCases bool) error {
	color.Green("Found %d suite(s):\n", len(suites))

	for i, s := range suites {
		isLastSuite := i == len(suites)-1

		ignoredMarker := ""
		if s.Ignored() {
			ignoredMarker = " " + color.YellowString("[ignored]")
		}
		label := fmt.Sprintf("%s (%d cases)%s", s.Name(), s.Len(), ignoredMarker)
		if isLastSuite {
			color.Cyan("└── %s", label)
		} else {
			color.Cyan("├── %s", label)
		}

		if !showCases {
			continue
		}

		cases := s.Cases()
		if len(cases) == 0 {
			var prefix string
			if isLastSuite {
				prefix = "    └── "
			} else {
				prefix = "│   └── "
			}
			fmt.Printf("%s%s\n", prefix, color.RedString("(no cases registered)"))
			continue
		}

		for j, c := range cases {
			isLastCase := j == len(cases)-1

			var prefix string
			if isLastSuite {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			name := c.Name()
			if c.Ignored() {
				name += " (ignored)"
			}
			fmt.Printf("%s%s\n", prefix, color.YellowString(name))
		}

		if !isLastSuite {
			fmt.Println()
		}
	}

	return nil
}
