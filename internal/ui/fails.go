package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"tsr/internal/config"
	"tsr/internal/domain"
	"tsr/internal/storage"
)

// FailureViewer displays failed cases in an interactive TUI
type FailureViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(cfg *config.Config, st storage.Storage) *FailureViewer {
	return &FailureViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays the run's failures in an interactive TUI
func (fv *FailureViewer) View(results *domain.RunOutput) error {
	if len(results.Failures) == 0 && len(results.Aborted) == 0 {
		color.Green("✓ No failures in the last run!")
		return nil
	}

	// Track resolved cases (by index) - load from the saved run
	resolved := make(map[int]bool)
	for i, failure := range results.Failures {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	// Persist resolved flags back through storage
	saveResolved := func() error {
		for i := range results.Failures {
			results.Failures[i].Resolved = resolved[i]
		}
		return fv.storage.Save(results)
	}

	app := tview.NewApplication()

	// List of failed cases (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	listItemText := func(index int) string {
		failure := results.Failures[index]
		label := fmt.Sprintf("%s :: %s", failure.Suite, failure.Name)
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, label)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, label)
	}

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, listItemText(index), "")
	}

	for i := range results.Failures {
		list.AddItem(listItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Stats header (suite and case of the current selection)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Error details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for i := range results.Failures {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Case Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ",
			len(results.Failures), countUnresolved(),
		))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Failures) {
			failure := results.Failures[index]
			statsView.SetText(fmt.Sprintf(
				"[cyan]suite:[white] [yellow]%s[white]::[yellow]%s[white]\n",
				failure.Suite, failure.Name,
			))
			detailsView.SetText(fv.formatFailure(failure, results.Aborted))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Failures) {
					resolved[index] = !resolved[index]
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveResolved(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailure formats one failed case for display using tview color tags ([red], [cyan], etc.)
func (fv *FailureViewer) formatFailure(failure domain.CaseRecord, aborted []domain.SuiteError) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ Case: %s[white]\n\n", failure.Name)
	fmt.Fprintf(&builder, "[cyan]Suite: %s[white]\n", failure.Suite)
	fmt.Fprintf(&builder, "[yellow]Elapsed: %dms[white]\n\n", failure.ElapsedMS)

	if failure.Error != "" {
		fmt.Fprintf(&builder, "[yellow]Error:[white]\n%s\n\n", failure.Error)
	}

	if len(aborted) > 0 {
		fmt.Fprintf(&builder, "[yellow]Aborted suites in this run:[white]\n")
		for _, ab := range aborted {
			fmt.Fprintf(&builder, "  [red]%s[white]: %s\n", ab.Suite, ab.Error)
		}
	}

	return builder.String()
}
