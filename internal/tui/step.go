package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/initializ/signup/wizard"
)

// Step is the interface that all wizard steps must implement.
type Step interface {
	// Title returns the step's display title.
	Title() string
	// Icon returns the step's icon/emoji.
	Icon() string
	// Init returns the command to run when the step becomes visible.
	Init() tea.Cmd
	// Update handles messages and returns the updated step and command.
	Update(msg tea.Msg) (Step, tea.Cmd)
	// View renders the step content.
	View(width int) string
	// Summary returns a one-line summary for the collapsed view.
	Summary() string
}

// Preparer is implemented by steps that render committed wizard data.
type Preparer interface {
	Prepare(state *wizard.State)
}

// RenderProgress renders completed steps with their summaries followed by
// the active step header. current is zero-based.
func RenderProgress(steps []Step, current int, styles *StyleSet, width int) string {
	var out strings.Builder

	for i := 0; i < current && i < len(steps); i++ {
		badge := styles.StepBadgeComplete.Render(" ✓ ")
		title := styles.PrimaryTxt.Bold(true).Render(steps[i].Title())
		fmt.Fprintf(&out, "  %s  %s\n", badge, title)
		if summary := steps[i].Summary(); summary != "" {
			fmt.Fprintf(&out, "       %s\n", styles.SecondaryTxt.Render(summary))
		}
		out.WriteString("\n")
	}

	if current < len(steps) {
		numStr := fmt.Sprintf(" %d ", current+1)
		badge := styles.StepBadgeActive.Render(numStr)
		title := styles.PrimaryTxt.Bold(true).Render(steps[current].Icon() + " " + steps[current].Title())
		dividerLen := max(width-12-lipgloss.Width(numStr)-lipgloss.Width(steps[current].Title()), 2)
		divider := styles.DimTxt.Render(" " + strings.Repeat("─", dividerLen))
		fmt.Fprintf(&out, "  %s  %s%s\n", badge, title, divider)
	}

	return out.String()
}

// RenderPending lists the steps after current.
func RenderPending(steps []Step, current int, styles *StyleSet) string {
	var out strings.Builder
	for i := current + 1; i < len(steps); i++ {
		badge := styles.StepBadgePending.Render(fmt.Sprintf(" %d ", i+1))
		fmt.Fprintf(&out, "  %s  %s\n", badge, styles.DimTxt.Render(steps[i].Title()))
	}
	return out.String()
}
