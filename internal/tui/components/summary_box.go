package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SummaryRow represents a key-value pair in the summary.
type SummaryRow struct {
	Key   string
	Value string
}

// SummaryBox renders a 2-column key/value grid in a bordered box.
type SummaryBox struct {
	Rows []SummaryRow

	KeyStyle    lipgloss.Style
	ValueStyle  lipgloss.Style
	BorderStyle lipgloss.Style
}

// NewSummaryBox creates a new summary box.
func NewSummaryBox(rows []SummaryRow, keyStyle, valueStyle, borderStyle lipgloss.Style) SummaryBox {
	return SummaryBox{
		Rows:        rows,
		KeyStyle:    keyStyle,
		ValueStyle:  valueStyle,
		BorderStyle: borderStyle,
	}
}

// View renders the summary box.
func (s SummaryBox) View(width int) string {
	boxWidth := max(width-8, 30)

	lines := make([]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		lines = append(lines, fmt.Sprintf("%s  %s", s.KeyStyle.Render(row.Key), s.ValueStyle.Render(row.Value)))
	}
	return "  " + s.BorderStyle.Width(boxWidth).Render(strings.Join(lines, "\n"))
}
