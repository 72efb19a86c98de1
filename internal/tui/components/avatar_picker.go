package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AvatarStatus is the state of the picked image.
type AvatarStatus int

const (
	AvatarNone AvatarStatus = iota
	AvatarLoading
	AvatarReady
	AvatarFailed
)

// AvatarPicker takes an image path and shows decoding progress.
type AvatarPicker struct {
	Path FieldInput

	status   AvatarStatus
	name     string
	previewN int
	spinner  spinner.Model

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	DimStyle     lipgloss.Style
}

// NewAvatarPicker creates a picker around a path input.
func NewAvatarPicker(path FieldInput, successStyle, errorStyle, dimStyle lipgloss.Style, accentColor lipgloss.Color) AvatarPicker {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	return AvatarPicker{
		Path:         path,
		spinner:      sp,
		SuccessStyle: successStyle,
		ErrorStyle:   errorStyle,
		DimStyle:     dimStyle,
	}
}

// Status returns the current status.
func (a AvatarPicker) Status() AvatarStatus {
	return a.status
}

// SetLoading marks name as being decoded and starts the spinner.
func (a *AvatarPicker) SetLoading(name string) tea.Cmd {
	a.status = AvatarLoading
	a.name = name
	a.previewN = 0
	return a.spinner.Tick
}

// SetReady marks the decode as finished.
func (a *AvatarPicker) SetReady(preview string) {
	a.status = AvatarReady
	a.previewN = len(preview)
}

// SetFailed marks the selection as unusable.
func (a *AvatarPicker) SetFailed() {
	a.status = AvatarFailed
}

// Clear forgets the selection and empties the path.
func (a *AvatarPicker) Clear() {
	a.status = AvatarNone
	a.name = ""
	a.previewN = 0
	a.Path.SetValue("")
	a.Path.SetError("")
}

// Update handles spinner ticks and path input.
func (a AvatarPicker) Update(msg tea.Msg) (AvatarPicker, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		if a.status != AvatarLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(tick)
		return a, cmd
	}
	var cmd tea.Cmd
	a.Path, cmd = a.Path.Update(msg)
	return a, cmd
}

// View renders the path input followed by a status line.
func (a AvatarPicker) View(width int) string {
	out := a.Path.View(width)
	switch a.status {
	case AvatarLoading:
		out += fmt.Sprintf("  %s %s\n", a.spinner.View(), a.DimStyle.Render("decoding "+a.name+"…"))
	case AvatarReady:
		out += "  " + a.SuccessStyle.Render(fmt.Sprintf("✓ %s ready", a.name)) +
			a.DimStyle.Render(fmt.Sprintf("  (preview %s)", humanBytes(a.previewN))) + "\n"
	}
	return out
}

func humanBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
