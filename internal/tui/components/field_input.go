package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FieldStyles groups the styles a FieldInput renders with.
type FieldStyles struct {
	Label       lipgloss.Style
	Border      lipgloss.Style
	FocusBorder lipgloss.Style
	ErrorBorder lipgloss.Style
	Error       lipgloss.Style
	Hint        lipgloss.Style
	Cursor      lipgloss.Color
}

// FieldInput is a labelled text entry wrapping bubbles/textinput. It shows
// an inline error and an optional hint, and can mask its contents.
type FieldInput struct {
	Label  string
	input  textinput.Model
	masked bool
	err    string
	hint   string
	styles FieldStyles
}

// NewFieldInput creates an unfocused input.
func NewFieldInput(label, placeholder string, masked bool, styles FieldStyles) FieldInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 254
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.Cursor)

	f := FieldInput{Label: label, input: ti, styles: styles}
	f.SetMasked(masked)
	return f
}

// Focus gives the input keyboard focus.
func (f *FieldInput) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes keyboard focus.
func (f *FieldInput) Blur() {
	f.input.Blur()
}

// Focused reports whether the input has focus.
func (f FieldInput) Focused() bool {
	return f.input.Focused()
}

// Update handles messages. Only a focused input consumes keys.
func (f FieldInput) Update(msg tea.Msg) (FieldInput, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// Value returns the raw input value.
func (f FieldInput) Value() string {
	return f.input.Value()
}

// SetValue replaces the input value.
func (f *FieldInput) SetValue(v string) {
	f.input.SetValue(v)
}

// SetMasked switches between password echo and plain text.
func (f *FieldInput) SetMasked(masked bool) {
	f.masked = masked
	if masked {
		f.input.EchoMode = textinput.EchoPassword
		f.input.EchoCharacter = '•'
		return
	}
	f.input.EchoMode = textinput.EchoNormal
}

// Masked reports whether the contents are hidden.
func (f FieldInput) Masked() bool {
	return f.masked
}

// SetError sets the inline error. An empty message clears it.
func (f *FieldInput) SetError(msg string) {
	f.err = msg
}

// Err returns the inline error.
func (f FieldInput) Err() string {
	return f.err
}

// SetHint sets an advisory line shown when there is no error.
func (f *FieldInput) SetHint(hint string) {
	f.hint = hint
}

// View renders the input.
func (f FieldInput) View(width int) string {
	out := "  " + f.styles.Label.Render(f.Label) + "\n"

	inputWidth := max(width-8, 20)
	f.input.Width = inputWidth - 2

	border := f.styles.Border
	switch {
	case f.err != "":
		border = f.styles.ErrorBorder
	case f.input.Focused():
		border = f.styles.FocusBorder
	}
	out += "  " + border.Width(inputWidth).Render(f.input.View()) + "\n"

	switch {
	case f.err != "":
		out += "  " + f.styles.Error.Render("✗ "+f.err) + "\n"
	case f.hint != "":
		out += "  " + f.styles.Hint.Render(f.hint) + "\n"
	}
	return out
}
