package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut hint.
type KeyBinding struct {
	Key  string
	Desc string
}

// KbdHint renders a horizontal keyboard shortcut hint bar.
type KbdHint struct {
	Bindings  []KeyBinding
	KeyStyle  lipgloss.Style
	DescStyle lipgloss.Style
}

// NewKbdHint creates a KbdHint with the given styles and bindings.
func NewKbdHint(keyStyle, descStyle lipgloss.Style, bindings ...KeyBinding) KbdHint {
	return KbdHint{
		Bindings:  bindings,
		KeyStyle:  keyStyle,
		DescStyle: descStyle,
	}
}

// View renders the keyboard hints.
func (k KbdHint) View() string {
	parts := make([]string, 0, len(k.Bindings))
	for _, b := range k.Bindings {
		parts = append(parts, k.KeyStyle.Render(b.Key)+" "+k.DescStyle.Render(b.Desc))
	}
	return "  " + strings.Join(parts, "    ")
}

// CredentialsHints returns hints for the account step.
func CredentialsHints() []KeyBinding {
	return []KeyBinding{
		{Key: "tab", Desc: "next field"},
		{Key: "ctrl+t", Desc: "show/hide password"},
		{Key: "⏎", Desc: "continue"},
		{Key: "esc", Desc: "quit"},
	}
}

// ProfileHints returns hints for the profile step.
func ProfileHints() []KeyBinding {
	return []KeyBinding{
		{Key: "tab", Desc: "next field"},
		{Key: "⏎", Desc: "continue / load avatar"},
		{Key: "ctrl+x", Desc: "remove avatar"},
		{Key: "ctrl+b", Desc: "back"},
		{Key: "esc", Desc: "quit"},
	}
}

// ReviewHints returns hints for the review step.
func ReviewHints() []KeyBinding {
	return []KeyBinding{
		{Key: "⏎", Desc: "create account"},
		{Key: "1/2", Desc: "edit step"},
		{Key: "backspace", Desc: "back"},
		{Key: "esc", Desc: "quit"},
	}
}
