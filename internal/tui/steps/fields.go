package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/signup/internal/tui"
	"github.com/initializ/signup/internal/tui/components"
	"github.com/initializ/signup/validate"
)

func fieldStyles(styles *tui.StyleSet) components.FieldStyles {
	return components.FieldStyles{
		Label:       styles.PrimaryTxt.Bold(true),
		Border:      styles.InactiveBorder,
		FocusBorder: styles.ActiveBorder,
		ErrorBorder: styles.ErrorBorder,
		Error:       styles.ErrorTxt,
		Hint:        styles.WarningTxt,
		Cursor:      styles.Theme.Accent,
	}
}

// fieldGroup is an ordered set of inputs with one focused at a time.
type fieldGroup struct {
	names  []validate.Field
	inputs []components.FieldInput
	focus  int
}

func (g *fieldGroup) add(name validate.Field, input components.FieldInput) {
	g.names = append(g.names, name)
	g.inputs = append(g.inputs, input)
}

func (g *fieldGroup) index(name validate.Field) int {
	for i, n := range g.names {
		if n == name {
			return i
		}
	}
	return -1
}

func (g *fieldGroup) focusAt(i int) tea.Cmd {
	if i < 0 || i >= len(g.inputs) {
		return nil
	}
	for j := range g.inputs {
		g.inputs[j].Blur()
	}
	g.focus = i
	return g.inputs[i].Focus()
}

func (g *fieldGroup) focusField(name validate.Field) tea.Cmd {
	return g.focusAt(g.index(name))
}

func (g *fieldGroup) next() tea.Cmd {
	return g.focusAt((g.focus + 1) % len(g.inputs))
}

func (g *fieldGroup) prev() tea.Cmd {
	return g.focusAt((g.focus - 1 + len(g.inputs)) % len(g.inputs))
}

func (g *fieldGroup) focused() validate.Field {
	return g.names[g.focus]
}

func (g *fieldGroup) input(name validate.Field) *components.FieldInput {
	if i := g.index(name); i >= 0 {
		return &g.inputs[i]
	}
	return nil
}

func (g *fieldGroup) setError(name validate.Field, msg string) bool {
	in := g.input(name)
	if in == nil {
		return false
	}
	in.SetError(msg)
	return true
}

// update feeds msg to the focused input and reports an edit when its
// value changed.
func (g *fieldGroup) update(msg tea.Msg) tea.Cmd {
	in := &g.inputs[g.focus]
	before := in.Value()
	updated, cmd := in.Update(msg)
	*in = updated
	if after := in.Value(); after != before {
		name := g.names[g.focus]
		edit := func() tea.Msg { return tui.FieldEditedMsg{Field: name, Value: after} }
		return tea.Batch(cmd, edit)
	}
	return cmd
}

func (g *fieldGroup) view(width int) string {
	var out string
	for _, in := range g.inputs {
		out += in.View(width) + "\n"
	}
	return out
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
