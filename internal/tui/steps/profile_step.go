package steps

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/signup/internal/tui"
	"github.com/initializ/signup/internal/tui/components"
	"github.com/initializ/signup/validate"
)

// ProfileStep collects the name and an optional avatar image.
type ProfileStep struct {
	styles *tui.StyleSet
	fields fieldGroup
	picker components.AvatarPicker
	kbd    components.KbdHint

	// pickerFocused is set when focus is on the avatar path rather than a name.
	pickerFocused bool
	loadedPath    string
}

// NewProfileStep creates the profile step.
func NewProfileStep(styles *tui.StyleSet) *ProfileStep {
	fs := fieldStyles(styles)
	s := &ProfileStep{
		styles: styles,
		kbd:    components.NewKbdHint(styles.KbdKey, styles.KbdDesc, components.ProfileHints()...),
	}
	s.fields.add(validate.FirstName, components.NewFieldInput("First name", "Ada", false, fs))
	s.fields.add(validate.LastName, components.NewFieldInput("Last name", "Lovelace", false, fs))

	path := components.NewFieldInput("Avatar (optional)", "path to a PNG, JPEG, GIF or WebP image", false, fs)
	s.picker = components.NewAvatarPicker(path, styles.SuccessTxt, styles.ErrorTxt, styles.DimTxt, styles.Theme.Accent)
	return s
}

func (s *ProfileStep) Title() string { return "Profile" }
func (s *ProfileStep) Icon() string  { return "👤" }

func (s *ProfileStep) Init() tea.Cmd {
	cmd := s.focus(s.currentFocus())
	if s.picker.Status() == components.AvatarLoading {
		return tea.Batch(cmd, s.picker.SetLoading(filepath.Base(s.loadedPath)))
	}
	return cmd
}

func (s *ProfileStep) currentFocus() validate.Field {
	if s.pickerFocused {
		return validate.Avatar
	}
	return s.fields.focused()
}

func (s *ProfileStep) focus(f validate.Field) tea.Cmd {
	if f == validate.Avatar {
		for i := range s.fields.inputs {
			s.fields.inputs[i].Blur()
		}
		s.pickerFocused = true
		return s.picker.Path.Focus()
	}
	if s.fields.index(f) < 0 {
		return nil
	}
	s.pickerFocused = false
	s.picker.Path.Blur()
	return s.fields.focusField(f)
}

// profileOrder is the tab order including the avatar path.
var profileOrder = []validate.Field{validate.FirstName, validate.LastName, validate.Avatar}

func (s *ProfileStep) move(delta int) tea.Cmd {
	cur := 0
	for i, f := range profileOrder {
		if f == s.currentFocus() {
			cur = i
		}
	}
	n := len(profileOrder)
	return s.focus(profileOrder[(cur+delta+n)%n])
}

func (s *ProfileStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.FieldErrorMsg:
		if msg.Field == validate.Avatar {
			s.picker.Path.SetError(msg.Message)
			if msg.Message != "" {
				s.picker.SetFailed()
			}
			return s, nil
		}
		s.fields.setError(msg.Field, msg.Message)
		return s, nil

	case tui.FocusMsg:
		return s, s.focus(msg.Field)

	case tui.AvatarStatusMsg:
		switch {
		case msg.Err != nil:
			s.picker.SetFailed()
			s.picker.Path.SetError("Could not read the image: " + msg.Err.Error())
		case msg.Ready:
			s.picker.SetReady(msg.Preview)
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return s, s.move(1)
		case "shift+tab", "up":
			return s, s.move(-1)
		case "ctrl+b":
			return s, emit(tui.StepBackMsg{})
		case "ctrl+x":
			s.picker.Clear()
			s.loadedPath = ""
			return s, emit(tui.AvatarClearedMsg{})
		case "enter":
			return s, s.enter()
		}
	}

	if _, ok := msg.(tea.KeyMsg); ok {
		if s.pickerFocused {
			var cmd tea.Cmd
			s.picker, cmd = s.picker.Update(msg)
			return s, cmd
		}
		return s, s.fields.update(msg)
	}

	// spinner ticks and cursor blinks reach every input
	var pickerCmd tea.Cmd
	s.picker, pickerCmd = s.picker.Update(msg)
	return s, tea.Batch(pickerCmd, s.fields.update(msg))
}

func (s *ProfileStep) enter() tea.Cmd {
	if !s.pickerFocused {
		if s.fields.focused() == validate.FirstName {
			return s.fields.next()
		}
		return emit(tui.StepCompleteMsg{})
	}

	path := strings.TrimSpace(s.picker.Path.Value())
	if path == "" || path == s.loadedPath {
		return emit(tui.StepCompleteMsg{})
	}
	s.loadedPath = path
	s.picker.Path.SetError("")
	return tea.Batch(
		s.picker.SetLoading(filepath.Base(path)),
		emit(tui.AvatarSelectedMsg{Path: path}),
	)
}

func (s *ProfileStep) View(width int) string {
	return s.fields.view(width) + s.picker.View(width) + "\n" + s.kbd.View()
}

func (s *ProfileStep) Summary() string {
	name := strings.TrimSpace(strings.TrimSpace(s.fields.input(validate.FirstName).Value()) + " " +
		strings.TrimSpace(s.fields.input(validate.LastName).Value()))
	if s.picker.Status() == components.AvatarReady {
		name += " · avatar"
	}
	return name
}
