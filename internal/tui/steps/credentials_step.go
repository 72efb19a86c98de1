package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/signup/internal/tui"
	"github.com/initializ/signup/internal/tui/components"
	"github.com/initializ/signup/validate"
)

// CredentialsStep collects email, password and confirmation.
type CredentialsStep struct {
	styles *tui.StyleSet
	fields fieldGroup
	kbd    components.KbdHint
}

// NewCredentialsStep creates the account step.
func NewCredentialsStep(styles *tui.StyleSet) *CredentialsStep {
	fs := fieldStyles(styles)
	s := &CredentialsStep{
		styles: styles,
		kbd:    components.NewKbdHint(styles.KbdKey, styles.KbdDesc, components.CredentialsHints()...),
	}
	s.fields.add(validate.Email, components.NewFieldInput("Email", "you@example.com", false, fs))
	s.fields.add(validate.Password, components.NewFieldInput("Password", "at least 8 characters", true, fs))
	s.fields.add(validate.ConfirmPassword, components.NewFieldInput("Confirm password", "repeat your password", true, fs))
	return s
}

func (s *CredentialsStep) Title() string { return "Account" }
func (s *CredentialsStep) Icon() string  { return "🔐" }

func (s *CredentialsStep) Init() tea.Cmd {
	return s.fields.focusAt(s.fields.focus)
}

func (s *CredentialsStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.FieldErrorMsg:
		s.fields.setError(msg.Field, msg.Message)
		return s, nil

	case tui.FocusMsg:
		return s, s.fields.focusField(msg.Field)

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return s, s.fields.next()
		case "shift+tab", "up":
			return s, s.fields.prev()
		case "ctrl+t":
			s.toggleReveal()
			return s, nil
		case "enter":
			if s.fields.focus < len(s.fields.inputs)-1 {
				return s, s.fields.next()
			}
			return s, emit(tui.StepCompleteMsg{})
		}
	}

	cmd := s.fields.update(msg)
	if s.fields.focused() == validate.Email {
		email := s.fields.input(validate.Email)
		if suggestion := validate.SuggestEmail(email.Value()); suggestion != "" {
			email.SetHint("did you mean " + suggestion + "?")
		} else {
			email.SetHint("")
		}
	}
	return s, cmd
}

func (s *CredentialsStep) toggleReveal() {
	pw := s.fields.input(validate.Password)
	masked := !pw.Masked()
	pw.SetMasked(masked)
	s.fields.input(validate.ConfirmPassword).SetMasked(masked)
}

func (s *CredentialsStep) View(width int) string {
	return s.fields.view(width) + s.kbd.View()
}

func (s *CredentialsStep) Summary() string {
	return s.fields.input(validate.Email).Value()
}
