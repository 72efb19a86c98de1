package steps

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/signup/internal/tui"
	"github.com/initializ/signup/internal/tui/components"
	"github.com/initializ/signup/wizard"
)

// ReviewStep shows the committed data and submits the wizard.
type ReviewStep struct {
	styles  *tui.StyleSet
	summary components.SummaryBox
	kbd     components.KbdHint
	review  wizard.Review
}

// NewReviewStep creates a new review step.
func NewReviewStep(styles *tui.StyleSet) *ReviewStep {
	return &ReviewStep{
		styles: styles,
		kbd:    components.NewKbdHint(styles.KbdKey, styles.KbdDesc, components.ReviewHints()...),
	}
}

// Prepare builds the summary from committed wizard data.
func (s *ReviewStep) Prepare(state *wizard.State) {
	s.review = state.Review()
	f := state.Fields()

	avatarRow := "none"
	if f.HasAvatar() {
		avatarRow = fmt.Sprintf("%s · %s", f.Avatar.Name, f.Avatar.MediaType)
	}

	rows := []components.SummaryRow{
		{Key: "Email", Value: s.review.Email},
		{Key: "Name", Value: s.review.Name},
		{Key: "Avatar", Value: avatarRow},
	}
	s.summary = components.NewSummaryBox(
		rows,
		s.styles.SummaryKey,
		s.styles.SummaryValue,
		s.styles.BorderedBox,
	)
}

func (s *ReviewStep) Title() string { return "Review" }
func (s *ReviewStep) Icon() string  { return "✅" }

func (s *ReviewStep) Init() tea.Cmd {
	return nil
}

func (s *ReviewStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			return s, emit(tui.SubmitRequestMsg{})
		case "backspace", "ctrl+b":
			return s, emit(tui.StepBackMsg{})
		case "1":
			return s, emit(tui.EditStepMsg{Step: 1})
		case "2":
			return s, emit(tui.EditStepMsg{Step: 2})
		}
	}
	return s, nil
}

func (s *ReviewStep) View(width int) string {
	out := s.summary.View(width) + "\n\n"
	out += "  " + s.styles.AccentTxt.Render("Press Enter to create your account, Backspace to go back") + "\n\n"
	out += s.kbd.View()
	return out
}

func (s *ReviewStep) Summary() string {
	return "confirmed"
}
