package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/initializ/signup/avatar"
	"github.com/initializ/signup/submission"
	"github.com/initializ/signup/validate"
	"github.com/initializ/signup/wizard"
)

// ErrCancelled is returned by Err when the user quits before submitting.
var ErrCancelled = errors.New("wizard cancelled")

// WizardModel is the top-level bubbletea model. It owns no registration
// data: every transition goes through the wizard.State, and the state's
// notifications come back in as WizardEventMsg.
type WizardModel struct {
	styles  *StyleSet
	theme   TermTheme
	state   *wizard.State
	steps   []Step
	sink    *submission.Sink
	events  *eventQueue
	ctx     context.Context
	log     *zap.Logger
	width   int
	height  int
	done    bool
	err     error
	version string
	record  submission.Record

	// pendingFocus overrides the focus of the next StepChanged.
	pendingFocus validate.Field
}

// NewWizardModel creates a wizard UI over state. steps holds one Step per
// wizard step, in order.
func NewWizardModel(ctx context.Context, theme TermTheme, state *wizard.State, steps []Step, sink *submission.Sink, log *zap.Logger, version string) WizardModel {
	if log == nil {
		log = zap.NewNop()
	}
	events := newEventQueue()
	state.Hooks().OnAny(events.push)

	return WizardModel{
		styles:  NewStyleSet(theme),
		theme:   theme,
		state:   state,
		steps:   steps,
		sink:    sink,
		events:  events,
		ctx:     ctx,
		log:     log,
		width:   80,
		height:  24,
		version: version,
	}
}

// Init initializes the first step and starts listening for wizard events.
func (w WizardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{w.waitForEvent()}
	if step := w.active(); step != nil {
		cmds = append(cmds, step.Init())
	}
	return tea.Batch(cmds...)
}

func (w WizardModel) waitForEvent() tea.Cmd {
	events, ctx := w.events, w.ctx
	return func() tea.Msg {
		ev, ok := events.next(ctx)
		if !ok {
			return nil
		}
		return WizardEventMsg{Event: ev}
	}
}

func (w WizardModel) current() int {
	return w.state.CurrentStep() - 1
}

func (w WizardModel) active() Step {
	if i := w.current(); i >= 0 && i < len(w.steps) {
		return w.steps[i]
	}
	return nil
}

// Update handles messages for the wizard.
func (w WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			w.err = ErrCancelled
			return w, tea.Quit
		}

	case WizardEventMsg:
		cmd := w.handleEvent(msg.Event)
		return w, tea.Batch(cmd, w.waitForEvent())

	case StepCompleteMsg:
		err := w.state.RequestAdvance(w.state.CurrentStep() + 1)
		var verr *wizard.ValidationError
		if errors.As(err, &verr) {
			return w, w.deliver(verr.Step, FocusMsg{Field: verr.Focus})
		}
		if err != nil {
			w.log.Debug("advance failed", zap.Error(err))
		}
		return w, nil

	case StepBackMsg:
		if cur := w.state.CurrentStep(); cur > 1 {
			w.navigate(cur - 1)
		}
		return w, nil

	case EditStepMsg:
		w.navigate(msg.Step)
		return w, nil

	case FieldEditedMsg:
		if err := w.state.EditField(msg.Field, msg.Value); err != nil {
			w.log.Debug("edit rejected", zap.Error(err))
		}
		return w, nil

	case AvatarSelectedMsg:
		w.selectAvatar(msg.Path)
		return w, nil

	case AvatarClearedMsg:
		w.state.ClearAvatar()
		return w, nil

	case SubmitRequestMsg:
		return w.submit()
	}

	// Delegate to current step
	if i := w.current(); i >= 0 && i < len(w.steps) {
		updated, cmd := w.steps[i].Update(msg)
		w.steps[i] = updated
		return w, cmd
	}
	return w, nil
}

func (w *WizardModel) navigate(step int) {
	if err := w.state.GoToStep(step); err != nil {
		w.log.Debug("navigation failed", zap.Int("step", step), zap.Error(err))
	}
}

func (w *WizardModel) selectAvatar(path string) {
	blob, err := avatar.FromFile(path)
	if err != nil {
		w.deliver(2, FieldErrorMsg{Field: validate.Avatar, Message: err.Error()})
		return
	}
	// failures are reported through ValidationChanged and AvatarDecodeFailed
	if _, err := w.state.SelectAvatar(w.ctx, blob); err != nil {
		w.log.Debug("avatar rejected", zap.String("path", path), zap.Error(err))
	}
}

func (w WizardModel) submit() (tea.Model, tea.Cmd) {
	data, err := w.state.Submit()
	var verr *wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		w.pendingFocus = verr.Focus
		w.navigate(verr.Step)
		return w, nil
	case err != nil:
		w.err = err
		return w, tea.Quit
	}

	rec, err := w.sink.Record(data)
	if err != nil {
		w.err = fmt.Errorf("recording registration: %w", err)
		return w, tea.Quit
	}
	w.record = rec
	w.done = true
	return w, tea.Quit
}

// handleEvent turns a wizard notification into updates of the steps.
func (w *WizardModel) handleEvent(ev wizard.Event) tea.Cmd {
	switch ev.Kind {
	case wizard.StepChanged:
		i := ev.Step - 1
		if i < 0 || i >= len(w.steps) {
			return nil
		}
		if p, ok := w.steps[i].(Preparer); ok {
			p.Prepare(w.state)
		}
		focus := ev.Focus
		if w.pendingFocus != "" {
			focus = w.pendingFocus
			w.pendingFocus = ""
		}
		return tea.Batch(w.steps[i].Init(), w.deliver(ev.Step, FocusMsg{Field: focus}))

	case wizard.ValidationChanged:
		msg := ""
		if ev.Error != nil {
			msg = ev.Error.Message
		}
		return w.deliver(validate.StepOf(ev.Field), FieldErrorMsg{Field: ev.Field, Message: msg})

	case wizard.AvatarPreviewReady:
		cmd := w.deliver(2, AvatarStatusMsg{Ready: true, Preview: ev.Preview})
		if p, ok := w.active().(Preparer); ok {
			p.Prepare(w.state)
		}
		return cmd

	case wizard.AvatarDecodeFailed:
		return w.deliver(2, AvatarStatusMsg{Err: ev.Err})

	case wizard.SubmitRejected:
		w.log.Debug("submit rejected", zap.Int("step", ev.Step), zap.String("focus", string(ev.Focus)))
	}
	return nil
}

// deliver sends msg to the step with the given one-based number.
func (w *WizardModel) deliver(step int, msg tea.Msg) tea.Cmd {
	i := step - 1
	if i < 0 || i >= len(w.steps) {
		return nil
	}
	updated, cmd := w.steps[i].Update(msg)
	w.steps[i] = updated
	return cmd
}

// View renders the entire wizard UI.
func (w WizardModel) View() string {
	var out string

	out += "\n" + RenderBanner(w.styles, w.version, w.width)
	out += "\n"

	if w.done {
		return out + w.renderDone()
	}

	out += RenderProgress(w.steps, w.current(), w.styles, w.width)
	out += "\n"

	if step := w.active(); step != nil {
		out += step.View(w.width)
	}
	out += "\n\n"
	out += RenderPending(w.steps, w.current(), w.styles)

	return out
}

func (w WizardModel) renderDone() string {
	out := "  " + w.styles.SuccessTxt.Bold(true).Render("✓ Account created") + "\n\n"
	out += fmt.Sprintf("  %s  %s\n", w.styles.SummaryKey.Render("Email"), w.styles.SummaryValue.Render(w.record.Email))
	out += fmt.Sprintf("  %s  %s\n", w.styles.SummaryKey.Render("Name"), w.styles.SummaryValue.Render(w.record.FirstName+" "+w.record.LastName))
	out += fmt.Sprintf("  %s  %s\n", w.styles.SummaryKey.Render("ID"), w.styles.DimTxt.Render(w.record.ID))
	return out + "\n"
}

// Record returns the stored registration after a successful submit.
func (w WizardModel) Record() submission.Record {
	return w.record
}

// Err returns any error that occurred during the wizard.
func (w WizardModel) Err() error {
	return w.err
}

// Done returns true if the wizard completed successfully.
func (w WizardModel) Done() bool {
	return w.done
}

// WithSize sets the initial terminal size before the first WindowSizeMsg.
func (w WizardModel) WithSize(width, height int) WizardModel {
	w.width = width
	w.height = height
	return w
}
