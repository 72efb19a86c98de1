// Package wizard implements the three-step signup state machine: step
// navigation gated by validation, commit-before-switch of step data, avatar
// ingestion and full re-validation on submit.
package wizard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/initializ/signup/avatar"
	"github.com/initializ/signup/validate"
)

// TotalSteps is the fixed number of wizard steps.
const TotalSteps = 3

// FocusSubmit is the focus target of the review step.
const FocusSubmit validate.Field = "submit"

// FocusTarget returns the control to focus when step is entered.
func FocusTarget(step int) validate.Field {
	switch step {
	case 1:
		return validate.Email
	case 2:
		return validate.FirstName
	case 3:
		return FocusSubmit
	}
	return ""
}

// Fields is the registration data. Avatar and AvatarPreview are set
// together or not at all.
type Fields struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Avatar          *avatar.Blob
	AvatarPreview   string
}

// HasAvatar reports whether an avatar has been committed.
func (f Fields) HasAvatar() bool {
	return f.Avatar != nil
}

// FullName joins first and last name.
func (f Fields) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(f.FirstName) + " " + strings.TrimSpace(f.LastName))
}

func (f Fields) credentials() validate.Credentials {
	return validate.Credentials{Email: f.Email, Password: f.Password, ConfirmPassword: f.ConfirmPassword}
}

func (f Fields) profile() validate.Profile {
	return validate.Profile{FirstName: f.FirstName, LastName: f.LastName}
}

func (f Fields) clone() Fields {
	if f.Avatar != nil {
		b := *f.Avatar
		f.Avatar = &b
	}
	return f
}

func (f *Fields) text(field validate.Field) *string {
	switch field {
	case validate.Email:
		return &f.Email
	case validate.Password:
		return &f.Password
	case validate.ConfirmPassword:
		return &f.ConfirmPassword
	case validate.FirstName:
		return &f.FirstName
	case validate.LastName:
		return &f.LastName
	}
	return nil
}

// FinalData is the snapshot returned by a successful Submit.
type FinalData struct {
	Fields
	SubmittedAt time.Time
}

// Review is what the review step shows.
type Review struct {
	Email   string
	Name    string
	Preview string
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *State) { s.log = l }
}

// WithDebounce sets the live-validation quiet period.
func WithDebounce(d time.Duration) Option {
	return func(s *State) { s.debounce = NewDebouncer(d) }
}

// WithClock sets the time source used for FinalData.SubmittedAt.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// WithDecoder replaces avatar.Decode for preview generation.
func WithDecoder(fn func(context.Context, *avatar.Blob) (string, error)) Option {
	return func(s *State) { s.decode = fn }
}

// State is one wizard session. All methods are safe for concurrent use;
// hooks run after the internal lock is released.
type State struct {
	mu        sync.Mutex
	current   int
	fields    Fields // committed
	live      Fields // what the inputs show; Avatar is the last selected file
	submitted bool
	// avatarEpoch changes on ClearAvatar; decodes started before a clear
	// are not committed.
	avatarEpoch uint64

	hooks    *Hooks
	debounce *Debouncer
	log      *zap.Logger
	now      func() time.Time
	decode   func(context.Context, *avatar.Blob) (string, error)
}

// New creates a wizard on step 1 with empty fields.
func New(opts ...Option) *State {
	s := &State{
		current:  1,
		hooks:    NewHooks(),
		debounce: NewDebouncer(DefaultDebounce),
		log:      zap.NewNop(),
		now:      time.Now,
		decode:   avatar.Decode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// On registers a hook for kind.
func (s *State) On(kind EventKind, h Hook) {
	s.hooks.On(kind, h)
}

// Hooks returns the hook registry.
func (s *State) Hooks() *Hooks {
	return s.hooks
}

// Close cancels pending live validation.
func (s *State) Close() {
	s.debounce.Stop()
}

// CurrentStep returns the displayed step.
func (s *State) CurrentStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Submitted reports whether Submit has succeeded.
func (s *State) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}

// Fields returns a copy of the committed fields.
func (s *State) Fields() Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields.clone()
}

// Live returns a copy of the live input values. Avatar is the last selected
// file, which may not be committed yet; AvatarPreview is the committed one.
func (s *State) Live() Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	live := s.live.clone()
	live.AvatarPreview = s.fields.AvatarPreview
	return live
}

// Review returns the summary shown on step 3, built from committed data.
func (s *State) Review() Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := Review{Email: s.fields.Email, Name: s.fields.FullName(), Preview: s.fields.AvatarPreview}
	if r.Email == "" {
		r.Email = "-"
	}
	if r.Name == "" {
		r.Name = "-"
	}
	return r
}

// EditField records a live edit and schedules debounced live validation.
func (s *State) EditField(field validate.Field, value string) error {
	s.mu.Lock()
	p := s.live.text(field)
	if p == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	*p = value
	recheckConfirm := field == validate.Password && s.live.ConfirmPassword != ""
	s.mu.Unlock()

	s.debounce.Schedule(string(field), func() { s.liveCheck(field) })
	if recheckConfirm {
		s.debounce.Schedule(string(validate.ConfirmPassword), func() { s.liveCheck(validate.ConfirmPassword) })
	}
	return nil
}

// liveCheck validates one field from live values. Credential fields are
// not checked while empty, so an untouched input shows no error.
func (s *State) liveCheck(field validate.Field) {
	s.mu.Lock()
	live := s.live
	s.mu.Unlock()

	switch field {
	case validate.Email, validate.Password, validate.ConfirmPassword:
		if *live.text(field) == "" {
			return
		}
	}
	fe := validate.ValidateField(field, live.credentials(), live.profile())
	s.hooks.Fire(Event{Kind: ValidationChanged, Field: field, Error: fe})
}

// CanAdvance reports whether the displayed step's live values pass.
func (s *State) CanAdvance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateStepLocked(s.current).Valid()
}

// ValidateStep validates the live values of step.
func (s *State) ValidateStep(step int) validate.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateStepLocked(step)
}

func (s *State) validateStepLocked(step int) validate.Result {
	switch step {
	case 1:
		return validate.ValidateCredentials(s.live.credentials())
	case 2:
		return validate.ValidateProfile(s.live.profile(), s.live.Avatar.Info())
	}
	return validate.Result{}
}

// CommitCurrentStepData copies the displayed step's live values into the
// committed fields. The avatar is committed by SelectAvatar, never here.
func (s *State) CommitCurrentStepData() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked(s.current)
}

func (s *State) commitLocked(step int) {
	switch step {
	case 1:
		s.fields.Email = s.live.Email
		s.fields.Password = s.live.Password
		s.fields.ConfirmPassword = s.live.ConfirmPassword
	case 2:
		s.fields.FirstName = s.live.FirstName
		s.fields.LastName = s.live.LastName
	}
}

// GoToStep commits the displayed step and switches to target without
// validating. Out-of-range targets return ErrInvalidStep and change nothing.
func (s *State) GoToStep(target int) error {
	s.mu.Lock()
	if s.submitted {
		s.mu.Unlock()
		return ErrSubmitted
	}
	if target < 1 || target > TotalSteps {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrInvalidStep, target)
	}
	ev := s.switchLocked(target)
	s.mu.Unlock()

	s.hooks.Fire(ev)
	return nil
}

func (s *State) switchLocked(target int) Event {
	from := s.current
	s.commitLocked(from)
	s.current = target
	s.log.Debug("step changed", zap.Int("from", from), zap.Int("to", target))
	return Event{Kind: StepChanged, Step: target, Focus: FocusTarget(target)}
}

// RequestAdvance validates the displayed step's live values and, if they
// pass, moves to target as GoToStep does. On failure it returns a
// *ValidationError and the step does not change.
func (s *State) RequestAdvance(target int) error {
	s.mu.Lock()
	if s.submitted {
		s.mu.Unlock()
		return ErrSubmitted
	}
	step := s.current
	r := s.validateStepLocked(step)
	if !r.Valid() {
		s.mu.Unlock()
		verr := newValidationError(step, r)
		s.log.Debug("advance rejected", zap.Int("step", step), zap.Strings("errors", r.Messages(nil)))
		s.fireValidation(step, r)
		return verr
	}
	if target < 1 || target > TotalSteps {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrInvalidStep, target)
	}
	ev := s.switchLocked(target)
	s.mu.Unlock()

	s.fireValidation(step, r)
	s.hooks.Fire(ev)
	return nil
}

// fireValidation emits one ValidationChanged per field of step.
func (s *State) fireValidation(step int, r validate.Result) {
	for _, f := range validate.StepFields(step) {
		if f == validate.Avatar && r.Get(f) == nil {
			// an untouched avatar has no error surface to clear
			continue
		}
		s.hooks.Fire(Event{Kind: ValidationChanged, Field: f, Error: r.Get(f)})
	}
}

// Submit re-validates steps 1 and 2 from live values regardless of the
// displayed step. The first failing step is reported in a *ValidationError
// and a SubmitRejected event; the caller navigates to it. On success all
// data is committed and the wizard becomes terminal.
func (s *State) Submit() (FinalData, error) {
	s.mu.Lock()
	if s.submitted {
		s.mu.Unlock()
		return FinalData{}, ErrSubmitted
	}
	for step := 1; step <= 2; step++ {
		if r := s.validateStepLocked(step); !r.Valid() {
			s.mu.Unlock()
			verr := newValidationError(step, r)
			s.log.Info("submit rejected", zap.Int("step", step), zap.Strings("errors", r.Messages(nil)))
			s.fireValidation(step, r)
			s.hooks.Fire(Event{Kind: SubmitRejected, Step: step, Focus: verr.Focus})
			return FinalData{}, verr
		}
	}

	s.commitLocked(1)
	s.commitLocked(2)
	s.submitted = true
	data := FinalData{Fields: s.fields.clone(), SubmittedAt: s.now()}
	s.mu.Unlock()

	s.log.Info("wizard submitted", zap.String("email", data.Email), zap.Bool("avatar", data.HasAvatar()))
	evData := data
	evData.Fields = data.Fields.clone()
	s.hooks.Fire(Event{Kind: Submitted, Data: &evData})
	return data, nil
}
