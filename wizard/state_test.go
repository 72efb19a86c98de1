package wizard

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/initializ/signup/validate"
)

// recorder collects events from every hook kind.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) hook(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) of(kind EventKind) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, ev := range r.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func newTestState(t *testing.T, opts ...Option) (*State, *recorder) {
	t.Helper()
	opts = append([]Option{WithDebounce(0)}, opts...)
	s := New(opts...)
	t.Cleanup(s.Close)
	rec := &recorder{}
	s.Hooks().OnAny(rec.hook)
	return s, rec
}

func edit(t *testing.T, s *State, kv ...string) {
	t.Helper()
	require.Zero(t, len(kv)%2, "edit needs field/value pairs")
	for i := 0; i < len(kv); i += 2 {
		require.NoError(t, s.EditField(validate.Field(kv[i]), kv[i+1]))
	}
}

func fillStep1(t *testing.T, s *State) {
	t.Helper()
	edit(t, s,
		"email", "ada@example.org",
		"password", "Abcd1234",
		"confirmPassword", "Abcd1234",
	)
}

func TestNew_Defaults(t *testing.T) {
	s, _ := newTestState(t)
	assert.Equal(t, 1, s.CurrentStep())
	assert.Equal(t, Fields{}, s.Fields())
	assert.False(t, s.Submitted())
	assert.False(t, s.CanAdvance())
}

func TestInstancesAreIndependent(t *testing.T) {
	a, _ := newTestState(t)
	b, _ := newTestState(t)
	fillStep1(t, a)
	require.NoError(t, a.RequestAdvance(2))

	assert.Equal(t, 2, a.CurrentStep())
	assert.Equal(t, 1, b.CurrentStep())
	assert.Empty(t, b.Fields().Email)
}

func TestGoToStep_OutOfRange(t *testing.T) {
	s, rec := newTestState(t)
	for _, target := range []int{0, -1, 4, 100} {
		err := s.GoToStep(target)
		require.ErrorIs(t, err, ErrInvalidStep)
		assert.Equal(t, 1, s.CurrentStep())
	}
	assert.Empty(t, rec.of(StepChanged))
}

func TestGoToStep_BackwardNeverValidates(t *testing.T) {
	s, rec := newTestState(t)
	fillStep1(t, s)
	require.NoError(t, s.RequestAdvance(2))
	require.NoError(t, s.GoToStep(1))
	assert.Equal(t, 1, s.CurrentStep())

	// nothing on step 2 is filled in, yet going back was allowed
	steps := rec.of(StepChanged)
	require.Len(t, steps, 2)
	assert.Equal(t, 1, steps[1].Step)
	assert.Equal(t, validate.Email, steps[1].Focus)
}

func TestGoToStep_FocusTargets(t *testing.T) {
	s, rec := newTestState(t)
	for _, target := range []int{3, 2, 1} {
		require.NoError(t, s.GoToStep(target))
	}
	steps := rec.of(StepChanged)
	require.Len(t, steps, 3)
	assert.Equal(t, FocusSubmit, steps[0].Focus)
	assert.Equal(t, validate.FirstName, steps[1].Focus)
	assert.Equal(t, validate.Email, steps[2].Focus)
}

func TestCommitBeforeSwitch(t *testing.T) {
	s, _ := newTestState(t)
	fillStep1(t, s)
	require.NoError(t, s.RequestAdvance(2))
	edit(t, s, "firstName", "Ada", "lastName", "Lovelace")

	// backward navigation commits step 2 before leaving it
	require.NoError(t, s.GoToStep(1))
	f := s.Fields()
	assert.Equal(t, "Ada", f.FirstName)
	assert.Equal(t, "Lovelace", f.LastName)
	assert.Equal(t, "ada@example.org", f.Email)

	require.NoError(t, s.RequestAdvance(2))
	assert.Equal(t, "Ada", s.Live().FirstName)
	assert.Equal(t, "Ada", s.Fields().FirstName)
}

func TestCommitCurrentStepData_OnlyCurrentStep(t *testing.T) {
	s, _ := newTestState(t)
	edit(t, s, "email", "ada@example.org", "firstName", "Ada")
	s.CommitCurrentStepData()

	f := s.Fields()
	assert.Equal(t, "ada@example.org", f.Email)
	assert.Empty(t, f.FirstName, "step 2 fields are not committed from step 1")
}

func TestCommitCurrentStepData_ReviewCommitsNothing(t *testing.T) {
	s, _ := newTestState(t)
	require.NoError(t, s.GoToStep(3))
	edit(t, s, "email", "late@example.org")
	s.CommitCurrentStepData()
	assert.Empty(t, s.Fields().Email)
}

func TestRequestAdvance_RejectsAndReportsFocus(t *testing.T) {
	s, rec := newTestState(t)
	edit(t, s, "email", "ada@example.org", "password", "abc", "confirmPassword", "abd")

	err := s.RequestAdvance(2)
	require.ErrorIs(t, err, ErrValidationFailed)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 1, verr.Step)
	assert.Equal(t, validate.Password, verr.Focus)
	assert.Equal(t, validate.TooShort, verr.Result.Get(validate.Password).Code)
	assert.Equal(t, validate.Mismatch, verr.Result.Get(validate.ConfirmPassword).Code)
	assert.Nil(t, verr.Result.Get(validate.Email))
	assert.Equal(t, 1, s.CurrentStep())
	assert.Empty(t, s.Fields().Email, "a rejected advance commits nothing")
	assert.Empty(t, rec.of(StepChanged))
}

func TestRequestAdvance_EmitsValidationForEveryStepField(t *testing.T) {
	s, rec := newTestState(t)
	edit(t, s, "email", "bad", "password", "Abcd1234", "confirmPassword", "Abcd1234")
	rec.events = nil

	require.Error(t, s.RequestAdvance(2))
	changes := rec.of(ValidationChanged)
	require.Len(t, changes, 3)
	assert.Equal(t, validate.Email, changes[0].Field)
	assert.NotNil(t, changes[0].Error)
	assert.Nil(t, changes[1].Error)
	assert.Nil(t, changes[2].Error)
}

func TestRequestAdvance_InvalidTarget(t *testing.T) {
	s, _ := newTestState(t)
	fillStep1(t, s)
	require.ErrorIs(t, s.RequestAdvance(7), ErrInvalidStep)
	assert.Equal(t, 1, s.CurrentStep())
}

func TestEndToEnd(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	s, rec := newTestState(t, WithClock(func() time.Time { return now }))

	fillStep1(t, s)
	require.NoError(t, s.RequestAdvance(2))
	require.Equal(t, 2, s.CurrentStep())

	edit(t, s, "firstName", "Ada")
	err := s.RequestAdvance(3)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validate.Required, verr.Result.Get(validate.LastName).Code)
	assert.Equal(t, validate.LastName, verr.Focus)
	assert.Equal(t, 2, s.CurrentStep())

	edit(t, s, "lastName", "Lovelace")
	require.NoError(t, s.RequestAdvance(3))
	require.Equal(t, 3, s.CurrentStep())

	review := s.Review()
	assert.Equal(t, "ada@example.org", review.Email)
	assert.Equal(t, "Ada Lovelace", review.Name)

	data, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, "ada@example.org", data.Email)
	assert.Equal(t, "Ada", data.FirstName)
	assert.Equal(t, "Lovelace", data.LastName)
	assert.Equal(t, "Abcd1234", data.Password)
	assert.Nil(t, data.Avatar)
	assert.Empty(t, data.AvatarPreview)
	assert.Equal(t, now, data.SubmittedAt)
	assert.True(t, s.Submitted())

	submitted := rec.of(Submitted)
	require.Len(t, submitted, 1)
	assert.Equal(t, "Lovelace", submitted[0].Data.LastName)
}

func TestSubmit_RevalidatesEveryStep(t *testing.T) {
	s, rec := newTestState(t)
	fillStep1(t, s)
	require.NoError(t, s.RequestAdvance(2))
	edit(t, s, "firstName", "Ada", "lastName", "Lovelace")
	require.NoError(t, s.RequestAdvance(3))

	// clear lastName after it was committed
	edit(t, s, "lastName", "   ")

	_, err := s.Submit()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, verr.Step)
	assert.Equal(t, validate.LastName, verr.Focus)
	assert.Equal(t, 3, s.CurrentStep(), "submit does not navigate")
	assert.False(t, s.Submitted())

	rejected := rec.of(SubmitRejected)
	require.Len(t, rejected, 1)
	assert.Equal(t, 2, rejected[0].Step)
}

func TestSubmit_Step1CheckedFirst(t *testing.T) {
	s, _ := newTestState(t)
	require.NoError(t, s.GoToStep(3))

	_, err := s.Submit()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 1, verr.Step)
	assert.Equal(t, validate.Email, verr.Focus)
}

func TestSubmit_CommitsAllSteps(t *testing.T) {
	s, _ := newTestState(t)
	fillStep1(t, s)
	edit(t, s, "firstName", "Ada", "lastName", "Lovelace")

	// submitting straight from step 1 still commits step 2's live values
	data, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", data.LastName)
	assert.Equal(t, "Lovelace", s.Fields().LastName)
}

func TestSubmit_Terminal(t *testing.T) {
	s, _ := newTestState(t)
	fillStep1(t, s)
	edit(t, s, "firstName", "Ada", "lastName", "Lovelace")
	_, err := s.Submit()
	require.NoError(t, err)

	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrSubmitted)
	assert.ErrorIs(t, s.GoToStep(1), ErrSubmitted)
	assert.ErrorIs(t, s.RequestAdvance(2), ErrSubmitted)

	// not frozen: edits are still accepted
	assert.NoError(t, s.EditField(validate.FirstName, "Augusta"))
}

func TestSubmit_SnapshotIsImmutable(t *testing.T) {
	s, _ := newTestState(t)
	fillStep1(t, s)
	edit(t, s, "firstName", "Ada", "lastName", "Lovelace")
	data, err := s.Submit()
	require.NoError(t, err)

	data.FirstName = "Mallory"
	assert.Equal(t, "Ada", s.Fields().FirstName)
}

func TestStepBoundHolds(t *testing.T) {
	s, _ := newTestState(t)
	fillStep1(t, s)
	edit(t, s, "firstName", "Ada", "lastName", "Lovelace")
	for _, target := range []int{2, 0, 3, 9, 1, -4, 3, 2} {
		_ = s.RequestAdvance(target)
		_ = s.GoToStep(target)
		step := s.CurrentStep()
		assert.GreaterOrEqual(t, step, 1)
		assert.LessOrEqual(t, step, TotalSteps)
	}
}

func TestEditField_UnknownField(t *testing.T) {
	s, _ := newTestState(t)
	assert.ErrorIs(t, s.EditField("nickname", "x"), ErrUnknownField)
	assert.ErrorIs(t, s.EditField(validate.Avatar, "x"), ErrUnknownField)
}

func TestEditField_LiveValidation(t *testing.T) {
	s, rec := newTestState(t)

	edit(t, s, "email", "")
	assert.Empty(t, rec.of(ValidationChanged), "empty credentials are not live-validated")

	edit(t, s, "email", "ada@")
	changes := rec.of(ValidationChanged)
	require.Len(t, changes, 1)
	assert.Equal(t, validate.InvalidFormat, changes[0].Error.Code)

	edit(t, s, "firstName", "")
	changes = rec.of(ValidationChanged)
	require.Len(t, changes, 2)
	assert.Equal(t, validate.Required, changes[1].Error.Code)
}

func TestEditField_PasswordRechecksConfirm(t *testing.T) {
	s, rec := newTestState(t)
	edit(t, s, "password", "Abcd1234", "confirmPassword", "Abcd1234")
	rec.events = nil

	edit(t, s, "password", "Abcd12345")
	changes := rec.of(ValidationChanged)
	require.Len(t, changes, 2)
	assert.Equal(t, validate.Password, changes[0].Field)
	assert.Nil(t, changes[0].Error)
	assert.Equal(t, validate.ConfirmPassword, changes[1].Field)
	assert.Equal(t, validate.Mismatch, changes[1].Error.Code)
}

func TestEditField_Debounced(t *testing.T) {
	s := New(WithDebounce(20 * time.Millisecond))
	defer s.Close()

	var mu sync.Mutex
	var got []*validate.FieldError
	s.On(ValidationChanged, func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, ev.Error)
	})

	for _, v := range []string{"A", "Ab", "Abc", "Abcd1234"} {
		require.NoError(t, s.EditField(validate.Password, v))
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(40 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1, "rapid edits coalesce into one validation pass")
	assert.Nil(t, got[0], "the pass sees the latest value")
}

func TestCanAdvance(t *testing.T) {
	s, _ := newTestState(t)
	assert.False(t, s.CanAdvance())
	fillStep1(t, s)
	assert.True(t, s.CanAdvance())
	require.NoError(t, s.RequestAdvance(2))
	assert.False(t, s.CanAdvance())
	require.NoError(t, s.GoToStep(3))
	assert.True(t, s.CanAdvance(), "review step has no rules")
}

func TestReview_Placeholders(t *testing.T) {
	s, _ := newTestState(t)
	r := s.Review()
	assert.Equal(t, "-", r.Email)
	assert.Equal(t, "-", r.Name)
	assert.Empty(t, r.Preview)
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s, _ := newTestState(t, WithLogger(zap.New(core)))
	fillStep1(t, s)
	require.NoError(t, s.RequestAdvance(2))

	entries := logs.FilterMessage("step changed").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 2, entries[0].ContextMap()["to"])
}
