package wizard

import (
	"errors"
	"fmt"

	"github.com/initializ/signup/validate"
)

var (
	// ErrInvalidStep means a caller asked for a step outside [1, TotalSteps].
	// It is a shell bug, not a user error; the state is left unchanged.
	ErrInvalidStep = errors.New("invalid step")

	// ErrValidationFailed is matched by every *ValidationError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrSubmitted is returned by transitions after a successful Submit.
	ErrSubmitted = errors.New("wizard already submitted")

	// ErrUnknownField is returned by EditField for names it does not own.
	ErrUnknownField = errors.New("unknown field")

	// ErrAvatarCleared is sent by SelectAvatar when the avatar was cleared
	// before its decode finished.
	ErrAvatarCleared = errors.New("avatar cleared before decode finished")
)

// ValidationError reports the failing fields of one step. Focus is the
// field the shell should focus, or "" when no failing field takes focus.
type ValidationError struct {
	Step   int
	Result validate.Result
	Focus  validate.Field
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Result)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

func newValidationError(step int, r validate.Result) *ValidationError {
	focus, _ := r.FirstInvalid(validate.FocusOrder(step))
	return &ValidationError{Step: step, Result: r, Focus: focus}
}
