package tui

import (
	"github.com/initializ/signup/validate"
	"github.com/initializ/signup/wizard"
)

// StepBackMsg is emitted by a step when the user asks for the previous step.
type StepBackMsg struct{}

// StepCompleteMsg is emitted by a step when the user asks to advance.
type StepCompleteMsg struct{}

// SubmitRequestMsg is emitted by the review step to submit the wizard.
type SubmitRequestMsg struct{}

// FieldEditedMsg carries a live edit of one input.
type FieldEditedMsg struct {
	Field validate.Field
	Value string
}

// AvatarSelectedMsg carries a file path chosen for the avatar.
type AvatarSelectedMsg struct {
	Path string
}

// AvatarClearedMsg asks to remove the avatar.
type AvatarClearedMsg struct{}

// WizardEventMsg delivers a wizard notification to the UI loop.
type WizardEventMsg struct {
	Event wizard.Event
}

// FieldErrorMsg sets or clears (empty Message) the inline error of a field.
type FieldErrorMsg struct {
	Field   validate.Field
	Message string
}

// FocusMsg moves focus to a field of the active step.
type FocusMsg struct {
	Field validate.Field
}

// AvatarStatusMsg updates the avatar picker after ingestion settles.
type AvatarStatusMsg struct {
	Ready   bool
	Err     error
	Preview string
}

// EditStepMsg jumps from the review step back to an earlier step.
type EditStepMsg struct {
	Step int
}
