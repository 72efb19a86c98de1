// Package validate holds the pure validation rules for the signup wizard.
package validate

import "strings"

// Field names a wizard input.
type Field string

const (
	Email           Field = "email"
	Password        Field = "password"
	ConfirmPassword Field = "confirmPassword"
	FirstName       Field = "firstName"
	LastName        Field = "lastName"
	Avatar          Field = "avatar"
)

// Code classifies why a field failed.
type Code string

const (
	InvalidFormat  Code = "invalid_format"
	TooShort       Code = "too_short"
	NeedsUppercase Code = "needs_uppercase"
	NeedsLowercase Code = "needs_lowercase"
	NeedsDigit     Code = "needs_digit"
	Mismatch       Code = "mismatch"
	Required       Code = "required"
	WrongType      Code = "wrong_type"
	TooLarge       Code = "too_large"
)

// FieldError is a single user-correctable failure.
type FieldError struct {
	Field   Field
	Code    Code
	Message string
}

func (e *FieldError) Error() string {
	return string(e.Field) + ": " + e.Message
}

// Result maps failing fields to their error. A field without an entry is valid.
type Result map[Field]*FieldError

// Valid returns true if no field failed.
func (r Result) Valid() bool {
	return len(r) == 0
}

// Get returns the error for f, or nil.
func (r Result) Get(f Field) *FieldError {
	if r == nil {
		return nil
	}
	return r[f]
}

// FirstInvalid returns the first field in order that has an error.
func (r Result) FirstInvalid(order []Field) (Field, bool) {
	for _, f := range order {
		if _, ok := r[f]; ok {
			return f, true
		}
	}
	return "", false
}

// Messages returns the error messages in the given field order. Fields not
// listed in order are appended at the end in step order.
func (r Result) Messages(order []Field) []string {
	seen := make(map[Field]bool, len(order))
	out := make([]string, 0, len(r))
	for _, f := range order {
		seen[f] = true
		if e := r[f]; e != nil {
			out = append(out, e.Error())
		}
	}
	for _, f := range allFields {
		if seen[f] {
			continue
		}
		if e := r[f]; e != nil {
			out = append(out, e.Error())
		}
	}
	return out
}

func (r Result) String() string {
	return strings.Join(r.Messages(nil), "; ")
}

var allFields = []Field{Email, Password, ConfirmPassword, FirstName, LastName, Avatar}

// StepFields returns the fields a step owns, in display order.
// Step 3 is review-only and owns nothing.
func StepFields(step int) []Field {
	switch step {
	case 1:
		return []Field{Email, Password, ConfirmPassword}
	case 2:
		return []Field{FirstName, LastName, Avatar}
	}
	return nil
}

// FocusOrder returns the order used to pick the first invalid field of a
// step. Avatar errors never take focus.
func FocusOrder(step int) []Field {
	switch step {
	case 1:
		return []Field{Email, Password, ConfirmPassword}
	case 2:
		return []Field{FirstName, LastName}
	}
	return nil
}

// StepOf returns the step that owns f, or 0 for an unknown field.
func StepOf(f Field) int {
	switch f {
	case Email, Password, ConfirmPassword:
		return 1
	case FirstName, LastName, Avatar:
		return 2
	}
	return 0
}
