package validate

import (
	"regexp"
	"strings"
)

// MaxAvatarBytes is the largest accepted avatar upload (5 MiB).
const MaxAvatarBytes = 5 * 1024 * 1024

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// emailPattern is local@domain.tld where each part is a run of characters
// that are neither '@' nor whitespace. Whitespace includes \v, Unicode
// separators and U+FEFF.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

const (
	msgEmail          = "Please enter a valid email address"
	msgPasswordLength = "Password must be at least 8 characters long"
	msgPasswordUpper  = "Password must contain at least one uppercase letter"
	msgPasswordLower  = "Password must contain at least one lowercase letter"
	msgPasswordDigit  = "Password must contain at least one number"
	msgMismatch       = "Passwords do not match"
	msgFirstName      = "First name is required"
	msgLastName       = "Last name is required"
	msgAvatarType     = "Please select a valid image file"
	msgAvatarSize     = "Image size must be less than 5MB"
)

// Credentials are the step 1 inputs.
type Credentials struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// Profile are the step 2 text inputs.
type Profile struct {
	FirstName string
	LastName  string
}

// AvatarInfo describes a selected avatar file without its contents.
type AvatarInfo struct {
	MediaType string
	Size      int64
}

// ValidateEmail checks the local@domain.tld shape. The empty string fails.
func ValidateEmail(email string) *FieldError {
	if !emailPattern.MatchString(email) {
		return &FieldError{Field: Email, Code: InvalidFormat, Message: msgEmail}
	}
	return nil
}

// ValidatePassword returns the first failing password rule only.
func ValidatePassword(password string) *FieldError {
	fail := func(code Code, msg string) *FieldError {
		return &FieldError{Field: Password, Code: code, Message: msg}
	}

	// length is measured in characters, not bytes
	if len([]rune(password)) < MinPasswordLength {
		return fail(TooShort, msgPasswordLength)
	}
	if !containsRange(password, 'A', 'Z') {
		return fail(NeedsUppercase, msgPasswordUpper)
	}
	if !containsRange(password, 'a', 'z') {
		return fail(NeedsLowercase, msgPasswordLower)
	}
	if !containsRange(password, '0', '9') {
		return fail(NeedsDigit, msgPasswordDigit)
	}
	return nil
}

func containsRange(s string, lo, hi rune) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return r >= lo && r <= hi })
}

// ValidateConfirm requires confirm to equal password exactly.
func ValidateConfirm(password, confirm string) *FieldError {
	if password != confirm {
		return &FieldError{Field: ConfirmPassword, Code: Mismatch, Message: msgMismatch}
	}
	return nil
}

// ValidateName requires a non-blank value for FirstName or LastName.
func ValidateName(f Field, value string) *FieldError {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	msg := msgFirstName
	if f == LastName {
		msg = msgLastName
	}
	return &FieldError{Field: f, Code: Required, Message: msg}
}

// ValidateAvatar checks an optional avatar. A nil info is valid.
func ValidateAvatar(info *AvatarInfo) *FieldError {
	if info == nil {
		return nil
	}
	if !strings.HasPrefix(info.MediaType, "image/") {
		return &FieldError{Field: Avatar, Code: WrongType, Message: msgAvatarType}
	}
	if info.Size > MaxAvatarBytes {
		return &FieldError{Field: Avatar, Code: TooLarge, Message: msgAvatarSize}
	}
	return nil
}

// ValidateCredentials runs every step 1 rule and reports all failures.
func ValidateCredentials(c Credentials) Result {
	r := Result{}
	put(r, ValidateEmail(c.Email))
	put(r, ValidatePassword(c.Password))
	put(r, ValidateConfirm(c.Password, c.ConfirmPassword))
	return r
}

// ValidateProfile runs every step 2 rule and reports all failures.
func ValidateProfile(p Profile, avatar *AvatarInfo) Result {
	r := Result{}
	put(r, ValidateName(FirstName, p.FirstName))
	put(r, ValidateName(LastName, p.LastName))
	put(r, ValidateAvatar(avatar))
	return r
}

// ValidateField checks a single field. Confirm is checked against c.Password.
func ValidateField(f Field, c Credentials, p Profile) *FieldError {
	switch f {
	case Email:
		return ValidateEmail(c.Email)
	case Password:
		return ValidatePassword(c.Password)
	case ConfirmPassword:
		return ValidateConfirm(c.Password, c.ConfirmPassword)
	case FirstName:
		return ValidateName(FirstName, p.FirstName)
	case LastName:
		return ValidateName(LastName, p.LastName)
	}
	return nil
}

func put(r Result, e *FieldError) {
	if e != nil {
		r[e.Field] = e
	}
}
