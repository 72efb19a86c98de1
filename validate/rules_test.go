package validate

import (
	"reflect"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.co", true},
		{"ada.lovelace@example.org", true},
		{"a@b.c.d", true},
		{"a@b", false},
		{"", false},
		{"a b@c.de", false},
		{"a@@b.co", false},
		{"@b.co", false},
		{"a@.co", false},
		{"a@b.", false},
		{"a\u00a0b@c.co", false},
		{"a@b\u2003c.co", false},
		{"a@b.c\u3000o", false},
		{"a\vb@c.co", false},
		{"\ufeffa@b.co", false},
		{"a@b.c\u2028", false},
		{"josé@exämple.org", true},
	}
	for _, tt := range tests {
		err := ValidateEmail(tt.email)
		if tt.valid && err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want valid", tt.email, err)
		}
		if !tt.valid {
			if err == nil {
				t.Errorf("ValidateEmail(%q) = nil, want InvalidFormat", tt.email)
				continue
			}
			if err.Code != InvalidFormat {
				t.Errorf("ValidateEmail(%q) code = %s, want %s", tt.email, err.Code, InvalidFormat)
			}
		}
	}
}

func TestValidatePassword_FirstFailingRule(t *testing.T) {
	tests := []struct {
		password string
		want     Code
	}{
		{"abc", TooShort},
		{"", TooShort},
		{"abcdefgh", NeedsUppercase},
		{"ABCDEFGH", NeedsLowercase},
		{"Abcdefgh", NeedsDigit},
		{"Abcd1234", ""},
		{"Äbcd1234", NeedsUppercase},
	}
	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if tt.want == "" {
			if err != nil {
				t.Errorf("ValidatePassword(%q) = %v, want valid", tt.password, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("ValidatePassword(%q) = nil, want %s", tt.password, tt.want)
			continue
		}
		if err.Code != tt.want {
			t.Errorf("ValidatePassword(%q) code = %s, want %s", tt.password, err.Code, tt.want)
		}
	}
}

func TestValidatePassword_Messages(t *testing.T) {
	if got := ValidatePassword("abc").Message; got != "Password must be at least 8 characters long" {
		t.Errorf("short message = %q", got)
	}
	if got := ValidatePassword("ABCDEFGH").Message; got != "Password must contain at least one lowercase letter" {
		t.Errorf("lowercase message = %q", got)
	}
}

func TestValidateConfirm(t *testing.T) {
	if err := ValidateConfirm("Abcd1234", "Abcd1235"); err == nil || err.Code != Mismatch {
		t.Fatalf("expected Mismatch, got %v", err)
	}
	if err := ValidateConfirm("Abcd1234", "Abcd1234"); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName(FirstName, "  \t"); err == nil || err.Code != Required {
		t.Fatalf("expected Required for blank first name, got %v", err)
	}
	err := ValidateName(LastName, "")
	if err == nil || err.Message != "Last name is required" {
		t.Fatalf("unexpected last name error: %v", err)
	}
	if err := ValidateName(FirstName, " Ada "); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateAvatar(t *testing.T) {
	tests := []struct {
		name string
		info *AvatarInfo
		want Code
	}{
		{"absent", nil, ""},
		{"png", &AvatarInfo{MediaType: "image/png", Size: 1024}, ""},
		{"exact limit", &AvatarInfo{MediaType: "image/jpeg", Size: MaxAvatarBytes}, ""},
		{"too large", &AvatarInfo{MediaType: "image/jpeg", Size: MaxAvatarBytes + 1}, TooLarge},
		{"pdf", &AvatarInfo{MediaType: "application/pdf", Size: 10}, WrongType},
		{"wrong type wins over size", &AvatarInfo{MediaType: "text/plain", Size: MaxAvatarBytes * 2}, WrongType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAvatar(tt.info)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil || err.Code != tt.want {
				t.Fatalf("expected %s, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateCredentials_ReportsAllErrors(t *testing.T) {
	r := ValidateCredentials(Credentials{Email: "nope", Password: "abc", ConfirmPassword: "abd"})
	if len(r) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(r), r)
	}
	f, ok := r.FirstInvalid(FocusOrder(1))
	if !ok || f != Email {
		t.Fatalf("FirstInvalid = %q, %v; want email", f, ok)
	}
}

func TestValidateCredentials_Idempotent(t *testing.T) {
	c := Credentials{Email: "a@b", Password: "Abcdefgh", ConfirmPassword: "x"}
	first := ValidateCredentials(c)
	second := ValidateCredentials(c)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %v vs %v", first, second)
	}
}

func TestValidateProfile(t *testing.T) {
	r := ValidateProfile(Profile{FirstName: "Ada"}, &AvatarInfo{MediaType: "video/mp4", Size: 1})
	if r.Valid() {
		t.Fatal("expected invalid")
	}
	if r.Get(FirstName) != nil {
		t.Errorf("first name should be valid")
	}
	if r.Get(LastName) == nil || r.Get(Avatar) == nil {
		t.Errorf("expected lastName and avatar errors, got %v", r)
	}
	f, _ := r.FirstInvalid(FocusOrder(2))
	if f != LastName {
		t.Errorf("FirstInvalid = %q, want lastName", f)
	}
}

func TestFocusOrder_AvatarNeverFocused(t *testing.T) {
	r := ValidateProfile(Profile{FirstName: "Ada", LastName: "Lovelace"}, &AvatarInfo{MediaType: "text/plain"})
	if _, ok := r.FirstInvalid(FocusOrder(2)); ok {
		t.Fatal("avatar error must not produce a focus target")
	}
	if r.Valid() {
		t.Fatal("avatar error should still make the step invalid")
	}
}

func TestResultMessages_Order(t *testing.T) {
	r := ValidateProfile(Profile{}, &AvatarInfo{MediaType: "text/plain"})
	got := r.Messages(FocusOrder(2))
	want := []string{
		"firstName: First name is required",
		"lastName: Last name is required",
		"avatar: Please select a valid image file",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Messages = %v, want %v", got, want)
	}
}

func TestStepOf(t *testing.T) {
	for _, step := range []int{1, 2} {
		for _, f := range StepFields(step) {
			if StepOf(f) != step {
				t.Errorf("StepOf(%s) = %d, want %d", f, StepOf(f), step)
			}
		}
	}
	if StepFields(3) != nil {
		t.Error("review step should own no fields")
	}
}
