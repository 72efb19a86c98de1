package validate

import (
	"strings"
	"testing"
)

func TestValidateRecord_Valid(t *testing.T) {
	data := []byte(`{
		"id": "0b0e6c8e-7c1f-4d4e-9a51-2f1f0b1c9d10",
		"submitted_at": "2026-10-18T09:30:00Z",
		"email": "ada@example.org",
		"password": "[redacted]",
		"first_name": "Ada",
		"last_name": "Lovelace",
		"avatar": {"name": "ada.png", "media_type": "image/png", "size": 2048, "preview_bytes": 2754}
	}`)
	errs, err := ValidateRecord(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("expected no validation errors, got: %v", errs)
	}
}

func TestValidateRecord_MissingFields(t *testing.T) {
	errs, err := ValidateRecord([]byte(`{"id": "x", "email": "ada@example.org"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) == 0 {
		t.Fatal("expected validation errors")
	}
	joined := strings.Join(errs, "\n")
	for _, want := range []string{"submitted_at", "first_name", "last_name"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected an error mentioning %q, got: %s", want, joined)
		}
	}
}

func TestValidateRecord_PlainPasswordRejected(t *testing.T) {
	data := []byte(`{
		"id": "0b0e6c8e-7c1f-4d4e-9a51-2f1f0b1c9d10",
		"submitted_at": "2026-10-18T09:30:00Z",
		"email": "ada@example.org",
		"password": "Abcd1234",
		"first_name": "Ada",
		"last_name": "Lovelace"
	}`)
	errs, err := ValidateRecord(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) == 0 {
		t.Fatal("expected an unredacted password to fail the schema")
	}
}

func TestValidateRecord_InvalidJSON(t *testing.T) {
	if _, err := ValidateRecord([]byte(`{not json`)); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestValidateRecord_UnicodeSpaceInEmail(t *testing.T) {
	data := []byte(`{
		"id": "0b0e6c8e-7c1f-4d4e-9a51-2f1f0b1c9d10",
		"submitted_at": "2026-10-18T09:30:00Z",
		"email": "ada\u00a0lovelace@example.org",
		"first_name": "Ada",
		"last_name": "Lovelace"
	}`)
	errs, err := ValidateRecord(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) == 0 {
		t.Fatal("expected a no-break space in the email to fail the schema")
	}
}
