// Package submission records completed registrations locally. Nothing is
// sent over the network: a record is checked against the registration
// schema, logged, and optionally appended to a JSON-lines file.
package submission

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/initializ/signup/validate"
	"github.com/initializ/signup/wizard"
)

// Redacted replaces the password in every record.
const Redacted = "[redacted]"

// Record is the stored form of a submitted registration.
type Record struct {
	ID          string        `json:"id"`
	SubmittedAt time.Time     `json:"submitted_at"`
	Email       string        `json:"email"`
	Password    string        `json:"password,omitempty"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	Avatar      *AvatarRecord `json:"avatar,omitempty"`
}

// AvatarRecord describes the submitted avatar without its contents.
type AvatarRecord struct {
	Name         string `json:"name"`
	MediaType    string `json:"media_type"`
	Size         int64  `json:"size"`
	PreviewBytes int    `json:"preview_bytes,omitempty"`
}

// NewRecord builds a record from final wizard data.
func NewRecord(data wizard.FinalData) Record {
	r := Record{
		ID:          uuid.NewString(),
		SubmittedAt: data.SubmittedAt.UTC(),
		Email:       data.Email,
		FirstName:   strings.TrimSpace(data.FirstName),
		LastName:    strings.TrimSpace(data.LastName),
	}
	if data.Password != "" {
		r.Password = Redacted
	}
	if data.Avatar != nil {
		r.Avatar = &AvatarRecord{
			Name:         data.Avatar.Name,
			MediaType:    data.Avatar.MediaType,
			Size:         data.Avatar.Size,
			PreviewBytes: len(data.AvatarPreview),
		}
	}
	return r
}

// Sink receives submitted registrations.
type Sink struct {
	mu  sync.Mutex
	log *zap.Logger
	out io.Writer
}

// NewSink creates a Sink. out may be nil to only log.
func NewSink(log *zap.Logger, out io.Writer) *Sink {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sink{log: log, out: out}
}

// Record validates, logs and stores the submission.
func (s *Sink) Record(data wizard.FinalData) (Record, error) {
	rec := NewRecord(data)

	raw, err := json.Marshal(rec)
	if err != nil {
		return Record{}, fmt.Errorf("encoding registration record: %w", err)
	}

	errs, err := validate.ValidateRecord(raw)
	if err != nil {
		return Record{}, err
	}
	if len(errs) > 0 {
		return Record{}, fmt.Errorf("registration record failed schema validation: %s", strings.Join(errs, "; "))
	}

	fields := []zap.Field{
		zap.String("id", rec.ID),
		zap.String("email", rec.Email),
		zap.String("first_name", rec.FirstName),
		zap.String("last_name", rec.LastName),
		zap.Time("submitted_at", rec.SubmittedAt),
	}
	if rec.Avatar != nil {
		fields = append(fields,
			zap.String("avatar", rec.Avatar.Name),
			zap.Int64("avatar_size", rec.Avatar.Size),
		)
	}
	s.log.Info("registration submitted", fields...)

	if s.out == nil {
		return rec, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.out.Write(append(raw, '\n')); err != nil {
		return Record{}, fmt.Errorf("writing registration record: %w", err)
	}
	return rec, nil
}

// OpenFile opens path for appending records, creating it if needed.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening submissions file %s: %w", path, err)
	}
	return f, nil
}
