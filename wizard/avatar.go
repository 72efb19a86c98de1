package wizard

import (
	"context"

	"go.uber.org/zap"

	"github.com/initializ/signup/avatar"
	"github.com/initializ/signup/validate"
)

// SelectAvatar handles a file selection. The blob is validated right away;
// an invalid blob is reported as a *ValidationError and leaves any committed
// avatar in place. A valid blob is decoded in the background. When decoding
// finishes the avatar and its preview are committed together and the
// returned channel receives nil, or the decode error if it failed.
//
// The commit ignores which step is displayed and, between selections, the
// last finished decode wins. A decode that finishes after ClearAvatar is
// discarded and the channel receives ErrAvatarCleared. A nil blob is a no-op.
func (s *State) SelectAvatar(ctx context.Context, blob *avatar.Blob) (<-chan error, error) {
	done := make(chan error, 1)
	if blob == nil {
		done <- nil
		return done, nil
	}

	s.mu.Lock()
	if s.submitted {
		s.mu.Unlock()
		return nil, ErrSubmitted
	}
	s.live.Avatar = blob
	epoch := s.avatarEpoch
	s.mu.Unlock()

	fe := validate.ValidateAvatar(blob.Info())
	s.hooks.Fire(Event{Kind: ValidationChanged, Field: validate.Avatar, Error: fe})
	if fe != nil {
		s.log.Debug("avatar rejected", zap.String("name", blob.Name), zap.String("reason", string(fe.Code)))
		return nil, newValidationError(2, validate.Result{validate.Avatar: fe})
	}

	go s.ingest(ctx, blob, epoch, done)
	return done, nil
}

func (s *State) ingest(ctx context.Context, blob *avatar.Blob, epoch uint64, done chan<- error) {
	preview, err := s.decode(ctx, blob)
	if err != nil {
		s.log.Warn("avatar decode failed", zap.String("name", blob.Name), zap.Error(err))
		s.hooks.Fire(Event{Kind: AvatarDecodeFailed, Field: validate.Avatar, Err: err})
		done <- err
		return
	}

	s.mu.Lock()
	if s.avatarEpoch != epoch {
		s.mu.Unlock()
		s.log.Debug("avatar discarded after clear", zap.String("name", blob.Name))
		done <- ErrAvatarCleared
		return
	}
	s.fields.Avatar = blob
	s.fields.AvatarPreview = preview
	s.mu.Unlock()

	s.log.Debug("avatar committed", zap.String("name", blob.Name), zap.Int64("size", blob.Size))
	s.hooks.Fire(Event{Kind: AvatarPreviewReady, Field: validate.Avatar, Preview: preview})
	done <- nil
}

// ClearAvatar removes the selected and committed avatar together. Decodes
// still running are not committed.
func (s *State) ClearAvatar() {
	s.mu.Lock()
	s.avatarEpoch++
	s.live.Avatar = nil
	s.fields.Avatar = nil
	s.fields.AvatarPreview = ""
	s.mu.Unlock()

	s.hooks.Fire(Event{Kind: ValidationChanged, Field: validate.Avatar})
}
