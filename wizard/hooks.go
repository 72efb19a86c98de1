package wizard

import (
	"sync"

	"github.com/initializ/signup/validate"
)

// EventKind identifies an outbound notification.
type EventKind int

const (
	StepChanged EventKind = iota
	ValidationChanged
	AvatarPreviewReady
	AvatarDecodeFailed
	Submitted
	SubmitRejected
)

func (k EventKind) String() string {
	switch k {
	case StepChanged:
		return "step_changed"
	case ValidationChanged:
		return "validation_changed"
	case AvatarPreviewReady:
		return "avatar_preview_ready"
	case AvatarDecodeFailed:
		return "avatar_decode_failed"
	case Submitted:
		return "submitted"
	case SubmitRejected:
		return "submit_rejected"
	}
	return "unknown"
}

// Event carries the data for a notification. Only the fields relevant to
// Kind are set.
type Event struct {
	Kind EventKind

	// StepChanged, SubmitRejected
	Step  int
	Focus validate.Field

	// ValidationChanged; Error is nil when the field became valid.
	Field validate.Field
	Error *validate.FieldError

	// AvatarPreviewReady
	Preview string

	// AvatarDecodeFailed
	Err error

	// Submitted
	Data *FinalData
}

// Hook is a function invoked for an event.
type Hook func(ev Event)

// Hooks manages registered hooks for each event kind.
type Hooks struct {
	mu    sync.RWMutex
	hooks map[EventKind][]Hook
}

// NewHooks creates an empty Hooks registry.
func NewHooks() *Hooks {
	return &Hooks{
		hooks: make(map[EventKind][]Hook),
	}
}

// On adds a hook for kind. Hooks fire in registration order.
func (h *Hooks) On(kind EventKind, hook Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks[kind] = append(h.hooks[kind], hook)
}

// OnAny adds hook for every event kind.
func (h *Hooks) OnAny(hook Hook) {
	for k := StepChanged; k <= SubmitRejected; k++ {
		h.On(k, hook)
	}
}

// Fire invokes all hooks registered for ev.Kind in order.
func (h *Hooks) Fire(ev Event) {
	h.mu.RLock()
	hooks := h.hooks[ev.Kind]
	h.mu.RUnlock()

	for _, hook := range hooks {
		hook(ev)
	}
}
