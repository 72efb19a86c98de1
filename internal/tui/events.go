package tui

import (
	"context"
	"sync"

	"github.com/initializ/signup/wizard"
)

// eventQueue carries wizard notifications to the UI loop. Hooks fire both
// inside Update and from background goroutines, so push never blocks and
// never drops; the queue grows instead.
type eventQueue struct {
	mu     sync.Mutex
	items  []wizard.Event
	notify chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{notify: make(chan struct{}, 1)}
}

func (q *eventQueue) push(ev wizard.Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// tryPop returns the oldest event without waiting.
func (q *eventQueue) tryPop() (wizard.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return wizard.Event{}, false
	}
	ev := q.items[0]
	q.items[0] = wizard.Event{}
	q.items = q.items[1:]
	return ev, true
}

// next waits for the oldest event or ctx cancellation.
func (q *eventQueue) next(ctx context.Context) (wizard.Event, bool) {
	for {
		if ev, ok := q.tryPop(); ok {
			return ev, true
		}
		select {
		case <-q.notify:
		case <-ctx.Done():
			return wizard.Event{}, false
		}
	}
}

// len reports queued events.
func (q *eventQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
