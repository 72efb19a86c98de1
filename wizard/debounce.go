package wizard

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period before live validation runs.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer runs at most one pending task per key. Scheduling a task for a
// key cancels the one still waiting for that key.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	gen     map[string]uint64
	stopped bool
}

// NewDebouncer creates a Debouncer. A delay <= 0 runs tasks immediately.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
		gen:    make(map[string]uint64),
	}
}

// Schedule arms fn to run after the quiet period for key.
func (d *Debouncer) Schedule(key string, fn func()) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if t, ok := d.timers[key]; ok {
		t.Stop()
		delete(d.timers, key)
	}
	d.gen[key]++
	if d.delay <= 0 {
		d.mu.Unlock()
		fn()
		return
	}

	gen := d.gen[key]
	d.timers[key] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// a timer that fired while being replaced must not run
		if d.stopped || d.gen[key] != gen {
			d.mu.Unlock()
			return
		}
		delete(d.timers, key)
		d.mu.Unlock()
		fn()
	})
	d.mu.Unlock()
}

// Cancel drops the pending task for key, if any.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[key]; ok {
		t.Stop()
		delete(d.timers, key)
	}
	d.gen[key]++
}

// Pending reports whether a task for key is waiting to run.
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.timers[key]
	return ok
}

// Stop cancels every pending task. Later calls to Schedule are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
}
