// Package watcher reloads files on change, coalescing bursts of writes.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDuration is long enough to absorb an editor's
// write-rename-chmod sequence.
const DefaultDebounceDuration = 200 * time.Millisecond

// Debouncer runs fire once after Trigger stops being called for the
// configured duration.
type Debouncer struct {
	duration time.Duration
	fire     func()

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewDebouncer creates a Debouncer. A zero duration uses DefaultDebounceDuration.
func NewDebouncer(duration time.Duration, fire func()) *Debouncer {
	if duration <= 0 {
		duration = DefaultDebounceDuration
	}
	return &Debouncer{duration: duration, fire: fire}
}

// Trigger (re)starts the quiet period.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// A timer that already fired can race with a newer Trigger.
		stale := gen != d.gen
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()

		if !stale {
			d.fire()
		}
	})
}

// Stop drops any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
