// Package debounce delays a call until input has been quiet for a fixed
// interval (trailing edge)
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs only the most recently triggered function, once the delay
// has elapsed without another trigger
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// New creates a debouncer. A non-positive delay runs triggers immediately.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, replacing any pending call
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.delay <= 0 {
		d.timer = nil
		go fn()
		return
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending call and ignores future triggers. It reports
// whether a pending call was cancelled.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer == nil {
		return false
	}
	cancelled := d.timer.Stop()
	d.timer = nil
	return cancelled
}
