// Package ratelimit provides the two call-rate primitives the layout
// engine schedules environment work with: a trailing-edge debouncer for
// bursty signals (resize storms) and a leading-edge throttler for signals
// that should run at most once per cooldown window.
//
// Callbacks carry their own arguments by closure; a debounced burst runs
// the closure passed to the final Trigger in that burst.
package ratelimit

import (
	"sync"
	"time"
)

// DefaultDebounceWindow is the debounce window used when none is given.
const DefaultDebounceWindow = 150 * time.Millisecond

// DefaultThrottleWindow is the throttle window used when none is given.
const DefaultThrottleWindow = time.Second

// Debouncer coalesces a burst of Trigger calls into a single callback run,
// scheduled one window after the last call in the burst.
type Debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewDebouncer creates a Debouncer. A zero window falls back to
// DefaultDebounceWindow.
func NewDebouncer(window time.Duration) *Debouncer {
	if window == 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn to run after the debounce window. A Trigger before
// the window elapses cancels the pending run and schedules fn anew, so
// only the final call in a burst executes.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// Stop() can miss a timer that has already fired; the sequence
		// check keeps a superseded callback from running anyway.
		stale := seq != d.seq
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()

		if stale {
			return
		}
		fn()
	})
}

// Cancel drops any pending run.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Duration returns the debounce window.
func (d *Debouncer) Duration() time.Duration { return d.window }

// Throttler runs the first Trigger in a window immediately and drops the
// rest. A new window opens as soon as the previous one elapses.
type Throttler struct {
	window time.Duration

	mu    sync.Mutex
	until time.Time
}

// NewThrottler creates a Throttler. A zero window falls back to
// DefaultThrottleWindow.
func NewThrottler(window time.Duration) *Throttler {
	if window == 0 {
		window = DefaultThrottleWindow
	}
	return &Throttler{window: window}
}

// Trigger runs fn synchronously if no window is open and opens one;
// otherwise the call is dropped. It reports whether fn ran.
func (t *Throttler) Trigger(fn func()) bool {
	t.mu.Lock()
	now := time.Now()
	if now.Before(t.until) {
		t.mu.Unlock()
		return false
	}
	t.until = now.Add(t.window)
	t.mu.Unlock()

	fn()
	return true
}

// Cancel closes the current window so the next Trigger runs immediately.
func (t *Throttler) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.until = time.Time{}
}

// Duration returns the throttle window.
func (t *Throttler) Duration() time.Duration { return t.window }
