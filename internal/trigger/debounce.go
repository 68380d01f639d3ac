// Package trigger turns a stream of input edits into settled query values.
package trigger

import (
	"sync"
	"time"
)

// Debouncer holds at most one pending timer. Every Input replaces the pending
// timer, so only the latest value can fire. A value equal to the last one
// that fired is dropped.
type Debouncer struct {
	mu        sync.Mutex
	delay     time.Duration
	timer     *time.Timer
	gen       uint64
	pending   string
	armed     bool
	last      string
	onSettled func(string)
}

// New creates a debouncer that calls onSettled delay after the last Input.
// onSettled runs on the timer's goroutine.
func New(delay time.Duration, onSettled func(string)) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{
		delay:     delay,
		onSettled: onSettled,
	}
}

// Input records the current input value and re-arms the timer
func (d *Debouncer) Input(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.pending = value
	d.armed = true
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(gen)
	})
}

// Flush fires the pending value now instead of waiting for the timer
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.gen
	d.mu.Unlock()

	d.fire(gen)
}

// Stop drops the pending value, if any
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.armed = false
}

// Last returns the last value passed to onSettled
func (d *Debouncer) Last() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// Pending reports whether a value is waiting to fire
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// A newer Input or a Stop superseded this timer after it had already
	// expired.
	if gen != d.gen || !d.armed {
		d.mu.Unlock()
		return
	}
	d.armed = false
	d.timer = nil

	value := d.pending
	if value == d.last {
		d.mu.Unlock()
		return
	}
	d.last = value
	d.mu.Unlock()

	d.onSettled(value)
}
