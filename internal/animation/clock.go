package animation

import "time"

// Clock is the time source animations sample from.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Tests use it to step animations
// deterministically.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now implements Clock.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward and returns the new time.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}
