// Package clock provides the monotonic time source and animation curves
// shared by every layer of the layout tree.
package clock

import "time"

// Clock yields a monotonic time base that can be offset and slowed down for
// testing and for the global animation-slowdown config knob. It never reads
// the OS clock directly outside of New, which keeps advance_animations
// deterministic in tests.
type Clock struct {
	now      time.Duration
	offset   time.Duration
	slowdown float64
}

// New returns a Clock starting at t=0 with no offset and slowdown 1.0.
func New() *Clock {
	return &Clock{slowdown: 1.0}
}

// Now returns the clock's current time, including offset.
func (c *Clock) Now() time.Duration {
	return c.now + c.offset
}

// SetOffset shifts every future Now() by delta, without moving the
// underlying advance position. Used by tests that want a Clock starting at
// a specific wall-clock-like value.
func (c *Clock) SetOffset(delta time.Duration) {
	c.offset = delta
}

// Slowdown returns the current global animation-slowdown multiplier.
func (c *Clock) Slowdown() float64 {
	if c.slowdown <= 0 {
		return 1.0
	}
	return c.slowdown
}

// SetSlowdown sets the global animation-slowdown multiplier. Values <= 0
// are treated as 1.0 (disabled).
func (c *Clock) SetSlowdown(f float64) {
	c.slowdown = f
}

// Advance moves the clock forward by delta, scaled by the current
// slowdown factor, and returns the new Now(). The compositor's frame tick
// calls this once per frame before walking the tree with SetCurrentTime.
func (c *Clock) Advance(delta time.Duration) time.Duration {
	if delta > 0 {
		c.now += time.Duration(float64(delta) * c.Slowdown())
	}
	return c.Now()
}

// SetNow pins the clock to an absolute time, ignoring slowdown. Used by
// tests that drive advance_animations with explicit timestamps.
func (c *Clock) SetNow(t time.Duration) {
	c.now = t - c.offset
}
