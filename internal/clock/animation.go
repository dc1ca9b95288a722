package clock

import (
	"math"
	"time"
)

// Animation is one value-over-time trajectory: either an eased interpolation
// between two fixed endpoints, or a damped spring settling on a target. Both
// variants support offsetting (shifting the whole trajectory by a delta
// without disturbing remaining motion) and starting from a nonzero initial
// velocity, needed for gesture hand-off.
type Animation interface {
	// SetCurrentTime advances the animation's notion of "now". t is
	// absolute clock time, not elapsed time.
	SetCurrentTime(t time.Duration)
	// Value returns the animation's current interpolated value.
	Value() float64
	// Target returns the value the animation is settling toward.
	Target() float64
	// IsDone reports whether the animation has reached its target and can
	// be retired.
	IsDone() bool
	// Offset shifts both endpoints (or, for springs, the current value and
	// target) by delta, preserving the remaining trajectory shape.
	Offset(delta float64)
	// Velocity returns the current rate of change, used when an animation
	// must be superseded by another starting from the same velocity.
	Velocity() float64
}

// Easing is a from->to interpolation over a fixed duration following curve.
type Easing struct {
	from, to   float64
	start      time.Duration
	duration   time.Duration
	curve      Curve
	currentT   time.Duration
	lastValue  float64
	hasLastVal bool
}

// NewEasing builds an Easing animation starting at clock time `start`,
// running for `duration`, from `from` to `to`, shaped by `curve`. A
// nonzero duration is required; callers that want an instant jump should
// skip constructing an animation entirely and assign the value directly.
func NewEasing(start time.Duration, duration time.Duration, from, to float64, curve Curve) *Easing {
	if curve == nil {
		curve = Linear
	}
	return &Easing{from: from, to: to, start: start, duration: duration, curve: curve, currentT: start}
}

func (e *Easing) progress() float64 {
	if e.duration <= 0 {
		return 1
	}
	p := float64(e.currentT-e.start) / float64(e.duration)
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}

func (e *Easing) SetCurrentTime(t time.Duration) {
	e.currentT = t
	e.lastValue = e.from + (e.to-e.from)*e.curve(e.progress())
	e.hasLastVal = true
}

func (e *Easing) Value() float64 {
	if !e.hasLastVal {
		return e.from + (e.to-e.from)*e.curve(e.progress())
	}
	return e.lastValue
}

func (e *Easing) Target() float64 { return e.to }

func (e *Easing) IsDone() bool { return e.progress() >= 1 }

func (e *Easing) Offset(delta float64) {
	e.from += delta
	e.to += delta
	e.lastValue += delta
}

// Velocity approximates the instantaneous rate of change via the curve's
// local slope, used only when a gesture supersedes an in-flight easing
// animation (a rare path; easing->gesture handoff is best-effort).
func (e *Easing) Velocity() float64 {
	if e.duration <= 0 || e.IsDone() {
		return 0
	}
	const dt = time.Millisecond
	p0 := e.progress()
	e.currentT += dt
	p1 := e.progress()
	e.currentT -= dt
	dv := (e.to - e.from) * (e.curve(p1) - e.curve(p0))
	return dv / dt.Seconds()
}

// Spring integrates a damped harmonic oscillator: stiffness k, damping
// ratio zeta, settling on `target` once displacement and velocity both
// fall under epsilon. There is no closed form used here deliberately —
// the loop matches how every other per-frame numerical system in this
// repo (the tiling algorithm, the gesture tracker) is advanced
// incrementally rather than solved analytically.
type Spring struct {
	target       float64
	value        float64
	velocity     float64
	dampingRatio float64
	stiffness    float64
	epsilon      float64
	lastT        time.Duration
	started      bool
}

// NewSpring builds a Spring settling on target, starting at `value` with
// `initialVelocity` (units/second), given damping ratio, stiffness and the
// epsilon below which both |value-target| and |velocity| must fall before
// IsDone reports true.
func NewSpring(value, target, initialVelocity, dampingRatio, stiffness, epsilon float64) *Spring {
	if epsilon <= 0 {
		epsilon = 0.001
	}
	if stiffness <= 0 {
		stiffness = 100
	}
	return &Spring{
		target: target, value: value, velocity: initialVelocity,
		dampingRatio: dampingRatio, stiffness: stiffness, epsilon: epsilon,
	}
}

func (s *Spring) SetCurrentTime(t time.Duration) {
	if !s.started {
		s.lastT = t
		s.started = true
		return
	}
	dt := (t - s.lastT).Seconds()
	s.lastT = t
	if dt <= 0 {
		return
	}
	// Semi-implicit Euler integration of x'' = -k*(x-target) - 2*zeta*sqrt(k)*x'
	const steps = 4
	h := dt / steps
	for i := 0; i < steps; i++ {
		disp := s.value - s.target
		accel := -s.stiffness*disp - 2*s.dampingRatio*math.Sqrt(s.stiffness)*s.velocity
		s.velocity += accel * h
		s.value += s.velocity * h
	}
}

func (s *Spring) Value() float64 {
	if s.IsDone() {
		return s.target
	}
	return s.value
}

func (s *Spring) Target() float64 { return s.target }

func (s *Spring) IsDone() bool {
	return math.Abs(s.value-s.target) < s.epsilon && math.Abs(s.velocity) < s.epsilon
}

func (s *Spring) Offset(delta float64) {
	s.value += delta
	s.target += delta
}

func (s *Spring) Velocity() float64 { return s.velocity }
