package scrollingspace

import (
	"time"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
)

// Gesture is the live state of a view-offset touch/touchpad gesture.
type Gesture struct {
	IsTouchpad           bool
	StationaryViewOffset float64
	CurrentViewOffset    float64
	Tracker              *SwipeTracker
	DndScrollAnim        clock.Animation
}

// swipeSample is one (dx, t) sample pushed into a SwipeTracker.
type swipeSample struct {
	dx float64
	t  time.Duration
}

// SwipeTracker accumulates gesture deltas and estimates velocity from a
// short trailing window of samples, the same shape of bookkeeping a
// touchpad swipe-to-scroll gesture needs regardless of platform.
type SwipeTracker struct {
	pos     float64
	samples []swipeSample
}

// NewSwipeTracker starts a tracker at position 0.
func NewSwipeTracker() *SwipeTracker {
	return &SwipeTracker{}
}

// Push records a new delta at time t.
func (s *SwipeTracker) Push(dx float64, t time.Duration) {
	s.pos += dx
	s.samples = append(s.samples, swipeSample{dx: dx, t: t})
	// Keep only the last 100ms of samples for velocity estimation.
	cutoff := t - 100*time.Millisecond
	i := 0
	for i < len(s.samples) && s.samples[i].t < cutoff {
		i++
	}
	if i > 0 {
		s.samples = s.samples[i:]
	}
}

// Pos returns the tracker's accumulated position (sum of all pushed
// deltas since construction).
func (s *SwipeTracker) Pos() float64 { return s.pos }

// Velocity estimates units/second from the trailing sample window.
func (s *SwipeTracker) Velocity() float64 {
	if len(s.samples) < 2 {
		return 0
	}
	first := s.samples[0]
	last := s.samples[len(s.samples)-1]
	dt := (last.t - first.t).Seconds()
	if dt <= 0 {
		return 0
	}
	var sum float64
	for _, s := range s.samples[1:] {
		sum += s.dx
	}
	return sum / dt
}

// ProjectedEnd estimates where the gesture would come to rest given its
// current velocity and a simple exponential-decay deceleration model
// (friction-like coefficient), used to pick a snap target before the
// deceleration animation is actually constructed.
func (s *SwipeTracker) ProjectedEnd(decayPerSecond float64) float64 {
	v := s.Velocity()
	if decayPerSecond <= 0 {
		decayPerSecond = 4
	}
	return s.pos + v/decayPerSecond
}
