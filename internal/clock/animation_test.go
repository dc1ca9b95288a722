package clock

import (
	"testing"
	"time"
)

func TestEasingValueAndDone(t *testing.T) {
	a := NewEasing(0, 100*time.Millisecond, 0, 10, Linear)
	a.SetCurrentTime(0)
	if v := a.Value(); v != 0 {
		t.Errorf("expected 0 at start, got %v", v)
	}
	a.SetCurrentTime(50 * time.Millisecond)
	if v := a.Value(); v != 5 {
		t.Errorf("expected 5 at midpoint, got %v", v)
	}
	if a.IsDone() {
		t.Fatal("should not be done at midpoint")
	}
	a.SetCurrentTime(100 * time.Millisecond)
	if !a.IsDone() {
		t.Fatal("expected done at duration")
	}
	if v := a.Value(); v != 10 {
		t.Errorf("expected 10 at end, got %v", v)
	}
}

func TestEasingOffsetPreservesTrajectory(t *testing.T) {
	a := NewEasing(0, 100*time.Millisecond, 0, 10, Linear)
	a.SetCurrentTime(50 * time.Millisecond)
	before := a.Value()
	a.Offset(3)
	if got := a.Value(); got != before+3 {
		t.Errorf("expected offset value %v, got %v", before+3, got)
	}
	if a.Target() != 13 {
		t.Errorf("expected target offset to 13, got %v", a.Target())
	}
}

func TestEasingClampsOutOfRangeTime(t *testing.T) {
	a := NewEasing(10*time.Millisecond, 100*time.Millisecond, 0, 10, Linear)
	a.SetCurrentTime(0)
	if v := a.Value(); v != 0 {
		t.Errorf("expected clamp to 0 progress, got %v", v)
	}
	a.SetCurrentTime(time.Second)
	if v := a.Value(); v != 10 {
		t.Errorf("expected clamp to full progress, got %v", v)
	}
}

func TestSpringSettles(t *testing.T) {
	s := NewSpring(0, 100, 0, 1.0, 300, 0.01)
	var now time.Duration
	for i := 0; i < 2000 && !s.IsDone(); i++ {
		now += 2 * time.Millisecond
		s.SetCurrentTime(now)
	}
	if !s.IsDone() {
		t.Fatal("expected spring to settle within budget")
	}
	if v := s.Value(); v != 100 {
		t.Errorf("expected settled value 100, got %v", v)
	}
}

func TestSpringInitialVelocityMovesFirstStep(t *testing.T) {
	s := NewSpring(0, 0, 50, 1.0, 300, 0.01)
	s.SetCurrentTime(0)
	s.SetCurrentTime(10 * time.Millisecond)
	if s.Value() <= 0 {
		t.Errorf("expected positive displacement from positive initial velocity, got %v", s.Value())
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	curve := CubicBezier(0.25, 0.1, 0.25, 1.0)
	if got := curve(0); got != 0 {
		t.Errorf("expected curve(0)=0, got %v", got)
	}
	if got := curve(1); got != 1 {
		t.Errorf("expected curve(1)=1, got %v", got)
	}
}

func TestClockAdvanceAndSlowdown(t *testing.T) {
	c := New()
	c.SetSlowdown(0.5)
	c.Advance(100 * time.Millisecond)
	if c.Now() != 50*time.Millisecond {
		t.Errorf("expected slowdown to halve advance, got %v", c.Now())
	}
}

func TestClockOffset(t *testing.T) {
	c := New()
	c.SetOffset(time.Second)
	if c.Now() != time.Second {
		t.Errorf("expected offset to apply immediately, got %v", c.Now())
	}
	c.Advance(10 * time.Millisecond)
	if c.Now() != time.Second+10*time.Millisecond {
		t.Errorf("unexpected now after advance: %v", c.Now())
	}
}
