// Package scrollingspace implements ScrollingSpace: the
// ordered sequence of columns on one workspace, its view-offset state
// machine, interactive resize, and snap-point computation. This is the
// hardest single component in the engine.
package scrollingspace

import (
	"time"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
)

// ViewOffset is a sealed sum type: Static, Animation, or Gesture. It is
// deliberately not flattened into a pair of booleans — the
// three states are mutually exclusive and each carries different data, so
// a type switch on the concrete type is the only way to inspect it.
type ViewOffset interface {
	isViewOffset()
	// Current is the offset this state currently resolves to.
	Current() float64
}

// StaticOffset: the view is at rest at Value.
type StaticOffset struct {
	Value float64
}

func (StaticOffset) isViewOffset()          {}
func (s StaticOffset) Current() float64     { return s.Value }

// AnimationOffset: the view is animating toward Anim.Target().
type AnimationOffset struct {
	Anim clock.Animation
}

func (AnimationOffset) isViewOffset()       {}
func (a AnimationOffset) Current() float64  { return a.Anim.Value() }
func (a AnimationOffset) Target() float64   { return a.Anim.Target() }

// GestureOffset: the view offset is driven by an in-progress touch/touchpad
// gesture. Current = gesture.CurrentViewOffset + (gesture.DndScrollAnim.Value() if
// set, used for the DnD auto-scroll correction).
type GestureOffset struct {
	Gesture *Gesture
}

func (GestureOffset) isViewOffset() {}
func (g GestureOffset) Current() float64 {
	v := g.Gesture.CurrentViewOffset
	if g.Gesture.DndScrollAnim != nil {
		v += g.Gesture.DndScrollAnim.Value()
	}
	return v
}

// target returns the settled value a ViewOffset is heading toward: its own
// value for Static, the animation's target for Animation, and the
// gesture's current value for Gesture (a gesture has no fixed target until
// it ends).
func target(v ViewOffset) float64 {
	switch o := v.(type) {
	case StaticOffset:
		return o.Value
	case AnimationOffset:
		return o.Target()
	case GestureOffset:
		return o.Current()
	default:
		return 0
	}
}

// advance moves an Animation-kind ViewOffset forward in time, collapsing a
// finished animation to Static at the next frame tick. Gesture animations
// (the DnD correction) are advanced but never auto-collapse the Gesture
// state itself — only ViewOffsetGestureEnd transitions out of Gesture.
func advance(v ViewOffset, now time.Duration) ViewOffset {
	switch o := v.(type) {
	case AnimationOffset:
		o.Anim.SetCurrentTime(now)
		if o.Anim.IsDone() {
			return StaticOffset{Value: o.Anim.Target()}
		}
		return o
	case GestureOffset:
		if o.Gesture.DndScrollAnim != nil {
			o.Gesture.DndScrollAnim.SetCurrentTime(now)
			if o.Gesture.DndScrollAnim.IsDone() {
				o.Gesture.CurrentViewOffset += o.Gesture.DndScrollAnim.Value()
				o.Gesture.DndScrollAnim = nil
			}
		}
		return o
	default:
		return v
	}
}
