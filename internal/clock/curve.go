package clock

import "math"

// Curve maps a clamped progress value in [0,1] to an eased progress value,
// also expected to land in (or very near) [0,1].
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseOutCubic is a pure ease-out curve, used for window-open/resize
// animations.
func EaseOutCubic(t float64) float64 {
	p := t - 1
	return p*p*p + 1
}

// EaseOutQuad is a gentler ease-out.
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutExpo decelerates sharply near the end, giving a snappier start
// than a cubic's.
func EaseOutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// CubicBezier returns a curve sampled from a cubic bezier with control
// points (0,0), (a,b), (c,d), (1,1), matching CSS's cubic-bezier() timing
// functions. x is solved numerically since the bezier is parametric.
func CubicBezier(a, b, c, d float64) Curve {
	bezierComponent := func(p1, p2, t float64) float64 {
		u := 1 - t
		return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
	}
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		lo, hi := 0.0, 1.0
		var t float64
		for i := 0; i < 24; i++ {
			t = (lo + hi) / 2
			cx := bezierComponent(a, c, t)
			if cx < x {
				lo = t
			} else {
				hi = t
			}
		}
		return bezierComponent(b, d, t)
	}
}
