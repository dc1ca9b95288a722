// Package geometry holds the plain size/point/rect primitives shared across
// the layout tree. None of these types carry behavior beyond arithmetic —
// the algorithms that interpret them live in their owning packages.
package geometry

import "math"

// Size is a width/height pair in logical pixels.
type Size struct {
	W, H float64
}

// Point is an x/y logical-pixel position.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Edges identifies which edges of a window an interactive resize grabs.
type Edges struct {
	Left, Right, Top, Bottom bool
}

// Any reports whether at least one edge is set.
func (e Edges) Any() bool { return e.Left || e.Right || e.Top || e.Bottom }

// Clamp restricts v to [lo, hi]. If hi < lo, hi is ignored (no upper bound).
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if hi >= lo && v > hi {
		v = hi
	}
	return v
}

// ClampInt is the integer form of Clamp.
func ClampInt(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if hi >= lo && v > hi {
		v = hi
	}
	return v
}

// Round rounds to the nearest integer logical pixel, matching the tile
// sizing algorithm's "rounded to integer logical pixels" step.
func Round(v float64) float64 {
	return math.Round(v)
}
