package scrollingspace

import "github.com/Gaurav-Gosain/niri-layout/internal/options"

// renderX is the column's absolute left-edge x position as currently
// rendered: its workingArea-relative x plus the current view offset. View
// offset convention: positive offset moves content right relative to the
// camera.
func (s *ScrollingSpace) renderX(colIdx int) float64 {
	return s.ColumnX(colIdx) + s.viewOffset.Current()
}

// shouldCenter reports whether the active column should be kept centered,
// honoring center_focused_column and always_center_single_column.
func (s *ScrollingSpace) shouldCenter(colIdx int) bool {
	if len(s.columns) <= 1 && s.opts.Layout.AlwaysCenterSingleColumn {
		return true
	}
	switch s.opts.Layout.CenterFocusedColumn {
	case options.CenterAlways:
		return true
	case options.CenterOnOverflow:
		colW := s.data[colIdx].width
		return colW <= s.workingArea.W
	default:
		return false
	}
}

// idealViewOffsetForColumn computes the view offset that would bring
// column idx into its "ideal" resting position: centered when centering
// applies (left-aligned if the column is wider than the working area),
// left-aligned to the working-area's left edge otherwise.
func (s *ScrollingSpace) idealViewOffsetForColumn(idx int) float64 {
	if idx < 0 || idx >= len(s.columns) {
		return s.viewOffset.Current()
	}
	colX := s.ColumnX(idx)
	colW := s.data[idx].width
	if s.columns[idx].IsPendingFullscreen() {
		// Fullscreen columns snap to col_x in absolute coordinates; they
		// ignore struts.
		return -colX
	}
	if s.shouldCenter(idx) && colW < s.workingArea.W {
		return (s.workingArea.W-colW)/2 - colX
	}
	return -colX
}

// animateViewOffsetWithConfig transitions toward `to`: if the delta from
// the current target is below 1/scale it snaps instantly (removing
// sub-pixel float drift); otherwise it cancels any gesture and builds a
// new Animation from the current value, preserving velocity if the prior
// state was already animating.
func (s *ScrollingSpace) animateViewOffsetWithConfig(to float64) {
	cur := target(s.viewOffset)
	if absf(to-cur) < 1/s.scale {
		s.viewOffset = StaticOffset{Value: to}
		return
	}
	var velocity float64
	switch o := s.viewOffset.(type) {
	case AnimationOffset:
		velocity = o.Anim.Velocity()
	case GestureOffset:
		velocity = o.Gesture.Tracker.Velocity()
	}
	from := s.viewOffset.Current()
	cfg := s.opts.Animations.HorizontalViewMovement
	anim := options.BuildAnimation(cfg, s.clk.Now(), from, to, velocity)
	if anim == nil {
		s.viewOffset = StaticOffset{Value: to}
		return
	}
	s.viewOffset = AnimationOffset{Anim: anim}
}

// jumpViewOffsetWithoutAnimation adds delta to the current offset without
// constructing a new animation — used when update_window recomputes the
// active column's width and the resize affected the left edge.
func (s *ScrollingSpace) jumpViewOffsetWithoutAnimation(delta float64) {
	if delta == 0 {
		return
	}
	switch o := s.viewOffset.(type) {
	case StaticOffset:
		s.viewOffset = StaticOffset{Value: o.Value + delta}
	case AnimationOffset:
		o.Anim.Offset(delta)
		s.viewOffset = o
	case GestureOffset:
		o.Gesture.CurrentViewOffset += delta
		s.viewOffset = o
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
