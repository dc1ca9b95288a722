package scrollingspace

import "time"

// ViewOffsetGestureBegin starts a touch/touchpad view-offset gesture,
// capturing the current value as the stationary point to fall back to if
// the gesture is cancelled.
func (s *ScrollingSpace) ViewOffsetGestureBegin(isTouchpad bool) {
	cur := s.viewOffset.Current()
	s.viewOffset = GestureOffset{Gesture: &Gesture{
		IsTouchpad:           isTouchpad,
		StationaryViewOffset: cur,
		CurrentViewOffset:    cur,
		Tracker:              NewSwipeTracker(),
	}}
}

// ViewOffsetGestureUpdate feeds a drag delta into the live gesture.
func (s *ScrollingSpace) ViewOffsetGestureUpdate(dx float64, now time.Duration) {
	g, ok := s.viewOffset.(GestureOffset)
	if !ok {
		return
	}
	g.Gesture.CurrentViewOffset += dx
	g.Gesture.Tracker.Push(dx, now)
	s.viewOffset = g
}

// ViewOffsetGestureEnd finishes the live gesture. If cancelled, the view
// snaps back to the gesture's stationary offset. Otherwise it picks the
// nearest snap point (the column whose ideal offset is closest to the
// gesture's projected resting position) and animates there. The gesture's
// direction enters only through that projection; no sweep rule is applied.
func (s *ScrollingSpace) ViewOffsetGestureEnd(cancelled bool) {
	g, ok := s.viewOffset.(GestureOffset)
	if !ok {
		return
	}
	if cancelled {
		s.cancelGestureToStationary()
		return
	}

	projected := g.Gesture.Tracker.ProjectedEnd(4)
	target := g.Gesture.CurrentViewOffset - g.Gesture.Tracker.Pos() + projected
	snapIdx := s.nearestSnapColumn(target)

	s.viewOffset = StaticOffset{Value: g.Gesture.CurrentViewOffset}
	s.activeColumnIdx = snapIdx
	s.animateViewOffsetWithConfig(s.idealViewOffsetForColumn(snapIdx))
}

// nearestSnapColumn returns the column index whose ideal view offset is
// closest to candidateOffset by absolute distance, in every centering
// mode; it does not apply a direction-dependent "sweep" rule. Ties break
// toward the lower index (leftmost), matching the deterministic iteration
// order below.
func (s *ScrollingSpace) nearestSnapColumn(candidateOffset float64) int {
	if len(s.columns) == 0 {
		return 0
	}
	best := 0
	bestDist := -1.0
	for i := range s.columns {
		ideal := s.idealViewOffsetForColumn(i)
		d := absf(ideal - candidateOffset)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
