package scrollingspace

import (
	"github.com/Gaurav-Gosain/niri-layout/internal/column"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

// InteractiveResizeBegin starts an interactive resize on windowID's edges.
// The topmost tile's top edge cannot be dragged (there's nothing above it
// to absorb the delta into). Returns false if the
// request is rejected.
func (s *ScrollingSpace) InteractiveResizeBegin(windowID wire.Id, edges geometry.Edges) bool {
	ci, ti, t, ok := s.findTileByWindowID(windowID)
	if !ok {
		return false
	}
	if ti == 0 && edges.Top {
		return false
	}
	_ = ci
	s.interactiveResize = &InteractiveResize{
		WindowID:     windowID,
		OriginalSize: t.WindowSize(),
		Edges:        edges,
	}
	t.Window().SetInteractiveResize(wire.InteractiveResizeData{Edges: edges}, true)
	return true
}

// InteractiveResizeUpdate applies a drag delta (dx, dy) to the in-flight
// resize. Horizontal deltas resize the column (doubled when the active
// column is centered, since both edges move symmetrically in that mode);
// vertical deltas give the dragged tile a fixed window height (never below
// its minimum) and re-run the column layout, so the column's auto-height
// tiles absorb the difference.
func (s *ScrollingSpace) InteractiveResizeUpdate(windowID wire.Id, dx, dy float64) {
	if s.interactiveResize == nil || s.interactiveResize.WindowID != windowID {
		return
	}
	ci, ti, t, ok := s.findTileByWindowID(windowID)
	if !ok {
		return
	}
	col := s.columns[ci]
	edges := s.interactiveResize.Edges

	if edges.Left || edges.Right {
		effectiveDx := dx
		if s.shouldCenter(ci) {
			effectiveDx *= 2
		}
		sign := 1.0
		if edges.Left {
			sign = -1.0
		}
		curW := s.data[ci].width
		newW := curW + sign*effectiveDx
		if newW < 1 {
			newW = 1
		}
		col.SetRequestedWidth(column.FixedWidth(newW))
		col.ClearPresetWidthIdx()
		s.relayout(false)
		if edges.Left {
			s.jumpViewOffsetWithoutAnimation(-(s.data[ci].width - curW))
		}
	}

	if edges.Top || edges.Bottom {
		h := s.workingArea.H
		gap := s.opts.Gaps
		if col.IsPendingFullscreen() {
			h = s.parentArea.H
			gap = 0
		}
		curH := col.UpdateTileHeights(h, gap)[ti]
		newWindowH := t.WindowHeightForTileHeight(curH)
		sign := 1.0
		if edges.Top {
			sign = -1.0
		}
		newWindowH += sign * dy
		if newWindowH < t.MinSize().H {
			newWindowH = t.MinSize().H
		}
		col.SetHeightPolicyAt(ti, column.FixedHeight(newWindowH))
		s.relayout(false)
	}
}

// InteractiveResizeEnd clears the resize state, marking the window's own
// InteractiveResizeData cleared too. The
// new size only actually commits once the window acks the configure sent
// by the final RequestTileSize — this just stops further drag input from
// mutating the request.
func (s *ScrollingSpace) InteractiveResizeEnd(windowID wire.Id) {
	if s.interactiveResize == nil || s.interactiveResize.WindowID != windowID {
		return
	}
	if _, _, t, ok := s.findTileByWindowID(windowID); ok {
		t.Window().CancelInteractiveResize()
	}
	s.interactiveResize = nil
}

// InteractiveResize exposes the in-flight resize, if any.
func (s *ScrollingSpace) InteractiveResize() *InteractiveResize { return s.interactiveResize }
