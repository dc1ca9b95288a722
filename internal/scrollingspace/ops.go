package scrollingspace

import (
	"github.com/Gaurav-Gosain/niri-layout/internal/column"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

// FocusColumn activates column idx (clamped) and animates the view to that
// column's ideal offset (see idealViewOffsetForColumn).
func (s *ScrollingSpace) FocusColumn(idx int) {
	if len(s.columns) == 0 {
		return
	}
	idx = geometry.ClampInt(idx, 0, len(s.columns)-1)
	s.activeColumnIdx = idx
	s.animateViewOffsetWithConfig(s.idealViewOffsetForColumn(idx))
}

// FocusLeft activates the previous column, if any.
func (s *ScrollingSpace) FocusLeft() {
	if s.activeColumnIdx > 0 {
		s.FocusColumn(s.activeColumnIdx - 1)
	}
}

// FocusRight activates the next column, if any.
func (s *ScrollingSpace) FocusRight() {
	if s.activeColumnIdx < len(s.columns)-1 {
		s.FocusColumn(s.activeColumnIdx + 1)
	}
}

// FocusFirst activates the first column.
func (s *ScrollingSpace) FocusFirst() { s.FocusColumn(0) }

// FocusLast activates the last column.
func (s *ScrollingSpace) FocusLast() { s.FocusColumn(len(s.columns) - 1) }

// FocusUp activates the previous tile within the active column.
func (s *ScrollingSpace) FocusUp() {
	col := s.ActiveColumn()
	if col == nil {
		return
	}
	if col.ActiveTileIdx() > 0 {
		col.SetActiveTileIdx(col.ActiveTileIdx() - 1)
	}
}

// FocusDown activates the next tile within the active column.
func (s *ScrollingSpace) FocusDown() {
	col := s.ActiveColumn()
	if col == nil {
		return
	}
	if col.ActiveTileIdx() < col.Len()-1 {
		col.SetActiveTileIdx(col.ActiveTileIdx() + 1)
	}
}

// MoveLeft swaps the active column with its left neighbor, preserving the
// camera: the columns trade positions and both animate across the gap
// rather than the view snapping.
func (s *ScrollingSpace) MoveLeft() {
	i := s.activeColumnIdx
	if i <= 0 {
		return
	}
	s.swapColumns(i-1, i)
	s.activeColumnIdx = i - 1
	s.animateViewOffsetWithConfig(s.idealViewOffsetForColumn(s.activeColumnIdx))
}

// MoveRight swaps the active column with its right neighbor.
func (s *ScrollingSpace) MoveRight() {
	i := s.activeColumnIdx
	if i >= len(s.columns)-1 {
		return
	}
	s.swapColumns(i, i+1)
	s.activeColumnIdx = i + 1
	s.animateViewOffsetWithConfig(s.idealViewOffsetForColumn(s.activeColumnIdx))
}

// swapColumns exchanges columns a and b (a < b) and starts a slide
// animation on each so the visual swap reads as a crossing motion rather
// than a jump.
func (s *ScrollingSpace) swapColumns(a, b int) {
	s.syncData()
	widthA, widthB := s.data[a].width, s.data[b].width
	s.columns[a], s.columns[b] = s.columns[b], s.columns[a]
	s.syncData()

	gap := s.opts.Gaps
	s.columns[a].AnimateMoveFrom(s.clk, widthA+gap)
	s.columns[b].AnimateMoveFrom(s.clk, -(widthB + gap))
	s.relayout(true)
}

// ConsumeOrExpelWindowLeft, if the active column has more than one tile,
// expels the active tile into its own new column to the left; if the
// active column is a lone tile and there is a left neighbor, consumes the
// active tile into that neighbor instead.
func (s *ScrollingSpace) ConsumeOrExpelWindowLeft() {
	s.consumeOrExpel(-1)
}

// ConsumeOrExpelWindowRight is the mirror operation toward the right.
func (s *ScrollingSpace) ConsumeOrExpelWindowRight() {
	s.consumeOrExpel(1)
}

func (s *ScrollingSpace) consumeOrExpel(dir int) {
	ci := s.activeColumnIdx
	if ci < 0 || ci >= len(s.columns) {
		return
	}
	col := s.columns[ci]
	if col.Len() > 1 {
		ti := col.ActiveTileIdx()
		t := col.RemoveTileAt(ti)
		s.syncData()
		destIdx := ci
		if dir > 0 {
			destIdx = ci + 1
		}
		newIdx := s.AddTile(&destIdx, t, true, column.ProportionWidth(0.5), false, true)
		_ = newIdx
		return
	}

	neighbor := ci + dir
	if neighbor < 0 || neighbor >= len(s.columns) || neighbor == ci {
		return
	}
	t := col.ActiveTile()
	s.removeColumnAt(ci)
	s.syncData()
	if neighbor > ci {
		neighbor--
	}
	destCol := s.columns[neighbor]
	tileIdx := destCol.Len()
	destCol.InsertTile(tileIdx, t, column.AutoHeight(1))
	destCol.SetActiveTileIdx(tileIdx)
	s.activeColumnIdx = neighbor
	s.syncData()
	s.animateViewOffsetWithConfig(s.idealViewOffsetForColumn(s.activeColumnIdx))
	s.relayout(true)
}

// CenterColumn re-centers the active column without changing which tile or
// column is active.
func (s *ScrollingSpace) CenterColumn() {
	if len(s.columns) == 0 {
		return
	}
	colX := s.ColumnX(s.activeColumnIdx)
	colW := s.data[s.activeColumnIdx].width
	target := (s.workingArea.W-colW)/2 - colX
	s.animateViewOffsetWithConfig(target)
}

// CenterWindow is an alias for CenterColumn at the column granularity this
// engine operates on (there is no separate per-tile horizontal centering).
func (s *ScrollingSpace) CenterWindow() { s.CenterColumn() }

// SetFullscreen toggles fullscreen for the window. Entering fullscreen
// extracts the tile into its own single-tile column (if it wasn't already
// alone) inserted immediately to the right of its old column, cancels any interactive
// resize targeting it, and remembers the view offset to restore on exit.
// Exiting fullscreen re-inserts nothing (the column persists; it simply
// stops being pending-fullscreen) and restores the remembered view offset
// when set.
func (s *ScrollingSpace) SetFullscreen(windowID wire.Id, on bool) {
	ci, ti, t, ok := s.findTileByWindowID(windowID)
	if !ok {
		return
	}
	col := s.columns[ci]

	if s.interactiveResize != nil && s.interactiveResize.WindowID == windowID {
		s.interactiveResize = nil
	}

	if on {
		if col.Len() > 1 {
			col.RemoveTileAt(ti)
			s.syncData()
			newCol := column.New(t, column.ProportionWidth(0.5), s.opts)
			s.insertColumnAt(ci+1, newCol)
			s.syncData()
			ci = ci + 1
			col = newCol
		}
		v := s.viewOffset.Current()
		s.viewOffsetToRestore = &v
		col.SetPendingFullscreen(true)
		s.activeColumnIdx = ci
		s.jumpViewOffsetWithoutAnimation(s.idealViewOffsetForColumn(ci) - s.viewOffset.Current())
	} else {
		col.SetPendingFullscreen(false)
		if s.viewOffsetToRestore != nil {
			s.viewOffset = StaticOffset{Value: *s.viewOffsetToRestore}
			s.viewOffsetToRestore = nil
		}
	}

	s.relayout(true)
}
