package scrollingspace

import (
	"github.com/Gaurav-Gosain/niri-layout/internal/column"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
)

// insertColumnAt splices col into the column list at idx.
func (s *ScrollingSpace) insertColumnAt(idx int, col *column.Column) {
	s.columns = append(s.columns, nil)
	copy(s.columns[idx+1:], s.columns[idx:])
	s.columns[idx] = col
}

// removeColumnAt removes and returns the column at idx.
func (s *ScrollingSpace) removeColumnAt(idx int) *column.Column {
	c := s.columns[idx]
	s.columns = append(s.columns[:idx], s.columns[idx+1:]...)
	return c
}

// AddTile creates a new column holding t. If colIdx is nil, the new column
// is inserted immediately after the active column (or at 0 if the space is
// empty). Returns the index the new column was inserted at.
func (s *ScrollingSpace) AddTile(colIdx *int, t *tile.Tile, activate bool, width column.Width, isFullWidth bool, animate bool) int {
	wasEmpty := len(s.columns) == 0
	idx := s.activeColumnIdx + 1
	if wasEmpty {
		idx = 0
	}
	if colIdx != nil {
		idx = *colIdx
	}
	if idx > len(s.columns) {
		idx = len(s.columns)
	}
	if idx < 0 {
		idx = 0
	}

	preActive := s.activeColumnIdx
	preViewOffset := s.viewOffset.Current()

	col := column.New(t, width, s.opts)
	col.SetFullWidth(isFullWidth)
	s.insertColumnAt(idx, col)
	s.syncData()

	colW := s.data[idx].width
	shift := colW + s.opts.Gaps
	insertAtOrBeforeActive := idx <= preActive
	for i, c := range s.columns {
		if i == idx {
			continue
		}
		if i > idx && insertAtOrBeforeActive {
			c.AnimateMoveFrom(s.clk, -shift)
		} else if i < idx && !insertAtOrBeforeActive {
			c.AnimateMoveFrom(s.clk, shift)
		}
	}

	if !activate && idx <= s.activeColumnIdx {
		s.activeColumnIdx++
	}

	if activate {
		s.activeColumnIdx = idx
		if wasEmpty {
			s.viewOffset = StaticOffset{Value: s.idealViewOffsetForColumn(idx)}
		} else {
			if idx == preActive+1 {
				v := preViewOffset
				s.activatePrevColumnOnRemoval = &v
			}
			s.animateViewOffsetWithConfig(s.idealViewOffsetForColumn(idx))
		}
	}

	s.relayout(animate)
	return idx
}

// AddTileToColumn appends t into the column at colIdx. If tileIdx is nil,
// t is appended at the end. The column's fullscreen-pending intent resets
// unless the column is tabbed.
func (s *ScrollingSpace) AddTileToColumn(colIdx int, tileIdx *int, t *tile.Tile, activate bool) {
	if colIdx < 0 || colIdx >= len(s.columns) {
		return
	}
	col := s.columns[colIdx]
	idx := col.Len()
	if tileIdx != nil {
		idx = *tileIdx
	}

	oldWidth := s.data[colIdx].width
	col.InsertTile(idx, t, column.AutoHeight(1))
	if col.DisplayMode() != column.DisplayTabbed {
		col.SetPendingFullscreen(false)
	}
	s.syncData()
	newWidth := s.data[colIdx].width
	delta := newWidth - oldWidth
	if delta != 0 {
		for i := colIdx + 1; i < len(s.columns); i++ {
			s.columns[i].AnimateMoveFrom(s.clk, -delta)
		}
	}

	if activate {
		col.SetActiveTileIdx(idx)
		s.activeColumnIdx = colIdx
	}
	s.relayout(true)
}

// RemoveTileByIdx removes the tile at (colIdx, tileIdx). If the column has
// more than one tile, the tile is removed in place and remaining tiles
// animate to absorb the freed height. If it was the sole tile, the whole
// column is removed and active-index bookkeeping follows the usual
// removal-adjacency rules.
func (s *ScrollingSpace) RemoveTileByIdx(colIdx, tileIdx int, animate bool) {
	if colIdx < 0 || colIdx >= len(s.columns) {
		return
	}
	col := s.columns[colIdx]
	if col.Len() > 1 {
		h := s.workingArea.H
		if col.IsPendingFullscreen() {
			h = s.parentArea.H
		}
		gap := s.opts.Gaps
		beforeHeights := col.UpdateTileHeights(h, gap)
		beforeY := cumulativeY(beforeHeights, gap)

		removedTile := col.RemoveTileAt(tileIdx)
		_ = removedTile

		afterHeights := col.UpdateTileHeights(h, gap)
		afterY := cumulativeY(afterHeights, gap)

		// Tiles that were below the removed one shift up; offset their
		// in-flight Y animation so the shift doesn't jump visually.
		for newIdx, t := range col.Tiles() {
			oldIdx := newIdx
			if newIdx >= tileIdx {
				oldIdx = newIdx + 1
			}
			if oldIdx >= len(beforeY) || newIdx >= len(afterY) {
				continue
			}
			delta := beforeY[oldIdx] - afterY[newIdx]
			if delta != 0 {
				t.OffsetMoveYAnimCurrent(delta)
			}
		}
		s.relayout(animate)
		return
	}

	// Sole tile: the whole column goes away.
	s.removeColumnAt(colIdx)
	s.syncData()

	removedWidth := colWidthOrZero(s, colIdx)
	shift := removedWidth + s.opts.Gaps
	for i := colIdx; i < len(s.columns); i++ {
		s.columns[i].AnimateMoveFrom(s.clk, shift)
	}

	switch {
	case colIdx < s.activeColumnIdx:
		s.activeColumnIdx--
	case colIdx == s.activeColumnIdx:
		if s.activatePrevColumnOnRemoval != nil {
			newActive := colIdx - 1
			if newActive < 0 {
				newActive = 0
			}
			s.activeColumnIdx = newActive
			s.viewOffset = StaticOffset{Value: *s.activatePrevColumnOnRemoval}
			s.activatePrevColumnOnRemoval = nil
		} else if s.activeColumnIdx >= len(s.columns) {
			s.activeColumnIdx = len(s.columns) - 1
		}
	}
	if s.activeColumnIdx < 0 {
		s.activeColumnIdx = 0
	}
	if s.activeColumnIdx >= len(s.columns) && len(s.columns) > 0 {
		s.activeColumnIdx = len(s.columns) - 1
	}
	if s.interactiveResize != nil {
		if _, _, _, ok := s.findTileByWindowID(s.interactiveResize.WindowID); !ok {
			s.interactiveResize = nil
		}
	}
	s.relayout(animate)
}

// colWidthOrZero stands in for the width of a just-removed column, which
// is already gone from s.data by the time this is called in
// RemoveTileByIdx. Callers pass the pre-removal index; since s.data was
// already resynced to the post-removal column count, it returns the cached
// width (without gap) of the column now at idx-1, else of the column now
// at idx, falling back to 0 (no sibling shift) when neither exists.
func colWidthOrZero(s *ScrollingSpace, idx int) float64 {
	if idx > 0 && idx-1 < len(s.data) {
		return s.data[idx-1].width
	}
	if idx < len(s.data) {
		return s.data[idx].width
	}
	return 0
}

func cumulativeY(heights []float64, gap float64) []float64 {
	y := make([]float64, len(heights))
	cur := gap
	for i, h := range heights {
		y[i] = cur
		cur += h + gap
	}
	return y
}
