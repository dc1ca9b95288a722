package scrollingspace

import (
	"github.com/Gaurav-Gosain/niri-layout/internal/column"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
)

// TileRenderPosition pairs a tile with its fully-resolved render-time
// position: column placement, view offset, per-column slide animation,
// and the tile's own move/resize render offset, all folded together and
// rounded to physical pixels at the space's output scale.
type TileRenderPosition struct {
	Tile     *tile.Tile
	Position geometry.Point
	IsActive bool
}

// TilesWithRenderPositions returns every visible tile (the active tile of
// each Tabbed column, all tiles of each Normal column) together with its
// resolved screen position, active tile first within the overall list so
// callers that paint front-to-back show it on top.
func (s *ScrollingSpace) TilesWithRenderPositions() []TileRenderPosition {
	var active []TileRenderPosition
	var rest []TileRenderPosition

	for ci, col := range s.columns {
		x := s.renderX(ci) + col.RenderXOffset()
		gap := s.opts.Gaps
		if col.IsPendingFullscreen() {
			gap = 0
		}
		y := s.workingArea.Y + gap
		if col.IsPendingFullscreen() {
			y = s.parentArea.Y
		}

		for ti, t := range col.Tiles() {
			if col.DisplayMode() == column.DisplayTabbed && ti != col.ActiveTileIdx() {
				continue
			}
			off := t.RenderOffset()
			pos := geometry.Point{
				X: s.roundToPixel(x + off.X),
				Y: s.roundToPixel(y + off.Y),
			}
			entry := TileRenderPosition{Tile: t, Position: pos, IsActive: ci == s.activeColumnIdx && ti == col.ActiveTileIdx()}
			if entry.IsActive {
				active = append(active, entry)
			} else {
				rest = append(rest, entry)
			}
			y += col.CachedSize(ti).H + gap
		}
	}

	return append(active, rest...)
}

// roundToPixel snaps a logical coordinate to the nearest physical pixel at
// the space's output scale, then converts back to logical units.
func (s *ScrollingSpace) roundToPixel(v float64) float64 {
	if s.scale <= 0 {
		return geometry.Round(v)
	}
	return geometry.Round(v*s.scale) / s.scale
}

// InsertHintState exposes the current drag-and-drop insert hint, if any.
func (s *ScrollingSpace) InsertHintState() *InsertHint { return s.insertHint }

// SetInsertHint installs or clears the insert hint.
func (s *ScrollingSpace) SetInsertHint(h *InsertHint) { s.insertHint = h }
