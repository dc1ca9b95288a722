// Package floatingspace implements FloatingSpace: the secondary space
// holding free-positioned windows on a workspace. It reuses Tile for
// per-window animation/decoration bookkeeping but has no columns — each
// window owns its own position and size directly, and there is no
// view-offset camera to manage.
package floatingspace

import (
	"time"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

// entry pairs a floating tile with its free-form position and keeps a
// move animation analogous to Column's, since floating windows can be
// animated into a new position (e.g. "center window" or a workspace
// switch carry-over) without a column to drive it.
type entry struct {
	tile     *tile.Tile
	pos      geometry.Point
	moveAnim clock.Animation
	moveFrom geometry.Point
}

// FloatingSpace holds an unordered set of floating windows; the last
// entry in the slice is always the topmost in z-order.
type FloatingSpace struct {
	entries []*entry

	parentArea geometry.Rect
	scale      float64

	clk  *clock.Clock
	opts *options.Options
}

// New builds an empty FloatingSpace over parentArea.
func New(parentArea geometry.Rect, scale float64, clk *clock.Clock, opts *options.Options) *FloatingSpace {
	return &FloatingSpace{parentArea: parentArea, scale: scale, clk: clk, opts: opts}
}

// Len returns the number of floating windows.
func (f *FloatingSpace) Len() int { return len(f.entries) }

// IsEmpty reports whether there are no floating windows.
func (f *FloatingSpace) IsEmpty() bool { return len(f.entries) == 0 }

// UpdateConfig swaps in a new Options snapshot and propagates it to every
// tile.
func (f *FloatingSpace) UpdateConfig(opts *options.Options) {
	f.opts = opts
	for _, e := range f.entries {
		e.tile.UpdateConfig(opts)
	}
}

// UpdateOutputScale records a new scale for the space; tiles are not
// updated.
func (f *FloatingSpace) UpdateOutputScale(scale float64) {
	if scale <= 0 {
		return
	}
	f.scale = scale
}

func (f *FloatingSpace) indexOf(id wire.Id) int {
	for i, e := range f.entries {
		if e.tile.Window().ID() == id {
			return i
		}
	}
	return -1
}

// Find returns the tile and position for windowID, if present.
func (f *FloatingSpace) Find(id wire.Id) (*tile.Tile, geometry.Point, bool) {
	i := f.indexOf(id)
	if i < 0 {
		return nil, geometry.Point{}, false
	}
	return f.entries[i].tile, f.entries[i].pos, true
}

// AddTile places t at pos (clamped on-screen) and raises it to the top of
// the z-order.
func (f *FloatingSpace) AddTile(t *tile.Tile, pos geometry.Point) {
	pos = f.clampToScreen(pos, t.TileSize())
	f.entries = append(f.entries, &entry{tile: t, pos: pos})
}

// RemoveTile removes the window from the space, returning its tile. Returns
// nil if not found.
func (f *FloatingSpace) RemoveTile(id wire.Id) *tile.Tile {
	i := f.indexOf(id)
	if i < 0 {
		return nil
	}
	t := f.entries[i].tile
	f.entries = append(f.entries[:i], f.entries[i+1:]...)
	return t
}

// Raise moves windowID to the top of the z-order.
func (f *FloatingSpace) Raise(id wire.Id) {
	i := f.indexOf(id)
	if i < 0 || i == len(f.entries)-1 {
		return
	}
	e := f.entries[i]
	f.entries = append(f.entries[:i], f.entries[i+1:]...)
	f.entries = append(f.entries, e)
}

// MoveTo repositions windowID, clamped to stay at least partially on
// screen.
func (f *FloatingSpace) MoveTo(id wire.Id, pos geometry.Point) {
	i := f.indexOf(id)
	if i < 0 {
		return
	}
	f.entries[i].pos = f.clampToScreen(pos, f.entries[i].tile.TileSize())
}

// MoveBy offsets windowID's position by delta.
func (f *FloatingSpace) MoveBy(id wire.Id, delta geometry.Point) {
	i := f.indexOf(id)
	if i < 0 {
		return
	}
	cur := f.entries[i].pos
	f.MoveTo(id, geometry.Point{X: cur.X + delta.X, Y: cur.Y + delta.Y})
}

// AnimateMoveTo moves the window to pos (clamped on-screen) and starts an
// eased horizontal slide from its old x. Only the x offset is animated:
// the y coordinate takes its new value at once.
func (f *FloatingSpace) AnimateMoveTo(id wire.Id, pos geometry.Point) {
	i := f.indexOf(id)
	if i < 0 {
		return
	}
	e := f.entries[i]
	from := e.pos
	e.pos = f.clampToScreen(pos, e.tile.TileSize())
	cfg := f.opts.Animations.WindowMovement
	animX := options.BuildAnimation(cfg, f.clk.Now(), from.X-e.pos.X, 0, 0)
	if animX == nil {
		return
	}
	e.moveAnim = animX
	e.moveFrom = geometry.Point{X: from.X - e.pos.X, Y: from.Y - e.pos.Y}
}

// RequestResize pushes a new size to windowID's tile, animated per the
// usual tile resize-animation rules.
func (f *FloatingSpace) RequestResize(id wire.Id, size geometry.Size, animate bool) {
	i := f.indexOf(id)
	if i < 0 {
		return
	}
	f.entries[i].tile.RequestTileSize(size, animate, nil)
}

// clampToScreen keeps at least a sliver of the window within parentArea:
// at least 32 logical pixels of the title area must stay reachable.
func (f *FloatingSpace) clampToScreen(pos geometry.Point, size geometry.Size) geometry.Point {
	const margin = 32.0
	minX := f.parentArea.X - size.W + margin
	maxX := f.parentArea.Right() - margin
	minY := f.parentArea.Y
	maxY := f.parentArea.Bottom() - margin
	return geometry.Point{
		X: geometry.Clamp(pos.X, minX, maxX),
		Y: geometry.Clamp(pos.Y, minY, maxY),
	}
}

// AdvanceAnimations advances every floating tile's animations and this
// space's own move animations.
func (f *FloatingSpace) AdvanceAnimations(now time.Duration) {
	for _, e := range f.entries {
		e.tile.AdvanceAnimations(now)
		if e.moveAnim != nil {
			e.moveAnim.SetCurrentTime(now)
			if e.moveAnim.IsDone() {
				e.moveAnim = nil
			}
		}
	}
}

// IsAnimating reports whether any floating tile or move animation is
// still in flight.
func (f *FloatingSpace) IsAnimating() bool {
	for _, e := range f.entries {
		if e.tile.IsAnimating() || e.moveAnim != nil {
			return true
		}
	}
	return false
}

// TileRenderPosition pairs a floating tile with its resolved render
// position, bottom-to-top z-order (same list order as internal storage).
type TileRenderPosition struct {
	Tile     *tile.Tile
	Position geometry.Point
}

// TilesWithRenderPositions returns every floating tile in z-order
// (bottom first), each with its move-animation and per-tile render
// offset folded in.
func (f *FloatingSpace) TilesWithRenderPositions() []TileRenderPosition {
	out := make([]TileRenderPosition, 0, len(f.entries))
	for _, e := range f.entries {
		pos := e.pos
		if e.moveAnim != nil {
			pos.X += e.moveAnim.Value()
		}
		off := e.tile.RenderOffset()
		out = append(out, TileRenderPosition{
			Tile:     e.tile,
			Position: geometry.Point{X: pos.X + off.X, Y: pos.Y + off.Y},
		})
	}
	return out
}
