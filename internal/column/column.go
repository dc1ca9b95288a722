// Package column implements the Column component: an
// ordered non-empty sequence of tiles stacked vertically, owning column
// width, the per-tile height distribution algorithm, and display mode.
package column

import (
	"time"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
)

// WidthKind distinguishes the three ways a column's width can be
// requested.
type WidthKind int

const (
	WidthProportion WidthKind = iota
	WidthFixed
	WidthPreset
)

// Width is the column width the user last requested.
type Width struct {
	Kind       WidthKind
	Proportion float64 // fraction of working area, e.g. 0.5
	Fixed      float64 // pixels
	PresetIdx  int
}

func ProportionWidth(p float64) Width { return Width{Kind: WidthProportion, Proportion: p} }
func FixedWidth(px float64) Width     { return Width{Kind: WidthFixed, Fixed: px} }
func PresetWidth(idx int) Width       { return Width{Kind: WidthPreset, PresetIdx: idx} }

// HeightKind distinguishes a tile's height policy.
type HeightKind int

const (
	HeightAuto HeightKind = iota
	HeightFixed
	HeightPreset
)

// HeightPolicy is a tile's height policy within the column.
type HeightPolicy struct {
	Kind      HeightKind
	Weight    float64 // HeightAuto
	Fixed     float64 // HeightFixed, pixels (window height)
	PresetIdx int     // HeightPreset
}

func AutoHeight(weight float64) HeightPolicy  { return HeightPolicy{Kind: HeightAuto, Weight: weight} }
func FixedHeight(px float64) HeightPolicy     { return HeightPolicy{Kind: HeightFixed, Fixed: px} }
func PresetHeight(idx int) HeightPolicy       { return HeightPolicy{Kind: HeightPreset, PresetIdx: idx} }

// DisplayMode is Normal (all tiles stacked and visible) or Tabbed (only the
// active tile renders, plus a tab bar).
type DisplayMode int

const (
	DisplayNormal DisplayMode = iota
	DisplayTabbed
)

type tileData struct {
	size       geometry.Size
	resizeEdge bool
	policy     HeightPolicy
}

// MoveAnimation is a column-level horizontal slide used when columns
// reorder around this one (move_left/move_right, add/remove shifting
// siblings).
type MoveAnimation struct {
	Anim         clock.Animation
	FromXOffset  float64
}

// Column is an ordered, non-empty sequence of tiles.
type Column struct {
	tiles []*tile.Tile
	data  []tileData

	width         Width
	presetWidthIdx *int
	isFullWidth   bool

	isPendingFullscreen bool
	isPendingMaximized  bool

	displayMode   DisplayMode
	activeTileIdx int

	moveAnim *MoveAnimation

	opts *options.Options
}

// New creates a Column holding a single tile, with the given requested
// width. Per invariant #5, a lone tile's Auto weight is reset to 1.
func New(t *tile.Tile, width Width, opts *options.Options) *Column {
	policy := AutoHeight(1)
	c := &Column{
		tiles: []*tile.Tile{t},
		data:  []tileData{{policy: policy}},
		width: width,
		opts:  opts,
	}
	c.recomputeSizes()
	return c
}

// Len returns the number of tiles.
func (c *Column) Len() int { return len(c.tiles) }

// Tiles returns the column's tiles in stack order (top to bottom).
func (c *Column) Tiles() []*tile.Tile { return c.tiles }

// ActiveTileIdx returns the currently active tile's index, always valid.
func (c *Column) ActiveTileIdx() int { return c.activeTileIdx }

// ActiveTile returns the currently active tile.
func (c *Column) ActiveTile() *tile.Tile { return c.tiles[c.activeTileIdx] }

// SetActiveTileIdx sets the active tile, clamped to range.
func (c *Column) SetActiveTileIdx(idx int) {
	c.activeTileIdx = geometry.ClampInt(idx, 0, len(c.tiles)-1)
}

// IsFullWidth reports whether the column overrides Width to proportion 1.
func (c *Column) IsFullWidth() bool { return c.isFullWidth }

// SetFullWidth toggles the full-width override.
func (c *Column) SetFullWidth(v bool) { c.isFullWidth = v }

// IsPendingFullscreen reports the compositor-side fullscreen intent.
func (c *Column) IsPendingFullscreen() bool { return c.isPendingFullscreen }

// SetPendingFullscreen sets the fullscreen intent. Per invariant #7, a
// fullscreen column must have exactly one tile; callers are responsible
// for extracting the tile into its own column before calling this with
// true (ScrollingSpace.SetFullscreen does this).
func (c *Column) SetPendingFullscreen(v bool) { c.isPendingFullscreen = v }

// IsPendingMaximized reports the compositor-side maximize intent.
func (c *Column) IsPendingMaximized() bool { return c.isPendingMaximized }

// SetPendingMaximized sets the maximize intent.
func (c *Column) SetPendingMaximized(v bool) { c.isPendingMaximized = v }

// DisplayMode returns Normal or Tabbed.
func (c *Column) DisplayMode() DisplayMode { return c.displayMode }

// SetDisplayMode switches between Normal and Tabbed.
func (c *Column) SetDisplayMode(m DisplayMode) { c.displayMode = m }

// RequestedWidth returns the column width the user last requested
// (independent of is_full_width).
func (c *Column) RequestedWidth() Width { return c.width }

// SetRequestedWidth sets the user-requested width.
func (c *Column) SetRequestedWidth(w Width) {
	c.width = w
	c.recomputeSizes()
}

// PresetWidthIdx is the remembered position in the preset-width cycle, if
// the column's width currently corresponds to one.
func (c *Column) PresetWidthIdx() (int, bool) {
	if c.presetWidthIdx == nil {
		return 0, false
	}
	return *c.presetWidthIdx, true
}

// SetPresetWidthIdx remembers the current preset cycle position.
func (c *Column) SetPresetWidthIdx(idx int) {
	v := idx
	c.presetWidthIdx = &v
}

// ClearPresetWidthIdx forgets the preset cycle position (e.g. after a
// manual resize that doesn't correspond to any preset).
func (c *Column) ClearPresetWidthIdx() { c.presetWidthIdx = nil }

// MoveAnimation returns the column's live horizontal slide animation, if
// any.
func (c *Column) MoveAnimation() *MoveAnimation { return c.moveAnim }

// SetMoveAnimation installs a column-level slide animation.
func (c *Column) SetMoveAnimation(a *MoveAnimation) { c.moveAnim = a }

// AnimateMoveFrom starts a column-level horizontal slide from an offset of
// delta, easing to 0 (the column's true x position).
func (c *Column) AnimateMoveFrom(clk *clock.Clock, delta float64) {
	if delta == 0 {
		return
	}
	cfg := c.opts.Animations.WindowMovement
	anim := options.BuildAnimation(cfg, clk.Now(), delta, 0, 0)
	if anim == nil {
		return
	}
	c.moveAnim = &MoveAnimation{Anim: anim, FromXOffset: delta}
}

// RenderXOffset is the column's current horizontal slide offset (0 when
// no move animation is live).
func (c *Column) RenderXOffset() float64 {
	if c.moveAnim == nil {
		return 0
	}
	return c.moveAnim.Anim.Value()
}

// UpdateConfig swaps in a new Options snapshot and propagates it to every
// tile.
func (c *Column) UpdateConfig(opts *options.Options) {
	c.opts = opts
	for _, t := range c.tiles {
		t.UpdateConfig(opts)
	}
	c.recomputeSizes()
}

// AdvanceAnimations advances the column's own move animation and every
// tile's animations.
func (c *Column) AdvanceAnimations(now time.Duration) {
	if c.moveAnim != nil {
		c.moveAnim.Anim.SetCurrentTime(now)
		if c.moveAnim.Anim.IsDone() {
			c.moveAnim = nil
		}
	}
	for _, t := range c.tiles {
		t.AdvanceAnimations(now)
	}
}

// InsertTile inserts t at idx (clamped into [0,len]) with the given height
// policy, and enforces invariants #5/#6 afterward.
func (c *Column) InsertTile(idx int, t *tile.Tile, policy HeightPolicy) {
	idx = geometry.ClampInt(idx, 0, len(c.tiles))
	c.tiles = append(c.tiles, nil)
	copy(c.tiles[idx+1:], c.tiles[idx:])
	c.tiles[idx] = t

	c.data = append(c.data, tileData{})
	copy(c.data[idx+1:], c.data[idx:])
	c.data[idx] = tileData{policy: policy}

	c.enforceHeightPolicyInvariants()
	c.recomputeSizes()
}

// RemoveTileAt removes the tile at idx. Returns the removed tile. Panics
// if the column would become empty — callers must check Len() > 1 first
// (a column with its last tile removed is destroyed by the owner, not by
// Column itself, matching "Columns do not back-reference their parents").
func (c *Column) RemoveTileAt(idx int) *tile.Tile {
	if len(c.tiles) <= 1 {
		panic("column: cannot remove the last tile")
	}
	removed := c.tiles[idx]
	c.tiles = append(c.tiles[:idx], c.tiles[idx+1:]...)
	c.data = append(c.data[:idx], c.data[idx+1:]...)

	if c.activeTileIdx >= len(c.tiles) {
		c.activeTileIdx = len(c.tiles) - 1
	} else if idx < c.activeTileIdx {
		c.activeTileIdx--
	}
	if c.activeTileIdx < 0 {
		c.activeTileIdx = 0
	}

	c.enforceHeightPolicyInvariants()
	c.recomputeSizes()
	return removed
}

// enforceHeightPolicyInvariants applies invariant #5 (lone tile's Auto
// weight is 1) and invariant #6 (at most one non-Auto policy survives; a
// newly-lone non-Auto tile keeps its policy, but if somehow more than one
// survived a structural change, later ones are demoted to Auto{1}).
func (c *Column) enforceHeightPolicyInvariants() {
	if len(c.data) == 1 {
		if c.data[0].policy.Kind == HeightAuto {
			c.data[0].policy.Weight = 1
		}
		return
	}
	seenNonAuto := false
	for i := range c.data {
		if c.data[i].policy.Kind != HeightAuto {
			if seenNonAuto {
				c.data[i].policy = AutoHeight(1)
			}
			seenNonAuto = true
		}
	}
}

// HeightPolicyAt returns tile idx's current height policy.
func (c *Column) HeightPolicyAt(idx int) HeightPolicy { return c.data[idx].policy }

// SetHeightPolicyAt sets tile idx's height policy, then enforces invariant
// #6 by demoting any other non-Auto tile to Auto{1}.
func (c *Column) SetHeightPolicyAt(idx int, policy HeightPolicy) {
	if policy.Kind != HeightAuto {
		for i := range c.data {
			if i != idx && c.data[i].policy.Kind != HeightAuto {
				c.data[i].policy = AutoHeight(1)
			}
		}
	}
	c.data[idx].policy = policy
	c.enforceHeightPolicyInvariants()
	c.recomputeSizes()
}

// CachedSize returns tile idx's last-computed size from the sizing
// algorithm (invariant #4's analogue at the tile level).
func (c *Column) CachedSize(idx int) geometry.Size { return c.data[idx].size }

func (c *Column) recomputeSizes() {
	for i, t := range c.tiles {
		c.data[i].size = t.TileSize()
	}
}
