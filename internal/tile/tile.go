// Package tile implements the Tile component: one window
// plus its decoration chrome, owning the tile's own open/close/move/resize/
// alpha animations.
package tile

import (
	"time"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

// Tile owns exactly one Window and its decoration state.
type Tile struct {
	window wire.Window
	clock  *clock.Clock
	opts   *options.Options
	scale  float64

	borderWidth    float64
	focusRingWidth float64

	resizeAnim     clock.Animation
	resizeFrom     geometry.Size
	moveXAnim      clock.Animation
	moveYAnim      clock.Animation
	alphaAnim      clock.Animation
	openAnim       clock.Animation

	alpha float64
	dirty bool
}

// New builds a Tile for window, using clk for scheduling animations and
// opts for decoration/animation configuration.
func New(window wire.Window, clk *clock.Clock, opts *options.Options, scale float64) *Tile {
	t := &Tile{window: window, clock: clk, opts: opts, scale: scale, alpha: 1}
	t.resolveDecoration()
	return t
}

func (t *Tile) resolveDecoration() {
	rules := t.window.Rules()
	bw := t.opts.Border.Width
	if t.opts.Border.Off {
		bw = 0
	}
	if rules.BorderWidth != nil {
		bw = *rules.BorderWidth
	}
	fr := t.opts.FocusRing.Width
	if t.opts.FocusRing.Off {
		fr = 0
	}
	if rules.FocusRingWidth != nil {
		fr = *rules.FocusRingWidth
	}
	t.borderWidth = bw
	t.focusRingWidth = fr
}

// UpdateConfig swaps in a new shared Options snapshot and re-resolves
// decoration geometry against it. Per the "shared mutable config" design
// note, opts is never mutated in place — only the pointer changes.
func (t *Tile) UpdateConfig(opts *options.Options) {
	t.opts = opts
	t.resolveDecoration()
}

// decorationDelta is the extra size the border contributes on each axis
// (both sides), added by TileHeightForWindowHeight, TileSize, MinSize and
// MaxSize and subtracted by WindowHeightForTileHeight.
func (t *Tile) decorationDelta() float64 {
	return 2 * t.borderWidth
}

// WindowHeightForTileHeight converts a tile height to the window height
// that would produce it, given the current border configuration.
func (t *Tile) WindowHeightForTileHeight(tileHeight float64) float64 {
	return tileHeight - t.decorationDelta()
}

// TileHeightForWindowHeight is the inverse of WindowHeightForTileHeight.
func (t *Tile) TileHeightForWindowHeight(windowHeight float64) float64 {
	return windowHeight + t.decorationDelta()
}

// WindowSize returns the underlying Window's current (acked) size.
func (t *Tile) WindowSize() geometry.Size {
	return t.window.Size()
}

// TileSize is window_size + decorations.
func (t *Tile) TileSize() geometry.Size {
	s := t.window.Size()
	d := t.decorationDelta()
	return geometry.Size{W: s.W + d, H: s.H + d}
}

// AnimatedTileSize is the size as currently rendered, including any
// in-flight resize interpolation.
func (t *Tile) AnimatedTileSize() geometry.Size {
	size := t.TileSize()
	if t.resizeAnim == nil {
		return size
	}
	v := t.resizeAnim.Value()
	// The resize animation interpolates the tile's height; width follows
	// the column's width computation directly and isn't animated here.
	return geometry.Size{W: size.W, H: v}
}

// ResizeAnimation exposes the live resize animation, or nil.
func (t *Tile) ResizeAnimation() clock.Animation { return t.resizeAnim }

// MinSize is the tile-level minimum size: the window's min size plus
// decorations. Column's sizing algorithm clamps against this.
func (t *Tile) MinSize() geometry.Size {
	m := t.window.MinSize()
	d := t.decorationDelta()
	return geometry.Size{W: m.W + d, H: m.H + d}
}

// MaxSize is the tile-level maximum size (0 on an axis means unbounded).
func (t *Tile) MaxSize() geometry.Size {
	m := t.window.MaxSize()
	d := t.decorationDelta()
	size := geometry.Size{}
	if m.W > 0 {
		size.W = m.W + d
	}
	if m.H > 0 {
		size.H = m.H + d
	}
	return size
}

// Window returns the underlying contract window.
func (t *Tile) Window() wire.Window { return t.window }

// resizeThresholdPx is the de-jitter threshold below which a size delta
// snaps instead of animating. It is a fixed constant; Options does not
// override it.
const resizeThresholdPx = 10.0

// UpdateWindow reconciles the tile to the Window's just-acked size. If the
// delta from any in-progress resize animation's *end* is below the
// threshold, the animation is cancelled and the size jumps; the caller is
// responsible for invoking OffsetMoveYAnimCurrent on tiles below when a
// cancellation produces a visible jump.
//
// Returns the height delta applied by a cancellation (0 if none, or if an
// animation was started instead).
func (t *Tile) UpdateWindow(animate bool) float64 {
	newSize := t.TileSize()
	if t.resizeAnim != nil {
		end := t.resizeAnim.Target()
		if absf(newSize.H-end) < resizeThresholdPx {
			// Cancel: jump to the new value.
			jump := newSize.H - t.resizeAnim.Value()
			t.resizeAnim = nil
			return jump
		}
		// Continue animating toward the new end value.
		if animate {
			t.startResizeAnim(newSize.H)
		} else {
			t.resizeAnim = nil
		}
		return 0
	}

	prev, ok := t.window.AnimationSnapshot()
	if !ok {
		return 0
	}
	prevTileH := prev.Size.H + t.decorationDelta()
	delta := newSize.H - prevTileH
	if absf(delta) < resizeThresholdPx || !animate {
		return 0
	}
	t.resizeFrom = geometry.Size{W: prevTileH, H: prevTileH}
	startVal := prevTileH
	t.startResizeAnimFrom(startVal, newSize.H)
	return 0
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (t *Tile) startResizeAnim(to float64) {
	from := t.resizeAnim.Value()
	t.startResizeAnimFrom(from, to)
}

func (t *Tile) startResizeAnimFrom(from, to float64) {
	cfg := t.opts.Animations.WindowResize
	anim := options.BuildAnimation(cfg, t.clock.Now(), from, to, 0)
	t.resizeAnim = anim
}

// RequestTileSize asks the tile to adopt a new tile-level size. If animate
// is true and the delta exceeds the resize threshold, a resize animation is
// started; otherwise the window is told its bounds directly. txn is
// currently unused by the in-memory model (no wayland transaction to join)
// but is accepted to match the real contract's signature.
func (t *Tile) RequestTileSize(size geometry.Size, animate bool, txn any) {
	current := t.TileSize()
	d := t.decorationDelta()
	windowSize := geometry.Size{W: size.W - d, H: size.H - d}
	if windowSize.H < 1 {
		windowSize.H = 1
	}
	if windowSize.W < 1 {
		windowSize.W = 1
	}
	t.window.SetBounds(windowSize)
	if animate && absf(size.H-current.H) >= resizeThresholdPx {
		t.startResizeAnimFrom(current.H, size.H)
	}
}

// RequestFullscreen tells the underlying window the compositor intends to
// fullscreen it; the actual size is sent via RequestTileSize by the owning
// Column/ScrollingSpace.
func (t *Tile) RequestFullscreen() {
	t.window.SetBounds(t.window.Size())
}

// AnimateMoveFrom starts (or extends) a horizontal slide animation whose
// current value begins delta away from zero and eases to zero — i.e. the
// tile visually starts offset by delta and settles at its "true" position.
func (t *Tile) AnimateMoveFrom(delta float64) {
	if delta == 0 {
		return
	}
	cfg := t.opts.Animations.WindowMovement
	t.moveXAnim = options.BuildAnimation(cfg, t.clock.Now(), delta, 0, 0)
}

// AnimateMoveYFrom is the vertical analogue of AnimateMoveFrom.
func (t *Tile) AnimateMoveYFrom(delta float64) {
	if delta == 0 {
		return
	}
	cfg := t.opts.Animations.WindowMovement
	t.moveYAnim = options.BuildAnimation(cfg, t.clock.Now(), delta, 0, 0)
}

// OffsetMoveYAnimCurrent adds delta to the in-flight Y animation's current
// value without changing its target, so an unrelated Y shift doesn't
// produce a visible jump. If no Y animation is running, one is started
// that immediately eases the offset back to zero (so the shift is still
// visually smoothed rather than silently dropped).
func (t *Tile) OffsetMoveYAnimCurrent(delta float64) {
	if delta == 0 {
		return
	}
	if t.moveYAnim != nil {
		t.moveYAnim.Offset(delta)
		return
	}
	t.AnimateMoveYFrom(delta)
}

// RenderOffset returns the current X/Y render displacement contributed by
// in-flight move animations (0,0 when none are running).
func (t *Tile) RenderOffset() geometry.Point {
	var p geometry.Point
	if t.moveXAnim != nil {
		p.X = t.moveXAnim.Value()
	}
	if t.moveYAnim != nil {
		p.Y = t.moveYAnim.Value()
	}
	return p
}

// StartOpenAnimation begins the tile's open (alpha fade + optional scale)
// animation.
func (t *Tile) StartOpenAnimation() {
	cfg := t.opts.Animations.WindowOpen
	if cfg.Off {
		t.alpha = 1
		return
	}
	t.alpha = 0
	t.openAnim = options.BuildAnimation(cfg, t.clock.Now(), 0, 1, 0)
	t.alphaAnim = t.openAnim
}

// EnsureAlphaAnimatesTo1 is idempotent: if the tile isn't already fully
// opaque and animating there, it starts a fade-in.
func (t *Tile) EnsureAlphaAnimatesTo1() {
	if t.alpha >= 1 && t.alphaAnim == nil {
		return
	}
	if t.alphaAnim != nil && t.alphaAnim.Target() == 1 {
		return
	}
	cfg := t.opts.Animations.WindowOpen
	t.alphaAnim = options.BuildAnimation(cfg, t.clock.Now(), t.alpha, 1, 0)
}

// Alpha returns the tile's current render alpha.
func (t *Tile) Alpha() float64 {
	if t.alphaAnim != nil {
		return t.alphaAnim.Value()
	}
	return t.alpha
}

// UnmapSnapshot is a render snapshot taken immediately before a window is
// torn down, kept alive by the close animation after the Window itself is
// gone.
type UnmapSnapshot struct {
	Size geometry.Size
}

// TakeUnmapSnapshot must be called (and its result retained) before the
// tile's Window is destroyed; it is the only way to recover the tile's
// last rendered appearance for the close animation.
func (t *Tile) TakeUnmapSnapshot() UnmapSnapshot {
	return UnmapSnapshot{Size: t.AnimatedTileSize()}
}

// AdvanceAnimations moves every live per-tile animation to time now,
// retiring any that finish.
func (t *Tile) AdvanceAnimations(now time.Duration) {
	if t.resizeAnim != nil {
		t.resizeAnim.SetCurrentTime(now)
		if t.resizeAnim.IsDone() {
			t.resizeAnim = nil
		}
	}
	if t.moveXAnim != nil {
		t.moveXAnim.SetCurrentTime(now)
		if t.moveXAnim.IsDone() {
			t.moveXAnim = nil
		}
	}
	if t.moveYAnim != nil {
		t.moveYAnim.SetCurrentTime(now)
		if t.moveYAnim.IsDone() {
			t.moveYAnim = nil
		}
	}
	if t.alphaAnim != nil {
		t.alphaAnim.SetCurrentTime(now)
		if t.alphaAnim.IsDone() {
			t.alpha = t.alphaAnim.Value()
			t.alphaAnim = nil
			t.openAnim = nil
		}
	}
}

// IsAnimating reports whether any per-tile animation is still live.
func (t *Tile) IsAnimating() bool {
	return t.resizeAnim != nil || t.moveXAnim != nil || t.moveYAnim != nil || t.alphaAnim != nil
}

// MarkDirty flags the tile for re-render, a single dirty flag since this
// module has no render cache of its own to invalidate.
func (t *Tile) MarkDirty() { t.dirty = true }

// ConsumeDirty reports and clears the dirty flag.
func (t *Tile) ConsumeDirty() bool {
	d := t.dirty
	t.dirty = false
	return d
}
