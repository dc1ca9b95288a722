package tile

import (
	"testing"
	"time"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

func newTestTile(w, h float64) (*Tile, *wire.FakeWindow, *clock.Clock) {
	clk := clock.New()
	opts := options.Default()
	opts.Border.Off = true
	win := wire.NewFakeWindow(w, h)
	return New(win, clk, opts, 1), win, clk
}

func TestTileSizeIncludesDecorations(t *testing.T) {
	opts := options.Default()
	opts.Border.Off = false
	opts.Border.Width = 2
	clk := clock.New()
	win := wire.NewFakeWindow(100, 50)
	tl := New(win, clk, opts, 1)
	size := tl.TileSize()
	if size.W != 104 || size.H != 54 {
		t.Errorf("expected tile size to include 2*border on each axis, got %+v", size)
	}
}

func TestWindowHeightTileHeightInverse(t *testing.T) {
	opts := options.Default()
	opts.Border.Off = false
	opts.Border.Width = 3
	clk := clock.New()
	win := wire.NewFakeWindow(100, 50)
	tl := New(win, clk, opts, 1)
	wh := tl.WindowHeightForTileHeight(60)
	if got := tl.TileHeightForWindowHeight(wh); got != 60 {
		t.Errorf("expected inverse round-trip to 60, got %v", got)
	}
}

func TestUpdateWindowCancelsSmallDeltaResize(t *testing.T) {
	tl, win, clk := newTestTile(100, 100)
	// Start a big resize animation to 200.
	tl.RequestTileSize(geometry.Size{W: 100, H: 200}, true, nil)
	win.AckRequested()
	clk.Advance(10 * time.Millisecond)
	tl.AdvanceAnimations(clk.Now())
	if tl.ResizeAnimation() == nil {
		t.Fatal("expected a live resize animation")
	}

	// Now the window commits a size whose delta from the animation's end
	// (200) is below the threshold: should cancel, not re-animate.
	win.SetSizeDirect(100, 195)
	tl.UpdateWindow(true)
	if tl.ResizeAnimation() != nil {
		t.Error("expected resize animation to be cancelled by small delta")
	}
}

func TestUpdateWindowStartsAnimationOnLargeDelta(t *testing.T) {
	tl, win, _ := newTestTile(100, 100)
	win.SetBounds(geometry.Size{W: 100, H: 100})
	win.AckRequested()
	// Simulate a previous size far from the new one.
	win.SetSizeDirect(100, 300)
	tl.UpdateWindow(true)
	if tl.ResizeAnimation() == nil {
		t.Error("expected resize animation for large delta")
	}
}

func TestOffsetMoveYAnimCurrentStartsWhenIdle(t *testing.T) {
	tl, _, _ := newTestTile(100, 100)
	if tl.RenderOffset().Y != 0 {
		t.Fatal("expected zero Y offset initially")
	}
	tl.OffsetMoveYAnimCurrent(15)
	if tl.RenderOffset().Y != 15 {
		t.Errorf("expected immediate offset of 15, got %v", tl.RenderOffset().Y)
	}
}

func TestEnsureAlphaAnimatesToOneIdempotent(t *testing.T) {
	tl, _, _ := newTestTile(100, 100)
	tl.StartOpenAnimation()
	if tl.Alpha() != 0 {
		t.Fatal("expected alpha 0 right after StartOpenAnimation")
	}
	tl.EnsureAlphaAnimatesTo1()
	tl.EnsureAlphaAnimatesTo1() // idempotent: should not restart from 0 again
	if tl.Alpha() < 0 {
		t.Error("unexpected negative alpha")
	}
}

func TestTakeUnmapSnapshotCapturesSize(t *testing.T) {
	tl, _, _ := newTestTile(120, 80)
	snap := tl.TakeUnmapSnapshot()
	if snap.Size.W != 120 || snap.Size.H != 80 {
		t.Errorf("expected snapshot to match tile size, got %+v", snap.Size)
	}
}
