package floatingspace

import (
	"testing"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

func newTestFloating() (*FloatingSpace, *clock.Clock, *options.Options) {
	clk := clock.New()
	opts := options.Default()
	opts.Border.Off = true
	area := geometry.Rect{X: 0, Y: 0, W: 1280, H: 720}
	return New(area, 1, clk, opts), clk, opts
}

func newFloatingTile(opts *options.Options, clk *clock.Clock, w, h float64) (*tile.Tile, *wire.FakeWindow) {
	win := wire.NewFakeWindow(w, h)
	return tile.New(win, clk, opts, 1), win
}

func TestAddTileClampsOnScreen(t *testing.T) {
	f, clk, opts := newTestFloating()
	tl, w := newFloatingTile(opts, clk, 200, 150)
	f.AddTile(tl, geometry.Point{X: -5000, Y: 5000})

	_, pos, ok := f.Find(w.ID())
	if !ok {
		t.Fatalf("expected to find added tile")
	}
	if pos.X < -200+32-1 {
		t.Errorf("expected x clamped near screen edge, got %v", pos.X)
	}
}

func TestRaiseMovesToTopOfZOrder(t *testing.T) {
	f, clk, opts := newTestFloating()
	t1, w1 := newFloatingTile(opts, clk, 100, 100)
	t2, w2 := newFloatingTile(opts, clk, 100, 100)
	f.AddTile(t1, geometry.Point{X: 10, Y: 10})
	f.AddTile(t2, geometry.Point{X: 20, Y: 20})

	f.Raise(w1.ID())
	positions := f.TilesWithRenderPositions()
	if positions[len(positions)-1].Tile.Window().ID() != w1.ID() {
		t.Errorf("expected window 1 to be topmost after Raise")
	}
	_ = w2
}

func TestRemoveTileReturnsItAndDropsIt(t *testing.T) {
	f, clk, opts := newTestFloating()
	t1, w1 := newFloatingTile(opts, clk, 100, 100)
	f.AddTile(t1, geometry.Point{X: 10, Y: 10})

	removed := f.RemoveTile(w1.ID())
	if removed != t1 {
		t.Fatalf("expected RemoveTile to return the original tile")
	}
	if !f.IsEmpty() {
		t.Errorf("expected the space to be empty after removal")
	}
}

func TestMoveByOffsetsPosition(t *testing.T) {
	f, clk, opts := newTestFloating()
	t1, w1 := newFloatingTile(opts, clk, 100, 100)
	f.AddTile(t1, geometry.Point{X: 10, Y: 10})

	f.MoveBy(w1.ID(), geometry.Point{X: 5, Y: -5})
	_, pos, _ := f.Find(w1.ID())
	if pos.X != 15 || pos.Y != 5 {
		t.Errorf("expected position (15,5), got %+v", pos)
	}
}

func TestAnimateMoveToStartsMoveAnimation(t *testing.T) {
	f, clk, opts := newTestFloating()
	t1, w1 := newFloatingTile(opts, clk, 100, 100)
	f.AddTile(t1, geometry.Point{X: 10, Y: 10})

	f.AnimateMoveTo(w1.ID(), geometry.Point{X: 200, Y: 10})
	if !f.IsAnimating() {
		t.Errorf("expected AnimateMoveTo to start an in-flight animation")
	}
}
