package scrollingspace

import (
	"testing"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/column"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

func newTestSpace() (*ScrollingSpace, *clock.Clock, *options.Options) {
	clk := clock.New()
	opts := options.Default()
	opts.Border.Off = true
	area := geometry.Rect{X: 0, Y: 0, W: 1280, H: 720}
	return New(area, 1, clk, opts, nil), clk, opts
}

func newTileForSpace(opts *options.Options, clk *clock.Clock, w, h float64) (*tile.Tile, *wire.FakeWindow) {
	win := wire.NewFakeWindow(w, h)
	return tile.New(win, clk, opts, 1), win
}

func TestAddTileToEmptySpaceJumpsWithoutAnimation(t *testing.T) {
	s, clk, opts := newTestSpace()
	tl, _ := newTileForSpace(opts, clk, 400, 300)
	idx := s.AddTile(nil, tl, true, column.ProportionWidth(0.5), false, true)
	if idx != 0 {
		t.Fatalf("expected first column at idx 0, got %d", idx)
	}
	if _, ok := s.ViewOffset().(StaticOffset); !ok {
		t.Errorf("expected Static view offset for first window, got %T", s.ViewOffset())
	}
	if s.ColumnsLen() != 1 {
		t.Fatalf("expected 1 column, got %d", s.ColumnsLen())
	}
}

func TestAddThenConsumeThenExpel(t *testing.T) {
	s, clk, opts := newTestSpace()
	t1, _ := newTileForSpace(opts, clk, 400, 300)
	s.AddTile(nil, t1, true, column.ProportionWidth(0.5), false, false)
	t2, _ := newTileForSpace(opts, clk, 400, 300)
	s.AddTile(nil, t2, true, column.ProportionWidth(0.5), false, false)

	if s.ColumnsLen() != 2 {
		t.Fatalf("expected 2 columns after second add, got %d", s.ColumnsLen())
	}

	// Consume: active (lone) column's tile folds into the left neighbor.
	s.ConsumeOrExpelWindowLeft()
	if s.ColumnsLen() != 1 {
		t.Fatalf("expected 1 column after consume, got %d", s.ColumnsLen())
	}
	if s.ActiveColumn().Len() != 2 {
		t.Fatalf("expected consumed column to hold 2 tiles, got %d", s.ActiveColumn().Len())
	}

	// Expel: active tile (now in a 2-tile column) pops back into its own
	// column to the right.
	s.ConsumeOrExpelWindowRight()
	if s.ColumnsLen() != 2 {
		t.Fatalf("expected 2 columns after expel, got %d", s.ColumnsLen())
	}
}

func TestRemoveSoleTileInActiveColumnActivatesPrev(t *testing.T) {
	s, clk, opts := newTestSpace()
	t1, w1 := newTileForSpace(opts, clk, 400, 300)
	s.AddTile(nil, t1, true, column.ProportionWidth(0.5), false, false)
	t2, _ := newTileForSpace(opts, clk, 400, 300)
	s.AddTile(nil, t2, true, column.ProportionWidth(0.5), false, false)

	if s.ActiveColumnIdx() != 1 {
		t.Fatalf("expected column 1 active, got %d", s.ActiveColumnIdx())
	}
	s.RemoveTileByIdx(1, 0, false)
	if s.ColumnsLen() != 1 {
		t.Fatalf("expected 1 column left, got %d", s.ColumnsLen())
	}
	if s.ActiveColumnIdx() != 0 {
		t.Fatalf("expected column 0 active after removing the active column, got %d", s.ActiveColumnIdx())
	}
	_ = w1
}

func TestSetFullscreenExtractsAndRestoresViewOffset(t *testing.T) {
	s, clk, opts := newTestSpace()
	t1, w1 := newTileForSpace(opts, clk, 400, 300)
	s.AddTile(nil, t1, true, column.ProportionWidth(0.5), false, false)
	t2, _ := newTileForSpace(opts, clk, 400, 300)
	s.AddTileToColumn(0, nil, t2, false)

	before := s.ViewOffsetValue()
	s.SetFullscreen(w1.ID(), true)
	if s.ColumnsLen() != 2 {
		t.Fatalf("expected fullscreen to extract the tile into its own column, got %d columns", s.ColumnsLen())
	}
	if !s.columns[0].IsPendingFullscreen() && !s.columns[1].IsPendingFullscreen() {
		t.Fatalf("expected some column to be pending fullscreen")
	}

	s.SetFullscreen(w1.ID(), false)
	after := s.ViewOffsetValue()
	if absf(after-before) > 0.001 {
		t.Errorf("expected view offset restored after exiting fullscreen: before=%v after=%v", before, after)
	}
}

func TestInteractiveResizeRejectsTopEdgeOnTopmostTile(t *testing.T) {
	s, clk, opts := newTestSpace()
	t1, w1 := newTileForSpace(opts, clk, 400, 300)
	s.AddTile(nil, t1, true, column.ProportionWidth(0.5), false, false)
	t2, _ := newTileForSpace(opts, clk, 400, 200)
	s.AddTileToColumn(0, nil, t2, false)

	ok := s.InteractiveResizeBegin(w1.ID(), geometry.Edges{Top: true})
	if ok {
		t.Errorf("expected InteractiveResizeBegin to reject top-edge resize on the topmost tile")
	}
}

func TestInteractiveResizeAllowsLeftEdge(t *testing.T) {
	s, clk, opts := newTestSpace()
	t1, w1 := newTileForSpace(opts, clk, 400, 300)
	s.AddTile(nil, t1, true, column.ProportionWidth(0.5), false, false)

	ok := s.InteractiveResizeBegin(w1.ID(), geometry.Edges{Left: true})
	if !ok {
		t.Fatalf("expected left-edge resize to be accepted")
	}
	s.InteractiveResizeUpdate(w1.ID(), 20, 0)
	if s.InteractiveResize() == nil {
		t.Fatalf("expected interactive resize state to remain set mid-drag")
	}
	s.InteractiveResizeEnd(w1.ID())
	if s.InteractiveResize() != nil {
		t.Errorf("expected interactive resize state cleared after end")
	}
}

func TestViewOffsetGestureCancelRestoresStationary(t *testing.T) {
	s, clk, opts := newTestSpace()
	t1, _ := newTileForSpace(opts, clk, 400, 300)
	s.AddTile(nil, t1, true, column.ProportionWidth(0.5), false, false)
	t2, _ := newTileForSpace(opts, clk, 400, 300)
	s.AddTile(nil, t2, true, column.ProportionWidth(0.5), false, false)

	stationary := s.ViewOffsetValue()
	s.ViewOffsetGestureBegin(true)
	s.ViewOffsetGestureUpdate(-50, 10)
	s.ViewOffsetGestureUpdate(-30, 20)
	if s.ViewOffsetValue() == stationary {
		t.Fatalf("expected gesture to move the view offset")
	}
	s.ViewOffsetGestureEnd(true)
	if s.ViewOffsetValue() != stationary {
		t.Errorf("expected cancel to restore stationary offset %v, got %v", stationary, s.ViewOffsetValue())
	}
}

func TestStopAnimAndGestureIsIdempotent(t *testing.T) {
	s, _, _ := newTestSpace()
	s.StopAnimAndGesture()
	first := s.ViewOffsetValue()
	s.StopAnimAndGesture()
	if s.ViewOffsetValue() != first {
		t.Errorf("expected StopAnimAndGesture to be idempotent")
	}
}

func TestCloseAnimationRetainsSnapshotUntilDone(t *testing.T) {
	s, clk, opts := newTestSpace()
	opts.Animations.WindowClose.Off = false
	opts.Animations.WindowClose.DurationMS = 100
	t1, w1 := newTileForSpace(opts, clk, 400, 300)
	s.AddTile(nil, t1, true, column.ProportionWidth(0.5), false, false)

	blocker := s.StartCloseAnimationForWindow(w1.ID(), true)
	if blocker == nil {
		t.Fatalf("expected a blocker for the close animation")
	}
	if blocker.Done() {
		t.Fatalf("expected blocker to not be done immediately")
	}
	if len(s.ClosingWindows()) != 1 {
		t.Fatalf("expected 1 closing window, got %d", len(s.ClosingWindows()))
	}
	if s.ColumnsLen() != 0 {
		t.Fatalf("expected the window's column to be removed from the live layout")
	}

	s.AdvanceAnimations(200 * 1_000_000) // 200ms, past the 100ms duration
	if !blocker.Done() {
		t.Errorf("expected blocker to complete once the close animation finishes")
	}
	if len(s.ClosingWindows()) != 0 {
		t.Errorf("expected closing windows to be pruned once finished")
	}
}

func TestMoveLeftRightSwapsColumns(t *testing.T) {
	s, clk, opts := newTestSpace()
	t1, w1 := newTileForSpace(opts, clk, 400, 300)
	s.AddTile(nil, t1, true, column.ProportionWidth(0.5), false, false)
	t2, w2 := newTileForSpace(opts, clk, 400, 300)
	s.AddTile(nil, t2, true, column.ProportionWidth(0.5), false, false)

	if s.columns[0].Tiles()[0].Window().ID() != w1.ID() {
		t.Fatalf("expected window 1 in column 0 before move")
	}
	s.MoveLeft()
	if s.columns[0].Tiles()[0].Window().ID() != w2.ID() {
		t.Errorf("expected window 2 in column 0 after MoveLeft")
	}
	if s.ActiveColumnIdx() != 0 {
		t.Errorf("expected active column to follow the moved tile, got %d", s.ActiveColumnIdx())
	}
}
