package snapshot

import (
	"testing"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/column"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/layout"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

func TestLayoutSnapshotIsStableAcrossRepeatedCalls(t *testing.T) {
	clk := clock.New()
	opts := options.Default()
	opts.Border.Off = true
	l := layout.New(clk, opts, nil)
	out := layout.Output{ID: wire.NewOutputID(), Area: geometry.Rect{W: 1280, H: 720}}
	l.AddOutput(out)

	mon := l.Set().PrimaryMonitor()
	tl := tile.New(wire.NewFakeWindow(200, 150), clk, opts, 1)
	mon.AddWindow(0, tl, true, column.ProportionWidth(0.5), false)

	first := Layout(l)
	second := Layout(l)
	if first != second {
		t.Errorf("expected repeated snapshots with no intervening operation to be byte-identical:\n%s\n---\n%s", first, second)
	}
	if first == "" {
		t.Errorf("expected a non-empty snapshot")
	}
}

func TestNoOutputsSnapshotListsOrphanedWorkspaces(t *testing.T) {
	clk := clock.New()
	opts := options.Default()
	l := layout.New(clk, opts, nil)

	out := Layout(l)
	if out == "" {
		t.Fatalf("expected a snapshot even with no connected outputs")
	}
	if got, want := out[:len("Layout (no outputs)")], "Layout (no outputs)"; got != want {
		t.Errorf("expected NoOutputs header, got %q", out)
	}
}
