package workspace

import (
	"testing"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

func TestNewWorkspaceIsEmptyAndTiling(t *testing.T) {
	clk := clock.New()
	opts := options.Default()
	area := geometry.Rect{W: 1280, H: 720}
	ws := New(area, 1, clk, opts, wire.NewOutputID(), nil)

	if !ws.IsEmpty() {
		t.Errorf("expected a freshly created workspace to be empty")
	}
	if ws.FocusTarget() != FocusTiling {
		t.Errorf("expected default focus target to be Tiling")
	}
}

func TestSetFocusTargetAndName(t *testing.T) {
	clk := clock.New()
	opts := options.Default()
	area := geometry.Rect{W: 1280, H: 720}
	ws := New(area, 1, clk, opts, wire.NewOutputID(), nil)

	ws.SetFocusTarget(FocusFloating)
	ws.SetName("scratch")
	if ws.FocusTarget() != FocusFloating {
		t.Errorf("expected focus target to change to Floating")
	}
	if ws.Name() != "scratch" {
		t.Errorf("expected name to be set, got %q", ws.Name())
	}
}

func TestOriginatingOutputIDTracksReassignment(t *testing.T) {
	clk := clock.New()
	opts := options.Default()
	area := geometry.Rect{W: 1280, H: 720}
	out1 := wire.NewOutputID()
	out2 := wire.NewOutputID()
	ws := New(area, 1, clk, opts, out1, nil)

	if ws.OriginatingOutputID() != out1 {
		t.Fatalf("expected originating output to be out1")
	}
	ws.SetOriginatingOutputID(out2)
	if ws.OriginatingOutputID() != out2 {
		t.Errorf("expected originating output to update to out2")
	}
}
