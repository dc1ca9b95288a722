package monitor

import (
	"testing"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/column"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

func newTestMonitor() (*Monitor, *clock.Clock, *options.Options) {
	clk := clock.New()
	opts := options.Default()
	opts.Border.Off = true
	area := geometry.Rect{W: 1280, H: 720}
	return New(wire.NewOutputID(), area, 1, clk, opts, nil), clk, opts
}

func newMonTile(opts *options.Options, clk *clock.Clock) *tile.Tile {
	return tile.New(wire.NewFakeWindow(400, 300), clk, opts, 1)
}

func TestNewMonitorHasOneEmptyWorkspace(t *testing.T) {
	m, _, _ := newTestMonitor()
	if len(m.Workspaces()) != 1 {
		t.Fatalf("expected 1 workspace, got %d", len(m.Workspaces()))
	}
	if !m.Workspaces()[0].IsEmpty() {
		t.Errorf("expected the sole workspace to be empty")
	}
}

func TestAddWindowAppendsTrailingEmptyWorkspace(t *testing.T) {
	m, clk, opts := newTestMonitor()
	m.AddWindow(0, newMonTile(opts, clk), true, column.ProportionWidth(0.5), false)

	if len(m.Workspaces()) != 2 {
		t.Fatalf("expected a fresh trailing empty workspace, got %d workspaces", len(m.Workspaces()))
	}
	if m.Workspaces()[0].IsEmpty() {
		t.Errorf("expected workspace 0 to now hold the added window")
	}
	if !m.Workspaces()[1].IsEmpty() {
		t.Errorf("expected workspace 1 (trailing) to remain empty")
	}
}

func TestAddWindowToNonLastDoesNotDuplicateTrailing(t *testing.T) {
	m, clk, opts := newTestMonitor()
	m.AddWindow(0, newMonTile(opts, clk), true, column.ProportionWidth(0.5), false)
	m.AddWindow(0, newMonTile(opts, clk), false, column.ProportionWidth(0.5), false)

	if len(m.Workspaces()) != 2 {
		t.Errorf("expected still 2 workspaces after adding to a non-last workspace, got %d", len(m.Workspaces()))
	}
}

func TestCleanUpWorkspacesRemovesEmptyNonActiveNonLast(t *testing.T) {
	m, clk, opts := newTestMonitor()
	m.AddWindow(0, newMonTile(opts, clk), true, column.ProportionWidth(0.5), false)
	// Now: [ws0: 1 window, ws1: empty(last)]. Switch active to ws1 (empty).
	m.SwitchWorkspace(1, false)
	// ws0 is non-active, non-last, and non-empty: should survive clean-up.
	m.CleanUpWorkspaces()
	if len(m.Workspaces()) != 2 {
		t.Errorf("expected non-empty ws0 to survive clean-up, got %d workspaces", len(m.Workspaces()))
	}
}

func TestSwitchWorkspaceClampsIndex(t *testing.T) {
	m, _, _ := newTestMonitor()
	m.SwitchWorkspace(50, false)
	if m.ActiveWorkspaceIdx() != 0 {
		t.Errorf("expected index clamped to 0 (only 1 workspace exists), got %d", m.ActiveWorkspaceIdx())
	}
}

func TestWorkspaceSwitchGestureClampsToNeighbors(t *testing.T) {
	m, clk, opts := newTestMonitor()
	m.AddWindow(0, newMonTile(opts, clk), false, column.ProportionWidth(0.5), false)
	m.AddWindow(1, newMonTile(opts, clk), false, column.ProportionWidth(0.5), false)

	m.WorkspaceSwitchGestureBegin()
	m.WorkspaceSwitchGestureUpdate(-40000, 0)
	v := m.WorkspaceSwitchValue()
	if v < -1.001 || v > 1.001 {
		t.Errorf("expected gesture value clamped within center +/-1, got %v", v)
	}
}
