// Package scenario decodes TOML scenario files into a scripted sequence
// of layout operations against a fresh
// Layout, and renders the result as a textual snapshot for comparison.
package scenario

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/column"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/layout"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/scrollingspace"
	"github.com/Gaurav-Gosain/niri-layout/internal/snapshot"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

// OutputSpec describes one output to connect during Setup.
type OutputSpec struct {
	Name   string  `toml:"name"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Setup is the scenario's starting configuration.
type Setup struct {
	Outputs       []OutputSpec `toml:"outputs"`
	Gaps          float64      `toml:"gaps"`
	AnimationsOff bool         `toml:"animations_off"`
}

// Op is one scripted operation. Only the fields relevant to Name are
// read; unused fields are left at their zero value.
type Op struct {
	Name     string  `toml:"op"`
	WindowID int     `toml:"window_id"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Dx       float64 `toml:"dx"`
	Dy       float64 `toml:"dy"`
	On       bool    `toml:"on"`
	Index    int     `toml:"index"`
}

// Scenario is a fully decoded scenario file.
type Scenario struct {
	Name           string `toml:"name"`
	Setup          Setup  `toml:"setup"`
	Ops            []Op   `toml:"ops"`
	ExpectSnapshot string `toml:"expect_snapshot"`
}

// Load reads and decodes a scenario file from path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	var sc Scenario
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Result is the outcome of running a Scenario once.
type Result struct {
	Name     string
	Path     string
	Snapshot string
	Passed   bool
	Err      error
}

// Run executes the scenario against a fresh Layout and snapshots the
// result. If ExpectSnapshot is non-empty, Passed reports whether the
// rendered snapshot matches it exactly; otherwise Passed is true whenever
// no operation errored.
func (sc *Scenario) Run() *Result {
	res := &Result{Name: sc.Name}

	clk := clock.New()
	opts := options.Default()
	opts.Gaps = sc.Setup.Gaps
	if sc.Setup.AnimationsOff {
		opts.Animations.WindowOpen.Off = true
		opts.Animations.WindowClose.Off = true
		opts.Animations.WindowMovement.Off = true
		opts.Animations.WindowResize.Off = true
		opts.Animations.HorizontalViewMovement.Off = true
		opts.Animations.WorkspaceSwitch.Off = true
	}

	l := layout.New(clk, opts, nil)
	for _, o := range sc.Setup.Outputs {
		l.AddOutput(layout.Output{
			ID:   wire.NewOutputID(),
			Area: geometry.Rect{W: o.Width, H: o.Height},
		})
	}

	windows := map[int]wire.Id{}

	for _, op := range sc.Ops {
		if err := apply(l, opts, clk, windows, op); err != nil {
			res.Err = fmt.Errorf("op %q: %w", op.Name, err)
			return res
		}
	}

	res.Snapshot = snapshot.Layout(l)
	if sc.ExpectSnapshot != "" {
		res.Passed = res.Snapshot == sc.ExpectSnapshot
	} else {
		res.Passed = true
	}
	return res
}

func activeScrolling(l *layout.Layout) *scrollingspace.ScrollingSpace {
	mon := l.Set().ActiveMonitor()
	if mon == nil {
		return nil
	}
	return mon.ActiveWorkspace().Scrolling()
}

func apply(l *layout.Layout, opts *options.Options, clk *clock.Clock, windows map[int]wire.Id, op Op) error {
	s := activeScrolling(l)
	if s == nil {
		return fmt.Errorf("no active monitor to operate on")
	}

	switch op.Name {
	case "add_window":
		t := tile.New(wire.NewFakeWindow(op.Width, op.Height), clk, opts, 1)
		windows[op.WindowID] = t.Window().ID()
		l.AddWindowToActiveWorkspace(t, column.ProportionWidth(0.5), false)

	case "focus_column_left":
		s.FocusLeft()
	case "focus_column_right":
		s.FocusRight()
	case "focus_column":
		s.FocusColumn(op.Index)
	case "move_left":
		s.MoveLeft()
	case "move_right":
		s.MoveRight()
	case "consume_or_expel_window_left":
		s.ConsumeOrExpelWindowLeft()
	case "consume_or_expel_window_right":
		s.ConsumeOrExpelWindowRight()
	case "center_column":
		s.CenterColumn()

	case "set_fullscreen":
		id, ok := windows[op.WindowID]
		if !ok {
			return fmt.Errorf("unknown window_id %d", op.WindowID)
		}
		s.SetFullscreen(id, op.On)

	case "set_window_height":
		id, ok := windows[op.WindowID]
		if !ok {
			return fmt.Errorf("unknown window_id %d", op.WindowID)
		}
		if err := setWindowHeight(s, opts, id, op.Height); err != nil {
			return err
		}

	case "interactive_resize_begin":
		id, ok := windows[op.WindowID]
		if !ok {
			return fmt.Errorf("unknown window_id %d", op.WindowID)
		}
		s.InteractiveResizeBegin(id, geometry.Edges{Right: true})
	case "interactive_resize_update":
		id, ok := windows[op.WindowID]
		if !ok {
			return fmt.Errorf("unknown window_id %d", op.WindowID)
		}
		s.InteractiveResizeUpdate(id, op.Dx, op.Dy)
	case "interactive_resize_end":
		id, ok := windows[op.WindowID]
		if !ok {
			return fmt.Errorf("unknown window_id %d", op.WindowID)
		}
		s.InteractiveResizeEnd(id)

	case "switch_workspace":
		mon := l.Set().ActiveMonitor()
		if mon == nil {
			return fmt.Errorf("no active monitor")
		}
		mon.SwitchWorkspace(op.Index, !opts.Animations.WorkspaceSwitch.Off)

	case "advance_time_ms":
		l.AdvanceAnimations(clk.Now())

	default:
		return fmt.Errorf("unknown op %q", op.Name)
	}
	return nil
}

// setWindowHeight locates the tile by window id, installs a fixed height
// policy on its column, and forces a relayout via UpdateConfig (the only
// exported path that re-derives tile heights from the current Options,
// since relayout itself is private to ScrollingSpace).
func setWindowHeight(s *scrollingspace.ScrollingSpace, opts *options.Options, id wire.Id, heightPx float64) error {
	for _, c := range s.Columns() {
		for ti, t := range c.Tiles() {
			if t.Window().ID() == id {
				c.SetHeightPolicyAt(ti, column.FixedHeight(heightPx))
				s.UpdateConfig(opts)
				return nil
			}
		}
	}
	return fmt.Errorf("window %d not found", id)
}
