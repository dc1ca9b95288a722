// Package layout implements Layout and MonitorSet: the
// top-level facade holding either a normal set of connected monitors or a
// fallback bucket of workspaces when no outputs are connected, plus
// output hotplug migration rules.
package layout

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/column"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/monitor"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
	"github.com/Gaurav-Gosain/niri-layout/internal/workspace"
)

// Output is the minimal identity/geometry a physical output contributes
// to the layout; everything else (mode negotiation, transform) is owned
// by the wayland backend outside the core.
type Output struct {
	ID   wire.OutputID
	Area geometry.Rect
}

// MonitorSet is Normal (one or more connected outputs) or NoOutputs (a
// fallback bucket of workspaces kept alive with no monitor to anchor
// them).
type MonitorSet struct {
	monitors        []*monitor.Monitor
	primaryIdx      int
	activeMonitorIdx int

	noOutputWorkspaces []*workspace.Workspace
}

// IsNoOutputs reports whether the set currently has zero connected
// monitors.
func (ms *MonitorSet) IsNoOutputs() bool { return len(ms.monitors) == 0 }

// Monitors exposes the connected monitor list (empty in NoOutputs state).
func (ms *MonitorSet) Monitors() []*monitor.Monitor { return ms.monitors }

// PrimaryMonitor returns the primary monitor, or nil in NoOutputs state.
func (ms *MonitorSet) PrimaryMonitor() *monitor.Monitor {
	if ms.IsNoOutputs() {
		return nil
	}
	return ms.monitors[ms.primaryIdx]
}

// ActiveMonitor returns the active monitor, or nil in NoOutputs state.
func (ms *MonitorSet) ActiveMonitor() *monitor.Monitor {
	if ms.IsNoOutputs() {
		return nil
	}
	return ms.monitors[ms.activeMonitorIdx]
}

// NoOutputWorkspaces exposes the fallback bucket (empty when monitors are
// connected).
func (ms *MonitorSet) NoOutputWorkspaces() []*workspace.Workspace { return ms.noOutputWorkspaces }

// Layout is the top-level facade: one MonitorSet, shared Clock/Options,
// and a logger threaded to every owned component the same way Options is.
type Layout struct {
	set *MonitorSet

	clk    *clock.Clock
	opts   *options.Options
	logger *log.Logger
}

// New creates an empty Layout with no connected outputs.
func New(clk *clock.Clock, opts *options.Options, logger *log.Logger) *Layout {
	if logger == nil {
		logger = log.Default()
	}
	return &Layout{
		set:    &MonitorSet{},
		clk:    clk,
		opts:   opts,
		logger: logger,
	}
}

// Set exposes the MonitorSet.
func (l *Layout) Set() *MonitorSet { return l.set }

// UpdateConfig swaps in a new Options snapshot and propagates it to every
// monitor and no-output workspace.
func (l *Layout) UpdateConfig(opts *options.Options) {
	l.opts = opts
	for _, m := range l.set.monitors {
		m.UpdateConfig(opts)
	}
	for _, ws := range l.set.noOutputWorkspaces {
		ws.UpdateConfig(opts)
	}
}

// AdvanceAnimations advances every monitor's (and, in NoOutputs state,
// every orphaned workspace's) animations.
func (l *Layout) AdvanceAnimations(now time.Duration) {
	for _, m := range l.set.monitors {
		m.AdvanceAnimations(now)
	}
	for _, ws := range l.set.noOutputWorkspaces {
		ws.AdvanceAnimations(now)
	}
}

// IsAnimating reports whether anything in the layout still needs frame
// ticks.
func (l *Layout) IsAnimating() bool {
	for _, m := range l.set.monitors {
		if m.IsAnimating() {
			return true
		}
	}
	for _, ws := range l.set.noOutputWorkspaces {
		if ws.IsAnimating() {
			return true
		}
	}
	return false
}

// AddOutput connects a new monitor. If this is the first monitor, the
// NoOutputs bucket's workspaces (if any) become its workspace list,
// always ending with one empty workspace; otherwise it inherits the
// primary monitor's workspaces that originated on this output (in their
// original relative order, non-empty only), always appending one fresh
// empty workspace, and the primary retains its remaining workspaces with
// indices adjusted.
func (l *Layout) AddOutput(out Output) *monitor.Monitor {
	newMon := monitor.New(out.ID, out.Area, 1, l.clk, l.opts, l.logger)

	if l.set.IsNoOutputs() {
		if len(l.set.noOutputWorkspaces) > 0 {
			newMon.ReplaceWorkspaces(l.set.noOutputWorkspaces)
			newMon.EnsureTrailingEmptyWorkspace()
			l.set.noOutputWorkspaces = nil
		}
		l.set.monitors = []*monitor.Monitor{newMon}
		l.set.primaryIdx = 0
		l.set.activeMonitorIdx = 0
		return newMon
	}

	primary := l.set.monitors[l.set.primaryIdx]
	primaryActive := primary.ActiveWorkspace()
	inherited := make([]*workspace.Workspace, 0)
	remaining := make([]*workspace.Workspace, 0, len(primary.Workspaces()))
	for _, ws := range primary.Workspaces() {
		if ws.OriginatingOutputID() == out.ID && !ws.IsEmpty() {
			inherited = append(inherited, ws)
		} else {
			remaining = append(remaining, ws)
		}
	}
	primary.ReplaceWorkspaces(remaining)
	primary.EnsureTrailingEmptyWorkspace()
	for i, ws := range primary.Workspaces() {
		if ws == primaryActive {
			primary.SwitchWorkspace(i, false)
			break
		}
	}

	newMon.ReplaceWorkspaces(inherited)
	newMon.EnsureTrailingEmptyWorkspace()

	l.set.monitors = append(l.set.monitors, newMon)
	return newMon
}

// RemoveOutput disconnects outputID's monitor: empty workspaces on it are
// discarded, the rest are appended (in order) to the primary monitor
// followed by one empty workspace. If the removed monitor was primary,
// the next monitor in list order becomes primary. If no monitors remain,
// the primary's workspaces become the NoOutputs bucket.
func (l *Layout) RemoveOutput(outputID wire.OutputID) {
	idx := -1
	for i, m := range l.set.monitors {
		if m.OutputID() == outputID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	removed := l.set.monitors[idx]
	l.set.monitors = append(l.set.monitors[:idx], l.set.monitors[idx+1:]...)

	if len(l.set.monitors) == 0 {
		l.set.noOutputWorkspaces = nonEmptyWorkspaces(removed.Workspaces())
		if len(l.set.noOutputWorkspaces) == 0 {
			l.set.noOutputWorkspaces = removed.Workspaces()
		}
		l.set.primaryIdx = 0
		l.set.activeMonitorIdx = 0
		return
	}

	if l.set.primaryIdx == idx {
		l.set.primaryIdx = 0
	} else if l.set.primaryIdx > idx {
		l.set.primaryIdx--
	}
	if l.set.activeMonitorIdx == idx {
		l.set.activeMonitorIdx = l.set.primaryIdx
	} else if l.set.activeMonitorIdx > idx {
		l.set.activeMonitorIdx--
	}

	primary := l.set.monitors[l.set.primaryIdx]
	wasActiveLastEmpty := removed.ActiveWorkspaceIdx() == len(removed.Workspaces())-1 &&
		removed.ActiveWorkspace().IsEmpty()

	kept := nonEmptyWorkspaces(removed.Workspaces())
	merged := append(append([]*workspace.Workspace{}, primary.Workspaces()...), kept...)
	primary.ReplaceWorkspaces(merged)
	primary.EnsureTrailingEmptyWorkspace()

	if wasActiveLastEmpty {
		primary.SwitchWorkspace(len(primary.Workspaces())-1, false)
	}
}

func nonEmptyWorkspaces(in []*workspace.Workspace) []*workspace.Workspace {
	out := make([]*workspace.Workspace, 0, len(in))
	for _, ws := range in {
		if !ws.IsEmpty() {
			out = append(out, ws)
		}
	}
	return out
}

// ResolveWorkspace resolves a WorkspaceReference against the active
// monitor (Id first, then positional Index, then case-sensitive Name),
// returning nil if unresolvable.
func (l *Layout) ResolveWorkspace(ref wire.WorkspaceReference) *workspace.Workspace {
	mon := l.set.ActiveMonitor()
	if mon == nil {
		for _, ws := range l.set.noOutputWorkspaces {
			if ref.Matches(ws.ID(), -1, ws.Name()) {
				return ws
			}
		}
		return nil
	}
	for i, ws := range mon.Workspaces() {
		if ref.Matches(ws.ID(), i, ws.Name()) {
			return ws
		}
	}
	return nil
}

// AddWindowToActiveWorkspace is a convenience wrapper placing a tile on
// the active monitor's active workspace.
func (l *Layout) AddWindowToActiveWorkspace(t *tile.Tile, width column.Width, isFullWidth bool) {
	mon := l.set.ActiveMonitor()
	if mon == nil {
		return
	}
	mon.AddWindow(mon.ActiveWorkspaceIdx(), t, true, width, isFullWidth)
}
