// Package snapshot renders a Layout (or any sub-tree of it) to a stable
// textual form for scenario assertions and debug inspection: snapshotting
// twice with no intervening operation must produce byte-identical output.
// Nothing here attempts to parse
// the text back into a Layout — it is a write-only, deterministic dump,
// the same relationship cobra's own usage-string generation has to the
// command tree it describes.
package snapshot

import (
	"fmt"
	"strings"

	"github.com/Gaurav-Gosain/niri-layout/internal/column"
	"github.com/Gaurav-Gosain/niri-layout/internal/floatingspace"
	"github.com/Gaurav-Gosain/niri-layout/internal/layout"
	"github.com/Gaurav-Gosain/niri-layout/internal/monitor"
	"github.com/Gaurav-Gosain/niri-layout/internal/pool"
	"github.com/Gaurav-Gosain/niri-layout/internal/scrollingspace"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
	"github.com/Gaurav-Gosain/niri-layout/internal/workspace"
)

// Layout renders the full monitor set: NoOutputs prints its orphaned
// workspaces, Normal prints each monitor in storage order, primary and
// active flagged explicitly so the text doesn't depend on a reader
// knowing which index means what.
func Layout(l *layout.Layout) string {
	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)

	set := l.Set()
	if set.IsNoOutputs() {
		fmt.Fprintf(sb, "Layout (no outputs)\n")
		for i, ws := range set.NoOutputWorkspaces() {
			writeWorkspace(sb, "  ", i, ws, false, false)
		}
		return sb.String()
	}

	fmt.Fprintf(sb, "Layout (%d monitor(s))\n", len(set.Monitors()))
	for i, m := range set.Monitors() {
		isPrimary := m == set.PrimaryMonitor()
		isActive := m == set.ActiveMonitor()
		writeMonitor(sb, i, m, isPrimary, isActive)
	}
	return sb.String()
}

func writeMonitor(sb *strings.Builder, idx int, m *monitor.Monitor, primary, active bool) {
	fmt.Fprintf(sb, "Monitor[%d] output=%s", idx, m.OutputID())
	if primary {
		sb.WriteString(" primary")
	}
	if active {
		sb.WriteString(" active")
	}
	fmt.Fprintf(sb, " active_ws=%d\n", m.ActiveWorkspaceIdx())
	for i, ws := range m.Workspaces() {
		writeWorkspace(sb, "  ", i, ws, i == m.ActiveWorkspaceIdx(), false)
	}
}

func writeWorkspace(sb *strings.Builder, indent string, idx int, ws *workspace.Workspace, active, noMonitor bool) {
	fmt.Fprintf(sb, "%sWorkspace[%d] id=%d name=%q", indent, idx, ws.ID(), ws.Name())
	if active {
		sb.WriteString(" active")
	}
	if ws.FocusTarget() == workspace.FocusFloating {
		sb.WriteString(" focus=floating")
	}
	sb.WriteString("\n")
	writeScrolling(sb, indent+"  ", ws.Scrolling())
	writeFloating(sb, indent+"  ", ws.Floating())
}

func writeScrolling(sb *strings.Builder, indent string, s *scrollingspace.ScrollingSpace) {
	fmt.Fprintf(sb, "%sScrolling columns=%d active_col=%d view_offset=%.2f\n",
		indent, s.ColumnsLen(), s.ActiveColumnIdx(), s.ViewOffsetValue())
	for ci, c := range s.Columns() {
		writeColumn(sb, indent+"  ", ci, c, ci == s.ActiveColumnIdx())
	}
}

func writeColumn(sb *strings.Builder, indent string, idx int, c *column.Column, active bool) {
	fmt.Fprintf(sb, "%sColumn[%d] active_tile=%d", indent, idx, c.ActiveTileIdx())
	if active {
		sb.WriteString(" active")
	}
	if c.IsPendingFullscreen() {
		sb.WriteString(" fullscreen")
	}
	if c.IsPendingMaximized() {
		sb.WriteString(" maximized")
	}
	if c.DisplayMode() == column.DisplayTabbed {
		sb.WriteString(" tabbed")
	}
	sb.WriteString("\n")
	for ti, t := range c.Tiles() {
		size := c.CachedSize(ti)
		fmt.Fprintf(sb, "%s  Tile[%d] window=%d size=%.2fx%.2f\n",
			indent, ti, t.Window().ID(), size.W, size.H)
	}
}

func writeFloating(sb *strings.Builder, indent string, f *floatingspace.FloatingSpace) {
	if f.IsEmpty() {
		return
	}
	fmt.Fprintf(sb, "%sFloating windows=%d\n", indent, f.Len())
	for _, rp := range f.TilesWithRenderPositions() {
		writeFloatingTile(sb, indent+"  ", rp)
	}
}

func writeFloatingTile(sb *strings.Builder, indent string, rp floatingspace.TileRenderPosition) {
	fmt.Fprintf(sb, "%sWindow=%d pos=(%.2f,%.2f)\n", indent, windowID(rp.Tile), rp.Position.X, rp.Position.Y)
}

func windowID(t *tile.Tile) uint64 {
	return uint64(t.Window().ID())
}
