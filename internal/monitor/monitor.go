// Package monitor implements Monitor: an output's
// ordered, always-has-a-trailing-empty-workspace list, the active
// workspace index, and the vertical workspace-switch animation/gesture.
package monitor

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/column"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
	"github.com/Gaurav-Gosain/niri-layout/internal/workspace"
)

// WorkspaceSwitch is the view-offset-style state machine driving the
// vertical workspace-switch animation/gesture, kept as a float index
// (fractional during transition, integral at rest).
type WorkspaceSwitch struct {
	anim    clock.Animation
	gesture *workspaceSwitchGesture
}

type workspaceSwitchGesture struct {
	tracker   *scrollGestureTracker
	centerIdx int
}

// scrollGestureTracker is the vertical analogue of
// scrollingspace.SwipeTracker, kept private to monitor since the
// normalisation constant (-dy/400) and clamp range differ from the
// horizontal view-offset gesture.
type scrollGestureTracker struct {
	pos     float64
	samples []trackerSample
}

type trackerSample struct {
	dy float64
	t  time.Duration
}

func newScrollGestureTracker() *scrollGestureTracker { return &scrollGestureTracker{} }

func (g *scrollGestureTracker) push(dy float64, t time.Duration) {
	g.pos += dy
	g.samples = append(g.samples, trackerSample{dy: dy, t: t})
	cutoff := t - 100*time.Millisecond
	i := 0
	for i < len(g.samples) && g.samples[i].t < cutoff {
		i++
	}
	if i > 0 {
		g.samples = g.samples[i:]
	}
}

func (g *scrollGestureTracker) velocity() float64 {
	if len(g.samples) < 2 {
		return 0
	}
	first, last := g.samples[0], g.samples[len(g.samples)-1]
	dt := (last.t - first.t).Seconds()
	if dt <= 0 {
		return 0
	}
	var sum float64
	for _, s := range g.samples[1:] {
		sum += s.dy
	}
	return sum / dt
}

// Monitor owns one output's workspace list.
type Monitor struct {
	outputID wire.OutputID

	workspaces        []*workspace.Workspace
	activeWorkspaceIdx int
	workspaceSwitch   *WorkspaceSwitch

	parentArea geometry.Rect
	scale      float64

	clk    *clock.Clock
	opts   *options.Options
	logger *log.Logger
}

// New creates a Monitor over outputID with a single empty workspace.
func New(outputID wire.OutputID, parentArea geometry.Rect, scale float64, clk *clock.Clock, opts *options.Options, logger *log.Logger) *Monitor {
	if logger == nil {
		logger = log.Default()
	}
	m := &Monitor{
		outputID:   outputID,
		parentArea: parentArea,
		scale:      scale,
		clk:        clk,
		opts:       opts,
		logger:     logger,
	}
	m.workspaces = append(m.workspaces, workspace.New(parentArea, scale, clk, opts, outputID, logger))
	return m
}

// OutputID returns the stable output token this monitor is bound to.
func (m *Monitor) OutputID() wire.OutputID { return m.outputID }

// Workspaces exposes the workspace list.
func (m *Monitor) Workspaces() []*workspace.Workspace { return m.workspaces }

// ActiveWorkspaceIdx returns the active workspace's index.
func (m *Monitor) ActiveWorkspaceIdx() int { return m.activeWorkspaceIdx }

// ActiveWorkspace returns the active workspace.
func (m *Monitor) ActiveWorkspace() *workspace.Workspace {
	return m.workspaces[m.activeWorkspaceIdx]
}

// ReplaceWorkspaces swaps in a new workspace list wholesale, used by
// Layout.AddOutput/RemoveOutput when migrating workspaces between
// monitors. The active index is clamped into the new list's range.
func (m *Monitor) ReplaceWorkspaces(ws []*workspace.Workspace) {
	m.workspaces = ws
	if len(m.workspaces) == 0 {
		m.activeWorkspaceIdx = 0
		return
	}
	m.activeWorkspaceIdx = geometry.ClampInt(m.activeWorkspaceIdx, 0, len(m.workspaces)-1)
}

// EnsureTrailingEmptyWorkspace is the exported form of
// ensureTrailingEmptyWorkspace, used by Layout's output migration.
func (m *Monitor) EnsureTrailingEmptyWorkspace() { m.ensureTrailingEmptyWorkspace() }

// WorkspaceSwitchState exposes the in-flight switch animation/gesture, if
// any.
func (m *Monitor) WorkspaceSwitchState() *WorkspaceSwitch { return m.workspaceSwitch }

// WorkspaceSwitchValue resolves the current (possibly fractional)
// workspace index being displayed.
func (m *Monitor) WorkspaceSwitchValue() float64 {
	if m.workspaceSwitch == nil {
		return float64(m.activeWorkspaceIdx)
	}
	if m.workspaceSwitch.gesture != nil {
		g := m.workspaceSwitch.gesture
		v := float64(g.centerIdx) + g.tracker.pos/400
		return geometry.Clamp(v, float64(g.centerIdx-1), float64(g.centerIdx+1))
	}
	return m.workspaceSwitch.anim.Value()
}

// ensureTrailingEmptyWorkspace appends a fresh empty workspace if the
// last one is not empty.
func (m *Monitor) ensureTrailingEmptyWorkspace() {
	if len(m.workspaces) == 0 || !m.workspaces[len(m.workspaces)-1].IsEmpty() {
		m.workspaces = append(m.workspaces, workspace.New(m.parentArea, m.scale, m.clk, m.opts, m.outputID, m.logger))
	}
}

// AddWindow delegates tile placement to the target workspace's scrolling
// space, appends a fresh trailing empty workspace if the target was the
// last one, and starts a workspace-switch animation from the prior
// fractional index when activate is set.
func (m *Monitor) AddWindow(workspaceIdx int, t *tile.Tile, activate bool, width column.Width, isFullWidth bool) {
	if workspaceIdx < 0 || workspaceIdx >= len(m.workspaces) {
		return
	}
	wasLast := workspaceIdx == len(m.workspaces)-1
	ws := m.workspaces[workspaceIdx]
	ws.Scrolling().AddTile(nil, t, true, width, isFullWidth, true)

	if wasLast {
		m.ensureTrailingEmptyWorkspace()
	}

	if activate {
		m.SwitchWorkspace(workspaceIdx, true)
	}
}

// SwitchWorkspace sets the active workspace index, animating the
// transition from the current fractional position unless animate is
// false.
func (m *Monitor) SwitchWorkspace(idx int, animate bool) {
	idx = geometry.ClampInt(idx, 0, len(m.workspaces)-1)
	from := m.WorkspaceSwitchValue()
	m.activeWorkspaceIdx = idx
	m.workspaceSwitch = nil
	if !animate || from == float64(idx) {
		return
	}
	cfg := m.opts.Animations.WorkspaceSwitch
	anim := options.BuildAnimation(cfg, m.clk.Now(), from, float64(idx), 0)
	if anim == nil {
		return
	}
	m.workspaceSwitch = &WorkspaceSwitch{anim: anim}
}

// CleanUpWorkspaces removes non-active, non-last empty workspaces. Must
// not be called while a workspace switch is in flight.
func (m *Monitor) CleanUpWorkspaces() {
	if m.workspaceSwitch != nil {
		return
	}
	active := m.workspaces[m.activeWorkspaceIdx]
	kept := make([]*workspace.Workspace, 0, len(m.workspaces))
	for i, ws := range m.workspaces {
		isLast := i == len(m.workspaces)-1
		if ws != active && !isLast && ws.IsEmpty() {
			continue
		}
		kept = append(kept, ws)
	}
	m.workspaces = kept
	for i, ws := range m.workspaces {
		if ws == active {
			m.activeWorkspaceIdx = i
			break
		}
	}
	m.ensureTrailingEmptyWorkspace()
}

// WorkspaceSwitchGestureBegin starts a vertical workspace-switch gesture
// centered on the current active index.
func (m *Monitor) WorkspaceSwitchGestureBegin() {
	m.workspaceSwitch = &WorkspaceSwitch{gesture: &workspaceSwitchGesture{
		tracker:   newScrollGestureTracker(),
		centerIdx: m.activeWorkspaceIdx,
	}}
}

// WorkspaceSwitchGestureUpdate feeds a vertical drag delta into the live
// gesture. Normalisation is -dy/400.
func (m *Monitor) WorkspaceSwitchGestureUpdate(dy float64, now time.Duration) {
	if m.workspaceSwitch == nil || m.workspaceSwitch.gesture == nil {
		return
	}
	m.workspaceSwitch.gesture.tracker.push(-dy, now)
}

// WorkspaceSwitchGestureEnd finishes the gesture, snapping to the nearest
// whole workspace index (or back to center if cancelled) via an
// Animation with matching initial velocity.
func (m *Monitor) WorkspaceSwitchGestureEnd(cancelled bool) {
	if m.workspaceSwitch == nil || m.workspaceSwitch.gesture == nil {
		return
	}
	g := m.workspaceSwitch.gesture
	from := m.WorkspaceSwitchValue()
	target := g.centerIdx
	if !cancelled {
		raw := float64(g.centerIdx) + g.tracker.pos/400
		raw = geometry.Clamp(raw, float64(g.centerIdx-1), float64(g.centerIdx+1))
		target = int(geometry.Round(raw))
		target = geometry.ClampInt(target, 0, len(m.workspaces)-1)
	}
	velocity := g.tracker.velocity() / 400
	cfg := m.opts.Animations.WorkspaceSwitch
	anim := options.BuildAnimation(cfg, m.clk.Now(), from, float64(target), velocity)
	m.activeWorkspaceIdx = target
	if anim == nil {
		m.workspaceSwitch = nil
		return
	}
	m.workspaceSwitch = &WorkspaceSwitch{anim: anim}
}

// UpdateConfig propagates a new Options snapshot to every workspace.
func (m *Monitor) UpdateConfig(opts *options.Options) {
	m.opts = opts
	for _, ws := range m.workspaces {
		ws.UpdateConfig(opts)
	}
}

// UpdateOutputScale propagates a new scale to every workspace.
func (m *Monitor) UpdateOutputScale(scale float64) {
	m.scale = scale
	for _, ws := range m.workspaces {
		ws.UpdateOutputScale(scale)
	}
}

// AdvanceAnimations advances every workspace and the workspace-switch
// animation.
func (m *Monitor) AdvanceAnimations(now time.Duration) {
	for _, ws := range m.workspaces {
		ws.AdvanceAnimations(now)
	}
	if m.workspaceSwitch != nil && m.workspaceSwitch.anim != nil {
		m.workspaceSwitch.anim.SetCurrentTime(now)
		if m.workspaceSwitch.anim.IsDone() {
			m.workspaceSwitch = nil
		}
	}
}

// IsAnimating reports whether any workspace or the switch animation is
// still live.
func (m *Monitor) IsAnimating() bool {
	if m.workspaceSwitch != nil {
		return true
	}
	for _, ws := range m.workspaces {
		if ws.IsAnimating() {
			return true
		}
	}
	return false
}
