// Package workspace implements Workspace: a paired
// ScrollingSpace/FloatingSpace with a name, originating-output, and a
// tiling/floating focus target.
package workspace

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/floatingspace"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/scrollingspace"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

// FocusTarget selects whether focus resolution prefers the tiling or the
// floating space within a workspace.
type FocusTarget int

const (
	FocusTiling FocusTarget = iota
	FocusFloating
)

// Workspace owns one ScrollingSpace, one FloatingSpace, a display name,
// the stable id of the output it was created on, and which of its two
// spaces currently holds input focus.
type Workspace struct {
	id                   wire.WorkspaceID
	name                 string
	originatingOutputID  wire.OutputID
	focusTarget          FocusTarget

	scrolling *scrollingspace.ScrollingSpace
	floating  *floatingspace.FloatingSpace

	logger *log.Logger
}

// New creates a workspace over parentArea, originating on outputID.
func New(parentArea geometry.Rect, scale float64, clk *clock.Clock, opts *options.Options, outputID wire.OutputID, logger *log.Logger) *Workspace {
	if logger == nil {
		logger = log.Default()
	}
	return &Workspace{
		id:                  wire.NewWorkspaceID(),
		originatingOutputID: outputID,
		focusTarget:         FocusTiling,
		scrolling:           scrollingspace.New(parentArea, scale, clk, opts, logger),
		floating:            floatingspace.New(parentArea, scale, clk, opts),
		logger:              logger,
	}
}

// ID is the workspace's stable identifier, resolvable via WorkspaceReference.
func (w *Workspace) ID() wire.WorkspaceID { return w.id }

// Name returns the user-facing name, empty if unnamed.
func (w *Workspace) Name() string { return w.name }

// SetName sets the user-facing name.
func (w *Workspace) SetName(name string) { w.name = name }

// OriginatingOutputID is the stable output token this workspace was
// created on.
func (w *Workspace) OriginatingOutputID() wire.OutputID { return w.originatingOutputID }

// SetOriginatingOutputID re-homes the workspace's origin. Layout's output
// migration does not call it: migrated workspaces keep their origin.
func (w *Workspace) SetOriginatingOutputID(id wire.OutputID) { w.originatingOutputID = id }

// FocusTarget returns which space currently holds focus.
func (w *Workspace) FocusTarget() FocusTarget { return w.focusTarget }

// SetFocusTarget switches the focus target.
func (w *Workspace) SetFocusTarget(t FocusTarget) { w.focusTarget = t }

// Scrolling exposes the tiling space.
func (w *Workspace) Scrolling() *scrollingspace.ScrollingSpace { return w.scrolling }

// Floating exposes the floating space.
func (w *Workspace) Floating() *floatingspace.FloatingSpace { return w.floating }

// IsEmpty reports whether neither space holds a window — the condition
// that makes a non-last workspace eligible for destruction.
func (w *Workspace) IsEmpty() bool {
	return w.scrolling.IsEmpty() && w.floating.IsEmpty()
}

// UpdateConfig propagates a new Options snapshot to both spaces.
func (w *Workspace) UpdateConfig(opts *options.Options) {
	w.scrolling.UpdateConfig(opts)
	w.floating.UpdateConfig(opts)
}

// UpdateOutputScale propagates a new scale to both spaces.
func (w *Workspace) UpdateOutputScale(scale float64) {
	w.scrolling.UpdateOutputScale(scale)
	w.floating.UpdateOutputScale(scale)
}

// AdvanceAnimations advances both spaces' animations.
func (w *Workspace) AdvanceAnimations(now time.Duration) {
	w.scrolling.AdvanceAnimations(now)
	w.floating.AdvanceAnimations(now)
}

// IsAnimating reports whether either space still has live animations.
func (w *Workspace) IsAnimating() bool {
	return w.scrolling.IsAnimating() || w.floating.IsAnimating()
}
