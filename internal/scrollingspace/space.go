package scrollingspace

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/column"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

// InteractiveResize is ScrollingSpace's own record of an in-flight
// interactive resize, distinct from the Window's self-reported
// InteractiveResizeData.
type InteractiveResize struct {
	WindowID     wire.Id
	OriginalSize geometry.Size
	Edges        geometry.Edges
}

// InsertHint is the ghost rectangle shown during interactive window drops.
type InsertHint struct {
	Position     int
	Width        float64
	CornerRadius float64
	IsFullWidth  bool
}

type columnData struct {
	width float64
}

// ScrollingSpace owns an ordered sequence of columns, the view-offset
// state machine, interactive resize, and closing-window animations.
type ScrollingSpace struct {
	columns []*column.Column
	data    []columnData

	activeColumnIdx int
	viewOffset      ViewOffset

	activatePrevColumnOnRemoval *float64
	viewOffsetToRestore         *float64

	interactiveResize *InteractiveResize
	closingWindows    []*ClosingWindow
	insertHint        *InsertHint

	viewSize    geometry.Size
	parentArea  geometry.Rect
	workingArea geometry.Rect
	scale       float64

	clk    *clock.Clock
	opts   *options.Options
	logger *log.Logger
}

// New builds an empty ScrollingSpace over parentArea at the given scale.
// A nil logger defaults to log.Default() when no scoped logger was
// injected.
func New(parentArea geometry.Rect, scale float64, clk *clock.Clock, opts *options.Options, logger *log.Logger) *ScrollingSpace {
	if logger == nil {
		logger = log.Default()
	}
	s := &ScrollingSpace{
		viewOffset: StaticOffset{},
		parentArea: parentArea,
		scale:      scale,
		clk:        clk,
		opts:       opts,
		logger:     logger,
	}
	s.recomputeWorkingArea()
	s.viewSize = geometry.Size{W: s.workingArea.W, H: s.workingArea.H}
	return s
}

// computeWorkingArea subtracts struts from parentArea: working_area ==
// compute_working_area(parent_area, scale, struts).
func computeWorkingArea(parentArea geometry.Rect, struts options.Struts) geometry.Rect {
	return geometry.Rect{
		X: parentArea.X + struts.Left,
		Y: parentArea.Y + struts.Top,
		W: parentArea.W - struts.Left - struts.Right,
		H: parentArea.H - struts.Top - struts.Bottom,
	}
}

func (s *ScrollingSpace) recomputeWorkingArea() {
	s.workingArea = computeWorkingArea(s.parentArea, s.opts.Struts)
}

// WorkingArea exposes the current working area (post-strut).
func (s *ScrollingSpace) WorkingArea() geometry.Rect { return s.workingArea }

// ParentArea exposes the pre-strut monitor rectangle.
func (s *ScrollingSpace) ParentArea() geometry.Rect { return s.parentArea }

// Scale returns the space's output scale.
func (s *ScrollingSpace) Scale() float64 { return s.scale }

// Columns exposes the column list (read-only use expected; mutation goes
// through ScrollingSpace's own operations to preserve invariants).
func (s *ScrollingSpace) Columns() []*column.Column { return s.columns }

// ColumnsLen is |S.columns|.
func (s *ScrollingSpace) ColumnsLen() int { return len(s.columns) }

// ActiveColumnIdx returns the active column index (0 and unused when
// empty).
func (s *ScrollingSpace) ActiveColumnIdx() int { return s.activeColumnIdx }

// ActiveColumn returns the active column, or nil if empty.
func (s *ScrollingSpace) ActiveColumn() *column.Column {
	if len(s.columns) == 0 {
		return nil
	}
	return s.columns[s.activeColumnIdx]
}

// IsEmpty reports whether the space has no columns (and thus no windows).
func (s *ScrollingSpace) IsEmpty() bool { return len(s.columns) == 0 }

// ViewOffset exposes the current view-offset state for inspection (tests,
// snapshotting).
func (s *ScrollingSpace) ViewOffset() ViewOffset { return s.viewOffset }

// ViewOffsetValue is the resolved scalar offset regardless of state kind.
func (s *ScrollingSpace) ViewOffsetValue() float64 { return s.viewOffset.Current() }

// UpdateConfig swaps in a new Options snapshot, re-derives the working
// area, and propagates to every column/tile.
func (s *ScrollingSpace) UpdateConfig(opts *options.Options) {
	s.opts = opts
	s.recomputeWorkingArea()
	for _, c := range s.columns {
		c.UpdateConfig(opts)
	}
	s.relayout(false)
}

// UpdateOutputScale propagates a new scale and re-snaps the view offset
// without animating (a scale change is not a user gesture), per
// SPEC_FULL.md's "Output transform / scale changes" addition.
func (s *ScrollingSpace) UpdateOutputScale(scale float64) {
	if scale <= 0 {
		return
	}
	s.scale = scale
	s.StopAnimAndGesture()
	s.relayout(false)
}

// invariant #4 bookkeeping: keep s.data in lockstep with s.columns.
func (s *ScrollingSpace) syncData() {
	if len(s.data) != len(s.columns) {
		nd := make([]columnData, len(s.columns))
		copy(nd, s.data)
		s.data = nd
	}
	for i, c := range s.columns {
		s.data[i].width = c.WidthPx(s.workingArea.W, s.parentArea.W, s.opts.Gaps, c.IsPendingFullscreen())
	}
}

// ColumnX returns the x position (in working-area-relative coordinates,
// before view offset) of column idx's left edge.
func (s *ScrollingSpace) ColumnX(idx int) float64 {
	x := s.opts.Gaps
	for i := 0; i < idx; i++ {
		x += s.data[i].width + s.opts.Gaps
	}
	return x
}

// relayout recomputes every column's width cache and tile heights. animate
// controls whether tile resizes triggered by this relayout animate.
func (s *ScrollingSpace) relayout(animate bool) {
	s.syncData()
	for i, c := range s.columns {
		h := s.workingArea.H
		if c.IsPendingFullscreen() {
			h = s.parentArea.H
		}
		gap := s.opts.Gaps
		if c.IsPendingFullscreen() {
			gap = 0
		}
		c.ApplyLayout(h, s.data[i].width, gap, animate, nil)
	}
}

// AdvanceAnimations advances every column, tile, the view offset, and
// closing-window animations to time now.
func (s *ScrollingSpace) AdvanceAnimations(now time.Duration) {
	s.viewOffset = advance(s.viewOffset, now)
	for _, c := range s.columns {
		c.AdvanceAnimations(now)
	}
	s.advanceClosingWindows(now)
}

// IsAnimating reports whether anything in this space still needs frame
// ticks.
func (s *ScrollingSpace) IsAnimating() bool {
	if _, ok := s.viewOffset.(AnimationOffset); ok {
		return true
	}
	if g, ok := s.viewOffset.(GestureOffset); ok && g.Gesture.DndScrollAnim != nil {
		return true
	}
	for _, c := range s.columns {
		if c.MoveAnimation() != nil {
			return true
		}
		for _, t := range c.Tiles() {
			if t.IsAnimating() {
				return true
			}
		}
	}
	return len(s.closingWindows) > 0
}

// StopAnimAndGesture cancels any in-flight view-offset animation or
// gesture, snapping to the current value. Idempotent: calling it twice in
// a row is a no-op the second time (invariant #9).
func (s *ScrollingSpace) StopAnimAndGesture() {
	s.viewOffset = StaticOffset{Value: s.viewOffset.Current()}
}

// cancelGestureToStationary reverts to the gesture's stationary_view_offset rather
// than its current position, used by the cancelled path of gesture end.
func (s *ScrollingSpace) cancelGestureToStationary() {
	if g, ok := s.viewOffset.(GestureOffset); ok {
		s.viewOffset = StaticOffset{Value: g.Gesture.StationaryViewOffset}
	}
}

// findTileByWindowID locates a tile (and its column/index) by window id.
func (s *ScrollingSpace) findTileByWindowID(id wire.Id) (ci, ti int, t *tile.Tile, ok bool) {
	for ci, c := range s.columns {
		for ti, t := range c.Tiles() {
			if t.Window().ID() == id {
				return ci, ti, t, true
			}
		}
	}
	return 0, 0, nil, false
}
