package scrollingspace

import (
	"time"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

// TransactionBlocker holds up a compositor transaction until the close
// animation it guards has run its course. Real transactions elsewhere in
// the engine can poll Done before releasing buffers for a closed window;
// here it is a minimal one-shot latch.
type TransactionBlocker struct {
	done bool
}

// NewBlocker returns a blocker that is not yet done.
func NewBlocker() *TransactionBlocker { return &TransactionBlocker{} }

// NewCompletedBlocker returns a blocker that is already satisfied, used
// when transactions are disabled entirely.
func NewCompletedBlocker() *TransactionBlocker { return &TransactionBlocker{done: true} }

// Done reports whether the guarded work has completed.
func (b *TransactionBlocker) Done() bool { return b.done }

// Complete marks the blocker satisfied.
func (b *TransactionBlocker) Complete() { b.done = true }

// ClosingWindow is a retained render snapshot of a window that was just
// removed from the layout, fading/shrinking out over a short animation
// rather than disappearing instantly.
type ClosingWindow struct {
	Snapshot tile.UnmapSnapshot
	Position geometry.Point
	Anim     clock.Animation
	Blocker  *TransactionBlocker
}

// Progress is the 0..1 fraction of the close animation completed so far.
func (c *ClosingWindow) Progress() float64 { return c.Anim.Value() }

// IsDone reports whether the close animation has finished.
func (c *ClosingWindow) IsDone() bool { return c.Anim.IsDone() }

// StartCloseAnimationForWindow removes windowID's tile from the layout (if
// present) and starts a retained close animation for it: takes an unmap
// snapshot, computes its last rendered position, and builds a 0->1 easing
// animation guarded by a TransactionBlocker. If the window isn't found,
// this is a no-op and a nil blocker is returned.
func (s *ScrollingSpace) StartCloseAnimationForWindow(windowID wire.Id, useTransactions bool) *TransactionBlocker {
	ci, ti, t, ok := s.findTileByWindowID(windowID)
	if !ok {
		return nil
	}

	snap := t.TakeUnmapSnapshot()
	pos := geometry.Point{
		X: s.renderX(ci),
		Y: s.tileY(ci, ti),
	}

	cfg := s.opts.Animations.WindowClose
	anim := options.BuildAnimation(cfg, s.clk.Now(), 0, 1, 0)

	var blocker *TransactionBlocker
	if !useTransactions {
		blocker = NewCompletedBlocker()
	} else {
		blocker = NewBlocker()
	}

	if anim == nil {
		if !cfg.Off {
			s.logger.Warn("close animation unavailable, teardown proceeding without it", "window_id", windowID)
		}
		blocker.Complete()
	} else {
		s.closingWindows = append(s.closingWindows, &ClosingWindow{
			Snapshot: snap,
			Position: pos,
			Anim:     anim,
			Blocker:  blocker,
		})
	}

	s.RemoveTileByIdx(ci, ti, true)

	return blocker
}

// tileY computes tile ti's current rendered y offset within column ci,
// summing the resolved heights of the tiles above it.
func (s *ScrollingSpace) tileY(ci, ti int) float64 {
	col := s.columns[ci]
	h := s.workingArea.H
	gap := s.opts.Gaps
	if col.IsPendingFullscreen() {
		h = s.parentArea.H
		gap = 0
	}
	heights := col.UpdateTileHeights(h, gap)
	y := gap
	for i := 0; i < ti && i < len(heights); i++ {
		y += heights[i] + gap
	}
	return y
}

// advanceClosingWindows advances every closing window's animation and
// drops (and completes the blocker of) any that have finished.
func (s *ScrollingSpace) advanceClosingWindows(now time.Duration) {
	if len(s.closingWindows) == 0 {
		return
	}
	live := s.closingWindows[:0]
	for _, cw := range s.closingWindows {
		cw.Anim.SetCurrentTime(now)
		if cw.Anim.IsDone() {
			cw.Blocker.Complete()
			continue
		}
		live = append(live, cw)
	}
	s.closingWindows = live
}

// ClosingWindows exposes the live set for rendering.
func (s *ScrollingSpace) ClosingWindows() []*ClosingWindow { return s.closingWindows }
