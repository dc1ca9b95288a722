package wire

import "github.com/Gaurav-Gosain/niri-layout/internal/geometry"

// SizingMode is the compositor-side sizing intent pending on a window,
// e.g. an in-flight fullscreen or maximize request the client hasn't
// acked yet.
type SizingMode int

const (
	SizingNone SizingMode = iota
	SizingFullscreen
	SizingMaximized
)

// ConfigureIntent reports whether a window needs a fresh configure sent,
// folding per-tile into a per-column decision: ShouldSend > Throttled >
// CanSend > NotNeeded.
type ConfigureIntent int

const (
	ConfigureNotNeeded ConfigureIntent = iota
	ConfigureCanSend
	ConfigureThrottled
	ConfigureShouldSend
)

// Fold combines two intents per the documented precedence order.
func (c ConfigureIntent) Fold(other ConfigureIntent) ConfigureIntent {
	if other > c {
		return other
	}
	return c
}

// InteractiveResizeData is the subset of in-flight interactive resize state
// a Window reports about itself, distinct from ScrollingSpace's own
// bookkeeping of the same operation.
type InteractiveResizeData struct {
	Edges geometry.Edges
}

// ResolvedWindowRules is the per-window override table already resolved by
// the (out-of-core) rule matcher.
type ResolvedWindowRules struct {
	BorderWidth    *float64
	FocusRingWidth *float64
	MinWidth       float64
	MinHeight      float64
	MaxWidth       float64 // 0 means unset/unbounded
	MaxHeight      float64
}

// AnimationSnapshot is the Window's size immediately before its most recent
// configure, used by Tile to interpolate a resize animation.
type AnimationSnapshot struct {
	Size geometry.Size
}

// Window is the contract the layout engine consumes. It is
// implemented by the real wayland surface wrapper (outside this module's
// scope) and by FakeWindow for tests.
type Window interface {
	ID() Id
	Size() geometry.Size
	MinSize() geometry.Size
	MaxSize() geometry.Size
	Rules() ResolvedWindowRules

	IsPendingFullscreen() bool
	IsUrgent() bool
	IsFloating() bool
	PendingSizingMode() SizingMode

	InteractiveResizeData() (InteractiveResizeData, bool)

	ConfigureIntent() ConfigureIntent
	SendPendingConfigure()
	SetBounds(size geometry.Size)
	SetActiveInColumn(active bool)
	SetFloating(floating bool)
	SetActivated(activated bool)
	SetInteractiveResize(data InteractiveResizeData, active bool)

	OnCommit(serial uint64)
	AnimationSnapshot() (AnimationSnapshot, bool)

	RequestedSize() (geometry.Size, bool)
	CancelInteractiveResize()
}
