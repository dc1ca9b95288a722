package wire

import "github.com/Gaurav-Gosain/niri-layout/internal/geometry"

// FakeWindow is a minimal in-memory Window used by tests throughout the
// layout packages. SetBounds only records the requested size; the window
// adopts it, unchanged, when AckRequested (or OnCommit) is called, as if
// the client always accepts the compositor's configure.
type FakeWindow struct {
	id       Id
	size     geometry.Size
	minSize  geometry.Size
	maxSize  geometry.Size
	rules    ResolvedWindowRules
	floating bool
	urgent   bool
	fullscreen bool
	sizingMode SizingMode
	activated bool
	activeInColumn bool

	resizeData   InteractiveResizeData
	resizeActive bool

	lastIntent ConfigureIntent
	pendingConfigure bool

	requestedSize geometry.Size
	hasRequested  bool

	prevSize    geometry.Size
	hasPrevSize bool
}

// NewFakeWindow creates a FakeWindow with the given initial size and a
// fresh stable id.
func NewFakeWindow(w, h float64) *FakeWindow {
	return &FakeWindow{
		id:      NewID(),
		size:    geometry.Size{W: w, H: h},
		minSize: geometry.Size{W: 1, H: 1},
	}
}

func (f *FakeWindow) ID() Id                { return f.id }
func (f *FakeWindow) Size() geometry.Size   { return f.size }
func (f *FakeWindow) MinSize() geometry.Size { return f.minSize }
func (f *FakeWindow) MaxSize() geometry.Size { return f.maxSize }
func (f *FakeWindow) Rules() ResolvedWindowRules { return f.rules }

func (f *FakeWindow) IsPendingFullscreen() bool     { return f.fullscreen }
func (f *FakeWindow) IsUrgent() bool                { return f.urgent }
func (f *FakeWindow) IsFloating() bool              { return f.floating }
func (f *FakeWindow) PendingSizingMode() SizingMode { return f.sizingMode }

func (f *FakeWindow) InteractiveResizeData() (InteractiveResizeData, bool) {
	return f.resizeData, f.resizeActive
}

func (f *FakeWindow) ConfigureIntent() ConfigureIntent { return f.lastIntent }
func (f *FakeWindow) SendPendingConfigure()            { f.pendingConfigure = false }

// SetBounds is what the compositor calls to tell the window its next
// configure size; FakeWindow treats this as "requested", and AckRequested
// simulates the client's commit.
func (f *FakeWindow) SetBounds(size geometry.Size) {
	f.requestedSize = size
	f.hasRequested = true
	f.lastIntent = ConfigureShouldSend
	f.pendingConfigure = true
}

func (f *FakeWindow) SetActiveInColumn(active bool) { f.activeInColumn = active }
func (f *FakeWindow) SetFloating(floating bool)     { f.floating = floating }
func (f *FakeWindow) SetActivated(activated bool)   { f.activated = activated }

func (f *FakeWindow) SetInteractiveResize(data InteractiveResizeData, active bool) {
	f.resizeData = data
	f.resizeActive = active
}

func (f *FakeWindow) OnCommit(serial uint64) {
	if f.hasRequested {
		f.prevSize = f.size
		f.hasPrevSize = true
		f.size = f.requestedSize
		f.hasRequested = false
	}
	f.lastIntent = ConfigureNotNeeded
}

func (f *FakeWindow) AnimationSnapshot() (AnimationSnapshot, bool) {
	if !f.hasPrevSize {
		return AnimationSnapshot{}, false
	}
	return AnimationSnapshot{Size: f.prevSize}, true
}

func (f *FakeWindow) RequestedSize() (geometry.Size, bool) { return f.requestedSize, f.hasRequested }
func (f *FakeWindow) CancelInteractiveResize()              { f.resizeActive = false }

// AckRequested simulates the client committing a buffer matching the last
// SetBounds size — the trigger for Tile.UpdateWindow in tests.
func (f *FakeWindow) AckRequested() {
	f.OnCommit(0)
}

// SetFullscreenPending is a test helper mirroring a fullscreen request
// arriving from the window itself (client-initiated fullscreen).
func (f *FakeWindow) SetFullscreenPending(v bool) { f.fullscreen = v }

// SetMinSize is a test helper for exercising the min-size clamp paths.
func (f *FakeWindow) SetMinSize(w, h float64) { f.minSize = geometry.Size{W: w, H: h} }

// SetSizeDirect bypasses the configure/ack dance for test setup.
func (f *FakeWindow) SetSizeDirect(w, h float64) { f.size = geometry.Size{W: w, H: h} }
