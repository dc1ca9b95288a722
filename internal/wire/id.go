// Package wire defines the Window contract the layout engine consumes,
// along with the opaque id types used throughout the tree.
package wire

import "github.com/google/uuid"

// Id stably identifies a Window, independent of any live surface handle.
type Id uint64

var nextID uint64

// NewID mints a new stable window id. Backed by uuid to guarantee
// uniqueness even across process-local counters racing with IDs restored
// from a snapshot; the low 64 bits of a fresh UUID are effectively as
// collision-free as a counter for this process's lifetime.
func NewID() Id {
	u := uuid.New()
	b := u[8:16]
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return Id(v)
}

// OutputID is the stable, opaque identity of a physical output (monitor),
// independent of the live output handle — outputs can disconnect and
// reconnect.
type OutputID string

// NewOutputID mints a fresh stable token for an output; it takes no name.
// Real backends would derive this from EDID/connector name; here it is a
// uuid so two outputs with the same human name are never confused.
func NewOutputID() OutputID {
	return OutputID(uuid.NewString())
}

// WorkspaceID stably identifies a Workspace for WorkspaceReference.Id
// resolution.
type WorkspaceID uint64

func NewWorkspaceID() WorkspaceID {
	return WorkspaceID(NewID())
}
