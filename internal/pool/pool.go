// Package pool provides string-builder pooling for the one place in this
// repo with a hot render loop: the textual snapshot writer in
// internal/snapshot, which walks the whole layout tree on every call a
// scenario runner or debug client makes.
package pool

import (
	"strings"
	"sync"
)

var builderPool = sync.Pool{
	New: func() any { return &strings.Builder{} },
}

// GetStringBuilder returns a reset *strings.Builder from the pool.
func GetStringBuilder() *strings.Builder {
	return builderPool.Get().(*strings.Builder)
}

// PutStringBuilder resets sb and returns it to the pool.
func PutStringBuilder(sb *strings.Builder) {
	sb.Reset()
	builderPool.Put(sb)
}
