package prefs

import (
	"github.com/prefskit/prefskit/pkg/node"
	"github.com/prefskit/prefskit/pkg/types"
)

// Codec converts between live objects of one class and preference nodes.
// Implementations are supplied by the host at class registration; userData is
// an arbitrary value passed through unchanged from the conversion entry point.
//
// Both methods run synchronously on the caller's goroutine and may recurse
// into the context's conversion entry points for owned sub-objects.
type Codec interface {
	// Snapshot writes the object's state onto n as attributes and, for
	// composite objects, appended child nodes. A returned error aborts the
	// whole conversion and discards the partially built node.
	Snapshot(c *Context, n *node.Node, obj, userData any) error

	// Restore builds a new object from n. Returning a nil object with a nil
	// error is a contract violation. A returned error aborts the conversion;
	// nothing is registered.
	Restore(c *Context, n *node.Node, userData any) (any, error)
}

// CodecFuncs adapts plain functions to Codec. Either direction may be left
// nil for classes that only convert one way; invoking the missing direction
// fails with a contract error.
type CodecFuncs struct {
	SnapshotFunc func(c *Context, n *node.Node, obj, userData any) error
	RestoreFunc  func(c *Context, n *node.Node, userData any) (any, error)
}

// Snapshot implements Codec.
func (f CodecFuncs) Snapshot(c *Context, n *node.Node, obj, userData any) error {
	if f.SnapshotFunc == nil {
		return types.Wrap(types.ErrKindContract, "class has no snapshot callback", nil)
	}
	return f.SnapshotFunc(c, n, obj, userData)
}

// Restore implements Codec.
func (f CodecFuncs) Restore(c *Context, n *node.Node, userData any) (any, error) {
	if f.RestoreFunc == nil {
		return nil, types.Wrap(types.ErrKindContract, "class has no restore callback", nil)
	}
	return f.RestoreFunc(c, n, userData)
}
