package prefs

import (
	"fmt"

	"github.com/prefskit/prefskit/pkg/node"
	"github.com/prefskit/prefskit/pkg/types"
)

// ToNode snapshots a live object into a freshly created node tagged with the
// class name. Ownership of the returned node passes to the caller.
//
// The class's Snapshot codec writes the attributes; for composite objects it
// recurses into ToNode for each owned sub-object and appends the child nodes
// itself. A codec failure aborts the whole conversion and the partial node
// is discarded.
func (c *Context) ToNode(className string, obj, userData any) (*node.Node, error) {
	if err := c.usable(); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, types.ErrNilObject
	}
	cls, ok := c.classes.FindByName(className)
	if !ok {
		return nil, types.Wrap(types.ErrKindNotFound,
			fmt.Sprintf("unknown class %q", className), types.ErrNotFound)
	}
	codec := cls.Codec
	if codec == nil {
		return nil, types.Wrap(types.ErrKindContract,
			fmt.Sprintf("class %q registered without codec", className), nil)
	}

	n := node.New(className)
	if err := codec.Snapshot(c, n, obj, userData); err != nil {
		c.log.Error("snapshot callback failed", "class", className, "err", err)
		return nil, types.Wrap(types.ErrKindCallback,
			fmt.Sprintf("snapshot of class %q failed", className), err)
	}
	return n, nil
}

// ToBuffer snapshots an object and serializes the node tree to an indented
// in-memory buffer.
func (c *Context) ToBuffer(className string, obj, userData any) ([]byte, error) {
	n, err := c.ToNode(className, obj, userData)
	if err != nil {
		return nil, err
	}
	return n.Bytes()
}

// ToFile snapshots an object and serializes the node tree to a file.
func (c *Context) ToFile(className string, obj any, path string, userData any) error {
	n, err := c.ToNode(className, obj, userData)
	if err != nil {
		return err
	}
	return n.WriteFile(path)
}

// FromNode restores a new object from a preference node. The node's tag
// selects the class; the class's Restore codec reads the attributes and, for
// composite objects, recurses into FromNode for each relevant child in
// document order. On success the new object is registered under the class
// and returned as a live, managed object.
//
// Registrations made beneath a failing top-level FromNode are unwound in
// reverse order, so a failure at any depth leaves no partially registered
// descendants behind.
func (c *Context) FromNode(n *node.Node, userData any) (obj any, err error) {
	if cerr := c.usable(); cerr != nil {
		return nil, cerr
	}
	if n == nil {
		return nil, types.Wrap(types.ErrKindContract, "node is nil", nil)
	}
	className := n.Tag()
	cls, ok := c.classes.FindByName(className)
	if !ok {
		return nil, types.Wrap(types.ErrKindNotFound,
			fmt.Sprintf("unknown class %q", className), types.ErrNotFound)
	}
	codec := cls.Codec
	if codec == nil {
		return nil, types.Wrap(types.ErrKindContract,
			fmt.Sprintf("class %q registered without codec", className), nil)
	}

	top := c.depth == 0
	c.depth++
	defer func() {
		c.depth--
		if top {
			if err != nil {
				c.rollbackStaged()
			}
			c.staged = nil
		}
	}()

	obj, cerr := codec.Restore(c, n, userData)
	if cerr != nil {
		c.log.Error("restore callback failed", "class", className, "err", cerr)
		return nil, types.Wrap(types.ErrKindCallback,
			fmt.Sprintf("restore of class %q failed", className), cerr)
	}
	if obj == nil {
		// The original library logged this and went on to register a nil
		// object; treat it as a hard contract failure instead.
		c.log.Error("restore callback returned success with nil object", "class", className)
		return nil, types.Wrap(types.ErrKindContract,
			fmt.Sprintf("restore of class %q produced no object", className), nil)
	}

	if rerr := c.RegisterObject(className, obj); rerr != nil {
		return nil, types.Wrap(types.ErrKindState,
			fmt.Sprintf("failed to register restored %q object", className), rerr)
	}
	c.staged = append(c.staged, stagedReg{className: className, obj: obj})
	return obj, nil
}

// FromBuffer parses a complete preference document from an in-memory buffer
// and restores an object from its root node. The parsed document becomes the
// context's transient document, replacing (and invalidating nodes of) the
// previous one.
func (c *Context) FromBuffer(buf []byte, userData any) (any, error) {
	if err := c.usable(); err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, types.Wrap(types.ErrKindContract, "buffer is empty", nil)
	}
	doc, err := node.Parse(buf)
	if err != nil {
		return nil, err
	}
	return c.fromDocument(doc, userData)
}

// FromFile parses a complete preference document from a file and restores an
// object from its root node. Document ownership behaves as in FromBuffer.
func (c *Context) FromFile(path string, userData any) (any, error) {
	if err := c.usable(); err != nil {
		return nil, err
	}
	doc, err := node.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return c.fromDocument(doc, userData)
}

func (c *Context) fromDocument(doc *node.Document, userData any) (any, error) {
	root, err := doc.Root()
	if err != nil {
		return nil, err
	}
	// A new top-level parse replaces the transient document even when the
	// conversion below fails; nodes from the previous parse are now invalid.
	c.doc = doc
	return c.FromNode(root, userData)
}

// rollbackStaged unwinds registrations made during a failed top-level
// restore, newest first.
func (c *Context) rollbackStaged() {
	for i := len(c.staged) - 1; i >= 0; i-- {
		s := c.staged[i]
		if _, objects, found := c.findObject(s.obj); found {
			objects.Unregister(s.obj)
			c.log.Warn("rolled back registration after failed restore", "class", s.className)
		}
	}
}
