package registry

import (
	"fmt"

	"github.com/prefskit/prefskit/internal/slots"
	"github.com/prefskit/prefskit/pkg/types"
)

// Class is one registered class descriptor: a unique name, the host-supplied
// codec for the type parameter C, and the registry of live objects of this
// class.
type Class[C any] struct {
	Name    string
	Codec   C
	Objects Objects
}

// Classes is the named collection of class descriptors. The zero value is
// ready to use.
type Classes[C any] struct {
	arena slots.Arena[Class[C]]
}

// Register adds a class descriptor with an empty object registry. The name
// must be non-empty, at most types.MaxClassName bytes, and not yet present
// (case-sensitive exact match).
func (c *Classes[C]) Register(name string, codec C) error {
	if name == "" {
		return types.ErrEmptyClassName
	}
	if len(name) > types.MaxClassName {
		return types.Wrap(types.ErrKindContract,
			fmt.Sprintf("class name %q exceeds %d bytes", name, types.MaxClassName), nil)
	}
	if _, ok := c.FindByName(name); ok {
		return types.Wrap(types.ErrKindContract,
			fmt.Sprintf("class %q already registered", name), types.ErrClassExists)
	}

	// The zero-valued object registry needs no setup that could fail, so
	// there is no release path to unwind after taking the slot.
	_, cls, err := c.arena.Alloc()
	if err != nil {
		return err
	}
	cls.Name = name
	cls.Codec = codec
	return nil
}

// Unregister removes a class and cascades over its object registry: every
// handle is invalidated, the object storage is released, and the class slot
// becomes reusable. Returns false when the name is not registered.
func (c *Classes[C]) Unregister(name string) bool {
	ref, ok := c.arena.Find(func(cls *Class[C]) bool { return cls.Name == name })
	if !ok {
		return false
	}
	cls, err := c.arena.Get(ref)
	if err != nil {
		return false
	}
	cls.Objects.Reset()
	// Free zeroes the descriptor, clearing the name and codec.
	_ = c.arena.Free(ref)
	return true
}

// FindByName locates a class descriptor by exact name. Linear scan; every
// other operation resolves through here, so overall cost is O(classes).
// The returned pointer is valid until the next Register.
func (c *Classes[C]) FindByName(name string) (*Class[C], bool) {
	ref, ok := c.arena.Find(func(cls *Class[C]) bool { return cls.Name == name })
	if !ok {
		return nil, false
	}
	cls, err := c.arena.Get(ref)
	if err != nil {
		return nil, false
	}
	return cls, true
}

// Each visits every registered class in slot order.
func (c *Classes[C]) Each(visit func(slots.Ref, *Class[C]) bool) {
	c.arena.Each(visit)
}

// Len returns the number of registered classes.
func (c *Classes[C]) Len() int { return c.arena.Len() }

// Reset cascades teardown over every class and releases all storage.
func (c *Classes[C]) Reset() {
	c.arena.Each(func(_ slots.Ref, cls *Class[C]) bool {
		cls.Objects.Reset()
		return true
	})
	c.arena.Reset()
}
