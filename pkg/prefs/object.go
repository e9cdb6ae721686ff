package prefs

import (
	"fmt"

	"github.com/prefskit/prefskit/internal/registry"
	"github.com/prefskit/prefskit/internal/slots"
	"github.com/prefskit/prefskit/pkg/types"
)

// RegisterObject registers a live object under an already-registered class.
// The object's identity must be unique across the whole context: registering
// the same pointer twice without an intervening unregister fails.
//
// The library holds only a handle; it never assumes ownership of the
// object's memory.
func (c *Context) RegisterObject(className string, obj any) error {
	if err := c.usable(); err != nil {
		return err
	}
	if obj == nil {
		return types.ErrNilObject
	}
	cls, ok := c.classes.FindByName(className)
	if !ok {
		return types.Wrap(types.ErrKindNotFound,
			fmt.Sprintf("unknown class %q", className), types.ErrNotFound)
	}
	if owner, _, found := c.findObject(obj); found {
		return types.Wrap(types.ErrKindState,
			fmt.Sprintf("object already registered under class %q", owner), types.ErrObjectRegistered)
	}
	if _, err := cls.Objects.Register(className, obj); err != nil {
		return err
	}
	c.log.Debug("object registered", "class", className)
	return nil
}

// UnregisterObject drops the handle for obj, whatever class it is registered
// under. A miss is logged and otherwise a benign no-op, so unregistration is
// idempotent.
func (c *Context) UnregisterObject(obj any) {
	if err := c.usable(); err != nil {
		c.log.Error("unregister object on unusable context", "err", err)
		return
	}
	if obj == nil {
		return
	}
	className, objects, found := c.findObject(obj)
	if !found {
		c.log.Warn("tried to unregister object that is not registered")
		return
	}
	objects.Unregister(obj)
	c.log.Debug("object unregistered", "class", className)
}

// IsRegistered reports whether obj currently holds a handle, and under which
// class.
func (c *Context) IsRegistered(obj any) (string, bool) {
	if err := c.usable(); err != nil {
		return "", false
	}
	className, _, found := c.findObject(obj)
	return className, found
}

// ObjectCount returns the number of live handles under a class.
func (c *Context) ObjectCount(className string) (int, error) {
	if err := c.usable(); err != nil {
		return 0, err
	}
	cls, ok := c.classes.FindByName(className)
	if !ok {
		return 0, types.Wrap(types.ErrKindNotFound,
			fmt.Sprintf("unknown class %q", className), types.ErrNotFound)
	}
	return cls.Objects.Len(), nil
}

// findObject scans every class for a handle with obj's identity. Linear in
// classes × objects, which is fine for registration-time churn.
func (c *Context) findObject(obj any) (string, *registry.Objects, bool) {
	var (
		name  string
		objs  *registry.Objects
		found bool
	)
	c.classes.Each(func(_ slots.Ref, cls *registry.Class[Codec]) bool {
		if _, _, ok := cls.Objects.FindByPtr(obj); ok {
			name = cls.Name
			objs = &cls.Objects
			found = true
			return false
		}
		return true
	})
	return name, objs, found
}
