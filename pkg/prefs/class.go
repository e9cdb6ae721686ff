package prefs

import (
	"github.com/prefskit/prefskit/internal/registry"
	"github.com/prefskit/prefskit/internal/slots"
)

// RegisterClass registers an object class under a unique, non-empty name.
// Registering a name that already exists fails without touching the existing
// descriptor.
func (c *Context) RegisterClass(name string, codec Codec) error {
	if err := c.usable(); err != nil {
		return err
	}
	if err := c.classes.Register(name, codec); err != nil {
		return err
	}
	c.log.Debug("class registered", "class", name)
	return nil
}

// UnregisterClass removes a class, invalidating every object handle
// registered under it. Objects under other classes are untouched. A miss is
// logged and otherwise a no-op.
func (c *Context) UnregisterClass(name string) {
	if err := c.usable(); err != nil {
		c.log.Error("unregister class on unusable context", "class", name, "err", err)
		return
	}
	cls, ok := c.classes.FindByName(name)
	if !ok {
		c.log.Warn("tried to unregister class that is not registered", "class", name)
		return
	}
	stale := cls.Objects.Len()
	c.classes.Unregister(name)
	if stale > 0 {
		c.log.Debug("dropped stale object handles with class", "class", name, "count", stale)
	}
}

// Classes returns the names of all registered classes in slot order.
func (c *Context) Classes() []string {
	if err := c.usable(); err != nil {
		return nil
	}
	var names []string
	c.classes.Each(func(_ slots.Ref, cls *registry.Class[Codec]) bool {
		names = append(names, cls.Name)
		return true
	})
	return names
}
