package registry

import (
	"reflect"

	"github.com/prefskit/prefskit/internal/slots"
	"github.com/prefskit/prefskit/pkg/types"
)

// Handle records that a particular object pointer is currently managed under
// a class. The registry never owns the referenced object's memory; freeing a
// handle leaves the host object untouched.
type Handle struct {
	// Object is the host object's identity. Comparison is by Go equality,
	// which for the expected pointer-shaped objects is pointer identity.
	Object any
	// ClassName is the back-reference to the owning class. Names are used
	// instead of descriptor pointers because descriptor storage may move
	// when the class arena grows.
	ClassName string
	// Slot is this handle's position inside the class's object registry.
	Slot slots.Ref
}

// Objects is the per-class collection of registered object handles.
// The zero value is ready to use.
type Objects struct {
	arena slots.Arena[Handle]
}

// Register stores a handle for obj. The object must be non-nil, must have a
// comparable identity, and must not already be registered here.
func (o *Objects) Register(className string, obj any) (slots.Ref, error) {
	if obj == nil {
		return 0, types.ErrNilObject
	}
	if !reflect.TypeOf(obj).Comparable() {
		return 0, types.Wrap(types.ErrKindContract,
			"object identity must be comparable (register a pointer)", nil)
	}
	if _, _, ok := o.FindByPtr(obj); ok {
		return 0, types.ErrObjectRegistered
	}

	ref, h, err := o.arena.Alloc()
	if err != nil {
		return 0, err
	}
	h.Object = obj
	h.ClassName = className
	h.Slot = ref
	return ref, nil
}

// Unregister drops the handle for obj. Returns false when the object is not
// registered; the miss is benign and left to the caller to log.
func (o *Objects) Unregister(obj any) bool {
	ref, _, ok := o.FindByPtr(obj)
	if !ok {
		return false
	}
	// Free zeroes the handle; the host object is not touched.
	_ = o.arena.Free(ref)
	return true
}

// FindByPtr locates the handle for obj by identity. The returned pointer is
// valid until the next Register.
func (o *Objects) FindByPtr(obj any) (slots.Ref, *Handle, bool) {
	if obj == nil || !reflect.TypeOf(obj).Comparable() {
		return 0, nil, false
	}
	ref, ok := o.arena.Find(func(h *Handle) bool { return h.Object == obj })
	if !ok {
		return 0, nil, false
	}
	h, err := o.arena.Get(ref)
	if err != nil {
		return 0, nil, false
	}
	return ref, h, true
}

// Each visits every live handle in slot order.
func (o *Objects) Each(visit func(slots.Ref, *Handle) bool) {
	o.arena.Each(visit)
}

// Len returns the number of live handles.
func (o *Objects) Len() int { return o.arena.Len() }

// Cap returns the total slot capacity.
func (o *Objects) Cap() int { return o.arena.Cap() }

// Reset invalidates every handle and releases the storage. Used by cascading
// class unregistration and context teardown.
func (o *Objects) Reset() { o.arena.Reset() }
