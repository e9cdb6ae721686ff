package slots

import (
	"fmt"

	"github.com/prefskit/prefskit/pkg/types"
)

// Ref is a stable handle to an occupied slot. A Ref stays valid until the
// slot is freed; the arena never relocates or compacts occupied slots, so
// external code may hold a Ref across later allocations.
type Ref uint32

// BlockSize is the number of slots added per growth step. Growth only happens
// when no free slot remains, and always by a whole block.
const BlockSize = types.SlotBlockSize

type entry[T any] struct {
	occupied bool
	val      T
}

// Arena is a growable array of fixed-size slots with O(1) free-slot reuse.
//
// Freed slots are zeroed and pushed onto a free list, so the next Alloc
// reuses them before any growth occurs. Capacity never shrinks.
//
// The zero value is ready to use.
type Arena[T any] struct {
	entries []entry[T]
	free    []Ref // LIFO free list
	live    int
}

// Alloc returns a free slot, growing the arena by BlockSize when none is
// available. The returned element is zero-valued.
func (a *Arena[T]) Alloc() (Ref, *T, error) {
	if len(a.free) == 0 {
		if err := a.grow(); err != nil {
			return 0, nil, err
		}
	}
	ref := a.free[len(a.free)-1]
	a.free = a.free[:len(a.free)-1]

	e := &a.entries[ref]
	e.occupied = true
	a.live++
	return ref, &e.val, nil
}

// Free zeroes the slot's payload and makes it immediately eligible for the
// next Alloc. Freeing an unoccupied or out-of-range slot is a state error.
func (a *Arena[T]) Free(ref Ref) error {
	e, err := a.lookup(ref)
	if err != nil {
		return err
	}
	var zero T
	e.val = zero
	e.occupied = false
	a.free = append(a.free, ref)
	a.live--
	return nil
}

// Get returns the element held in an occupied slot.
func (a *Arena[T]) Get(ref Ref) (*T, error) {
	e, err := a.lookup(ref)
	if err != nil {
		return nil, err
	}
	return &e.val, nil
}

// Each visits every occupied slot in index order. The visitor returns false
// to stop early. Visited elements may be mutated in place; freeing the slot
// currently being visited is allowed (used by cascading teardown).
func (a *Arena[T]) Each(visit func(Ref, *T) bool) {
	for i := range a.entries {
		if !a.entries[i].occupied {
			continue
		}
		if !visit(Ref(i), &a.entries[i].val) {
			return
		}
	}
}

// Find returns the first occupied slot, in index order, whose element
// satisfies the predicate.
func (a *Arena[T]) Find(pred func(*T) bool) (Ref, bool) {
	for i := range a.entries {
		if a.entries[i].occupied && pred(&a.entries[i].val) {
			return Ref(i), true
		}
	}
	return 0, false
}

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int { return a.live }

// Cap returns the total slot capacity, occupied or not.
func (a *Arena[T]) Cap() int { return len(a.entries) }

// Reset frees every slot and releases the backing storage.
func (a *Arena[T]) Reset() {
	a.entries = nil
	a.free = nil
	a.live = 0
}

func (a *Arena[T]) lookup(ref Ref) (*entry[T], error) {
	if int(ref) >= len(a.entries) {
		return nil, types.Wrap(types.ErrKindState,
			fmt.Sprintf("invalid slot %d (capacity %d)", ref, len(a.entries)), nil)
	}
	e := &a.entries[ref]
	if !e.occupied {
		return nil, types.Wrap(types.ErrKindState,
			fmt.Sprintf("slot %d is not occupied", ref), nil)
	}
	return e, nil
}

// maxSlots keeps slot indices representable as a Ref.
const maxSlots = 1<<32 - 1

// grow appends one zero-initialized block and queues the new slots on the
// free list, highest index first so Alloc hands out low indices first.
func (a *Arena[T]) grow() error {
	old := len(a.entries)
	if old+BlockSize > maxSlots {
		return types.Wrap(types.ErrKindExhausted, "slot arena at capacity", nil)
	}
	grown := make([]entry[T], old+BlockSize)
	copy(grown, a.entries)
	a.entries = grown
	for i := old + BlockSize - 1; i >= old; i-- {
		a.free = append(a.free, Ref(i))
	}
	return nil
}
