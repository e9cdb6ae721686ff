// Package slots implements the growable slot arena backing the class and
// object registries.
//
// The arena hands out stable indices: an occupied slot is never moved, so a
// Ref can be held as a long-lived handle while the arena grows around it.
// Registration churn happens at setup/teardown time, so lookups are plain
// linear scans and reuse is a LIFO free list.
package slots
