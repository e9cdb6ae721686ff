package types

const (
	// MaxClassName is the maximum length of a registered class name in bytes.
	// Names longer than this are rejected at registration time.
	MaxClassName = 64

	// SlotBlockSize is the number of slots the registries grow by when their
	// backing storage runs out of free entries. Growth always happens in whole
	// blocks; capacity never shrinks for the life of a registry.
	SlotBlockSize = 64
)
