// Package types defines the shared error taxonomy and limits for prefskit.
//
// This package only exposes core types. The registries and the conversion
// engine live in pkg/prefs and internal packages.
//
// Design goals:
//   - Typed errors with stable categories (contract/not-found/exhausted/...).
//   - Failures are returned, never panicked, even on caller contract breaks.
//   - No dependencies beyond the standard library.
package types
