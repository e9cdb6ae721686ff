// Package node wraps the XML element tree that preference data is exchanged
// through.
//
// A Node is a tagged element whose tag names an object class, with named
// string/integer/boolean attributes and ordered child nodes. The conversion
// engine in pkg/prefs builds these trees when snapshotting objects and walks
// them when restoring; this package also parses documents from buffers or
// files and serializes subtrees in indented human-readable form.
//
// The tree itself is beevik/etree; nothing here interprets attribute values
// beyond their declared string/int/bool encoding.
package node
