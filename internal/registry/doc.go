// Package registry holds the class and object registries behind the prefs
// context.
//
// A Classes value maps unique class names to descriptors; each descriptor
// owns an Objects registry of live host-object handles. Both sit on the slot
// arena from internal/slots, so handles keep stable indices while storage
// grows, and unregistration cascades without dangling references. The codec
// payload is a type parameter so this package stays free of the conversion
// protocol.
package registry
