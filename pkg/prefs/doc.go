/*
Package prefs manages preference snapshots for arbitrary host objects.

A host application registers a class for each of its object types: a name
plus a codec that knows how to snapshot a live object into a preference node
and how to restore an object from one. The library owns neither the object's
memory nor the meaning of its attributes; it manages the registry of known
classes and live objects and drives the recursive node⇄object conversion.

# Quick Start

	ctx, _ := prefs.New()
	defer ctx.Close()

	ctx.RegisterClass("person", prefs.CodecFuncs{
	    SnapshotFunc: func(c *prefs.Context, n *node.Node, obj, _ any) error {
	        p := obj.(*Person)
	        n.SetString("name", p.Name)
	        n.SetInt("age", p.Age)
	        return nil
	    },
	    RestoreFunc: func(c *prefs.Context, n *node.Node, _ any) (any, error) {
	        p := &Person{}
	        var err error
	        if p.Name, err = n.String("name"); err != nil {
	            return nil, err
	        }
	        if p.Age, err = n.Int("age"); err != nil {
	            return nil, err
	        }
	        return p, nil
	    },
	})

	ctx.RegisterObject("person", bob)
	buf, _ := ctx.ToBuffer("person", bob, nil)
	restored, _ := ctx.FromBuffer(buf, nil)

Composite objects recurse: a parent's SnapshotFunc calls ToNode for each
owned sub-object and appends the result with AddChild; its RestoreFunc walks
the node's children in document order and calls FromNode on each.

# Lifecycle

Everything hangs off a Context. Contexts are independent; use one per
isolated preference universe. A single context and everything reachable from
it must not be used from more than one goroutine at a time — the library
provides no internal locking. Close cascades teardown over every class and
object handle; host objects themselves are never freed.
*/
package prefs
