package prefs_test

import (
	"fmt"

	"github.com/prefskit/prefskit/pkg/node"
	"github.com/prefskit/prefskit/pkg/prefs"
)

// A minimal host type and codec, converted through an in-memory buffer.
func Example() {
	type server struct {
		Host string
		Port int
	}

	ctx, err := prefs.New()
	if err != nil {
		panic(err)
	}
	defer ctx.Close()

	err = ctx.RegisterClass("server", prefs.CodecFuncs{
		SnapshotFunc: func(_ *prefs.Context, n *node.Node, obj, _ any) error {
			s := obj.(*server)
			n.SetString("host", s.Host)
			n.SetInt("port", s.Port)
			return nil
		},
		RestoreFunc: func(_ *prefs.Context, n *node.Node, _ any) (any, error) {
			s := &server{}
			var err error
			if s.Host, err = n.String("host"); err != nil {
				return nil, err
			}
			if s.Port, err = n.Int("port"); err != nil {
				return nil, err
			}
			return s, nil
		},
	})
	if err != nil {
		panic(err)
	}

	buf, err := ctx.ToBuffer("server", &server{Host: "db1", Port: 5432}, nil)
	if err != nil {
		panic(err)
	}

	obj, err := ctx.FromBuffer(buf, nil)
	if err != nil {
		panic(err)
	}
	restored := obj.(*server)
	fmt.Printf("%s:%d\n", restored.Host, restored.Port)
	// Output: db1:5432
}
