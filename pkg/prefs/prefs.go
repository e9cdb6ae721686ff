package prefs

import (
	"io"
	"log/slog"

	"github.com/prefskit/prefskit/internal/registry"
	"github.com/prefskit/prefskit/pkg/node"
	"github.com/prefskit/prefskit/pkg/types"
)

// Context is the top-level owner of one independent preference universe: its
// class registry, the object handles under each class, and the transient
// document of the most recent top-level parse.
//
// A Context is not safe for concurrent use; independent contexts are.
type Context struct {
	classes registry.Classes[Codec]
	log     *slog.Logger
	closed  bool

	// doc keeps the nodes of the most recent top-level parse alive. It is
	// replaced (the old one discarded) whenever FromBuffer/FromFile parses a
	// new document, so callers must not retain nodes across a new parse.
	doc *node.Document

	// depth and staged track the in-flight recursive restore so a failing
	// top-level FromNode can unwind every registration made beneath it.
	depth  int
	staged []stagedReg
}

type stagedReg struct {
	className string
	obj       any
}

// Option configures a Context.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger attaches a structured logger. Without it all log output is
// discarded.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// New initializes a preference context. Call Close when no further calls
// will be made.
func New(opts ...Option) (*Context, error) {
	cfg := config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Context{log: cfg.logger}, nil
}

// Close tears the context down, cascading through every class and every
// object handle. Host objects are never freed. The context must not be used
// afterwards.
func (c *Context) Close() error {
	if c.closed {
		return types.ErrClosed
	}
	c.classes.Reset()
	c.doc = nil
	c.staged = nil
	c.closed = true
	return nil
}

// usable guards every operation against a closed context.
func (c *Context) usable() error {
	if c == nil || c.closed {
		return types.ErrClosed
	}
	return nil
}
