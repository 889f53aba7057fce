package uitrail

import (
	"log/slog"

	"github.com/uitrail/uitrail/internal/logging"
	"github.com/uitrail/uitrail/internal/resolve"
	"github.com/uitrail/uitrail/pkg/model"
)

// Request identifies what to resolve within a snapshot.
type Request struct {
	// Target is the element whose location is being described.
	Target model.NodeID

	// Boundary caps every upward search. When unset or not an ancestor of
	// Target, the target's root is used instead.
	Boundary model.NodeID

	// BasePath is an optional leading segment, typically the host dialog's
	// own trail. When empty, a title found under the boundary is used.
	BasePath string
}

// Resolver infers a breadcrumb path for an element inside a captured
// component tree. It holds only immutable configuration and is safe for
// concurrent use; each Resolve call works on its own snapshot.
type Resolver struct {
	cfg resolve.Config
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSeparator sets the string joining path segments (default " | ").
func WithSeparator(sep string) Option {
	return func(r *Resolver) {
		r.cfg.Separator = sep
	}
}

// WithRowTolerance sets the max Y delta for two elements to count as
// sharing a visual row.
func WithRowTolerance(px int) Option {
	return func(r *Resolver) {
		r.cfg.RowTolerance = px
	}
}

// WithIndentStep sets the smallest X delta recognized as one nesting level
// of indentation.
func WithIndentStep(px int) Option {
	return func(r *Resolver) {
		r.cfg.IndentStep = px
	}
}

// WithColumnGap sets the X distance beyond which elements belong to
// different columns of a multi-column layout.
func WithColumnGap(px int) Option {
	return func(r *Resolver) {
		r.cfg.ColumnGap = px
	}
}

// WithTitleDepth bounds the title search below the boundary when no base
// path is supplied.
func WithTitleDepth(depth int) Option {
	return func(r *Resolver) {
		r.cfg.TitleDepth = depth
	}
}

// WithLogger sets a structured logger. The resolver logs per-stage
// decisions at debug level; the default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.cfg.Logger = logger
	}
}

// New creates a Resolver. Unset options keep their documented defaults.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	if r.cfg.Logger == nil {
		r.cfg.Logger = logging.NewNop()
	}
	return r
}

// Resolve computes the breadcrumb path for the requested target. It never
// returns an error: missing context shortens the path, and ok is false
// only when no path at all could be determined.
func (r *Resolver) Resolve(snap *model.Snapshot, req Request) (string, bool) {
	return resolve.Run(r.cfg, snap, resolve.Request{
		Target:   req.Target,
		Boundary: req.Boundary,
		BasePath: req.BasePath,
	})
}
