package pathcache

import (
	"io"
	"log/slog"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// DefaultNamespace prefixes metric names unless WithNamespace overrides it.
const DefaultNamespace = "tilepath"

// CachedPath is a memoized search result. It is never mutated after creation.
type CachedPath struct {
	StartID  uint32
	TargetID uint32
	Path     []gridgraph.Position
}

// Contains reports whether p lies on the stored path.
func (c CachedPath) Contains(p gridgraph.Position) bool {
	return slices.Contains(c.Path, p)
}

// Options holds PathCache configuration.
type Options struct {
	// Logger receives debug records on eviction and invalidation.
	Logger *slog.Logger
	// Registerer, if non-nil, gets the cache metrics registered on New.
	Registerer prometheus.Registerer
	// Namespace prefixes every metric name.
	Namespace string
}

// Option configures a PathCache via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with default settings:
//   - a logger that discards everything
//   - no metric registration
//   - Namespace = DefaultNamespace
func DefaultOptions() Options {
	return Options{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registerer: nil,
		Namespace:  DefaultNamespace,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegisterer registers the cache metrics with r.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *Options) {
		o.Registerer = r
	}
}

// WithNamespace sets the metric namespace. An empty namespace is ignored.
func WithNamespace(ns string) Option {
	return func(o *Options) {
		if ns != "" {
			o.Namespace = ns
		}
	}
}
