package router

import (
	"github.com/juhonkan/cycloroute/search"
	"github.com/juhonkan/cycloroute/tile"
)

// maxNearbyRoadMeters is the snap-distance fatal threshold: no snap found
// within this radius of the start or end coordinate is a fatal error.
const maxNearbyRoadMeters = 5000.0

// TraceSink receives diagnostic messages during a query. Routing through a
// pluggable, no-op-by-default sink keeps diagnostics out of the query
// result's contract while still letting a caller wire them to a logger.
type TraceSink func(format string, args ...interface{})

func noopTraceSink(string, ...interface{}) {}

// Option configures a Router at construction.
type Option func(*Router)

// WithTraceSink installs fn to receive diagnostic trace messages. Passing
// nil restores the no-op default.
func WithTraceSink(fn TraceSink) Option {
	return func(r *Router) {
		if fn == nil {
			fn = noopTraceSink
		}
		r.trace = fn
	}
}

// WithTileCacheCapacity overrides tile.DefaultCacheCapacity.
func WithTileCacheCapacity(n int) Option {
	return func(r *Router) {
		if n > 0 {
			r.tileCacheCapacity = n
		}
	}
}

// WithSearchOptions passes through additional search.Option values (heap,
// visited-table, and probe-bound capacity overrides) to every query's
// Searcher. Primarily useful in tests, where the production-sized defaults
// are wastefully large.
func WithSearchOptions(opts ...search.Option) Option {
	return func(r *Router) {
		r.searchOpts = append(r.searchOpts, opts...)
	}
}

func (r *Router) storeOptions() []tile.Option {
	return []tile.Option{tile.WithCacheCapacity(r.tileCacheCapacity)}
}
