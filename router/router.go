// Package router is the query facade over one road network. It answers
// shortest-route and optimal-tour queries, memoizes shortest routes in a
// bounded LRU cache keyed by (from, to, queue), computes the tour once, and
// logs every query at debug level.
//
// The graph must not be mutated while a Router is in use; Purge drops the
// memoized results if it is rebuilt in place.
package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dijkstra"
	"github.com/katalvlaran/citynav/tsp"
)

// DefaultCacheSize is the number of routes kept when WithCacheSize is not given.
const DefaultCacheSize = 256

// ErrNilGraph indicates that New was called without a graph.
var ErrNilGraph = errors.New("router: graph is nil")

// routeKey identifies one memoized shortest-route query.
type routeKey struct {
	from, to string
	queue    dijkstra.Queue
}

// routeEntry is a memoized answer, NotFound included.
type routeEntry struct {
	route dijkstra.Route
	found bool
}

// tourEntry is the memoized tour answer.
type tourEntry struct {
	tour  tsp.Tour
	found bool
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Router answers queries over a single graph. It is safe for concurrent use.
type Router struct {
	g         *core.Graph
	log       *slog.Logger
	cacheSize int
	queue     dijkstra.Queue
	tourOpts  []tsp.Option

	routes *lru.Cache[routeKey, routeEntry]
	hits   atomic.Uint64
	misses atomic.Uint64

	tourMu sync.Mutex
	tour   *tourEntry
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the query logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) { r.log = l }
}

// WithCacheSize bounds the number of memoized routes.
func WithCacheSize(n int) Option {
	return func(r *Router) { r.cacheSize = n }
}

// WithQueue selects the Dijkstra minimum-selection strategy.
func WithQueue(q dijkstra.Queue) Option {
	return func(r *Router) { r.queue = q }
}

// WithTourOptions passes options through to tsp.OptimalTourContext.
func WithTourOptions(opts ...tsp.Option) Option {
	return func(r *Router) { r.tourOpts = append(r.tourOpts, opts...) }
}

// New returns a Router over g.
//
// Errors: ErrNilGraph; a wrapped cache error when the cache size is not positive.
func New(g *core.Graph, opts ...Option) (*Router, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	r := &Router{
		g:         g,
		log:       slog.New(slog.DiscardHandler),
		cacheSize: DefaultCacheSize,
		queue:     dijkstra.LinearScan,
	}
	for _, opt := range opts {
		opt(r)
	}

	cache, err := lru.New[routeKey, routeEntry](r.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("router: cache size %d: %w", r.cacheSize, err)
	}
	r.routes = cache

	return r, nil
}

// Graph returns the underlying graph.
func (r *Router) Graph() *core.Graph { return r.g }

// ShortestPath returns the memoized shortest route from → to, running
// dijkstra.ShortestPath on a cache miss. NotFound answers are memoized too;
// errors never are. The returned Path is the caller's to modify.
func (r *Router) ShortestPath(ctx context.Context, from, to string) (dijkstra.Route, bool, error) {
	if err := ctx.Err(); err != nil {
		return dijkstra.Route{}, false, err
	}

	key := routeKey{from: from, to: to, queue: r.queue}
	if e, ok := r.routes.Get(key); ok {
		r.hits.Add(1)
		r.log.DebugContext(ctx, "shortest path",
			slog.String("from", from), slog.String("to", to),
			slog.Bool("found", e.found), slog.Bool("cache_hit", true))

		return cloneRoute(e.route), e.found, nil
	}
	r.misses.Add(1)

	start := time.Now()
	route, found, err := dijkstra.ShortestPath(r.g, from, to, dijkstra.WithQueue(r.queue))
	if err != nil {
		r.log.DebugContext(ctx, "shortest path failed",
			slog.String("from", from), slog.String("to", to), slog.Any("error", err))

		return dijkstra.Route{}, false, err
	}
	r.routes.Add(key, routeEntry{route: cloneRoute(route), found: found})
	r.log.DebugContext(ctx, "shortest path",
		slog.String("from", from), slog.String("to", to),
		slog.Bool("found", found), slog.Float64("km", route.Distance),
		slog.Bool("cache_hit", false), slog.Duration("took", time.Since(start)))

	return route, found, nil
}

// OptimalTour computes the optimal tour on first use and returns the
// memoized answer afterwards. A cancelled computation is not memoized.
func (r *Router) OptimalTour(ctx context.Context) (tsp.Tour, bool, error) {
	r.tourMu.Lock()
	defer r.tourMu.Unlock()

	if r.tour != nil {
		r.log.DebugContext(ctx, "optimal tour", slog.Bool("found", r.tour.found), slog.Bool("cache_hit", true))
		return cloneTour(r.tour.tour), r.tour.found, nil
	}

	start := time.Now()
	r.log.DebugContext(ctx, "optimal tour search",
		slog.Int("cities", r.g.CityCount()), slog.Int("candidates", tsp.Candidates(r.g.CityCount())))
	tour, found, err := tsp.OptimalTourContext(ctx, r.g, r.tourOpts...)
	if err != nil {
		return tsp.Tour{}, false, err
	}
	r.tour = &tourEntry{tour: cloneTour(tour), found: found}
	r.log.DebugContext(ctx, "optimal tour",
		slog.Bool("found", found), slog.Float64("km", tour.Distance),
		slog.Bool("cache_hit", false), slog.Duration("took", time.Since(start)))

	return tour, found, nil
}

// CacheStats reports shortest-route cache hits, misses and current size.
func (r *Router) CacheStats() Stats {
	return Stats{
		Hits:    r.hits.Load(),
		Misses:  r.misses.Load(),
		Entries: r.routes.Len(),
	}
}

// Purge drops every memoized route and the memoized tour. Counters are kept.
func (r *Router) Purge() {
	r.routes.Purge()
	r.tourMu.Lock()
	r.tour = nil
	r.tourMu.Unlock()
}

func cloneRoute(rt dijkstra.Route) dijkstra.Route {
	return dijkstra.Route{Path: rt.Path.Clone(), Distance: rt.Distance}
}

func cloneTour(t tsp.Tour) tsp.Tour {
	return tsp.Tour{Path: t.Path.Clone(), Distance: t.Distance}
}
