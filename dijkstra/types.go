// Package dijkstra defines result types and configuration options
// for the shortest-route search.
//
// Options:
//
//	– Queue: how the next city to settle is selected (LinearScan or Heap).
//
// Example usage:
//
//	route, found, err := dijkstra.ShortestPath(g, "Incheon", "Suwon")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !found {
//	    fmt.Println("no route")
//	}
//	fmt.Println(route.Path, route.Distance)
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/citynav/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to Search or ShortestPath.
var ErrNilGraph = errors.New("dijkstra: graph is nil")

// Route is a shortest route: the ordered cities from source to target and the
// total road distance. A route from a city to itself is [city] with Distance 0.
type Route struct {
	Path     core.Path
	Distance float64
}

// Queue selects the minimum-distance strategy.
type Queue int

const (
	// LinearScan scans every unsettled city on each step: O(V²).
	LinearScan Queue = iota

	// Heap uses a binary heap with lazy decrease-key: O((V+E) log V).
	Heap
)

// String implements fmt.Stringer.
func (q Queue) String() string {
	switch q {
	case LinearScan:
		return "linear"
	case Heap:
		return "heap"
	default:
		return "unknown"
	}
}

// Options configures the search.
type Options struct {
	Queue Queue // minimum selection strategy
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithPriorityQueue switches minimum selection to a binary heap.
// Distances and routes are identical to the linear scan.
func WithPriorityQueue() Option {
	return func(o *Options) { o.Queue = Heap }
}

// WithQueue sets the minimum selection strategy explicitly.
func WithQueue(q Queue) Option {
	return func(o *Options) { o.Queue = q }
}

// DefaultOptions returns the defaults: linear-scan selection.
func DefaultOptions() Options {
	return Options{Queue: LinearScan}
}

// Tree is the result of a single-source search: the settled distance of
// every reachable city and its predecessor on one shortest route.
// Unreachable cities are simply absent.
type Tree struct {
	source string
	dist   map[string]float64
	prev   map[string]string
	order  []string // settle order, source first
}

// Source returns the city the search started from.
func (t *Tree) Source() string { return t.source }

// Settled returns the reachable cities in the order they were settled,
// i.e. by non-decreasing distance from the source.
func (t *Tree) Settled() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)

	return out
}

// DistanceTo returns the shortest distance to target, or (0, false) if
// target is unreachable or unknown.
func (t *Tree) DistanceTo(target string) (float64, bool) {
	d, ok := t.dist[target]

	return d, ok
}

// PathTo reconstructs the route source → target by walking predecessor
// links backwards and reversing them. Returns (Route{}, false) if target is
// unreachable or unknown.
//
// Complexity: O(path length).
func (t *Tree) PathTo(target string) (Route, bool) {
	d, ok := t.dist[target]
	if !ok {
		return Route{}, false
	}

	path := core.Path{target}
	for cur := target; cur != t.source; {
		cur = t.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Route{Path: path, Distance: d}, true
}
