// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Notes on implementation choices:
//
//   - The graph is projected once into index space (cities by insertion
//     order, arcs as (to, weight) slices), so the hot loop never touches maps.
//   - Reachability is an explicit reached[] flag instead of an infinity value.
//   - Relaxation uses strict "<": an equal-cost alternative never replaces an
//     existing predecessor.
//   - A tentative distance that overflows to +Inf is never recorded, so a
//     city only reachable through such a sum is reported as NotFound.
//   - The heap variant uses the "lazy" decrease-key strategy: duplicates are
//     pushed and stale entries are skipped when popped.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/citynav/core"
)

// ShortestPath returns the least-cost route from source to target.
//
// Returns:
//
//   - route, true, nil:  a shortest route; route.Distance equals the sum of
//     its consecutive road weights.
//   - Route{}, false, nil: target is not reachable from source (NotFound).
//   - Route{}, false, err: structural error (nil graph, unknown city).
//
// source == target returns ([source], 0) without running the search.
//
// Complexity: O(V²) by default, O((V+E) log V) with WithPriorityQueue.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (Route, bool, error) {
	if g == nil {
		return Route{}, false, ErrNilGraph
	}
	if !g.HasCity(source) {
		return Route{}, false, fmt.Errorf("dijkstra: source: %w", unknown(source))
	}
	if !g.HasCity(target) {
		return Route{}, false, fmt.Errorf("dijkstra: target: %w", unknown(target))
	}
	if source == target {
		return Route{Path: core.Path{source}, Distance: 0}, true, nil
	}

	tree, err := Search(g, source, opts...)
	if err != nil {
		return Route{}, false, err
	}
	route, found := tree.PathTo(target)

	return route, found, nil
}

// Search runs Dijkstra from source over the whole graph.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be registered (wrapped core.ErrUnknownCity; "" also matches core.ErrEmptyCityID).
//
// Complexity: see ShortestPath. Space O(V + E) for the index projection.
func Search(g *core.Graph, source string, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.HasCity(source) {
		return nil, fmt.Errorf("dijkstra: source: %w", unknown(source))
	}

	r := newRunner(g, source)
	switch cfg.Queue {
	case Heap:
		r.runHeap()
	default:
		r.runLinear()
	}

	return r.tree(), nil
}

// unknown maps a missing city ID to the matching core sentinel.
func unknown(id string) error {
	if id == "" {
		return fmt.Errorf("%w: %w", core.ErrUnknownCity, core.ErrEmptyCityID)
	}

	return fmt.Errorf("%w: %q", core.ErrUnknownCity, id)
}

// arc is one outgoing direction of an undirected road in index space.
type arc struct {
	to int
	w  float64
}

// runner holds the mutable state for a single search.
type runner struct {
	ids     []string // index → city, insertion order
	arcs    [][]arc  // index → outgoing arcs
	src     int
	dist    []float64 // valid only where reached[i]
	reached []bool
	settled []bool
	prev    []int // -1 for source and unreached
	order   []int // settle order
}

// newRunner projects g into index space and initializes the search state:
// only the source is reached, with distance 0; nothing is settled.
func newRunner(g *core.Graph, source string) *runner {
	ids := g.Cities()
	n := len(ids)
	r := &runner{
		ids:     ids,
		arcs:    make([][]arc, n),
		dist:    make([]float64, n),
		reached: make([]bool, n),
		settled: make([]bool, n),
		prev:    make([]int, n),
		order:   make([]int, 0, n),
	}
	for i, id := range ids {
		r.prev[i] = -1
		nbrs, _ := g.Neighbors(id) // id comes from Cities(), always registered
		r.arcs[i] = make([]arc, 0, len(nbrs))
		for v, w := range nbrs {
			j, _ := g.Index(v)
			r.arcs[i] = append(r.arcs[i], arc{to: j, w: w})
		}
	}
	r.src, _ = g.Index(source)
	r.reached[r.src] = true

	return r
}

// runLinear settles cities by scanning all unsettled ones for the minimum.
// Terminates early when no unsettled city has been reached.
func (r *runner) runLinear() {
	for {
		u := -1
		for i := range r.ids {
			if r.settled[i] || !r.reached[i] {
				continue
			}
			// strict "<" keeps the lowest insertion index among ties
			if u == -1 || r.dist[i] < r.dist[u] {
				u = i
			}
		}
		if u == -1 {
			return
		}
		r.settle(u)
		r.relax(u, nil)
	}
}

// runHeap settles cities in the same order as runLinear using a min-heap.
func (r *runner) runHeap() {
	pq := make(nodePQ, 0, len(r.ids))
	heap.Push(&pq, &nodeItem{idx: r.src, dist: 0})
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		if r.settled[item.idx] {
			continue // stale entry
		}
		r.settle(item.idx)
		r.relax(item.idx, &pq)
	}
}

// settle finalizes u's distance.
func (r *runner) settle(u int) {
	r.settled[u] = true
	r.order = append(r.order, u)
}

// relax improves every unsettled neighbor of u; if pq is non-nil the
// improved entries are pushed onto it.
func (r *runner) relax(u int, pq *nodePQ) {
	var nd float64
	for _, a := range r.arcs[u] {
		if r.settled[a.to] {
			continue
		}
		nd = r.dist[u] + a.w
		if math.IsInf(nd, 1) {
			continue
		}
		if r.reached[a.to] && nd >= r.dist[a.to] {
			continue
		}
		r.dist[a.to] = nd
		r.reached[a.to] = true
		r.prev[a.to] = u
		if pq != nil {
			heap.Push(pq, &nodeItem{idx: a.to, dist: nd})
		}
	}
}

// tree converts index-space state back to city IDs.
func (r *runner) tree() *Tree {
	t := &Tree{
		source: r.ids[r.src],
		dist:   make(map[string]float64, len(r.order)),
		prev:   make(map[string]string, len(r.order)),
		order:  make([]string, 0, len(r.order)),
	}
	for _, i := range r.order {
		id := r.ids[i]
		t.order = append(t.order, id)
		t.dist[id] = r.dist[i]
		if r.prev[i] >= 0 {
			t.prev[id] = r.ids[r.prev[i]]
		}
	}

	return t
}

// nodeItem represents a city index and its tentative distance from the source.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, idx) ascending.
// The idx tie-break reproduces the linear scan's selection order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by insertion index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
