// Package bfs provides breadth-first search over a core.Graph, returning
// road counts, parent links and visit order. Roads are traversed in both
// directions and their weights are ignored.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// queueItem is one pending city with its depth.
type queueItem struct {
	id    string
	depth int
}

// walker holds the state of a single traversal.
type walker struct {
	g     *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS explores g from start in non-decreasing road count. Neighbors are
// enqueued in NeighborIDs order, so the visit sequence is reproducible.
//
// Errors: ErrGraphNil, ErrOptionViolation, a wrapped core.ErrUnknownCity for
// an unregistered start, or the context error if Ctx is cancelled. On
// cancellation the partial result is returned alongside the error.
//
// Complexity: O(V + E·log d) time, O(V) memory.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, err := g.Degree(start); err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}

	n := g.CityCount()
	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Source: start,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop drains the queue, checking the context once per city.
func (w *walker) loop() error {
	var item queueItem
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item, w.queue = w.queue[0], w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		nbrs, _ := w.g.NeighborIDs(item.id) // item.id is registered
		for _, v := range nbrs {
			if _, seen := w.res.Depth[v]; seen {
				continue
			}
			w.enqueue(v, next, item.id)
		}
	}

	return nil
}

// Connected reports whether every city of g is reachable from the first
// one. An empty graph is connected.
func Connected(g *core.Graph) bool {
	if g == nil || g.CityCount() == 0 {
		return true
	}
	res, err := BFS(g, g.Cities()[0])

	return err == nil && len(res.Order) == g.CityCount()
}

// Components returns the connected components of g. Components are ordered
// by their first city in insertion order; each lists cities in visit order.
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	var (
		out  [][]string
		seen = make(map[string]bool, g.CityCount())
	)
	for _, c := range g.Cities() {
		if seen[c] {
			continue
		}
		res, _ := BFS(g, c) // c is registered and the context never ends
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out
}
