package tsp

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/citynav/bfs"
	"github.com/katalvlaran/citynav/core"
)

// ctxCheckEvery is how many candidates are evaluated between context checks.
const ctxCheckEvery = 1 << 10

// OptimalTour is OptimalTourContext with context.Background().
func OptimalTour(g *core.Graph, opts ...Option) (Tour, bool, error) {
	return OptimalTourContext(context.Background(), g, opts...)
}

// OptimalTourContext returns the minimum-distance closed tour through every
// city of g.
//
// The start is the first city of g.Cities(). Every ordering of the
// remaining cities is a candidate; its distance is the sum of consecutive
// road weights plus the closing road back to the start. A candidate with a
// missing road is discarded. Among equal-distance candidates the first in
// lexicographic (insertion index) order wins.
//
// Returns:
//
//   - tour, true, nil:    an optimal tour; tour.Distance == core.TourCost(g, tour.Path).
//   - Tour{}, false, nil: no Hamiltonian cycle exists (Infeasible). Graphs
//     with fewer than two cities are always Infeasible.
//   - Tour{}, false, err: ErrNilGraph, ErrBadWorkers, ErrBadMaxCities,
//     ErrTooManyCities, or ctx.Err() wrapped; the context is checked before
//     any work and every 1024 candidates.
//
// Two cities joined by a road give [A, B] with distance 2·w.
//
// Complexity: O((V−1)!·V) time; O(V²) memory.
func OptimalTourContext(ctx context.Context, g *core.Graph, opts ...Option) (Tour, bool, error) {
	if g == nil {
		return Tour{}, false, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		return Tour{}, false, fmt.Errorf("%w: got %d", ErrBadWorkers, cfg.Workers)
	}
	if cfg.MaxCities < 0 {
		return Tour{}, false, fmt.Errorf("%w: got %d", ErrBadMaxCities, cfg.MaxCities)
	}
	if err := ctx.Err(); err != nil {
		return Tour{}, false, fmt.Errorf("tsp: %w", err)
	}

	ids := g.Cities()
	n := len(ids)
	if n < 2 {
		return Tour{}, false, nil
	}
	if cfg.MaxCities > 0 && n > cfg.MaxCities {
		return Tour{}, false, fmt.Errorf("%w: %d cities, limit %d", ErrTooManyCities, n, cfg.MaxCities)
	}
	if n >= 3 && !mayHaveCycle(g, ids) {
		return Tour{}, false, nil
	}

	dist := distanceMatrix(g, ids)
	var (
		best candidate
		err  error
	)
	if cfg.Workers > 1 && n > 3 {
		best, err = searchParallel(ctx, dist, cfg.Workers)
	} else {
		best, err = searchBlock(ctx, dist, 0)
	}
	if err != nil {
		return Tour{}, false, fmt.Errorf("tsp: %w", err)
	}
	if !best.ok {
		return Tour{}, false, nil
	}

	path := make(core.Path, n)
	for i, idx := range best.order {
		path[i] = ids[idx]
	}

	return Tour{Path: path, Distance: best.dist}, true, nil
}

// mayHaveCycle rejects graphs that cannot contain a Hamiltonian cycle on
// three or more cities: a city of degree < 2, or more than one component.
func mayHaveCycle(g *core.Graph, ids []string) bool {
	for _, id := range ids {
		if d, _ := g.Degree(id); d < 2 {
			return false
		}
	}

	return bfs.Connected(g)
}

// distanceMatrix projects g onto a dense symmetric matrix indexed by
// insertion order. Weights are strictly positive, so 0 marks a missing road.
func distanceMatrix(g *core.Graph, ids []string) *mat.Dense {
	n := len(ids)
	dist := mat.NewDense(n, n, nil)
	for _, e := range g.Edges() {
		i, _ := g.Index(e.From)
		j, _ := g.Index(e.To)
		dist.Set(i, j, e.Weight)
		dist.Set(j, i, e.Weight)
	}

	return dist
}

// candidate is the best tour found in one block, in index space.
type candidate struct {
	order []int
	dist  float64
	ok    bool
}

// searchBlock enumerates the tours that start at city 0. With first > 0 only
// tours whose second city is first are considered; first == 0 means all.
// Candidates are visited in lexicographic order and strict "<" keeps the
// earliest minimum.
func searchBlock(ctx context.Context, dist *mat.Dense, first int) (candidate, error) {
	n, _ := dist.Dims()

	prefix := []int{0}
	if first > 0 {
		prefix = append(prefix, first)
	}
	rest := make([]int, 0, n-len(prefix))
	for i := 1; i < n; i++ {
		if i != first {
			rest = append(rest, i)
		}
	}

	tour := make([]int, n)
	copy(tour, prefix)
	var (
		best  candidate
		perms = NewPermutations(len(rest))
		seen  int
	)
	for perms.Next() {
		if seen++; seen%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return candidate{}, err
			}
		}
		for i, p := range perms.Perm() {
			tour[len(prefix)+i] = rest[p]
		}
		d, ok := tourLength(dist, tour, best)
		if !ok {
			continue
		}
		if !best.ok || d < best.dist {
			best = candidate{order: append(best.order[:0], tour...), dist: d, ok: true}
		}
	}

	return best, ctx.Err()
}

// tourLength sums the closed tour, summing left to right and then adding the
// closing road. It gives up on a missing road, on a sum that overflows to
// +Inf, or as soon as the partial sum reaches bound, since weights are
// positive and such a tour cannot win.
func tourLength(dist *mat.Dense, tour []int, bound candidate) (float64, bool) {
	var (
		sum float64
		w   float64
	)
	for i := 1; i < len(tour); i++ {
		if w = dist.At(tour[i-1], tour[i]); w == 0 {
			return 0, false
		}
		sum += w
		if math.IsInf(sum, 1) || (bound.ok && sum >= bound.dist) {
			return 0, false
		}
	}
	if w = dist.At(tour[len(tour)-1], tour[0]); w == 0 {
		return 0, false
	}
	if sum += w; math.IsInf(sum, 1) {
		return 0, false
	}

	return sum, true
}
