// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Path type plus path and tour accounting shared by the routing engines.
// Helpers operate on city sequences against a Graph:
//   - PathCost: sum of road weights along consecutive cities.
//   - TourCost: PathCost plus the closing road last → first.
//   - ValidatePath: shape check (non-empty, known cities, no consecutive repeat).
//   - ValidateTour: Hamiltonian-cycle check (every city exactly once).
//
// Design:
//   - No logging and no panics on user input; failures are sentinel errors from types.go.
//   - O(n) time for every helper.

package core

import (
	"fmt"
	"math"
)

// Path is an ordered city sequence where consecutive cities are joined by a road.
// A single-city path denotes "no movement" and costs 0.
type Path []string

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// PathCost sums the weights of the roads path[i]—path[i+1].
//
// Contract:
//   - len(path) ≥ 1; a one-city path costs 0.
//   - Every city is registered (ErrUnknownCity otherwise).
//   - Every consecutive pair is joined by a road (ErrMissingEdge otherwise).
//   - The sum stays finite (ErrDistanceOverflow otherwise).
//
// Complexity: O(n).
func PathCost(g *Graph, path []string) (float64, error) {
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if err := g.requireCity(path[0]); err != nil {
		return 0, err
	}

	var (
		sum float64
		w   float64
		ok  bool
	)
	for i := 1; i < len(path); i++ {
		if err := g.requireCity(path[i]); err != nil {
			return 0, err
		}
		if w, ok = g.Weight(path[i-1], path[i]); !ok {
			return 0, fmt.Errorf("%w: %s→%s", ErrMissingEdge, path[i-1], path[i])
		}
		if sum += w; math.IsInf(sum, 1) {
			return 0, fmt.Errorf("%w: at %s→%s", ErrDistanceOverflow, path[i-1], path[i])
		}
	}

	return sum, nil
}

// TourCost sums the weights of a closed tour: PathCost(tour) plus the
// closing road tour[n-1]—tour[0]. The closing city is implicit and must not
// be repeated at the end.
//
// Contract:
//   - len(tour) ≥ 2 (a single city has no closing road).
//
// Complexity: O(n).
func TourCost(g *Graph, tour []string) (float64, error) {
	if len(tour) < 2 {
		return 0, fmt.Errorf("%w: tour needs at least two cities, got %d", ErrInvalidPath, len(tour))
	}
	sum, err := PathCost(g, tour)
	if err != nil {
		return 0, err
	}
	last, first := tour[len(tour)-1], tour[0]
	w, ok := g.Weight(last, first)
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s (closing)", ErrMissingEdge, last, first)
	}
	if sum += w; math.IsInf(sum, 1) {
		return 0, fmt.Errorf("%w: at %s→%s (closing)", ErrDistanceOverflow, last, first)
	}

	return sum, nil
}

// ValidatePath checks the Path invariants: non-empty, registered cities,
// no consecutive duplicates, and a road between every consecutive pair.
//
// Complexity: O(n).
func ValidatePath(g *Graph, path []string) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	for i := 1; i < len(path); i++ {
		if path[i] == path[i-1] {
			return fmt.Errorf("%w: %q repeated at position %d", ErrInvalidPath, path[i], i)
		}
	}
	_, err := PathCost(g, path)

	return err
}

// ValidateTour checks that tour visits every city of g exactly once and that
// every road of the closed cycle exists.
//
// Complexity: O(n).
func ValidateTour(g *Graph, tour []string) error {
	if len(tour) != g.CityCount() {
		return fmt.Errorf("%w: tour has %d cities, graph has %d", ErrInvalidPath, len(tour), g.CityCount())
	}
	seen := make(map[string]struct{}, len(tour))
	for _, c := range tour {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %q visited twice", ErrInvalidPath, c)
		}
		seen[c] = struct{}{}
	}
	_, err := TourCost(g, tour)

	return err
}
