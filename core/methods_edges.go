// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Road lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns roads sorted by (From, To) asc, each undirected road once.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge sets the distance of the undirected road a—b.
//
// Steps:
//  1. Validate both endpoints are registered (ErrUnknownCity).
//  2. Reject a == b (ErrSelfLoop).
//  3. Reject weight ≤ 0, NaN, ±Inf (ErrInvalidWeight).
//  4. Store the weight once under the canonical key and mirror the neighbor sets.
//
// Re-adding an existing road replaces its weight in both directions at once.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight float64) error {
	if err := g.requireCity(a); err != nil {
		return err
	}
	if err := g.requireCity(b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfLoop, a)
	}
	if !(weight > 0) || math.IsInf(weight, 1) { // !(w>0) also rejects NaN
		return fmt.Errorf("%w: %s—%s weight=%v", ErrInvalidWeight, a, b, weight)
	}

	g.weights[keyOf(a, b)] = weight
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}

	return nil
}

// HasEdge reports whether the road a—b exists. Symmetric by construction.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.weights[keyOf(a, b)]

	return ok
}

// Weight returns the distance of road a—b, or (0, false) if there is none.
// Complexity: O(1).
func (g *Graph) Weight(a, b string) (float64, bool) {
	w, ok := g.weights[keyOf(a, b)]

	return w, ok
}

// EdgeCount returns the number of undirected roads.
func (g *Graph) EdgeCount() int { return len(g.weights) }

// Edges returns every road once, with From < To, sorted by (From, To).
//
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.weights))
	for k, w := range g.weights {
		out = append(out, Edge{From: k.lo, To: k.hi, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
