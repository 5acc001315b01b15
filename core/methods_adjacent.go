// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc; traversals in the bfs
//     package rely on this order.

package core

import "sort"

// Neighbors returns the adjacent cities of id mapped to road weights.
//
// Returns a fresh map on each call; mutating it does not affect the graph.
//
// Errors:
//   - ErrUnknownCity: if the city does not exist; id == "" additionally
//     matches ErrEmptyCityID.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) (map[string]float64, error) {
	if err := g.requireCity(id); err != nil {
		return nil, err
	}

	nbrs := g.adj[id]
	out := make(map[string]float64, len(nbrs))
	for v := range nbrs {
		out[v] = g.weights[keyOf(id, v)]
	}

	return out, nil
}

// NeighborIDs returns the adjacent city IDs of id sorted lexicographically.
//
// Errors: same as Neighbors.
//
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if err := g.requireCity(id); err != nil {
		return nil, err
	}

	nbrs := g.adj[id]
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}
