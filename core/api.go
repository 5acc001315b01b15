// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only facade over the graph catalog.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// Stats produces a deterministic snapshot of catalog sizes and isolated cities.
//
// Behavior highlights:
//   - Isolated lists cities with no roads in insertion order; such cities can
//     never appear on a route longer than themselves and rule out any tour.
//
// Complexity:
//   - Time O(V), Space O(V) for the Isolated slice.
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		CityCount: len(g.order),
		EdgeCount: len(g.weights),
	}
	for _, id := range g.order {
		if len(g.adj[id]) == 0 {
			stats.Isolated = append(stats.Isolated, id)
		}
	}

	return stats
}
