// Package core provides the in-memory city graph used by the routing engines.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected only: every road A—B is stored once under a canonical
//     (lo, hi) key, so weight(A→B) == weight(B→A) holds by construction.
//   - Weighted only: weights are finite float64 distances, strictly positive.
//   - No self-loops, no parallel roads (re-adding a road replaces its weight).
//   - Cities are enumerated in insertion order, which makes every algorithm
//     built on top of Cities() deterministic.
//
// Core Methods:
//
//	// City lifecycle
//	AddCity(id string) error                        // O(1)
//	HasCity(id string) bool                         // O(1)
//	Cities() []string                               // O(V), insertion order
//
//	// Road lifecycle
//	AddEdge(a, b string, weight float64) error      // O(1)
//	HasEdge(a, b string) bool                       // O(1)
//	Weight(a, b string) (float64, bool)             // O(1)
//	Edges() []Edge                                  // O(E·log E), each road once
//
//	// Query
//	Neighbors(id string) (map[string]float64, error) // O(d), fresh copy
//	NeighborIDs(id string) ([]string, error)         // O(d·log d), sorted
//	Degree(id string) (int, error)                   // O(1)
//	Stats() GraphStats                               // O(V)
//
//	// Path accounting
//	PathCost(g, path) (float64, error)  // sum of consecutive road weights
//	TourCost(g, tour) (float64, error)  // PathCost plus the closing road
//
// Errors:
//
//	ErrEmptyCityID    – zero-length city ID
//	ErrDuplicateCity  – AddCity on an already registered city
//	ErrUnknownCity    – operation references an unregistered city
//	ErrInvalidWeight  – weight ≤ 0, NaN or ±Inf
//	ErrSelfLoop       – AddEdge(a, a, …)
//	ErrMissingEdge    – path/tour uses a road that does not exist
//	ErrInvalidPath    – path/tour shape violates its invariants
//	ErrDistanceOverflow – path/tour sum overflows float64
//
// Concurrency:
//
// Graph carries no locks. It is built once and then only read; mutating it
// while a dijkstra or tsp query runs is not supported. Any number of
// goroutines may read a graph that is no longer being mutated.
package core
