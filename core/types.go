// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, the sentinel errors of the graph store, and
// the NewGraph constructor.
// Errors:
//   - ErrEmptyCityID:      city ID is the empty string.
//   - ErrDuplicateCity:    city is already registered.
//   - ErrUnknownCity:      requested city does not exist ("" included).
//   - ErrInvalidWeight:    road weight is not a finite positive number.
//   - ErrSelfLoop:         road from a city to itself.
//   - ErrMissingEdge:      a path uses a road that is not in the graph.
//   - ErrInvalidPath:      a path or tour violates its shape invariants.
//   - ErrDistanceOverflow: a path or tour sum is not representable.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyCityID indicates that the provided city ID is empty.
	ErrEmptyCityID = errors.New("core: city ID is empty")

	// ErrDuplicateCity indicates AddCity was called for a registered city.
	ErrDuplicateCity = errors.New("core: city already registered")

	// ErrUnknownCity indicates an operation referenced a non-existent city.
	ErrUnknownCity = errors.New("core: unknown city")

	// ErrInvalidWeight indicates a non-positive or non-finite road weight.
	ErrInvalidWeight = errors.New("core: weight must be a finite positive number")

	// ErrSelfLoop indicates a road from a city to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrMissingEdge indicates that two consecutive cities of a path are not joined by a road.
	ErrMissingEdge = errors.New("core: no road between consecutive cities")

	// ErrInvalidPath indicates a malformed path or tour (empty, repeated city, wrong length).
	ErrInvalidPath = errors.New("core: invalid path")

	// ErrDistanceOverflow indicates that summing finite road weights overflowed to +Inf.
	ErrDistanceOverflow = errors.New("core: distance sum overflows")
)

// Edge is a read-only view of one undirected road.
// From < To lexicographically; Weight is the road distance.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// edgeKey is the canonical storage key of an undirected road: lo < hi.
type edgeKey struct {
	lo, hi string
}

// keyOf returns the canonical key for the unordered pair {a, b}.
func keyOf(a, b string) edgeKey {
	if a < b {
		return edgeKey{lo: a, hi: b}
	}

	return edgeKey{lo: b, hi: a}
}

// Graph is the city store: a set of cities and symmetric weighted roads.
//
// A road's weight lives in exactly one place (weights[keyOf(a,b)]), and the
// neighbor sets are mirrored by the same write path, so the two directions
// of a road can never disagree.
type Graph struct {
	order   []string                       // cities in insertion order
	index   map[string]int                 // city → position in order
	adj     map[string]map[string]struct{} // city → neighbor set (mirrored)
	weights map[edgeKey]float64            // canonical road → weight
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index:   make(map[string]int),
		adj:     make(map[string]map[string]struct{}),
		weights: make(map[edgeKey]float64),
	}
}

// GraphStats is a snapshot of catalog sizes, used by listings and admission checks.
type GraphStats struct {
	CityCount int      // number of registered cities
	EdgeCount int      // number of undirected roads
	Isolated  []string // cities with no roads, in insertion order
}
