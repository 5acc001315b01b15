// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: City lifecycle & queries.
//
// Determinism:
//   - Cities() returns IDs in insertion order; SortedCities() lexicographically.
//   - Index() exposes the insertion position, used by engines for tie-breaking.
package core

import (
	"fmt"
	"sort"
)

// AddCity registers a city with no roads.
//
// Behavior highlights:
//   - Not idempotent: registering the same ID twice is a setup mistake and
//     fails with ErrDuplicateCity, leaving the graph unchanged.
//
// Errors:
//   - ErrEmptyCityID: if id == "".
//   - ErrDuplicateCity: if id is already registered.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddCity(id string) error {
	if id == "" {
		return ErrEmptyCityID
	}
	if _, exists := g.index[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCity, id)
	}

	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.adj[id] = make(map[string]struct{})

	return nil
}

// HasCity reports whether the city ID is registered (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasCity(id string) bool {
	if id == "" {
		return false
	}
	_, ok := g.index[id]

	return ok
}

// Cities returns all registered cities in insertion order.
// The returned slice is a fresh copy; callers may modify it.
//
// Complexity: O(V).
func (g *Graph) Cities() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// SortedCities returns all registered cities sorted lexicographically.
// Complexity: O(V·log V).
func (g *Graph) SortedCities() []string {
	out := g.Cities()
	sort.Strings(out)

	return out
}

// Index returns the insertion position of id.
// Complexity: O(1).
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// CityCount returns the number of registered cities.
func (g *Graph) CityCount() int { return len(g.order) }

// Degree returns the number of roads incident to id.
//
// Errors:
//   - ErrUnknownCity: if id is not registered.
func (g *Graph) Degree(id string) (int, error) {
	if err := g.requireCity(id); err != nil {
		return 0, err
	}

	return len(g.adj[id]), nil
}

// requireCity returns a wrapped ErrUnknownCity if id is not registered.
// The empty ID can never be registered, so it wraps both ErrUnknownCity
// and ErrEmptyCityID.
func (g *Graph) requireCity(id string) error {
	if id == "" {
		return fmt.Errorf("%w: %w", ErrUnknownCity, ErrEmptyCityID)
	}
	if _, ok := g.index[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCity, id)
	}

	return nil
}
