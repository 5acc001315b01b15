// Package core_test contains test helpers for citynav/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Avoid magic city names and weights in test bodies.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/core"
)

// Common city IDs used across core tests.
const (
	Seoul   = "Seoul"
	Incheon = "Incheon"
	Suwon   = "Suwon"
	Busan   = "Busan"
	Ulsan   = "Ulsan"
)

// Common weights used across core tests.
const (
	WSeoulIncheon = 40.0
	WSeoulSuwon   = 30.0
	WIncheonSuwon = 35.0
	WBusanUlsan   = 60.0
)

// newTriangle returns Seoul—Incheon—Suwon with the distances from the
// capital-region fixture: 40, 30 and 35.
func newTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, c := range []string{Seoul, Incheon, Suwon} {
		require.NoError(t, g.AddCity(c))
	}
	require.NoError(t, g.AddEdge(Seoul, Incheon, WSeoulIncheon))
	require.NoError(t, g.AddEdge(Seoul, Suwon, WSeoulSuwon))
	require.NoError(t, g.AddEdge(Incheon, Suwon, WIncheonSuwon))

	return g
}

// newTwoIslands returns the triangle plus a separate Busan—Ulsan component.
func newTwoIslands(t testing.TB) *core.Graph {
	t.Helper()
	g := newTriangle(t)
	require.NoError(t, g.AddCity(Busan))
	require.NoError(t, g.AddCity(Ulsan))
	require.NoError(t, g.AddEdge(Busan, Ulsan, WBusanUlsan))

	return g
}
