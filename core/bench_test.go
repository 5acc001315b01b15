package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/citynav/core"
)

// buildComplete returns a complete graph on n cities with weight i+j+1.
func buildComplete(n int) *core.Graph {
	g := core.NewGraph()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("C%d", i)
		_ = g.AddCity(ids[i])
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(ids[i], ids[j], float64(i+j+1))
		}
	}

	return g
}

func BenchmarkAddEdge(b *testing.B) {
	g := buildComplete(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("C0", "C1", float64(i%100+1))
	}
}

func BenchmarkNeighbors(b *testing.B) {
	g := buildComplete(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("C0")
	}
}

func BenchmarkTourCost(b *testing.B) {
	g := buildComplete(64)
	tour := g.Cities()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.TourCost(g, tour)
	}
}
