package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/citynav/builder"
	"github.com/katalvlaran/citynav/dijkstra"
)

func benchmarkSearch(b *testing.B, q dijkstra.Queue) {
	g := generate(b, builder.Grid(30, 30), builder.WithWeightFn(builder.UniformWeightFn(1, 4)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Search(g, "City1", dijkstra.WithQueue(q)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Linear(b *testing.B) { benchmarkSearch(b, dijkstra.LinearScan) }
func BenchmarkSearch_Heap(b *testing.B)   { benchmarkSearch(b, dijkstra.Heap) }
