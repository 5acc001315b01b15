package tsp_test

import (
	"testing"

	"github.com/katalvlaran/citynav/tsp"
)

func BenchmarkOptimalTour_Korea(b *testing.B) {
	g := korea(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := tsp.OptimalTour(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOptimalTour_KoreaParallel(b *testing.B) {
	g := korea(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := tsp.OptimalTour(g, tsp.WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPermutations_8(b *testing.B) {
	p := tsp.NewPermutations(8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Reset()
		for p.Next() {
		}
	}
}
