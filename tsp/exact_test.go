package tsp_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/network"
	"github.com/katalvlaran/citynav/tsp"
)

// ------------------------------------------------------------------------
// Fixtures
// ------------------------------------------------------------------------

// graphOf builds a graph from city names and (a, b, w) roads.
func graphOf(t testing.TB, cities []string, roads ...core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, c := range cities {
		require.NoError(t, g.AddCity(c))
	}
	for _, r := range roads {
		require.NoError(t, g.AddEdge(r.From, r.To, r.Weight))
	}

	return g
}

// complete returns a complete graph on n cities C0…Cn-1 with weight w(i, j).
func complete(t testing.TB, n int, w func(i, j int) float64) *core.Graph {
	t.Helper()
	cities := make([]string, n)
	for i := range cities {
		cities[i] = fmt.Sprintf("C%d", i)
	}
	var roads []core.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			roads = append(roads, core.Edge{From: cities[i], To: cities[j], Weight: w(i, j)})
		}
	}

	return graphOf(t, cities, roads...)
}

// bruteForce tries every ordering of every city (no fixed start) and
// returns the minimal TourCost, or false if no ordering is a valid tour.
func bruteForce(g *core.Graph) (float64, bool) {
	ids := g.Cities()
	best, found := math.Inf(1), false
	var rec func(k int)
	rec = func(k int) {
		if k == len(ids) {
			if c, err := core.TourCost(g, ids); err == nil && c < best {
				best, found = c, true
			}
			return
		}
		for i := k; i < len(ids); i++ {
			ids[k], ids[i] = ids[i], ids[k]
			rec(k + 1)
			ids[k], ids[i] = ids[i], ids[k]
		}
	}
	rec(0)

	return best, found
}

func korea(t testing.TB) *core.Graph {
	t.Helper()
	g, _, err := network.Build(network.Korea())
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation and trivial sizes
// ------------------------------------------------------------------------

func TestOptimalTour_NilGraph(t *testing.T) {
	_, found, err := tsp.OptimalTour(nil)
	require.ErrorIs(t, err, tsp.ErrNilGraph)
	require.False(t, found)
}

func TestOptimalTour_BadWorkers(t *testing.T) {
	g := complete(t, 4, func(int, int) float64 { return 1 })
	_, _, err := tsp.OptimalTour(g, tsp.WithWorkers(0))
	require.ErrorIs(t, err, tsp.ErrBadWorkers)
}

func TestOptimalTour_CityLimit(t *testing.T) {
	big := complete(t, tsp.DefaultMaxCities+1, func(int, int) float64 { return 1 })
	for _, w := range []int{1, 4} {
		_, found, err := tsp.OptimalTour(big, tsp.WithWorkers(w))
		require.ErrorIs(t, err, tsp.ErrTooManyCities)
		require.Contains(t, err.Error(), "13 cities, limit 12")
		require.False(t, found)
	}

	g := complete(t, 5, func(i, j int) float64 { return float64(i + j) })
	_, _, err := tsp.OptimalTour(g, tsp.WithMaxCities(4))
	require.ErrorIs(t, err, tsp.ErrTooManyCities)

	_, found, err := tsp.OptimalTour(g, tsp.WithMaxCities(5))
	require.NoError(t, err)
	require.True(t, found)

	_, found, err = tsp.OptimalTour(g, tsp.WithMaxCities(0))
	require.NoError(t, err, "0 disables the limit")
	require.True(t, found)

	_, _, err = tsp.OptimalTour(g, tsp.WithMaxCities(-1))
	require.ErrorIs(t, err, tsp.ErrBadMaxCities)
}

func TestOptimalTour_FewerThanTwoCities(t *testing.T) {
	_, found, err := tsp.OptimalTour(core.NewGraph())
	require.NoError(t, err)
	require.False(t, found)

	_, found, err = tsp.OptimalTour(graphOf(t, []string{"Seoul"}))
	require.NoError(t, err)
	require.False(t, found)
}

func TestOptimalTour_TwoCities(t *testing.T) {
	g := graphOf(t, []string{"Busan", "Ulsan"}, core.Edge{From: "Busan", To: "Ulsan", Weight: 60})
	tour, found, err := tsp.OptimalTour(g)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, core.Path{"Busan", "Ulsan"}, tour.Path)
	require.Equal(t, 120.0, tour.Distance)

	_, found, err = tsp.OptimalTour(graphOf(t, []string{"Busan", "Jeju"}))
	require.NoError(t, err)
	require.False(t, found)
}

// ------------------------------------------------------------------------
// 2. Optimality
// ------------------------------------------------------------------------

func TestOptimalTour_EqualWeightsFirstOrderingWins(t *testing.T) {
	g := complete(t, 4, func(int, int) float64 { return 100 })
	for _, w := range []int{1, 3} {
		tour, found, err := tsp.OptimalTour(g, tsp.WithWorkers(w))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, 400.0, tour.Distance)
		require.Equal(t, core.Path{"C0", "C1", "C2", "C3"}, tour.Path)
	}
}

func TestOptimalTour_MatchesBruteForce(t *testing.T) {
	// Six cities with uneven weights and a few roads missing.
	weights := func(i, j int) float64 { return float64((i*7+j*13)%17 + 1) }
	g := core.NewGraph()
	for i := 0; i < 6; i++ {
		require.NoError(t, g.AddCity(fmt.Sprintf("C%d", i)))
	}
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			if (i+j)%4 == 3 {
				continue
			}
			require.NoError(t, g.AddEdge(fmt.Sprintf("C%d", i), fmt.Sprintf("C%d", j), weights(i, j)))
		}
	}

	want, ok := bruteForce(g)
	require.True(t, ok)

	tour, found, err := tsp.OptimalTour(g)
	require.NoError(t, err)
	require.True(t, found)
	require.InDelta(t, want, tour.Distance, 1e-9)
	require.Equal(t, "C0", tour.Path[0])
	require.NoError(t, core.ValidateTour(g, tour.Path))
}

func TestOptimalTour_Korea(t *testing.T) {
	g := korea(t)

	tour, found, err := tsp.OptimalTour(g)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Seoul", tour.Path[0])
	require.NoError(t, core.ValidateTour(g, tour.Path))

	cost, err := core.TourCost(g, tour.Path)
	require.NoError(t, err)
	require.Equal(t, tour.Distance, cost)

	par, found, err := tsp.OptimalTour(g, tsp.WithWorkers(4))
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, tour, par)
}

func TestOptimalTour_ParallelEqualsSequential(t *testing.T) {
	// Many equal-cost optima: the parallel reduction must pick the same one.
	g := complete(t, 7, func(i, j int) float64 { return float64(1 + (i+j)%2) })
	seq, found, err := tsp.OptimalTour(g)
	require.NoError(t, err)
	require.True(t, found)

	for _, w := range []int{2, 3, 6, 16} {
		par, found, err := tsp.OptimalTour(g, tsp.WithWorkers(w))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, seq, par, "workers=%d", w)
	}
}

// ------------------------------------------------------------------------
// 3. Infeasible graphs
// ------------------------------------------------------------------------

func TestOptimalTour_Infeasible(t *testing.T) {
	cases := map[string]*core.Graph{
		"path": graphOf(t, []string{"A", "B", "C"},
			core.Edge{From: "A", To: "B", Weight: 1},
			core.Edge{From: "B", To: "C", Weight: 1}),
		"isolated": graphOf(t, []string{"A", "B", "C", "D"},
			core.Edge{From: "A", To: "B", Weight: 1},
			core.Edge{From: "B", To: "C", Weight: 1},
			core.Edge{From: "C", To: "A", Weight: 1}),
		"two triangles": graphOf(t, []string{"A", "B", "C", "D", "E", "F"},
			core.Edge{From: "A", To: "B", Weight: 1},
			core.Edge{From: "B", To: "C", Weight: 1},
			core.Edge{From: "C", To: "A", Weight: 1},
			core.Edge{From: "D", To: "E", Weight: 1},
			core.Edge{From: "E", To: "F", Weight: 1},
			core.Edge{From: "F", To: "D", Weight: 1}),
		// Connected, every degree ≥ 2, but A is a cut vertex.
		"bowtie": graphOf(t, []string{"A", "B", "C", "D", "E"},
			core.Edge{From: "A", To: "B", Weight: 1},
			core.Edge{From: "B", To: "C", Weight: 1},
			core.Edge{From: "C", To: "A", Weight: 1},
			core.Edge{From: "A", To: "D", Weight: 1},
			core.Edge{From: "D", To: "E", Weight: 1},
			core.Edge{From: "E", To: "A", Weight: 1}),
	}
	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			for _, w := range []int{1, 4} {
				tour, found, err := tsp.OptimalTour(g, tsp.WithWorkers(w))
				require.NoError(t, err)
				require.False(t, found)
				require.Empty(t, tour.Path)
			}
		})
	}
}

func TestOptimalTour_OverflowingSumsAreInfeasible(t *testing.T) {
	huge := math.MaxFloat64
	g := graphOf(t, []string{"A", "B", "C"},
		core.Edge{From: "A", To: "B", Weight: huge},
		core.Edge{From: "B", To: "C", Weight: huge},
		core.Edge{From: "C", To: "A", Weight: huge})

	for _, w := range []int{1, 3} {
		tour, found, err := tsp.OptimalTour(g, tsp.WithWorkers(w))
		require.NoError(t, err)
		require.False(t, found, "workers=%d", w)
		require.Empty(t, tour.Path)
	}
}

func TestOptimalTour_AvoidsOverflowingTours(t *testing.T) {
	huge := math.MaxFloat64
	g := complete(t, 4, func(i, j int) float64 {
		if (i == 0 && j == 1) || (i == 2 && j == 3) {
			return huge
		}
		return 1
	})

	for _, w := range []int{1, 3} {
		tour, found, err := tsp.OptimalTour(g, tsp.WithWorkers(w))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, []string{"C0", "C2", "C1", "C3"}, tour.Path)
		require.Equal(t, 4.0, tour.Distance)
	}
}

// ------------------------------------------------------------------------
// 4. Cancellation
// ------------------------------------------------------------------------

func TestOptimalTourContext_Cancelled(t *testing.T) {
	g := korea(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, w := range []int{1, 4} {
		_, found, err := tsp.OptimalTourContext(ctx, g, tsp.WithWorkers(w))
		require.ErrorIs(t, err, context.Canceled)
		require.False(t, found)
	}
}
