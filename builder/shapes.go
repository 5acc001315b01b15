// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// shapes.go — topology constructors.
//
// Determinism:
//   • Cities are emitted in ascending index order.
//   • Roads are emitted for i ascending, then j ascending (j > i).
//   • Weights and random trials consume the RNG in that fixed order.
//
// Positions: ring shapes sit on a circle of radius 10; grids use
// (col, rows-1-row) so row 0 is drawn on top; random networks are scattered
// uniformly in a 10×10 box.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/citynav/network"
)

const (
	methodComplete     = "Complete"
	methodCycle        = "Cycle"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minCompleteCities = 1
	minCycleCities    = 3
	minGridDim        = 1
	ringRadius        = 10.0
)

// ringPos places city i of n evenly on a circle.
func ringPos(i, n int) (float64, float64) {
	a := 2 * math.Pi * float64(i) / float64(n)

	return ringRadius * math.Cos(a), ringRadius * math.Sin(a)
}

// Complete builds K_n: every pair of cities is joined.
//
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(net *network.Network, cfg config) error {
		if n < minCompleteCities {
			return tooFew(methodComplete, "n", n, minCompleteCities)
		}
		for i := 0; i < n; i++ {
			x, y := ringPos(i, n)
			cfg.addCity(net, i, x, y)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				cfg.addRoad(net, i, j)
			}
		}

		return nil
	}
}

// Cycle builds C_n: city i is joined to city (i+1) mod n.
//
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(net *network.Network, cfg config) error {
		if n < minCycleCities {
			return tooFew(methodCycle, "n", n, minCycleCities)
		}
		for i := 0; i < n; i++ {
			x, y := ringPos(i, n)
			cfg.addCity(net, i, x, y)
		}
		for i := 0; i < n-1; i++ {
			cfg.addRoad(net, i, i+1)
		}
		cfg.addRoad(net, 0, n-1)

		return nil
	}
}

// Grid builds a rows×cols lattice with 4-neighbour roads. City (r, c) has
// index r*cols + c.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(net *network.Network, cfg config) error {
		if rows < minGridDim {
			return tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return tooFew(methodGrid, "cols", cols, minGridDim)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cfg.addCity(net, r*cols+c, float64(c), float64(rows-1-r))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					cfg.addRoad(net, i, i+1)
				}
				if r+1 < rows {
					cfg.addRoad(net, i, i+cols)
				}
			}
		}

		return nil
	}
}

// RandomSparse includes each of the n(n−1)/2 possible roads independently
// with probability p. The result may be disconnected.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(net *network.Network, cfg config) error {
		if n < minCompleteCities {
			return tooFew(methodRandomSparse, "n", n, minCompleteCities)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		for i := 0; i < n; i++ {
			cfg.addCity(net, i, 10*cfg.rng.Float64(), 10*cfg.rng.Float64())
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					cfg.addRoad(net, i, j)
				}
			}
		}

		return nil
	}
}
