// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// weight_fn.go — road distance generators. Every generator yields a
// strictly positive, finite distance in whole kilometres, so generated
// networks are always accepted by core.Graph and sums stay exact.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultWeight is the distance used when no WeightFn is configured.
const DefaultWeight = 10.0

// WeightFn draws one road distance.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn always returns km. Panics unless km > 0.
func ConstantWeightFn(km float64) WeightFn {
	if !(km > 0) {
		panic(fmt.Sprintf("builder: ConstantWeightFn: require km > 0, got %g", km))
	}
	return func(*rand.Rand) float64 { return km }
}

// UniformWeightFn returns whole distances uniform on [min, max].
// Panics unless 1 ≤ min ≤ max.
func UniformWeightFn(min, max int) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("builder: UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) float64 {
		return float64(min + rng.Intn(max-min+1))
	}
}
