// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// builder.go — Constructor type, configuration and Build entry point.
//
// Contract:
//   • A Constructor emits cities (with a schematic position) and roads into a
//     network.Network; Build applies options and returns the result.
//   • Options VALIDATE and PANIC on meaningless inputs; constructors never panic.
//   • Determinism: for a fixed seed the output is identical run to run.

// Package builder generates synthetic road networks of well-known shapes
// (complete, cycle, grid, random sparse) for tests, benchmarks and demos.
//
// Every generated network is a plain network.Network, so it flows through
// network.Build, the YAML encoder and the map plotter like any other.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/citynav/network"
)

var (
	// ErrTooFewCities indicates a size parameter below the constructor minimum.
	ErrTooFewCities = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")
)

// DefaultSeed seeds the generator when WithSeed is not given.
const DefaultSeed = 1

// Constructor emits one shape into n using cfg.
type Constructor func(n *network.Network, cfg config) error

// config holds everything a Constructor needs.
type config struct {
	idFn     IDFn
	weightFn WeightFn
	rng      *rand.Rand
}

// Option customizes Build.
type Option func(*config)

// WithSeed makes weights and random topologies reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDScheme sets the city naming scheme. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithWeightFn sets the road distance generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// Build runs c with the given options and returns the generated network,
// named after the shape.
func Build(name string, c Constructor, opts ...Option) (network.Network, error) {
	cfg := config{
		idFn:     CityIDFn,
		weightFn: ConstantWeightFn(DefaultWeight),
		rng:      rand.New(rand.NewSource(DefaultSeed)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := network.Network{Name: name}
	if err := c(&n, cfg); err != nil {
		return network.Network{}, err
	}

	return n, nil
}

// addCity appends city i at (x, y).
func (c config) addCity(n *network.Network, i int, x, y float64) {
	n.Cities = append(n.Cities, network.City{Name: c.idFn(i), Pos: &network.Point{X: x, Y: y}})
}

// addRoad appends the road i—j with a generated distance.
func (c config) addRoad(n *network.Network, i, j int) {
	n.Roads = append(n.Roads, network.Road{From: c.idFn(i), To: c.idFn(j), Distance: c.weightFn(c.rng)})
}

func tooFew(method, what string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, what, got, min, ErrTooFewCities)
}
