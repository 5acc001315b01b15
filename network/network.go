// Package network supplies the city lists and road triples a core.Graph is
// built from: the built-in Korean network, YAML network files and MySQL
// tables. It also carries the schematic city layout the map plotter uses;
// the routing core never reads positions.
package network

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// ErrEmptyNetwork indicates a network without cities.
var ErrEmptyNetwork = errors.New("network: no cities")

// Point is a schematic map position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// City is one city of a network. Pos is optional.
type City struct {
	Name string `yaml:"name"`
	Pos  *Point `yaml:"pos,omitempty,flow"`
}

// Road is one undirected road with its distance in kilometres.
type Road struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Distance float64 `yaml:"km"`
}

// Network is the construction input of a graph: cities in order, then roads.
type Network struct {
	Name   string `yaml:"name,omitempty"`
	Cities []City `yaml:"cities"`
	Roads  []Road `yaml:"roads"`
}

// Layout maps city names to plot positions.
type Layout map[string]Point

// Position implements format.Layout.
func (l Layout) Position(city string) (x, y float64, ok bool) {
	p, ok := l[city]

	return p.X, p.Y, ok
}

// Source produces a Network from some backing store.
type Source interface {
	Load(ctx context.Context) (Network, error)
}

// Build registers every city in list order, then every road, and returns the
// graph plus the layout of the cities that carry a position.
//
// Errors fail fast and name the offending entry; they wrap the core
// sentinels (core.ErrDuplicateCity, core.ErrUnknownCity, core.ErrInvalidWeight,
// core.ErrSelfLoop) or ErrEmptyNetwork.
//
// Complexity: O(V + E).
func Build(n Network) (*core.Graph, Layout, error) {
	if len(n.Cities) == 0 {
		return nil, nil, ErrEmptyNetwork
	}

	g := core.NewGraph()
	layout := make(Layout, len(n.Cities))
	for i, c := range n.Cities {
		if err := g.AddCity(c.Name); err != nil {
			return nil, nil, fmt.Errorf("network: city #%d: %w", i+1, err)
		}
		if c.Pos != nil {
			layout[c.Name] = *c.Pos
		}
	}
	for i, r := range n.Roads {
		if err := g.AddEdge(r.From, r.To, r.Distance); err != nil {
			return nil, nil, fmt.Errorf("network: road #%d (%s—%s): %w", i+1, r.From, r.To, err)
		}
	}

	return g, layout, nil
}

// Builtin is a Source that always yields the same in-memory network.
type Builtin struct {
	Network Network
}

// Load implements Source.
func (b Builtin) Load(context.Context) (Network, error) {
	return b.Network, nil
}
