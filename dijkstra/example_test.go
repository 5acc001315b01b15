package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dijkstra"
	"github.com/katalvlaran/citynav/network"
)

// ExampleShortestPath finds the shortest road between two neighbouring cities.
func ExampleShortestPath() {
	g := core.NewGraph()
	for _, c := range []string{"Seoul", "Incheon", "Suwon"} {
		_ = g.AddCity(c)
	}
	_ = g.AddEdge("Seoul", "Incheon", 40)
	_ = g.AddEdge("Seoul", "Suwon", 30)
	_ = g.AddEdge("Incheon", "Suwon", 35)

	route, found, err := dijkstra.ShortestPath(g, "Incheon", "Suwon")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(found, route.Path, route.Distance)
	// Output: true [Incheon Suwon] 35
}

// ExampleShortestPath_korea runs the heap variant on the built-in network.
func ExampleShortestPath_korea() {
	g, _, err := network.Build(network.Korea())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	route, _, _ := dijkstra.ShortestPath(g, "Seoul", "Busan", dijkstra.WithPriorityQueue())
	fmt.Println(route.Path, route.Distance)
	// Output: [Seoul Daejeon Busan] 340
}

// ExampleSearch prints the settle order from one source.
func ExampleSearch() {
	g := core.NewGraph()
	for _, c := range []string{"A", "B", "C", "D"} {
		_ = g.AddCity(c)
	}
	_ = g.AddEdge("A", "B", 5)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("C", "B", 1)

	tree, _ := dijkstra.Search(g, "A")
	d, _ := tree.DistanceTo("B")
	_, reachable := tree.DistanceTo("D")
	fmt.Println(tree.Settled(), d, reachable)
	// Output: [A C B] 2 false
}
