// Package citynav is an in-memory road navigator for a small network of
// cities: shortest routes between two cities and the optimal closed tour
// through all of them.
//
// 🚗 What is inside?
//
//	• Core primitives: cities, undirected weighted roads, path and tour costs
//	• Shortest routes: Dijkstra (linear scan or binary heap)
//	• Optimal tour: exhaustive search, optionally across worker goroutines
//	• Sources: the built-in South Korean network, YAML files, MySQL tables
//	• Output: text reports and SVG maps
//
// Subpackages:
//
//	core/     — Graph, Path, PathCost/TourCost and validation
//	bfs/      — breadth-first traversal, connectivity and components
//	dijkstra/ — ShortestPath and single-source Search
//	tsp/      — OptimalTour and the Permutations generator
//	router/   — cached query facade with structured logging
//	network/  — network descriptions, YAML and MySQL loaders
//	builder/  — synthetic networks (complete, cycle, grid, random)
//	format/   — text reports and the SVG map plotter
//	config/   — configuration (embedded defaults, file, environment)
//	logger/   — slog construction
//	cmd/korsel — the interactive navigator
//
// Quick example:
//
//	Seoul ──40── Incheon
//	   \          /
//	    30      35
//	      \    /
//	      Suwon
//
//	ShortestPath(Incheon, Suwon) = [Incheon Suwon], 35 km
//	OptimalTour = [Seoul Incheon Suwon], 105 km
//
//	go install github.com/katalvlaran/citynav/cmd/korsel@latest
package citynav
