// Package tsp finds the minimum-distance closed tour that visits every city
// of a core.Graph exactly once.
//
// The search is exhaustive and therefore exact:
//
//   - OptimalTour — fixes the first city of g.Cities() as the start and
//     enumerates every ordering of the remaining cities.
//
//   - Complexity: O((V−1)!·V)
//
//   - Memory:     O(V²) for the distance matrix, O(V) per generator
//
//   - A missing road between consecutive cities (including the closing
//     road back to the start) discards the candidate.
//
//   - WithWorkers(n) — splits the candidates into blocks by the first city
//     after the start and searches the blocks concurrently. The answer is
//     identical to the sequential one, ties included.
//
// Orderings are produced lazily by Permutations, a restartable
// lexicographic generator, so memory stays linear in the number of cities
// no matter how large the search space is.
//
// A graph without any valid tour is not an error: OptimalTour reports it
// with found == false. Graphs larger than Options.MaxCities (DefaultMaxCities
// unless WithMaxCities says otherwise) are refused with ErrTooManyCities
// before any enumeration.
package tsp
