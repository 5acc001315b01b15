// Package dijkstra computes least-cost routes between cities of a core.Graph.
//
// Overview:
//
//   - Search runs a single-source Dijkstra search and returns a Tree holding
//     the settled distance of every reachable city and its predecessor.
//   - ShortestPath answers one source→target query: it returns the trivial
//     one-city route for source == target without searching, otherwise it
//     reconstructs the route from the Tree.
//   - An unreachable target is a normal negative result (found == false),
//     not an error. Errors are reserved for structural mistakes.
//
// Algorithm:
//
//	dist[source] = 0; every other city is unreached
//	unsettled = all cities
//	loop:
//	    u = reached unsettled city with minimum dist   (ties: lower insertion index)
//	    if none: stop                                  (rest is unreachable)
//	    settle u
//	    for each unsettled neighbor v of u:
//	        if v unreached or dist[u] + w(u,v) < dist[v]:
//	            dist[v] = dist[u] + w(u,v); prev[v] = u
//
// "Unreached" is an explicit flag, never a numeric infinity, so no arithmetic
// ever touches an infinite distance.
//
// Minimum selection:
//
//   - Linear scan (default): O(V²) time, O(V) space. Best for the tens of
//     cities this package is built for.
//   - WithPriorityQueue(): binary heap with lazy decrease-key,
//     O((V + E) log V). Ties are ordered by insertion index as well, so both
//     modes settle cities in the same order and report the same routes.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: a nil *core.Graph was passed.
//   - core.ErrUnknownCity (wrapped; "" also matches core.ErrEmptyCityID): source or target
//     is not registered.
//
// Thread safety:
//
//   - The graph must not be mutated while a search runs. Searches on an
//     unchanging graph may run concurrently.
package dijkstra
