// Package dijkstra provides single-source shortest paths over a core.Graph
// of campus landmarks with non-negative connection weights.
//
// Overview:
//
//   - ShortestPath(g, start, end) is the navigation entry point: it returns
//     the ordered landmark keys of a cheapest route, or an empty slice when
//     there is none. It never returns an error.
//   - Route(g, start, end) adds the route cost and surfaces a nil graph as
//     ErrNilGraph. Negative weights never get this far: core.Graph rejects
//     them at construction time.
//   - Dijkstra(g, opts...) exposes the full distance / predecessor tables
//     with functional options.
//
// "No route" cases (all yield an empty slice):
//
//   - start or end is not a landmark key (lookup failure),
//   - end cannot be reached from start (unreachable target),
//   - g is nil (ShortestPath only; Route reports ErrNilGraph).
//
// start == end for a known key yields [start] with cost 0.
//
// Determinism:
//
//	Ties between equal-cost alternatives are broken by graph discovery
//	order (core.Graph.Keys) during selection and by connection insertion
//	order during relaxation. Loading the same map document twice always
//	yields the same routes.
//
// Directedness:
//
//	Connections are followed only in their stored direction. A walkway
//	usable both ways must be present twice; the solver never synthesizes a
//	reverse connection.
//
// Complexity:
//
//   - Time:  O(V² + E) with the linear selection scan.
//   - Space: O(V).
//
// Thread safety:
//
//	All functions are pure with respect to g: they allocate their own
//	working tables and only read the graph, so any number of solves may
//	share one graph concurrently.
//
// Example usage:
//
//	route := dijkstra.ShortestPath(g, "gate", "library")
//	if len(route) == 0 {
//	    // nothing to animate
//	}
package dijkstra
