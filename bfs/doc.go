// Package bfs provides breadth-first search over a core.Graph of campus
// landmarks, returning hop counts, parent links, and visit order.
//
// What
//
//   - Explore landmarks in non-decreasing hop count from a start landmark.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from landmark → hops from start
//   - Parent: map from landmark → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a landmark is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual connections via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//	The navigator uses Reachable to offer only destinations that a route
//	can actually reach from the selected start, and to tell "unreachable"
//	apart from "unknown" without running the weighted solver.
//
// Directedness
//
//	Connections are followed only From→To. A connection whose target is
//	not a landmark is skipped, as in the shortest-path solver. Weights are
//	ignored.
//
// Determinism
//
//	Neighbors are enqueued in connection insertion order, so the visit
//	sequence is fully reproducible for a given map document.
//
// Complexity (V = landmarks, E = connections)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "gate",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr string, nb core.Neighbor) bool { return nb.Key != "closed_wing" }),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or a hook error
//	}
//
//	destinations := bfs.Reachable(g, "gate")
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start key is not a landmark.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() when the context is cancelled mid-walk.
package bfs
