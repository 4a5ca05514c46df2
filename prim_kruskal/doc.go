// Package prim_kruskal computes a Minimum Spanning Tree (MST) over the
// walkways of a campus map: the cheapest set of connections that still
// joins every landmark.
//
// What & Why
//
//   - The authoring tool uses it to lay out walkways between freely placed
//     marks (builder.Spanning): every landmark becomes reachable with the
//     least total walkway length, without inventing shortcuts.
//   - Map checks can compare a map's total walkway length with its MST to
//     spot redundant or suspiciously long connections.
//
// Walkways, not connections
//
//	Campus connections are directed, but a spanning tree is about which
//	places are joined at all, so a → b and b → a count as the same
//	walkway. Self-loops and connections to keys that are not landmarks are
//	ignored.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.Connection, float64, error)
//     Stable sort by weight, then union-find with path compression and
//     union by rank. Time O(E log E), space O(V + E).
//
//   - Prim(g, root) ([]core.Connection, float64, error)
//     Grow from root with a min-heap of candidate connections.
//     Time O(E log E), space O(V + E).
//
//   - Compute(g, opts...) selects one via WithMethod / WithRoot.
//
// Determinism
//
//	Equal weights always resolve in connection insertion order, so the
//	same map document yields the same tree on every run.
//
// Error Conditions
//
//   - ErrGraphNil          graph is nil.
//   - core.ErrNoLandmarks  graph has no landmarks.
//   - ErrEmptyRoot         Prim called with root == "".
//   - core.ErrLandmarkNotFound  Prim root is not a landmark.
//   - ErrDisconnected      the walkways do not join every landmark.
//   - ErrUnknownMethod     Compute with an unsupported method.
package prim_kruskal
