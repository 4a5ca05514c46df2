// Package core provides the landmark graph used by the campus navigation
// engine: named 3D landmarks joined by directed, weighted connections.
//
// A Graph G = (L, C) is loaded once (from a map file, a marker log, or
// by hand) and then treated as read-only for the lifetime of every
// navigation session that shares it.
//
//   - Landmarks are keyed by a stable, non-empty string. Adding a landmark
//     whose key already exists overwrites its position and label (last
//     write wins) but keeps the key's original discovery position.
//   - Connections are directed tuples (From, To, Weight). A walkway that
//     can be traversed both ways is two connections; AddBidirectional is a
//     shorthand for that. Nothing is mirrored implicitly.
//   - Weights must be finite and non-negative. Dijkstra's guarantee does
//     not hold otherwise, so AddConnection rejects them up front.
//   - Connection endpoints are not validated by default. A dangling
//     endpoint is stored as given and later treated by the solver as
//     "no such neighbor". WithStrictEndpoints turns this into an error.
//
// Determinism:
//
//	Keys() enumerates landmarks in discovery order, i.e. the order of the
//	first AddLandmark call per key; connections never create landmarks.
//	Neighbors() enumerates outgoing connections in insertion order. The
//	shortest-path solver uses both to break ties between equal-cost
//	alternatives, so two graphs loaded from the same document always
//	produce the same routes.
//
// Concurrency:
//
//	All methods are guarded by a single sync.RWMutex. Many solver runs and
//	sessions may read the same Graph concurrently; mutation while readers
//	are active is safe but changes what later readers observe.
//
// Errors:
//
//	ErrEmptyKey            - landmark key is the empty string.
//	ErrLandmarkNotFound    - requested landmark does not exist.
//	ErrNegativeWeight      - connection weight is below zero.
//	ErrBadWeight           - connection weight is NaN or infinite.
//	ErrNoLandmarks         - graph holds no landmarks (Validate).
//	ErrDanglingConnection  - a connection references an unknown key (Validate).
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddLandmark("gate", mgl64.Vec3{0, 0, 0}, "Main Gate")
//	_ = g.AddLandmark("library", mgl64.Vec3{10, 0, 4}, "Library")
//	_ = g.AddBidirectional("gate", "library", 10.77)
//	for _, nb := range g.Neighbors("gate") {
//	    fmt.Println(nb.Key, nb.Weight)
//	}
package core
