// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Views keep the source's discovery order and connection order.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph holding only the landmarks whose key
// is marked in keep, and only the connections whose endpoints are both
// kept. Dangling connections are dropped since their missing endpoint can
// never be kept. The input graph is not mutated.
//
// Useful to close a wing of a building, or to route only across outdoor
// landmarks, without touching the shared campus graph.
//
// Complexity: O(L + C).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	opts := []GraphOption{}
	if g.strict {
		opts = append(opts, WithStrictEndpoints())
	}
	out := NewGraph(opts...)

	for _, key := range g.order {
		if !keep[key] {
			continue
		}
		lm := *g.landmarks[key]
		out.landmarks[key] = &lm
		out.order = append(out.order, key)
	}

	for _, c := range g.connections {
		if _, ok := out.landmarks[c.From]; !ok {
			continue
		}
		if _, ok := out.landmarks[c.To]; !ok {
			continue
		}
		out.connections = append(out.connections, c)
		out.adjacency[c.From] = append(out.adjacency[c.From], Neighbor{Key: c.To, Weight: c.Weight})
	}

	return out
}
