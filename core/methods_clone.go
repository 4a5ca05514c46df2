// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clones preserve discovery order of keys and insertion order of connections.
// Concurrency:
//   - Read lock on the source; the clone is a fresh, unshared instance.

package core

// Clone returns a deep copy of the Graph: configuration, landmarks,
// discovery order, connections and adjacency.
//
// Complexity: O(L + C)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	opts := []GraphOption{WithCapacity(len(g.order))}
	if g.strict {
		opts = append(opts, WithStrictEndpoints())
	}
	clone := NewGraph(opts...)

	// Copy landmarks in discovery order
	for _, key := range g.order {
		lm := *g.landmarks[key]
		clone.landmarks[key] = &lm
		clone.order = append(clone.order, key)
	}

	// Copy connections; adjacency is rebuilt so buckets are not shared.
	clone.connections = make([]Connection, len(g.connections))
	copy(clone.connections, g.connections)
	for _, c := range g.connections {
		clone.adjacency[c.From] = append(clone.adjacency[c.From], Neighbor{Key: c.To, Weight: c.Weight})
	}

	return clone
}
