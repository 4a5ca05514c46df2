// File: methods_connections.go
// Role: Connection lifecycle & queries, plus whole-graph validation.
//
// Determinism:
//   - Connections() and Neighbors() preserve insertion order.
//
// Concurrency:
//   - Writers take g.mu exclusively, readers take g.mu.RLock.
//
// Notes:
//   - Nothing is mirrored: an undirected walkway is two connections.
//   - Self-loops are stored; the solver never relaxes them.
package core

import (
	"errors"
	"fmt"
	"math"
)

// AddConnection appends the directed connection from → to with the given weight.
//
// Steps:
//  1. Validate keys (ErrEmptyKey) and weight (ErrBadWeight, ErrNegativeWeight).
//  2. In strict graphs, both endpoints must already exist (ErrLandmarkNotFound).
//  3. Append to the connection list and to the adjacency bucket of from.
//
// Parallel connections are kept as given; the solver simply relaxes both.
// Complexity: O(1) amortized.
func (g *Graph) AddConnection(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyKey
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %s→%s weight=%g", ErrBadWeight, from, to, weight)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%g", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.strict {
		if _, ok := g.landmarks[from]; !ok {
			return fmt.Errorf("%w: %s", ErrLandmarkNotFound, from)
		}
		if _, ok := g.landmarks[to]; !ok {
			return fmt.Errorf("%w: %s", ErrLandmarkNotFound, to)
		}
	}

	g.connections = append(g.connections, Connection{From: from, To: to, Weight: weight})
	g.adjacency[from] = append(g.adjacency[from], Neighbor{Key: to, Weight: weight})

	return nil
}

// AddBidirectional adds a → b and b → a with the same weight.
// On failure of the first direction nothing is added.
func (g *Graph) AddBidirectional(a, b string, weight float64) error {
	if err := g.AddConnection(a, b, weight); err != nil {
		return err
	}

	return g.AddConnection(b, a, weight)
}

// Neighbors returns the outgoing connections of key in insertion order.
// Unknown keys yield nil; dangling targets are returned as stored.
// Complexity: O(deg(key)).
func (g *Graph) Neighbors(key string) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket := g.adjacency[key]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]Neighbor, len(bucket))
	copy(out, bucket)

	return out
}

// Connections returns a copy of every connection in insertion order.
// Complexity: O(C).
func (g *Graph) Connections() []Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Connection, len(g.connections))
	copy(out, g.connections)

	return out
}

// ConnectionCount returns the number of stored connections.
func (g *Graph) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.connections)
}

// Validate checks the loaded graph as a whole.
//
// Returns ErrNoLandmarks for an empty graph. Every dangling connection is
// reported as ErrDanglingConnection joined into one error; callers that
// tolerate dangling endpoints (the solver does) may log and continue.
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.order) == 0 {
		return ErrNoLandmarks
	}

	var errs []error
	for i, c := range g.connections {
		_, okFrom := g.landmarks[c.From]
		_, okTo := g.landmarks[c.To]
		if okFrom && okTo {
			continue
		}
		errs = append(errs, fmt.Errorf("%w: connection #%d %s→%s", ErrDanglingConnection, i, c.From, c.To))
	}

	return errors.Join(errs...)
}
