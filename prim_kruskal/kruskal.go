package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/campusnav/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of the walkways of g,
// ignoring direction: a → b and b → a are the same walkway.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrGraphNil         : if graph is nil.
//   - core.ErrNoLandmarks : if the graph has no landmarks.
//   - ErrDisconnected     : if |V| > 1 but the walkways do not join every landmark.
//
// Steps:
//  1. Validate; a single landmark yields the empty tree.
//  2. Collect usable connections (no self-loops, no dangling endpoints).
//  3. Sort by ascending Weight (stable: insertion order breaks ties).
//  4. Initialize DSU maps parent[] and rank[] for each landmark.
//  5. For each connection (u,v): if find(u) != find(v), union and keep it.
//  6. Stop at |V|-1 connections; fewer means ErrDisconnected.
//
// The result lists connections as stored, in acceptance order.
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Connection, float64, error) {
	// 1. Validate.
	if done, err := validate(graph); done {
		if err != nil {
			return nil, 0, err
		}
		return []core.Connection{}, 0, nil
	}
	keys := graph.Keys()

	// 2–3. Usable connections, lightest first.
	edges := walkways(graph)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Initialize disjoint-set (union-find) structures.
	parent := make(map[string]string, len(keys))
	rank := make(map[string]int, len(keys))
	for _, k := range keys {
		parent[k] = k
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v string) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 5. Build MST by iterating over sorted connections.
	var (
		mst         []core.Connection
		totalWeight float64
	)
	for _, e := range edges {
		if find(e.From) != find(e.To) {
			union(e.From, e.To)
			mst = append(mst, e)
			totalWeight += e.Weight
			if len(mst) == len(keys)-1 {
				break
			}
		}
	}

	// 6. Fewer than |V|-1 connections: some landmark is cut off.
	if len(mst) < len(keys)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
