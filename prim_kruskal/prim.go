package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// Prim computes the Minimum Spanning Tree (MST) of the walkways of g by
// growing outwards from root using a min-heap, ignoring direction.
//
// Error Conditions:
//   - ErrGraphNil              : if graph is nil.
//   - core.ErrNoLandmarks      : if the graph has no landmarks.
//   - ErrEmptyRoot             : if root is empty.
//   - core.ErrLandmarkNotFound : if root is not a landmark.
//   - ErrDisconnected          : if some landmark cannot be reached from root.
//
// Steps:
//  1. Validate graph and root.
//  2. Index usable connections by both endpoints.
//  3. Mark root visited and push its connections.
//  4. Pop the lightest connection; if its far end is new, keep it, mark the
//     end visited and push that end's connections.
//  5. Fewer than |V|-1 connections → ErrDisconnected.
//
// Equal weights tie-break by insertion order. Kept connections are
// reported as stored, so From is not necessarily the tree parent.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Connection, float64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrGraphNil
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.Contains(root) {
		if graph.LandmarkCount() == 0 {
			return nil, 0, core.ErrNoLandmarks
		}
		return nil, 0, fmt.Errorf("%w: %s", core.ErrLandmarkNotFound, root)
	}
	n := graph.LandmarkCount()
	if n == 1 {
		return []core.Connection{}, 0, nil
	}

	// 2. Index connections under both endpoints.
	edges := walkways(graph)
	touching := make(map[string][]int, n)
	for i, e := range edges {
		touching[e.From] = append(touching[e.From], i)
		touching[e.To] = append(touching[e.To], i)
	}

	visited := make(map[string]bool, n)
	mst := make([]core.Connection, 0, n-1)
	var totalWeight float64
	pq := &edgePQ{edges: edges}

	push := func(key string) {
		visited[key] = true
		for _, i := range touching[key] {
			if !visited[edges[i].From] || !visited[edges[i].To] {
				heap.Push(pq, candidate{idx: i, far: other(edges[i], key)})
			}
		}
	}

	// 3–4. Grow the tree.
	push(root)
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.far] {
			continue
		}
		mst = append(mst, edges[c.idx])
		totalWeight += edges[c.idx].Weight
		push(c.far)
	}

	// 5. Some landmark never joined the tree.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

func other(c core.Connection, key string) string {
	if c.From == key {
		return c.To
	}

	return c.From
}

// candidate is a connection leading out of the tree towards far.
type candidate struct {
	idx int
	far string
}

// edgePQ implements heap.Interface for a min-heap of candidates,
// ordered by weight, then by connection insertion order.
type edgePQ struct {
	edges []core.Connection
	items []candidate
}

func (pq *edgePQ) Len() int { return len(pq.items) }

func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i].idx, pq.items[j].idx
	if pq.edges[a].Weight != pq.edges[b].Weight {
		return pq.edges[a].Weight < pq.edges[b].Weight
	}

	return a < b
}

func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ) Push(x any) { pq.items = append(pq.items, x.(candidate)) }

func (pq *edgePQ) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
