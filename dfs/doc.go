// Package dfs implements depth-first search (single-source and forest) on
// a core.Graph of campus landmarks.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Undirected view: WithUndirected follows every connection both ways
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - Islands(g): the landmark groups a route can never leave, for map checks
//
// Neighbors are explored in connection insertion order and forest roots
// in landmark discovery order, so every result is reproducible. Self-loops
// and connections to unknown landmarks are never followed.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal (where V = landmarks, E = connections), plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
