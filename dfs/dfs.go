package dfs

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph         // underlying graph
	opts    DFSOptions          // traversal options
	res     *DFSResult          // result collector
	reverse map[string][]string // incoming keys per landmark, Undirected only
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected islands; otherwise, it starts only from start.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, start string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.Contains(start) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	keys := g.Keys()
	res := &DFSResult{
		Order:   make([]string, 0, len(keys)),
		Depth:   make(map[string]int, len(keys)),
		Parent:  make(map[string]string, len(keys)),
		Visited: make(map[string]bool, len(keys)),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}
	if dopts.Undirected {
		walker.reverse = make(map[string][]string, len(keys))
		for _, c := range g.Connections() {
			walker.reverse[c.To] = append(walker.reverse[c.To], c.From)
		}
	}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, k := range keys {
			if !res.Visited[k] {
				if err := walker.traverse(k, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// neighbors lists the keys reachable in one step from key: outgoing
// connections in insertion order, then, when undirected, incoming ones.
func (w *dfsWalker) neighbors(key string) []string {
	out := w.graph.Neighbors(key)
	keys := make([]string, 0, len(out)+len(w.reverse[key]))
	for _, nb := range out {
		keys = append(keys, nb.Key)
	}

	return append(keys, w.reverse[key]...)
}

// traverse visits landmark key at given depth, recursing to neighbors.
// It honors context cancellation, depth limit, hooks and filtering.
func (w *dfsWalker) traverse(key string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[key] = true
	w.res.Depth[key] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(key); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", key, err)
		}
	}

	// 5. Explore each neighbor; self-loops and dangling targets lead nowhere
	for _, next := range w.neighbors(key) {
		if next == key || !w.graph.Contains(next) {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(next) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[next] {
			w.res.Parent[next] = key
			if err := w.traverse(next, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(key); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", key, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, key)

	return nil
}
