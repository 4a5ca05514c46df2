// Package bfs provides breadth-first search over a core.Graph,
// returning hop counts, parent links, and visit order.
//
// BFS explores landmarks in increasing hop count from a start landmark,
// with optional hooks, depth limiting, and connection filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// queueItem pairs a landmark key with its BFS depth and its parent's key.
type queueItem struct {
	key    string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Connection weights are ignored: every connection counts as one hop.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start landmark
	if !g.Contains(start) {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	n := g.LandmarkCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start landmark (no parent)
	w.enqueue(start, 0, "")
	// Main loop
	return w.res, w.loop()
}

// Reachable returns the landmarks reachable from start by following
// connections in their stored direction, start excluded, in BFS visit
// order. An unknown start or nil graph yields nil.
func Reachable(g *core.Graph, start string) []string {
	res, err := BFS(g, start)
	if err != nil {
		return nil
	}

	return res.Order[1:]
}

// enqueue marks key visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(key string, d int, parent string) {
	w.visited[key] = true
	w.res.Depth[key] = d
	if parent != "" {
		w.res.Parent[key] = parent
	}
	w.opts.OnEnqueue(key, d)
	w.queue = append(w.queue, queueItem{key: key, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.key, item.depth)
	return item
}

// visit records the landmark in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.key)
	if err := w.opts.OnVisit(item.key, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.key, err)
	}
	return nil
}

// enqueueNeighbors walks the outgoing connections of item in insertion
// order, applies filtering and MaxDepth, and enqueues each unseen target.
// Targets that are not landmarks are skipped.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, nb := range w.graph.Neighbors(item.key) {
		if w.visited[nb.Key] || !w.graph.Contains(nb.Key) {
			continue
		}
		if !w.opts.FilterNeighbor(item.key, nb) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		w.enqueue(nb.Key, nextDepth, item.key)
	}
}
