// Package dijkstra implements Dijkstra's shortest-path algorithm on landmark graphs.
//
// The implementation is the classic array form: a distance table over every
// landmark key, an explicit visited set, and a linear scan for the next
// unvisited landmark with the smallest finite distance.
//
// Complexity:
//
//   - Time:  O(V² + E). Campus graphs hold tens to hundreds of landmarks,
//     where the scan is cheaper than heap bookkeeping.
//   - Space: O(V) for the distance, predecessor and visited tables.
//
// Tie-breaking:
//
//   - When two unvisited landmarks share the smallest distance, the one that
//     appears first in g.Keys() (graph discovery order) is settled first.
//   - Relaxation uses strict "<", so among equal-cost predecessors the first
//     one to reach a landmark keeps it.
//   - Together these make the chosen route among equal-cost alternatives a
//     pure function of the map document's order.
//
// Notes on implementation choices:
//
//   - Negative weights cannot reach the solver: core.Graph rejects them when
//     the connection is added (core.ErrNegativeWeight).
//   - Connections whose target is not a landmark are skipped ("no such neighbor").
//   - A landmark is marked visited before its neighbors are relaxed, so a
//     self-loop can never lower its own distance.
package dijkstra

import (
	"math"

	"github.com/katalvlaran/campusnav/core"
)

// Dijkstra computes shortest distances from the source landmark (Options.Source)
// to the other landmarks of g.
//
// Returns:
//
//   - dist: map from landmark key to distance (+Inf if unreachable or not settled
//     before an early exit).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v arrives from u.
//     For the source and unreached landmarks, prev[v] == "".
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Contains(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Run
	r := newRunner(g, cfg)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the landmark keys of a minimum-cost route from start
// to end, both inclusive.
//
// It never fails: an unknown start or end, an unreachable end, or a nil
// graph all produce an empty (nil) slice, which callers treat as "no
// route". When start == end and the key exists, the result is [start].
// Use Route when malformed graphs must surface as errors.
func ShortestPath(g *core.Graph, start, end string) []string {
	path, _, err := Route(g, start, end)
	if err != nil {
		return nil
	}

	return path
}

// Route is ShortestPath plus the total route cost.
//
// Lookup failures (unknown keys) and unreachable targets yield
// (nil, +Inf, nil). A nil graph yields ErrNilGraph, since it indicates a
// configuration bug upstream rather than a user selection.
func Route(g *core.Graph, start, end string) ([]string, float64, error) {
	if g == nil {
		return nil, math.Inf(1), ErrNilGraph
	}
	if !g.Contains(start) || !g.Contains(end) {
		return nil, math.Inf(1), nil
	}
	if start == end {
		return []string{start}, 0, nil
	}

	dist, prev, err := Dijkstra(g, Source(start), WithTarget(end), WithReturnPath())
	if err != nil {
		return nil, math.Inf(1), err
	}

	path := PathTo(prev, start, end)
	if path == nil {
		return nil, math.Inf(1), nil
	}

	return path, dist[end], nil
}

// PathTo follows back-pointers in prev from end to start and returns the
// keys in travel order. It returns nil when end was never reached.
func PathTo(prev map[string]string, start, end string) []string {
	if start == end {
		return []string{start}
	}
	if prev[end] == "" {
		return nil
	}

	path := []string{}
	for cur := end; cur != ""; cur = prev[cur] {
		path = append(path, cur)
		if cur == start {
			break
		}
		// prev always forms a tree rooted at start; the bound only guards
		// hand-built maps.
		if len(path) > len(prev) {
			return nil
		}
	}
	if path[len(path)-1] != start {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // The input graph; read-only within Dijkstra.
	options Options            // Configuration options (Source, thresholds, etc.).
	keys    []string           // Landmark keys in discovery order; drives tie-breaking.
	dist    map[string]float64 // Maps landmark key → current best distance from Source.
	prev    map[string]string  // Maps landmark key → predecessor on the shortest path.
	visited map[string]bool    // Tracks if a landmark's distance is finalized.
}

// newRunner sets dist[v] = +Inf and prev[v] = "" for every landmark and
// dist[Source] = 0.
func newRunner(g *core.Graph, cfg Options) *runner {
	keys := g.Keys()
	r := &runner{
		g:       g,
		options: cfg,
		keys:    keys,
		dist:    make(map[string]float64, len(keys)),
		prev:    make(map[string]string, len(keys)),
		visited: make(map[string]bool, len(keys)),
	}
	for _, k := range keys {
		r.dist[k] = math.Inf(1)
		r.prev[k] = ""
	}
	r.dist[cfg.Source] = 0

	return r
}

// process is the core loop. It repeatedly selects the closest unvisited
// landmark and relaxes its outgoing connections.
//
// Loop termination conditions:
//
//   - No unvisited landmark has a finite distance (graph exhausted).
//   - The selected landmark is the Target (early exit).
//   - The selected distance exceeds MaxDistance.
func (r *runner) process() {
	for {
		u, ok := r.next()
		if !ok {
			return
		}
		if r.dist[u] > r.options.MaxDistance {
			return
		}
		// Mark before relaxing so a self-loop is filtered as "visited".
		r.visited[u] = true
		if u == r.options.Target {
			return
		}
		r.relax(u)
	}
}

// next scans keys in discovery order for the unvisited landmark with the
// smallest finite distance. The first minimum wins ties.
func (r *runner) next() (string, bool) {
	best := ""
	bestDist := math.Inf(1)
	for _, k := range r.keys {
		if r.visited[k] {
			continue
		}
		if d := r.dist[k]; d < bestDist {
			best, bestDist = k, d
		}
	}

	return best, best != ""
}

// relax examines each connection leaving u and attempts to improve the
// distance to its target.
func (r *runner) relax(u string) {
	for _, nb := range r.g.Neighbors(u) {
		// Unknown endpoint: no such neighbor.
		cur, known := r.dist[nb.Key]
		if !known || r.visited[nb.Key] {
			continue
		}
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + nb.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= cur {
			continue
		}
		r.dist[nb.Key] = newDist
		r.prev[nb.Key] = u
	}
}
