package mapio

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/campusnav/core"
)

// keyedNode is a node with its key, kept in document order.
type keyedNode struct {
	key string
	node
}

// edge is a decoded [from, to, weight] triple.
type edge struct {
	from, to string
	weight   float64
}

// assemble builds the graph: nodes first in document order, then edges in
// document order. Edges may appear before nodes in the document.
func assemble(nodes []keyedNode, edges []edge, o Options) (*core.Graph, error) {
	if len(nodes) == 0 {
		return nil, core.ErrNoLandmarks
	}

	g := core.NewGraph(append(o.graphOptions(), core.WithCapacity(len(nodes)))...)
	for _, n := range nodes {
		if err := g.AddLandmark(n.key, mgl64.Vec3{n.X, n.Y, n.Z}, n.Label); err != nil {
			return nil, fmt.Errorf("mapio: node %q: %w", n.key, err)
		}
	}
	for i, e := range edges {
		if err := g.AddConnection(e.from, e.to, e.weight); err != nil {
			return nil, fmt.Errorf("mapio: edge #%d: %w", i, err)
		}
		if !g.Contains(e.from) || !g.Contains(e.to) {
			o.Logger.Warn("dangling edge", "index", i, "from", e.from, "to", e.to)
		}
	}
	o.Logger.Debug("map decoded", "landmarks", g.LandmarkCount(), "connections", g.ConnectionCount())

	return g, nil
}
