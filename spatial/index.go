package spatial

import (
	"errors"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/campusnav/core"
)

// ErrNilGraph indicates New was called without a graph.
var ErrNilGraph = errors.New("spatial: graph is nil")

const (
	// R-tree fan-out.
	minChildren = 25
	maxChildren = 50

	// pointTolerance is the half-side of the box stored for a landmark.
	pointTolerance = 1e-9

	// tieEpsilon treats distances this close as equal.
	tieEpsilon = 1e-9
)

// Hit is a landmark returned by a query together with its distance to
// the query point.
type Hit struct {
	Landmark core.Landmark
	Distance float64
}

// entry stores a landmark in the tree. order is its position in
// core.Graph.Keys and breaks distance ties.
type entry struct {
	landmark core.Landmark
	order    int
	box      rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.box }

// Index answers nearest-landmark queries over a snapshot of a graph.
// It does not observe later changes to the graph.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// New indexes every landmark of g.
func New(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	marks := g.Landmarks()
	if len(marks) == 0 {
		return nil, core.ErrNoLandmarks
	}

	tree := rtreego.NewTree(3, minChildren, maxChildren)
	for i, lm := range marks {
		tree.Insert(&entry{
			landmark: lm,
			order:    i,
			box:      toPoint(lm.Position).ToRect(pointTolerance),
		})
	}

	return &Index{tree: tree, size: len(marks)}, nil
}

// Len returns the number of indexed landmarks.
func (ix *Index) Len() int { return ix.size }

// Nearest returns the landmark closest to p. Among equidistant landmarks
// the one discovered first wins.
func (ix *Index) Nearest(p mgl64.Vec3) (Hit, bool) {
	hits := ix.NearestK(p, 1)
	if len(hits) == 0 {
		return Hit{}, false
	}

	return hits[0], true
}

// NearestK returns up to k landmarks ordered by distance to p, then by
// discovery order.
func (ix *Index) NearestK(p mgl64.Vec3, k int) []Hit {
	if k <= 0 || ix.size == 0 {
		return nil
	}
	found := ix.tree.NearestNeighbors(k, toPoint(p))

	// The k-th distance bounds the answer; re-query that ball so ties at
	// the boundary resolve by discovery order, not by tree layout.
	radius := 0.0
	for _, s := range found {
		if s == nil {
			continue
		}
		radius = math.Max(radius, s.(*entry).landmark.Position.Sub(p).Len())
	}
	hits := ix.Within(p, radius)
	if len(hits) > k {
		hits = hits[:k]
	}

	return hits
}

// Within returns every landmark at distance <= r from p, ordered by
// distance, then by discovery order. A negative or NaN r yields nil.
func (ix *Index) Within(p mgl64.Vec3, r float64) []Hit {
	if math.IsNaN(r) || r < 0 {
		return nil
	}
	side := 2 * (r + tieEpsilon)
	box, err := rtreego.NewRect(
		toPoint(p.Sub(mgl64.Vec3{r + tieEpsilon, r + tieEpsilon, r + tieEpsilon})),
		[]float64{side, side, side},
	)
	if err != nil {
		return nil
	}

	type ranked struct {
		Hit
		order int
	}
	var out []ranked
	for _, s := range ix.tree.SearchIntersect(box) {
		e := s.(*entry)
		d := e.landmark.Position.Sub(p).Len()
		if d > r+tieEpsilon {
			continue
		}
		out = append(out, ranked{Hit{Landmark: e.landmark, Distance: d}, e.order})
	}
	sort.Slice(out, func(i, j int) bool {
		if math.Abs(out[i].Distance-out[j].Distance) > tieEpsilon {
			return out[i].Distance < out[j].Distance
		}
		return out[i].order < out[j].order
	})

	hits := make([]Hit, len(out))
	for i := range out {
		hits[i] = out[i].Hit
	}

	return hits
}

func toPoint(v mgl64.Vec3) rtreego.Point {
	return rtreego.Point{v[0], v[1], v[2]}
}
