package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/prim_kruskal"
)

// walkway is an undirected campus connection used to build test maps.
type walkway struct {
	a, b string
	w    float64
}

// buildMap adds every key mentioned (in order of first mention) and each
// walkway in both directions.
func buildMap(t testing.TB, ws ...walkway) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, w := range ws {
		for _, k := range []string{w.a, w.b} {
			if !g.Contains(k) {
				require.NoError(t, g.AddLandmark(k, mgl64.Vec3{}, k))
			}
		}
		require.NoError(t, g.AddBidirectional(w.a, w.b, w.w))
	}

	return g
}

// buildTriangle: A-B (1), B-C (2), A-C (3). MST = {A-B, B-C}, weight 3.
func buildTriangle(t testing.TB) *core.Graph {
	return buildMap(t, walkway{"A", "B", 1}, walkway{"B", "C", 2}, walkway{"A", "C", 3})
}

// buildMediumGraph creates a connected map with n landmarks: a chain
// V0-V1-...-V(n-1) with weights in [1,11), then extra random walkways
// with weights in [1,101). The generator is seeded for reproducibility.
func buildMediumGraph(t testing.TB, n, extra int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddLandmark(fmt.Sprintf("V%d", i), mgl64.Vec3{}, ""))
	}
	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		weight := 1.0 + r.Float64() + float64(r.Intn(10))
		require.NoError(t, g.AddBidirectional(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), weight))
	}
	for i := 0; i < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		weight := 1.0 + r.Float64() + float64(r.Intn(100))
		require.NoError(t, g.AddBidirectional(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), weight))
		i++
	}

	return g
}

// pairs renders MST connections as sorted "u-v" names.
func pairs(mst []core.Connection) map[string]bool {
	names := make(map[string]bool, len(mst))
	for _, e := range mst {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		names[u+"-"+v] = true
	}

	return names
}

// TestValidation_NilOrEmpty verifies nil and empty graphs are rejected.
func TestValidation_NilOrEmpty(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrGraphNil)
	_, _, err = prim_kruskal.Prim(nil, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrGraphNil)

	g := core.NewGraph()
	edges, total, err := prim_kruskal.Kruskal(g)
	assert.Empty(t, edges)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, core.ErrNoLandmarks)

	_, _, err = prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, err, core.ErrNoLandmarks)
}

// TestValidation_Root verifies Prim's root checks.
func TestValidation_Root(t *testing.T) {
	g := buildTriangle(t)

	_, _, err := prim_kruskal.Prim(g, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)

	_, _, err = prim_kruskal.Prim(g, "Z")
	assert.ErrorIs(t, err, core.ErrLandmarkNotFound)
}

// TestPrim_Triangle ensures Prim picks the correct walkways and weight.
func TestPrim_Triangle(t *testing.T) {
	mst, total, err := prim_kruskal.Prim(buildTriangle(t), "A")
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Len(t, mst, 2)
	names := pairs(mst)
	assert.True(t, names["A-B"], "walkway A-B must be in MST")
	assert.True(t, names["B-C"], "walkway B-C must be in MST")
}

// TestKruskal_Triangle ensures Kruskal picks the correct walkways and weight.
func TestKruskal_Triangle(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal(buildTriangle(t))
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Len(t, mst, 2)
	names := pairs(mst)
	assert.True(t, names["A-B"])
	assert.True(t, names["B-C"])
}

// TestSingleLandmark verifies the empty tree for a one-landmark map.
func TestSingleLandmark(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddLandmark("X", mgl64.Vec3{}, "X"))

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	assert.NoError(t, errK)
	assert.Empty(t, mstK)
	assert.Zero(t, totalK)

	mstP, totalP, errP := prim_kruskal.Prim(g, "X")
	assert.NoError(t, errP)
	assert.Empty(t, mstP)
	assert.Zero(t, totalP)
}

// TestTwoIsolatedLandmarks verifies ErrDisconnected from both algorithms.
func TestTwoIsolatedLandmarks(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddLandmark("A", mgl64.Vec3{}, "A"))
	require.NoError(t, g.AddLandmark("B", mgl64.Vec3{}, "B"))

	_, _, errK := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, errK, prim_kruskal.ErrDisconnected)
	_, _, errP := prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)
}

// TestOneWayCountsAsWalkway verifies direction is ignored.
func TestOneWayCountsAsWalkway(t *testing.T) {
	g := core.NewGraph()
	for _, k := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddLandmark(k, mgl64.Vec3{}, k))
	}
	require.NoError(t, g.AddConnection("B", "A", 2))
	require.NoError(t, g.AddConnection("C", "B", 1))

	_, totalK, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, totalK)

	_, totalP, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 3.0, totalP)
}

// TestSelfLoopAndDanglingIgnored verifies unusable connections never enter the tree.
func TestSelfLoopAndDanglingIgnored(t *testing.T) {
	g := buildMap(t, walkway{"A", "B", 5})
	require.NoError(t, g.AddConnection("A", "A", 0))
	require.NoError(t, g.AddConnection("A", "ghost", 0))

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)
	assert.Equal(t, []core.Connection{{From: "A", To: "B", Weight: 5}}, mst)

	mst, total, err = prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)
	assert.Len(t, mst, 1)
}

// TestParallelConnectionsSelection verifies the lighter parallel walkway is kept.
func TestParallelConnectionsSelection(t *testing.T) {
	g := buildMap(t, walkway{"A", "B", 5}, walkway{"A", "B", 1})

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	assert.NoError(t, errK)
	assert.Equal(t, 1.0, totalK)
	assert.Len(t, mstK, 1)

	mstP, totalP, errP := prim_kruskal.Prim(g, "A")
	assert.NoError(t, errP)
	assert.Equal(t, 1.0, totalP)
	assert.Len(t, mstP, 1)
}

// TestTiesUseInsertionOrder verifies equal weights resolve deterministically.
func TestTiesUseInsertionOrder(t *testing.T) {
	g := buildMap(t, walkway{"A", "B", 1}, walkway{"B", "C", 1}, walkway{"A", "C", 1})

	mst, _, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Connection{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 1}}, mst)

	mst, _, err = prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []core.Connection{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 1}}, mst)
}

// TestCompute verifies method dispatch and the default Prim root.
func TestCompute(t *testing.T) {
	g := buildTriangle(t)

	_, total, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)

	_, total, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot("nope"))
	assert.ErrorIs(t, err, core.ErrLandmarkNotFound)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestComparison_MediumGraph compares Prim and Kruskal on a random map.
func TestComparison_MediumGraph(t *testing.T) {
	g := buildMediumGraph(t, 10, 11)

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	require.NoError(t, errK)
	assert.Len(t, mstK, g.LandmarkCount()-1)

	mstP, totalP, errP := prim_kruskal.Prim(g, "V0")
	require.NoError(t, errP)
	assert.Len(t, mstP, g.LandmarkCount()-1)

	assert.InDelta(t, totalK, totalP, 1e-10)
}
