package mapsvg_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/mapsvg"
	"github.com/katalvlaran/campusnav/routepath"
)

func campus(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddLandmark("a", mgl64.Vec3{0, 0, 0}, "Gate"))
	require.NoError(t, g.AddLandmark("b", mgl64.Vec3{10, 0, 0}, "R&D Lab"))
	require.NoError(t, g.AddLandmark("c", mgl64.Vec3{20, 0, 0}, "Library"))
	require.NoError(t, g.AddLandmark("d", mgl64.Vec3{0, 5, 50}, "Tower"))
	require.NoError(t, g.AddBidirectional("a", "b", 10))
	require.NoError(t, g.AddBidirectional("b", "c", 10))
	require.NoError(t, g.AddConnection("c", "ghost", 1))

	return g
}

func TestRender_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, mapsvg.Render(&buf, campus(t), nil))
	out := buf.String()

	// X spans [0, 20] and Z spans [0, 50], padded by 2 and scaled by 40.
	assert.Contains(t, out, `viewBox="0 0 960 2160"`)
	assert.Contains(t, out, `x1="80" y1="2080" x2="480" y2="2080"`)
	assert.Equal(t, 4, strings.Count(out, "<line"), "dangling connection must be skipped")
	assert.Equal(t, 4, strings.Count(out, "<circle"))
	assert.Contains(t, out, "R&amp;D Lab")
	assert.NotContains(t, out, `id="route"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestRender_PlaneXY(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, mapsvg.Render(&buf, campus(t), nil,
		mapsvg.WithPlane(mapsvg.PlaneXY), mapsvg.WithScale(10), mapsvg.WithPadding(0), mapsvg.WithSize(700, 450)))
	out := buf.String()

	// X spans [0, 20] and Y spans [0, 5].
	assert.Contains(t, out, `width="700" height="450"`)
	assert.Contains(t, out, `viewBox="0 0 200 50"`)
}

func TestRender_Route(t *testing.T) {
	g := campus(t)
	path, err := routepath.FromRoute(g, []string{"a", "b", "c"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mapsvg.Render(&buf, g, path))
	assert.Contains(t, buf.String(), `<polyline points="80,2080 880,2080"`)
	assert.Contains(t, buf.String(), `id="route"`)
}

func TestRouteLine_Simplifies(t *testing.T) {
	straight, err := routepath.New([]mgl64.Vec3{{0, 0, 0}, {5, 0, 0}, {10, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, orb.LineString{{0, 0}, {10, 0}}, mapsvg.RouteLine(straight))

	bent, err := routepath.New([]mgl64.Vec3{{0, 0, 0}, {10, 0, 0}, {10, 0, 10}})
	require.NoError(t, err)
	full := mapsvg.RouteLine(bent, mapsvg.WithSimplify(64, 0))
	thin := mapsvg.RouteLine(bent, mapsvg.WithSimplify(64, 0.5))
	assert.Greater(t, len(full), len(thin))
	assert.GreaterOrEqual(t, len(thin), 3)
	assert.Equal(t, orb.Point{0, 0}, thin[0])
	assert.Equal(t, orb.Point{10, 10}, thin[len(thin)-1])

	assert.Nil(t, mapsvg.RouteLine(nil))
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, mapsvg.Render(&buf, nil, nil), mapsvg.ErrNilGraph)
	assert.ErrorIs(t, mapsvg.Render(&buf, core.NewGraph(), nil), core.ErrNoLandmarks)
	assert.ErrorIs(t, mapsvg.Render(failingWriter{}, campus(t), nil), errDiskFull)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { mapsvg.WithScale(0) })
	assert.Panics(t, func() { mapsvg.WithPadding(-1) })
	assert.Panics(t, func() { mapsvg.WithSimplify(1, 0) })
	assert.Panics(t, func() { mapsvg.WithSimplify(10, -0.1) })
	assert.Panics(t, func() { mapsvg.WithSize(-1, 10) })
}
