package mapsvg

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/routepath"
)

// frame maps projected scene coordinates to SVG pixels, y flipped so the
// plane's second axis points up.
type frame struct {
	min           orb.Point
	scale         float64
	width, height int
}

func newFrame(pts orb.MultiPoint, o Options) frame {
	b := pts.Bound().Pad(o.Padding)
	return frame{
		min:    b.Min,
		scale:  o.Scale,
		width:  int(math.Ceil((b.Max.X() - b.Min.X()) * o.Scale)),
		height: int(math.Ceil((b.Max.Y() - b.Min.Y()) * o.Scale)),
	}
}

func (f frame) xy(p orb.Point) (int, int) {
	x := (p.X() - f.min.X()) * f.scale
	y := float64(f.height) - (p.Y()-f.min.Y())*f.scale
	return int(math.Round(x)), int(math.Round(y))
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Render draws g as a top-down SVG map: connections, the route when route
// is non-nil, then landmarks with their labels on top. Connections to
// unknown landmarks are not drawn.
//
// The route is drawn from the curve itself, sampled evenly by arc length
// and thinned with Douglas-Peucker, so it shows the path the walker takes.
func Render(w io.Writer, g *core.Graph, route *routepath.Path, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	landmarks := g.Landmarks()
	if len(landmarks) == 0 {
		return core.ErrNoLandmarks
	}
	at := make(map[string]orb.Point, len(landmarks))
	pts := make(orb.MultiPoint, 0, len(landmarks))
	for _, lm := range landmarks {
		p := o.Plane.project(lm.Position)
		at[lm.Key] = p
		pts = append(pts, p)
	}
	f := newFrame(pts, o)

	width, height := o.Width, o.Height
	if width == 0 || height == 0 {
		width, height = f.width, f.height
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startview(width, height, 0, 0, f.width, f.height)
	canvas.Rect(0, 0, f.width, f.height, "fill:"+o.Style.Background)

	canvas.Gid("connections")
	for _, c := range g.Connections() {
		a, okA := at[c.From]
		b, okB := at[c.To]
		if !okA || !okB {
			continue
		}
		x1, y1 := f.xy(a)
		x2, y2 := f.xy(b)
		canvas.Line(x1, y1, x2, y2,
			fmt.Sprintf("stroke:%s;stroke-width:%d", o.Style.Connection, o.Style.ConnectionWidth))
	}
	canvas.Gend()

	if route != nil && !route.Degenerate() {
		xs, ys := routeLine(route, o, f)
		canvas.Polyline(xs, ys,
			fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d;stroke-linejoin:round", o.Style.Route, o.Style.RouteWidth),
			`id="route"`)
	}

	canvas.Gid("landmarks")
	for _, lm := range landmarks {
		x, y := f.xy(at[lm.Key])
		canvas.Circle(x, y, o.Style.LandmarkRadius, "fill:"+o.Style.Landmark)
		canvas.Text(x+8, y-8, lm.Label,
			fmt.Sprintf("font-size:%dpx;fill:%s", o.Style.FontSize, o.Style.Text))
	}
	canvas.Gend()
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("mapsvg: %w", ew.err)
	}

	return nil
}

// RouteLine returns the simplified, projected route polyline in scene
// units, as Render draws it.
func RouteLine(route *routepath.Path, opts ...Option) orb.LineString {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if route == nil || route.Degenerate() {
		return nil
	}

	return simplifiedRoute(route, o)
}

func simplifiedRoute(route *routepath.Path, o Options) orb.LineString {
	samples := route.Points(o.Samples)
	ls := make(orb.LineString, len(samples))
	for i, v := range samples {
		ls[i] = o.Plane.project(v)
	}

	return simplify.DouglasPeucker(o.Tolerance).LineString(ls)
}

func routeLine(route *routepath.Path, o Options, f frame) ([]int, []int) {
	ls := simplifiedRoute(route, o)
	xs, ys := make([]int, len(ls)), make([]int, len(ls))
	for i, p := range ls {
		xs[i], ys[i] = f.xy(p)
	}

	return xs, ys
}
