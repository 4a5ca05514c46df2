package mapsvg

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates Render was given a nil graph.
	ErrNilGraph = errors.New("mapsvg: graph is nil")
)

// Plane selects the two world axes drawn as the map's x and y.
type Plane int

const (
	// PlaneXZ is the top-down view of a y-up scene: world X right, world Z up.
	PlaneXZ Plane = iota
	// PlaneXY draws world X right and world Y up, ignoring Z.
	PlaneXY
)

// project drops the axis the plane ignores.
func (p Plane) project(v mgl64.Vec3) orb.Point {
	if p == PlaneXY {
		return orb.Point{v.X(), v.Y()}
	}

	return orb.Point{v.X(), v.Z()}
}

const (
	// DefaultScale is the number of SVG units per scene unit.
	DefaultScale = 40.0
	// DefaultPadding is the margin around the landmarks, in scene units.
	DefaultPadding = 2.0
	// DefaultSamples is the number of curve samples taken for the route.
	DefaultSamples = 96
	// DefaultTolerance is the Douglas-Peucker threshold, in scene units.
	DefaultTolerance = 0.02
)

// Style holds the colours and stroke widths of the drawing.
type Style struct {
	Background string
	Connection string
	Route      string
	Landmark   string
	Text       string
	// ConnectionWidth, RouteWidth and LandmarkRadius are in SVG units.
	ConnectionWidth int
	RouteWidth      int
	LandmarkRadius  int
	FontSize        int
}

// DefaultStyle is the dark slate palette.
func DefaultStyle() Style {
	return Style{
		Background:      "#020617",
		Connection:      "#475569",
		Route:           "#22c55e",
		Landmark:        "#38bdf8",
		Text:            "#e5e7eb",
		ConnectionWidth: 4,
		RouteWidth:      6,
		LandmarkRadius:  6,
		FontSize:        12,
	}
}

// Options configures Render.
type Options struct {
	Plane     Plane
	Scale     float64
	Padding   float64
	Samples   int
	Tolerance float64
	// Width and Height are the displayed size; zero means the viewBox size.
	Width, Height int
	Style         Style
}

// Option represents a functional option for Render.
type Option func(*Options)

// WithPlane selects the projection plane.
func WithPlane(p Plane) Option {
	return func(o *Options) { o.Plane = p }
}

// WithScale sets SVG units per scene unit. Panics if s is not positive and finite.
func WithScale(s float64) Option {
	if !(s > 0) || math.IsInf(s, 1) {
		panic("mapsvg: scale must be positive and finite")
	}
	return func(o *Options) { o.Scale = s }
}

// WithPadding sets the margin in scene units. Panics if p is negative or not finite.
func WithPadding(p float64) Option {
	if !(p >= 0) || math.IsInf(p, 1) {
		panic("mapsvg: padding must be non-negative and finite")
	}
	return func(o *Options) { o.Padding = p }
}

// WithSimplify sets how many samples are taken along the route curve and
// the Douglas-Peucker tolerance applied to them. Panics if samples < 2 or
// tolerance is negative.
func WithSimplify(samples int, tolerance float64) Option {
	if samples < 2 || !(tolerance >= 0) {
		panic("mapsvg: need samples >= 2 and tolerance >= 0")
	}
	return func(o *Options) {
		o.Samples = samples
		o.Tolerance = tolerance
	}
}

// WithSize sets the displayed width and height. Panics on negative sizes.
func WithSize(width, height int) Option {
	if width < 0 || height < 0 {
		panic("mapsvg: negative size")
	}
	return func(o *Options) { o.Width, o.Height = width, height }
}

// WithStyle replaces the palette.
func WithStyle(s Style) Option {
	return func(o *Options) { o.Style = s }
}

// DefaultOptions returns a PlaneXZ drawing at scale 40 with padding 2.
func DefaultOptions() Options {
	return Options{
		Plane:     PlaneXZ,
		Scale:     DefaultScale,
		Padding:   DefaultPadding,
		Samples:   DefaultSamples,
		Tolerance: DefaultTolerance,
		Style:     DefaultStyle(),
	}
}
