package routepath

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/campusnav/core"
)

// Path is an arc-length parameterized curve through an ordered waypoint
// sequence. It is immutable once built and safe for concurrent sampling.
type Path struct {
	waypoints []mgl64.Vec3
	knots     []mgl64.Vec3 // waypoints without consecutive duplicates
	segs      []cubic

	// params[i] is the global spline parameter (segment index + local s)
	// of table sample i; lengths[i] is the arc length up to that sample.
	params  []float64
	lengths []float64

	length   float64
	fallback mgl64.Vec3
}

// New fits a curve through points.
//
// Zero points return ErrNoWaypoints. A single point, or several points at
// the same position, yields a zero-length path whose SampleAt always
// returns the first waypoint.
func New(points []mgl64.Vec3, opts ...Option) (*Path, error) {
	if len(points) == 0 {
		return nil, ErrNoWaypoints
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Path{
		waypoints: append([]mgl64.Vec3(nil), points...),
		fallback:  firstDirection(points),
	}
	p.knots = dedupe(p.waypoints)
	p.segs = segments(p.knots, cfg.Alpha)
	p.buildTable(cfg.Divisions)

	return p, nil
}

// FromRoute looks up the coordinates of keys in g and fits a curve through
// them. An unknown key yields an error wrapping core.ErrLandmarkNotFound.
func FromRoute(g *core.Graph, keys []string, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(keys) == 0 {
		return nil, ErrNoWaypoints
	}
	pts, err := g.Positions(keys)
	if err != nil {
		return nil, fmt.Errorf("routepath: %w", err)
	}

	return New(pts, opts...)
}

// buildTable splits every segment into buckets and records the arc length
// up to each bucket end. A segment gets at least div buckets, more when
// its chord is longer than the average, so every bucket spans a similar
// distance however uneven the waypoint spacing is.
func (p *Path) buildTable(div int) {
	p.params = append(p.params[:0], 0)
	p.lengths = append(p.lengths[:0], 0)
	if len(p.segs) == 0 {
		return
	}

	chords := make([]float64, len(p.segs))
	sum := 0.0
	for i := range p.segs {
		chords[i] = p.knots[i+1].Sub(p.knots[i]).Len()
		sum += chords[i]
	}
	budget := float64(div * len(p.segs))

	total := 0.0
	for seg := range p.segs {
		n := div
		if sum > 0 {
			n = max(div, min(maxDivisions, int(math.Ceil(chords[seg]/sum*budget))))
		}
		for j := 1; j <= n; j++ {
			s0, s1 := float64(j-1)/float64(n), float64(j)/float64(n)
			total += p.arcLength(seg, s0, s1)
			p.params = append(p.params, float64(seg)+s1)
			p.lengths = append(p.lengths, total)
		}
	}
	p.length = total
}

// arcLength integrates the speed of segment seg over [s0, s1] with
// five-point Gauss-Legendre quadrature.
func (p *Path) arcLength(seg int, s0, s1 float64) float64 {
	half, mid := (s1-s0)/2, (s1+s0)/2
	sum := 0.0
	for k, x := range gaussNodes {
		sum += gaussWeights[k] * p.segs[seg].derivative(mid+half*x).Len()
	}

	return sum * half
}

func (p *Path) locate(u float64) (int, float64) {
	last := len(p.segs) - 1
	seg := int(math.Floor(u))
	if seg > last {
		seg = last
	}
	if seg < 0 {
		seg = 0
	}

	return seg, u - float64(seg)
}

// paramAt inverts the arc-length table: it returns the spline parameter
// at which distance d (0 <= d <= Length) along the curve is reached.
// The bucket holding d gives a linear first guess that Newton steps on the
// integrated speed refine, falling back to bisection inside the bucket.
func (p *Path) paramAt(d float64) float64 {
	i := sort.SearchFloat64s(p.lengths, d)
	if i == 0 {
		return 0
	}
	if i >= len(p.lengths) {
		return p.params[len(p.params)-1]
	}
	l0, l1 := p.lengths[i-1], p.lengths[i]
	u0, u1 := p.params[i-1], p.params[i]
	if l1 == l0 {
		return u0
	}

	seg := int(math.Floor(u0))
	start := u0 - float64(seg)
	lo, hi := start, u1-float64(seg)
	s := lo + (d-l0)/(l1-l0)*(hi-lo)
	tol := arcTolerance * math.Max(1, p.length)
	for k := 0; k < newtonSteps; k++ {
		f := l0 + p.arcLength(seg, start, s) - d
		if math.Abs(f) <= tol {
			break
		}
		if f > 0 {
			hi = s
		} else {
			lo = s
		}
		next := (lo + hi) / 2
		if speed := p.segs[seg].derivative(s).Len(); speed > tangentEpsilon {
			if n := s - f/speed; n > lo && n < hi {
				next = n
			}
		}
		s = next
	}

	return float64(seg) + s
}

// SampleAt returns the position and unit tangent at normalized progress t.
// t is clamped to [0, 1]; NaN is treated as 0. Equal steps in t cover equal
// distances along the curve. SampleAt(0) and SampleAt(1) are exactly the
// first and last waypoints.
func (p *Path) SampleAt(t float64) (mgl64.Vec3, mgl64.Vec3) {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if len(p.segs) == 0 || p.length == 0 {
		return p.waypoints[0], p.fallback
	}

	u := p.paramAt(t * p.length)
	seg, s := p.locate(u)

	var pos mgl64.Vec3
	switch t {
	case 0:
		pos = p.waypoints[0]
	case 1:
		pos = p.waypoints[len(p.waypoints)-1]
	default:
		pos = p.segs[seg].at(s)
	}

	return pos, p.tangent(seg, s)
}

// tangent normalizes the spline derivative, falling back to the segment
// chord and then to the path-wide direction when the derivative vanishes.
func (p *Path) tangent(seg int, s float64) mgl64.Vec3 {
	if d := p.segs[seg].derivative(s); d.Len() > tangentEpsilon {
		return d.Normalize()
	}
	if c := p.knots[seg+1].Sub(p.knots[seg]); c.Len() > tangentEpsilon {
		return c.Normalize()
	}

	return p.fallback
}

// Length returns the cached total arc length.
func (p *Path) Length() float64 { return p.length }

// Waypoints returns a copy of the points the curve passes through.
func (p *Path) Waypoints() []mgl64.Vec3 {
	return append([]mgl64.Vec3(nil), p.waypoints...)
}

// WaypointCount returns the number of waypoints.
func (p *Path) WaypointCount() int { return len(p.waypoints) }

// Degenerate reports whether the path has fewer than two waypoints.
func (p *Path) Degenerate() bool { return len(p.waypoints) < 2 }

// Points returns n positions evenly spaced by arc length, first and last
// waypoint included. n below 2 is raised to 2.
func (p *Path) Points(n int) []mgl64.Vec3 {
	if n < 2 {
		n = 2
	}
	out := make([]mgl64.Vec3, n)
	for i := range out {
		out[i], _ = p.SampleAt(float64(i) / float64(n-1))
	}

	return out
}

// firstDirection returns the direction of the first non-zero hop between
// consecutive points, or FallbackTangent when there is none.
func firstDirection(pts []mgl64.Vec3) mgl64.Vec3 {
	for i := 1; i < len(pts); i++ {
		if d := pts[i].Sub(pts[i-1]); d.Len() > tangentEpsilon {
			return d.Normalize()
		}
	}

	return FallbackTangent
}

// dedupe drops waypoints that coincide with their predecessor. A repeated
// landmark adds no distance and would otherwise bend the spline backwards.
func dedupe(pts []mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, len(pts))
	for i, q := range pts {
		if i > 0 && q.Sub(out[len(out)-1]).Len() <= tangentEpsilon {
			continue
		}
		out = append(out, q)
	}

	return out
}
