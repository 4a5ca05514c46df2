package routepath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// cubic is one Catmull-Rom segment in power form:
// p(s) = c0 + c1·s + c2·s² + c3·s³ for s in [0, 1].
type cubic struct {
	c0, c1, c2, c3 mgl64.Vec3
}

func (c cubic) at(s float64) mgl64.Vec3 {
	return c.c0.Add(c.c1.Mul(s)).Add(c.c2.Mul(s * s)).Add(c.c3.Mul(s * s * s))
}

func (c cubic) derivative(s float64) mgl64.Vec3 {
	return c.c1.Add(c.c2.Mul(2 * s)).Add(c.c3.Mul(3 * s * s))
}

// newCubic builds the Hermite form between x1 and x2 with end tangents t1, t2.
func newCubic(x1, x2, t1, t2 mgl64.Vec3) cubic {
	return cubic{
		c0: x1,
		c1: t1,
		c2: x1.Mul(-3).Add(x2.Mul(3)).Sub(t1.Mul(2)).Sub(t2),
		c3: x1.Mul(2).Sub(x2.Mul(2)).Add(t1).Add(t2),
	}
}

// segments fits one cubic per consecutive waypoint pair. The phantom
// control points before the first and after the last waypoint are
// reflections of their neighbors, so the curve starts and ends exactly on
// the route endpoints without looping.
func segments(pts []mgl64.Vec3, alpha float64) []cubic {
	n := len(pts)
	if n < 2 {
		return nil
	}
	out := make([]cubic, 0, n-1)
	for i := 0; i < n-1; i++ {
		p1, p2 := pts[i], pts[i+1]

		var p0, p3 mgl64.Vec3
		if i > 0 {
			p0 = pts[i-1]
		} else {
			p0 = p1.Mul(2).Sub(p2)
		}
		if i+2 < n {
			p3 = pts[i+2]
		} else {
			p3 = p2.Mul(2).Sub(p1)
		}

		out = append(out, nonuniform(p0, p1, p2, p3, alpha))
	}

	return out
}

// nonuniform computes the segment p1→p2 of a Catmull-Rom spline whose
// knot intervals are |p_{i+1} - p_i|^alpha.
func nonuniform(p0, p1, p2, p3 mgl64.Vec3, alpha float64) cubic {
	dt0 := knot(p0, p1, alpha)
	dt1 := knot(p1, p2, alpha)
	dt2 := knot(p2, p3, alpha)

	if dt1 < knotEpsilon {
		dt1 = 1
	}
	if dt0 < knotEpsilon {
		dt0 = dt1
	}
	if dt2 < knotEpsilon {
		dt2 = dt1
	}

	t1 := p1.Sub(p0).Mul(1 / dt0).Sub(p2.Sub(p0).Mul(1 / (dt0 + dt1))).Add(p2.Sub(p1).Mul(1 / dt1))
	t2 := p2.Sub(p1).Mul(1 / dt1).Sub(p3.Sub(p1).Mul(1 / (dt1 + dt2))).Add(p3.Sub(p2).Mul(1 / dt2))

	// rescale tangents from the knot interval to s in [0, 1]
	return newCubic(p1, p2, t1.Mul(dt1), t2.Mul(dt1))
}

func knot(a, b mgl64.Vec3, alpha float64) float64 {
	d := b.Sub(a)
	// |d|^alpha == (|d|²)^(alpha/2)
	return math.Pow(d.Dot(d), alpha/2)
}
