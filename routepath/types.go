// Package routepath defines the sentinel errors and functional options of
// the route curve builder.
//
// Options:
//
//	– Alpha:     Catmull-Rom knot exponent; 0 uniform, 0.5 centripetal, 1 chordal.
//	– Divisions: minimum arc-length table samples per spline segment.
//
// Errors (sentinel):
//
//	– ErrNoWaypoints  if a path is requested from an empty point sequence.
//	– ErrNilGraph     if FromRoute is given a nil graph.
//	– ErrBadAlpha     if Alpha is outside [0, 1].
//	– ErrBadDivisions if Divisions < 1.
package routepath

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors for path construction.
var (
	// ErrNoWaypoints indicates an empty waypoint sequence; there is nothing to sample.
	ErrNoWaypoints = errors.New("routepath: no waypoints")

	// ErrNilGraph indicates FromRoute was called without a graph.
	ErrNilGraph = errors.New("routepath: graph is nil")

	// ErrBadAlpha indicates a knot exponent outside [0, 1].
	ErrBadAlpha = errors.New("routepath: alpha must be within [0, 1]")

	// ErrBadDivisions indicates a non-positive number of samples per segment.
	ErrBadDivisions = errors.New("routepath: divisions must be >= 1")
)

const (
	// DefaultAlpha selects the centripetal parameterization.
	DefaultAlpha = 0.5

	// DefaultDivisions is the arc-length table density per segment.
	DefaultDivisions = 32

	// knotEpsilon collapses near-coincident knots onto a unit interval.
	knotEpsilon = 1e-4

	// tangentEpsilon is the smallest derivative length still normalized.
	tangentEpsilon = 1e-12

	// maxDivisions caps the buckets given to one long segment.
	maxDivisions = 4096

	// newtonSteps bounds the refinement in SampleAt; arcTolerance is the
	// distance error, relative to the path length, at which it stops.
	newtonSteps  = 12
	arcTolerance = 1e-10
)

// Five-point Gauss-Legendre quadrature on [-1, 1].
var (
	gaussNodes   = [5]float64{-0.9061798459386640, -0.5384693101056831, 0, 0.5384693101056831, 0.9061798459386640}
	gaussWeights = [5]float64{0.2369268850561891, 0.4786286704993665, 0.5688888888888889, 0.4786286704993665, 0.2369268850561891}
)

// FallbackTangent is reported when a path has no direction at all
// (a single waypoint, or every waypoint at the same position).
var FallbackTangent = mgl64.Vec3{0, 0, 1}

// Options configures path construction.
type Options struct {
	Alpha     float64 // Knot exponent in [0, 1]
	Divisions int     // Arc-length samples per segment, >= 1
}

// Option represents a functional option for New and FromRoute.
type Option func(*Options)

// WithAlpha sets the Catmull-Rom knot exponent.
// Panics if alpha is NaN or outside [0, 1].
func WithAlpha(alpha float64) Option {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		panic(ErrBadAlpha.Error())
	}
	return func(o *Options) {
		o.Alpha = alpha
	}
}

// WithDivisions sets how many arc-length samples are taken per segment.
// Higher values make SampleAt closer to true constant speed at the cost of
// memory. Panics if n < 1.
func WithDivisions(n int) Option {
	if n < 1 {
		panic(ErrBadDivisions.Error())
	}
	return func(o *Options) {
		o.Divisions = n
	}
}

// DefaultOptions returns the centripetal spline with DefaultDivisions samples.
func DefaultOptions() Options {
	return Options{
		Alpha:     DefaultAlpha,
		Divisions: DefaultDivisions,
	}
}
