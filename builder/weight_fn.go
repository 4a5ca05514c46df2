// Package builder provides helper functions and types
// for deriving walkway weights from landmark positions.
package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WeightFn returns the cost of walking from a to b.
// It must be deterministic and non-negative.
type WeightFn func(a, b mgl64.Vec3) float64

// EuclideanWeightFn is the straight-line 3D distance |b − a|.
// Complexity: O(1). Never panics.
func EuclideanWeightFn(a, b mgl64.Vec3) float64 {
	return b.Sub(a).Len()
}

// GroundWeightFn ignores the vertical (Y) axis, for maps where height
// differences come from terrain rather than stairs.
func GroundWeightFn(a, b mgl64.Vec3) float64 {
	d := b.Sub(a)
	return math.Hypot(d.X(), d.Z())
}

// ClimbWeightFn returns a WeightFn that adds penalty·|Δy| to the
// Euclidean distance, making stairs and ramps more expensive.
// Panics if penalty is negative or NaN.
func ClimbWeightFn(penalty float64) WeightFn {
	if !(penalty >= 0) {
		panic("builder: ClimbWeightFn(penalty<0)")
	}
	return func(a, b mgl64.Vec3) float64 {
		return EuclideanWeightFn(a, b) + penalty*math.Abs(b.Y()-a.Y())
	}
}

// roundWeight rounds w half away from zero to the given number of decimals.
func roundWeight(w float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(w*p) / p
}
