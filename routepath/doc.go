// Package routepath turns a landmark route into a smooth curve that can be
// sampled by travelled distance.
//
// A Path is an open Catmull-Rom spline through every waypoint. The knot
// spacing follows |p_{i+1} - p_i|^alpha; the default alpha of 0.5
// (centripetal) avoids cusps and self-intersections for unevenly spaced
// landmarks. The phantom control points at both ends are reflections of
// the second and second-to-last waypoints.
//
// Arc-length parameterization:
//
//	At construction every segment is split into at least Divisions
//	buckets, long segments into proportionally more, and the arc length of
//	each bucket is integrated (Gauss-Legendre) and accumulated with the
//	spline parameter of its end. SampleAt(t) binary-searches that table
//	for distance t·Length(), then solves for the exact parameter inside
//	the bracketing bucket with safeguarded Newton steps. Equal steps of t
//	therefore cover equal distances, whatever the waypoint spacing, and a
//	lookup stays O(log(table size)).
//
// Degenerate input:
//
//   - no waypoints: New returns ErrNoWaypoints;
//   - one waypoint: a zero-length path, SampleAt always returns it;
//   - coincident waypoints contribute zero length and are passed over.
//
// The tangent reported by SampleAt is the normalized spline derivative.
// Where it vanishes, the chord of the current segment is used, then the
// first non-zero hop of the route, then FallbackTangent.
//
// Example:
//
//	keys := dijkstra.ShortestPath(g, "gate", "library")
//	path, err := routepath.FromRoute(g, keys)
//	if err != nil {
//	    return err
//	}
//	pos, dir := path.SampleAt(0.5) // halfway along the walk
package routepath
