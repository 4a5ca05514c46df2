// Package builder turns marker logs into campus maps.
//
// An author walks the 3D model and records marks: a name and the camera
// position at that moment. builder converts that log into a core.Graph the
// navigator can route over, using the same functional-options composition
// for every constructor.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        new graph + resolved options + constructors in order.
//     – Chain:             Landmarks + Walk over one marker log.
//     – SpanningTree:      Landmarks + Spanning over unordered marks.
//     – ConnectEuclidean:  add one distance-weighted walkway by hand.
//   - Constructors:
//     – Landmarks(marks):  one landmark per distinct key, in log order.
//     – Walk(marks):       a walkway between every pair of consecutive marks.
//     – Spanning(marks):   the shortest walkway set joining all marks.
//   - Key schemes (IDFn implementations):
//     – SlugIDFn:          "Main Gate" → "main_gate" (default).
//     – ExactIDFn:         trimmed name, unchanged.
//   - Weight functions (WeightFn implementations):
//     – EuclideanWeightFn: straight-line 3D distance (default).
//     – GroundWeightFn:    distance on the XZ plane.
//     – ClimbWeightFn:     Euclidean plus a penalty per unit of height.
//   - Options:
//     – WithIDScheme, WithSlugIDs, WithExactIDs.
//     – WithWeightFn, WithPrecision (default 2 decimals).
//     – WithOneWay:        forward connections only.
//
// Guarantees:
//
//   - Deterministic: the same log and options always yield the same
//     landmark order, keys and weights, hence the same routes.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (ErrTooFewMarks, ErrEmptyName, core sentinels).
//
// Example:
//
//	g, err := builder.Chain([]builder.Mark{
//	    {Name: "Main Gate", Position: mgl64.Vec3{0, 0, 0}},
//	    {Name: "Library", Position: mgl64.Vec3{12, 0, 5}},
//	})
package builder
