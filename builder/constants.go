// Package builder defines shared constants used by the map builders, ensuring
// consistent defaults and error context across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodLandmarks is the canonical name for the Landmarks constructor.
	MethodLandmarks = "Landmarks"
	// MethodWalk is the canonical name for the Walk constructor.
	MethodWalk = "Walk"
	// MethodConnect is the canonical name for ConnectEuclidean.
	MethodConnect = "ConnectEuclidean"
	// MethodSpanning is the canonical name for the Spanning constructor.
	MethodSpanning = "Spanning"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultPrecision is the number of decimals kept on generated weights.
const DefaultPrecision = 2

// MaxPrecision bounds WithPrecision.
const MaxPrecision = 12

// MinChainMarks is the smallest marker log Chain accepts.
// A single mark yields a one-landmark map without connections.
const MinChainMarks = 1
