// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn      = SlugIDFn            ("Main Gate" → "main_gate")
//   • weightFn  = EuclideanWeightFn   (straight-line 3D distance)
//   • precision = DefaultPrecision    (2 decimals)
//   • oneWay    = false               (every walkway in both directions)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Landmark key strategy: mark name -> key (deterministic).
	idFn IDFn
	// Weight of a walkway between two positions, before rounding.
	weightFn WeightFn
	// Decimals kept by roundWeight.
	precision int
	// Emit only the forward connection of each consecutive pair.
	oneWay bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      SlugIDFn,
		weightFn:  EuclideanWeightFn,
		precision: DefaultPrecision,
		oneWay:    false,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
