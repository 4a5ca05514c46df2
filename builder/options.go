// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "fmt"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the landmark key generator: mark name -> key.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithWeightFn overrides the walkway weight between two positions.
// The function must return a finite, non-negative value; core rejects
// anything else when the connection is added. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithPrecision sets how many decimals generated weights keep.
// Panics if d is outside [0, MaxPrecision].
func WithPrecision(d int) BuilderOption {
	if d < 0 || d > MaxPrecision {
		panic(fmt.Sprintf("builder: WithPrecision(%d) outside [0,%d]", d, MaxPrecision))
	}
	return func(c *builderConfig) {
		c.precision = d
	}
}

// WithOneWay emits only the forward connection of every consecutive pair,
// i.e. the walk direction in which the marks were recorded.
func WithOneWay() BuilderOption {
	return func(c *builderConfig) {
		c.oneWay = true
	}
}
