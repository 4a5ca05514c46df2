// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Chain is the one-call form used by the authoring CLI.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same marks and options ⇒ identical landmark order, keys and weights.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/campusnav/core"
)

// Mark is one recorded position in a marker log: the name typed by the
// author and where the camera stood when it was recorded.
type Mark struct {
	Name     string
	Position mgl64.Vec3
}

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Chain turns a marker log into a campus map: one landmark per distinct
// key (later marks with the same key overwrite earlier ones), and a
// walkway between every pair of consecutive marks weighted by distance.
//
// Walkways go both ways unless WithOneWay is given.
// Returns ErrTooFewMarks for an empty log and ErrEmptyName for a blank name.
func Chain(marks []Mark, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(nil, opts, Landmarks(marks), Walk(marks))
}

// SpanningTree turns marks recorded in no particular order into a campus
// map: the same landmarks as Chain, joined by the shortest set of
// walkways that connects all of them.
func SpanningTree(marks []Mark, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(nil, opts, Landmarks(marks), Spanning(marks))
}

// ConnectEuclidean adds a walkway between two existing landmarks of g,
// weighted by the configured WeightFn and rounded to the configured
// precision. Both directions are added unless WithOneWay is given.
// It returns the weight used.
func ConnectEuclidean(g *core.Graph, from, to string, opts ...BuilderOption) (float64, error) {
	cfg := newBuilderConfig(opts...)

	return connect(g, cfg, MethodConnect, from, to)
}
