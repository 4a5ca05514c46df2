// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// impl_chain.go - Landmarks and Walk constructors.
//
// Contract:
//   - len(marks) ≥ MinChainMarks (else ErrTooFewMarks).
//   - Landmarks adds marks in log order with keys cfg.idFn(name); a repeated
//     key overwrites position and label but keeps its first position in order.
//   - Walk emits, for i=1..n-1, the walkway key(i-1) → key(i) (and the reverse
//     unless cfg.oneWay), weight = round(cfg.weightFn(p(i-1), p(i)), cfg.precision).
//   - Consecutive marks with the same key produce no connection.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) landmarks + O(n) connections.
//   - Space: O(n) for the resolved key list.

package builder

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/campusnav/core"
)

// Landmarks returns a Constructor that adds one landmark per mark.
func Landmarks(marks []Mark) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(marks) < MinChainMarks {
			return fmt.Errorf("%s: %d marks < min=%d: %w", MethodLandmarks, len(marks), MinChainMarks, ErrTooFewMarks)
		}
		for i, m := range marks {
			key := cfg.idFn(m.Name)
			if key == "" {
				return fmt.Errorf("%s: mark #%d %q: %w", MethodLandmarks, i, m.Name, ErrEmptyName)
			}
			if err := g.AddLandmark(key, m.Position, strings.TrimSpace(m.Name)); err != nil {
				return fmt.Errorf("%s: AddLandmark(%s): %w", MethodLandmarks, key, err)
			}
		}

		return nil
	}
}

// Walk returns a Constructor that connects consecutive marks. The marks'
// landmarks must already exist (run Landmarks first).
func Walk(marks []Mark) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		keys := lo.Map(marks, func(m Mark, _ int) string { return cfg.idFn(m.Name) })
		for i := 1; i < len(keys); i++ {
			if keys[i-1] == keys[i] {
				continue
			}
			if _, err := connect(g, cfg, MethodWalk, keys[i-1], keys[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// connect looks up both landmarks and adds the rounded walkway.
func connect(g *core.Graph, cfg builderConfig, method, from, to string) (float64, error) {
	a, ok := g.Landmark(from)
	if !ok {
		return 0, fmt.Errorf("%s: %q: %w", method, from, core.ErrLandmarkNotFound)
	}
	b, ok := g.Landmark(to)
	if !ok {
		return 0, fmt.Errorf("%s: %q: %w", method, to, core.ErrLandmarkNotFound)
	}

	w := roundWeight(cfg.weightFn(a.Position, b.Position), cfg.precision)
	if cfg.oneWay {
		if err := g.AddConnection(from, to, w); err != nil {
			return 0, fmt.Errorf("%s: AddConnection(%s→%s, w=%g): %w", method, from, to, w, err)
		}
		return w, nil
	}
	if err := g.AddBidirectional(from, to, w); err != nil {
		return 0, fmt.Errorf("%s: AddBidirectional(%s↔%s, w=%g): %w", method, from, to, w, err)
	}

	return w, nil
}
