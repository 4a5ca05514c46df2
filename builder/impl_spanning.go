// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// impl_spanning.go - Spanning constructor.
//
// Contract:
//   - The marks' landmarks must already exist (run Landmarks first).
//   - Candidate walkways join every pair of distinct keys, weight =
//     round(cfg.weightFn(p(i), p(j)), cfg.precision), in log order (i < j).
//   - Of those, the minimum spanning set (prim_kruskal.Kruskal) is added
//     through connect, so WithOneWay and precision apply as for Walk.
//   - Equal weights keep the earlier pair in log order.
//
// Complexity:
//   - Time: O(k² log k) for k distinct keys.
//   - Space: O(k²) candidate connections.

package builder

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/prim_kruskal"
)

// Spanning returns a Constructor that joins the marks' landmarks with the
// shortest set of walkways connecting all of them. Use it when marks were
// recorded out of walking order.
func Spanning(marks []Mark) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		keys := lo.Uniq(lo.Map(marks, func(m Mark, _ int) string { return cfg.idFn(m.Name) }))
		if len(keys) < 2 {
			return nil
		}

		candidates := core.NewGraph(core.WithCapacity(len(keys)))
		for _, k := range keys {
			lm, ok := g.Landmark(k)
			if !ok {
				return fmt.Errorf("%s: %q: %w", MethodSpanning, k, core.ErrLandmarkNotFound)
			}
			if err := candidates.AddLandmark(k, lm.Position, lm.Label); err != nil {
				return fmt.Errorf("%s: %w", MethodSpanning, err)
			}
		}
		positions, err := candidates.Positions(keys)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodSpanning, err)
		}
		for i := range keys {
			for j := i + 1; j < len(keys); j++ {
				w := roundWeight(cfg.weightFn(positions[i], positions[j]), cfg.precision)
				if err := candidates.AddConnection(keys[i], keys[j], w); err != nil {
					return fmt.Errorf("%s: AddConnection(%s→%s, w=%g): %w", MethodSpanning, keys[i], keys[j], w, err)
				}
			}
		}

		tree, _, err := prim_kruskal.Kruskal(candidates)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodSpanning, err)
		}
		for _, c := range tree {
			if _, err := connect(g, cfg, MethodSpanning, c.From, c.To); err != nil {
				return err
			}
		}

		return nil
	}
}
