// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for campusnav/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
)

// Common landmark keys used across core tests.
const (
	KeyEmpty   = ""
	KeyGate    = "gate"
	KeyLibrary = "library"
	KeyCafe    = "cafe"
	KeyLab     = "lab"
	KeyGhost   = "ghost"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight2 = 2.0
	Weight5 = 5.0
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// newCampus builds gate-library-cafe with both directions present, plus a
// one-way cafe→lab connection.
func newCampus(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()

	g := core.NewGraph(opts...)
	require.NoError(t, g.AddLandmark(KeyGate, mgl64.Vec3{0, 0, 0}, "Main Gate"))
	require.NoError(t, g.AddLandmark(KeyLibrary, mgl64.Vec3{1, 0, 0}, "Library"))
	require.NoError(t, g.AddLandmark(KeyCafe, mgl64.Vec3{1, 0, 1}, "Cafe"))
	require.NoError(t, g.AddLandmark(KeyLab, mgl64.Vec3{2, 0, 1}, "Lab"))
	require.NoError(t, g.AddBidirectional(KeyGate, KeyLibrary, Weight1))
	require.NoError(t, g.AddBidirectional(KeyLibrary, KeyCafe, Weight1))
	require.NoError(t, g.AddConnection(KeyCafe, KeyLab, Weight1))

	return g
}

// neighborKeys flattens a neighbor list to its keys, preserving order.
func neighborKeys(nbs []core.Neighbor) []string {
	out := make([]string, 0, len(nbs))
	for _, nb := range nbs {
		out = append(out, nb.Key)
	}

	return out
}
