package core_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/campusnav/core"
)

// ExampleGraph demonstrates basic creation and queries.
func ExampleGraph() {
	// 1) Create a graph and register three landmarks.
	g := core.NewGraph()
	_ = g.AddLandmark("gate", mgl64.Vec3{0, 0, 0}, "Main Gate")
	_ = g.AddLandmark("library", mgl64.Vec3{3, 0, 4}, "Library")
	_ = g.AddLandmark("cafe", mgl64.Vec3{3, 0, 8}, "Cafe")

	// 2) Walkways are two connections; a ramp is one.
	_ = g.AddBidirectional("gate", "library", 5)
	_ = g.AddConnection("library", "cafe", 4)

	// 3) Inspect.
	fmt.Println("Keys:", g.Keys())
	for _, nb := range g.Neighbors("library") {
		fmt.Printf("library → %s (%.0f)\n", nb.Key, nb.Weight)
	}
	fmt.Println("cafe has exits?", len(g.Neighbors("cafe")) > 0)

	// Output:
	// Keys: [gate library cafe]
	// library → gate (5)
	// library → cafe (4)
	// cafe has exits? false
}
