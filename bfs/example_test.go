package bfs_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
)

// ExampleBFS_campusWalkways shows BFS layering over campus walkways: the
// quad and the parking lot are one hop from the gate, the lab three.
func ExampleBFS_campusWalkways() {
	g := core.NewGraph()
	for _, k := range []string{"gate", "quad", "parking", "library", "cafe", "lab"} {
		_ = g.AddLandmark(k, mgl64.Vec3{}, k)
	}
	for _, w := range [][2]string{
		{"gate", "quad"}, {"gate", "parking"}, {"quad", "library"}, {"quad", "cafe"}, {"library", "lab"},
	} {
		_ = g.AddBidirectional(w[0], w[1], 1)
	}

	res, err := bfs.BFS(g, "gate")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Visit order follows hop count, then walkway insertion order.
	for _, key := range res.Order {
		fmt.Printf("%s@%d ", key, res.Depth[key])
	}
	fmt.Println()
	// Output:
	// gate@0 quad@1 parking@1 library@2 cafe@2 lab@3
}

// ExampleReachable lists the destinations a route from "gate" can reach.
// The ramp to the roof garden is one-way; the boiler room has no walkway.
func ExampleReachable() {
	g := core.NewGraph()
	for _, k := range []string{"gate", "hall", "roof", "boiler"} {
		_ = g.AddLandmark(k, mgl64.Vec3{}, k)
	}
	_ = g.AddBidirectional("gate", "hall", 10)
	_ = g.AddConnection("hall", "roof", 4)

	fmt.Println(bfs.Reachable(g, "gate"))
	fmt.Println(bfs.Reachable(g, "roof"))
	// Output:
	// [hall roof]
	// []
}
