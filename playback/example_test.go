package playback_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/campusnav/playback"
	"github.com/katalvlaran/campusnav/routepath"
)

// ExampleController drives a 30-unit corridor at 10 units per second.
func ExampleController() {
	path, _ := routepath.New([]mgl64.Vec3{{0, 0, 0}, {30, 0, 0}})

	c := playback.New(playback.WithSpeed(10))
	c.Load(path)
	c.Start()
	for c.State() == playback.Playing {
		c.Tick(1)
		fmt.Printf("%s %.2f\n", c.State(), c.Progress())
	}
	// Output:
	// playing 0.33
	// playing 0.67
	// finished 1.00
}
