package playback

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// finishEpsilon absorbs rounding when the summed ticks equal length/speed.
const finishEpsilon = 1e-9

// Controller advances progress along a loaded route in response to
// elapsed-time ticks. It owns no timer: the caller feeds Tick from its
// frame loop.
//
// A Controller is not safe for concurrent use; it belongs to one session.
type Controller struct {
	route    Sampler
	state    State
	progress float64
	speed    float64
	minSpeed float64
	follow   bool
	camera   Camera
	log      *slog.Logger
}

// Sample is the walker's position on the route at the current progress.
type Sample struct {
	Position mgl64.Vec3
	Tangent  mgl64.Vec3
	Progress float64
}

// New returns an Idle controller without a route.
func New(opts ...Option) *Controller {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Controller{
		state:    Idle,
		minSpeed: cfg.MinSpeed,
		follow:   cfg.Follow,
		camera:   cfg.Camera,
		log:      cfg.Logger,
	}
	c.speed = math.Max(cfg.Speed, cfg.MinSpeed)

	return c
}

// Load replaces the route and forces Idle with progress 0. A nil sampler
// or one with fewer than two waypoints unloads the route.
func (c *Controller) Load(s Sampler) {
	if s == nil || s.WaypointCount() < 2 {
		s = nil
	}
	c.route = s
	c.progress = 0
	c.setState(Idle)
	if s != nil {
		c.log.Debug("route loaded", "waypoints", s.WaypointCount(), "length", s.Length())
	} else {
		c.log.Debug("route unloaded")
	}
}

// HasRoute reports whether a playable route is loaded.
func (c *Controller) HasRoute() bool { return c.route != nil }

// Start begins or resumes playback from Idle, Paused or Finished; from
// Finished it restarts at progress 0. It reports whether the state
// changed. Without a route it does nothing.
func (c *Controller) Start() bool {
	if c.route == nil {
		return false
	}
	switch c.state {
	case Idle, Paused:
	case Finished:
		c.progress = 0
	default:
		return false
	}
	c.setState(Playing)

	return true
}

// Pause freezes progress. Only effective while Playing.
func (c *Controller) Pause() bool {
	if c.state != Playing {
		return false
	}
	c.setState(Paused)

	return true
}

// Stop is an alias of Pause: progress is kept.
func (c *Controller) Stop() bool { return c.Pause() }

// Reset returns to Idle with progress 0 from any state.
func (c *Controller) Reset() {
	c.progress = 0
	c.setState(Idle)
}

// Tick advances progress by dt·speed/length while Playing and reports
// whether progress moved. Reaching the end clamps progress to exactly 1
// and enters Finished. Negative or NaN dt, and ticks in any other state,
// are ignored. A zero-length route finishes on its first tick.
func (c *Controller) Tick(dt float64) bool {
	if c.state != Playing || c.route == nil {
		return false
	}
	if math.IsNaN(dt) || dt < 0 {
		return false
	}

	length := c.route.Length()
	if length > 0 {
		c.progress += dt * c.speed / length
	} else {
		c.progress = 1
	}
	if c.progress >= 1-finishEpsilon {
		c.progress = 1
		c.setState(Finished)
	}

	return true
}

// SetSpeed sets the travel speed, raised to the minimum speed when lower
// (NaN counts as lower), and returns the speed in effect. Progress is
// untouched; the next Tick uses the new speed.
func (c *Controller) SetSpeed(v float64) float64 {
	if math.IsNaN(v) || v < c.minSpeed {
		v = c.minSpeed
	}
	if math.IsInf(v, 1) {
		v = math.MaxFloat64
	}
	c.speed = v

	return c.speed
}

// Speed returns the travel speed in scene units per second.
func (c *Controller) Speed() float64 { return c.speed }

// MinSpeed returns the floor enforced by SetSpeed.
func (c *Controller) MinSpeed() float64 { return c.minSpeed }

// SetFollow toggles the follow camera.
func (c *Controller) SetFollow(on bool) { c.follow = on }

// Follow reports whether the follow camera is on.
func (c *Controller) Follow() bool { return c.follow }

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Progress returns the normalized progress in [0, 1].
func (c *Controller) Progress() float64 { return c.progress }

// Camera returns the follow-camera offsets.
func (c *Controller) Camera() Camera { return c.camera }

// Sample returns the walker's current position and heading.
// False when no route is loaded.
func (c *Controller) Sample() (Sample, bool) {
	if c.route == nil {
		return Sample{}, false
	}
	pos, tan := c.route.SampleAt(c.progress)

	return Sample{Position: pos, Tangent: tan, Progress: c.progress}, true
}

// CameraPose returns the follow-camera pose for the current sample.
// False when follow is off or no route is loaded.
func (c *Controller) CameraPose() (Pose, bool) {
	if !c.follow {
		return Pose{}, false
	}
	s, ok := c.Sample()
	if !ok {
		return Pose{}, false
	}

	return c.camera.PoseFor(s.Position, s.Tangent), true
}

func (c *Controller) setState(next State) {
	if c.state == next {
		return
	}
	c.log.Debug("playback state", "from", c.state, "to", next, "progress", c.progress)
	c.state = next
}
