// Package playback defines the controller states, the Sampler contract a
// route must satisfy, and the functional options of the controller.
//
// Options:
//
//	– Speed:    initial travel speed in scene units per second.
//	– MinSpeed: lower clamp applied by SetSpeed.
//	– Follow:   whether CameraPose reports a follow-camera pose.
//	– Camera:   follow-camera offsets.
//	– Logger:   structured logger for state transitions.
//
// Errors (sentinel):
//
//	– ErrBadSpeed      if Speed or MinSpeed is not a positive finite number.
//	– ErrBadSmoothness if a CameraRig smoothness is outside (0, 1].
//	– ErrNilLogger     if WithLogger receives nil.
package playback

import (
	"errors"
	"io"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors for option validation.
var (
	// ErrBadSpeed indicates a non-positive, NaN or infinite speed.
	ErrBadSpeed = errors.New("playback: speed must be positive and finite")

	// ErrBadSmoothness indicates a camera smoothing factor outside (0, 1].
	ErrBadSmoothness = errors.New("playback: smoothness must be within (0, 1]")

	// ErrNilLogger indicates WithLogger(nil).
	ErrNilLogger = errors.New("playback: logger is nil")
)

const (
	// DefaultSpeed is the initial travel speed, in scene units per second.
	DefaultSpeed = 3.0

	// DefaultMinSpeed is the floor enforced by SetSpeed.
	DefaultMinSpeed = 0.5

	// DefaultSmoothness is the per-update lerp factor of a CameraRig.
	DefaultSmoothness = 0.1
)

// State is the playback lifecycle.
type State int

const (
	// Idle: progress 0, not running. Initial state and the state after
	// Reset or a route change.
	Idle State = iota
	// Playing: Tick advances progress.
	Playing
	// Paused: progress frozen mid-route.
	Paused
	// Finished: progress exactly 1, reached by Tick.
	Finished
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Sampler is an arc-length parameterized route curve.
// *routepath.Path satisfies it.
type Sampler interface {
	// SampleAt returns the position and unit tangent at progress t in [0, 1].
	SampleAt(t float64) (mgl64.Vec3, mgl64.Vec3)
	// Length returns the total arc length.
	Length() float64
	// WaypointCount returns the number of landmarks on the route.
	WaypointCount() int
}

// Options configures a Controller.
type Options struct {
	Speed    float64
	MinSpeed float64
	Follow   bool
	Camera   Camera
	Logger   *slog.Logger
}

// Option represents a functional option for New.
type Option func(*Options)

// WithSpeed sets the initial speed. It is still raised to MinSpeed.
// Panics if v is not positive and finite.
func WithSpeed(v float64) Option {
	mustSpeed(v)
	return func(o *Options) {
		o.Speed = v
	}
}

// WithMinSpeed sets the floor enforced by SetSpeed.
// Panics if v is not positive and finite.
func WithMinSpeed(v float64) Option {
	mustSpeed(v)
	return func(o *Options) {
		o.MinSpeed = v
	}
}

// WithFollow enables or disables the follow camera from the start.
func WithFollow(on bool) Option {
	return func(o *Options) {
		o.Follow = on
	}
}

// WithCamera replaces the follow-camera offsets.
func WithCamera(c Camera) Option {
	return func(o *Options) {
		o.Camera = c
	}
}

// WithLogger routes state-transition logs to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(ErrNilLogger.Error())
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns speed 3, minimum speed 0.5, follow off, the
// default camera and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Speed:    DefaultSpeed,
		MinSpeed: DefaultMinSpeed,
		Follow:   false,
		Camera:   DefaultCamera(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func mustSpeed(v float64) {
	if !(v > 0) || math.IsInf(v, 0) {
		panic(ErrBadSpeed.Error())
	}
}
