package navigator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/campusnav/playback"
	"github.com/katalvlaran/campusnav/routepath"
)

// ErrNilGraph indicates NewSession was given a nil graph.
var ErrNilGraph = errors.New("navigator: graph is nil")

// Status describes the outcome of the last selection.
type Status int

const (
	// StatusRouted: a route with at least two landmarks is loaded.
	StatusRouted Status = iota
	// StatusSameLandmark: start and end are the same landmark; the route
	// is that single landmark and there is nothing to play.
	StatusSameLandmark
	// StatusUnknownLandmark: start or end is not a landmark of the map.
	StatusUnknownLandmark
	// StatusUnreachable: both landmarks exist but no walkway joins them.
	StatusUnreachable
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusRouted:
		return "routed"
	case StatusSameLandmark:
		return "same landmark"
	case StatusUnknownLandmark:
		return "unknown landmark"
	case StatusUnreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Frame is what the renderer reads back after each Tick.
type Frame struct {
	State    playback.State
	Progress float64
	// Moved reports whether this tick advanced the walker.
	Moved bool
	// Arrived is true only on the tick that reached the destination.
	Arrived bool
	// Sample is valid when HasSample is true.
	Sample    playback.Sample
	HasSample bool
	// Camera is the smoothed follow pose, valid when Following is true.
	Camera    playback.Pose
	Following bool
}

// Snapshot is the session state shown by a UI.
type Snapshot struct {
	Start, End string
	Status     Status
	State      playback.State
	Progress   float64
	Route      []string
	Waypoints  int
	Cost       float64
	Length     float64
	Speed      float64
	Follow     bool
}

// Options configures a Session.
type Options struct {
	Start, End string
	Smoothness float64
	Playback   []playback.Option
	Path       []routepath.Option
	Logger     *slog.Logger
}

// Option represents a functional option for NewSession.
type Option func(*Options)

// WithSelection sets the initial start and end keys. Without it a session
// routes from the first landmark to the second.
func WithSelection(start, end string) Option {
	return func(o *Options) {
		o.Start, o.End = start, end
	}
}

// WithPlayback forwards options to the playback controller.
func WithPlayback(opts ...playback.Option) Option {
	return func(o *Options) {
		o.Playback = append(o.Playback, opts...)
	}
}

// WithPath forwards options to every route curve the session builds.
func WithPath(opts ...routepath.Option) Option {
	return func(o *Options) {
		o.Path = append(o.Path, opts...)
	}
}

// WithCameraSmoothing sets the follow-camera lerp factor.
// Panics if f is outside (0, 1].
func WithCameraSmoothing(f float64) Option {
	if !(f > 0) || f > 1 {
		panic(playback.ErrBadSmoothness.Error())
	}
	return func(o *Options) {
		o.Smoothness = f
	}
}

// WithLogger routes session and playback logs to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("navigator: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the defaults: first-to-second selection,
// playback.DefaultSmoothness and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Smoothness: playback.DefaultSmoothness,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
