package navigator

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/playback"
	"github.com/katalvlaran/campusnav/routepath"
	"github.com/katalvlaran/campusnav/spatial"
)

// Session ties a read-only map to one walker: the current selection, its
// route and curve, and the playback controller.
//
// A Session is not safe for concurrent use. Several sessions may share
// one graph.
type Session struct {
	graph    *core.Graph
	index    *spatial.Index
	ctrl     *playback.Controller
	rig      *playback.CameraRig
	pathOpts []routepath.Option
	log      *slog.Logger

	start, end string
	status     Status
	route      []string
	cost       float64
	path       *routepath.Path
}

// NewSession validates g, builds its spatial index and computes the
// initial route. It fails with ErrNilGraph or core.ErrNoLandmarks.
func NewSession(g *core.Graph, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	index, err := spatial.New(g)
	if err != nil {
		return nil, fmt.Errorf("navigator: %w", err)
	}

	keys := g.Keys()
	if o.Start == "" {
		o.Start = keys[0]
	}
	if o.End == "" {
		o.End = keys[min(1, len(keys)-1)]
	}

	s := &Session{
		graph:    g,
		index:    index,
		ctrl:     playback.New(append([]playback.Option{playback.WithLogger(o.Logger)}, o.Playback...)...),
		rig:      playback.NewCameraRig(o.Smoothness),
		pathOpts: o.Path,
		log:      o.Logger,
		start:    o.Start,
		end:      o.End,
	}
	s.recompute()

	return s, nil
}

// SelectStart changes the start landmark and recomputes the route.
func (s *Session) SelectStart(key string) Status {
	s.start = key
	return s.recompute()
}

// SelectEnd changes the destination and recomputes the route.
func (s *Session) SelectEnd(key string) Status {
	s.end = key
	return s.recompute()
}

// Select changes both ends at once, recomputing the route a single time.
func (s *Session) Select(start, end string) Status {
	s.start, s.end = start, end
	return s.recompute()
}

// SnapStart selects the landmark nearest to p as the start. When no
// landmark can be found (p not finite) the selection is left untouched
// and StatusUnknownLandmark is returned.
func (s *Session) SnapStart(p mgl64.Vec3) (core.Landmark, Status) {
	hit, ok := s.nearest(p)
	if !ok {
		return core.Landmark{}, StatusUnknownLandmark
	}
	return hit.Landmark, s.SelectStart(hit.Landmark.Key)
}

// SnapEnd selects the landmark nearest to p as the destination, with the
// same rule as SnapStart for points that match no landmark.
func (s *Session) SnapEnd(p mgl64.Vec3) (core.Landmark, Status) {
	hit, ok := s.nearest(p)
	if !ok {
		return core.Landmark{}, StatusUnknownLandmark
	}
	return hit.Landmark, s.SelectEnd(hit.Landmark.Key)
}

func (s *Session) nearest(p mgl64.Vec3) (spatial.Hit, bool) {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return spatial.Hit{}, false
		}
	}

	return s.index.Nearest(p)
}

// recompute solves the current selection, rebuilds the curve and reloads
// the controller, which drops it to Idle with progress 0 whatever it was
// doing.
func (s *Session) recompute() Status {
	s.route, s.cost, s.path = nil, math.Inf(1), nil

	switch {
	case !s.graph.Contains(s.start) || !s.graph.Contains(s.end):
		s.status = StatusUnknownLandmark
	case s.start == s.end:
		s.route, s.cost = []string{s.start}, 0
		s.status = StatusSameLandmark
	default:
		s.status = StatusUnreachable
		keys, cost, err := dijkstra.Route(s.graph, s.start, s.end)
		if err != nil {
			s.log.Error("route solve failed", "start", s.start, "end", s.end, "err", err)
			break
		}
		if keys == nil {
			break
		}
		path, err := routepath.FromRoute(s.graph, keys, s.pathOpts...)
		if err != nil {
			s.log.Error("route curve failed", "route", keys, "err", err)
			break
		}
		s.route, s.cost, s.path = keys, cost, path
		s.status = StatusRouted
	}

	if s.path != nil {
		s.ctrl.Load(s.path)
	} else {
		s.ctrl.Load(nil)
	}
	s.rig.Reset()
	s.log.Info("route selected",
		"start", s.start, "end", s.end, "status", s.status,
		"waypoints", len(s.route), "cost", s.cost)

	return s.status
}

// Start begins, resumes or restarts playback. False without a playable route.
func (s *Session) Start() bool { return s.ctrl.Start() }

// Pause freezes the walker. False unless playing.
func (s *Session) Pause() bool { return s.ctrl.Pause() }

// Reset returns the walker to the start of the route, Idle.
func (s *Session) Reset() {
	s.ctrl.Reset()
	s.rig.Reset()
}

// SetSpeed sets the travel speed and returns the speed in effect after
// the minimum-speed clamp.
func (s *Session) SetSpeed(v float64) float64 { return s.ctrl.SetSpeed(v) }

// SetFollow toggles the follow camera. Turning it on snaps the camera to
// the walker on the next frame.
func (s *Session) SetFollow(on bool) {
	if on && !s.ctrl.Follow() {
		s.rig.Reset()
	}
	s.ctrl.SetFollow(on)
}

// Tick advances the walker by dt seconds and returns the frame to render.
// Without a route it returns an Idle frame with no sample.
func (s *Session) Tick(dt float64) Frame {
	before := s.ctrl.State()
	f := Frame{Moved: s.ctrl.Tick(dt)}
	f.State, f.Progress = s.ctrl.State(), s.ctrl.Progress()
	f.Arrived = before == playback.Playing && f.State == playback.Finished
	if f.Arrived {
		s.log.Info("destination reached", "end", s.end)
	}

	f.Sample, f.HasSample = s.ctrl.Sample()
	if pose, ok := s.ctrl.CameraPose(); ok {
		f.Camera, f.Following = s.rig.Update(pose), true
	}

	return f
}

// Snapshot returns the selection, route and playback state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Start:     s.start,
		End:       s.end,
		Status:    s.status,
		State:     s.ctrl.State(),
		Progress:  s.ctrl.Progress(),
		Route:     append([]string(nil), s.route...),
		Waypoints: len(s.route),
		Cost:      s.cost,
		Speed:     s.ctrl.Speed(),
		Follow:    s.ctrl.Follow(),
	}
	if s.path != nil {
		snap.Length = s.path.Length()
	}

	return snap
}

// Route returns the landmark keys of the current route, nil when none.
func (s *Session) Route() []string { return append([]string(nil), s.route...) }

// Path returns the current route curve, nil unless StatusRouted.
func (s *Session) Path() *routepath.Path { return s.path }

// Graph returns the map the session navigates.
func (s *Session) Graph() *core.Graph { return s.graph }

// Reachable returns the keys of every landmark a route can reach from the
// current start, in hop order. Nil when the start is unknown.
func (s *Session) Reachable() []string {
	return bfs.Reachable(s.graph, s.start)
}

// Destinations is Reachable resolved to landmarks, for a destination picker.
func (s *Session) Destinations() []core.Landmark {
	return lo.FilterMap(s.Reachable(), func(key string, _ int) (core.Landmark, bool) {
		return s.graph.Landmark(key)
	})
}
