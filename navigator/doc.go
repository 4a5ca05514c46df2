// Package navigator is the navigation session the UI talks to.
//
// A Session owns the selection (start and end landmark), the route the
// solver found for it, the arc-length curve through that route and a
// playback controller walking the curve. The renderer calls Tick once per
// frame with the elapsed seconds and draws the returned Frame; user
// actions arrive as discrete calls:
//
//	s, err := navigator.NewSession(g, navigator.WithSelection("main_gate", "library"))
//	if err != nil { ... }
//	s.SetFollow(true)
//	s.Start()
//	for frame := s.Tick(dt); frame.State == playback.Playing; frame = s.Tick(dt) {
//	    draw(frame.Sample.Position, frame.Camera)
//	}
//
// Every selection change recomputes the route and curve and puts the
// controller back to Idle at progress 0, whatever it was doing.
//
// Selections never fail. An unknown key, an unreachable destination or
// start == end are reported as a Status and leave the session without a
// playable route, on which Start and Tick are no-ops.
package navigator
