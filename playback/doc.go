// Package playback drives a walker along a route curve at constant speed.
//
// A Controller is a four-state machine:
//
//	Idle ──Start──▶ Playing ──Pause/Stop──▶ Paused
//	  ▲               │  ▲                    │
//	  │               │  └───────Start────────┘
//	  │             Tick (progress reaches 1)
//	  │               ▼
//	  └──Reset──── Finished ──Start (from 0)──▶ Playing
//
// Reset returns any state to Idle with progress 0, and so does Load.
// Reaching the end of the route is the only transition Tick performs.
//
// Progress is normalized to [0, 1]. Each Tick(dt) in Playing adds
// dt·Speed/Length, so with an arc-length parameterized Sampler the
// walker covers Speed scene units per second whatever the landmark
// spacing. Speed may change at any time; it has a positive floor
// (MinSpeed) so playback can never stall.
//
// Nothing here fails at runtime. Tick, Start and Pause without a route, or
// in a state where they do not apply, are no-ops that report false.
//
// Follow camera:
//
//	When follow is on, CameraPose places the eye behind the walker (along
//	the negative tangent) and above it, looking slightly ahead along the
//	direction of travel. CameraRig smooths successive poses for display.
package playback
