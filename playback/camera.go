package playback

import "github.com/go-gl/mathgl/mgl64"

// Camera holds the follow-camera offsets, in scene units.
//
// The eye trails Back units behind the sample along the negative tangent
// and Height units above it along Up; it looks at a point Ahead units in
// front of the sample and LookHeight units above it.
type Camera struct {
	Back       float64
	Height     float64
	Ahead      float64
	LookHeight float64
	Up         mgl64.Vec3
}

// DefaultCamera returns a y-up camera 6 behind and 4 above the walker,
// looking 2 ahead at head height 1.
func DefaultCamera() Camera {
	return Camera{
		Back:       6,
		Height:     4,
		Ahead:      2,
		LookHeight: 1,
		Up:         mgl64.Vec3{0, 1, 0},
	}
}

// Pose is a camera placement: where the eye is and what it looks at.
type Pose struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
}

// PoseFor computes the follow pose for a route sample.
func (c Camera) PoseFor(pos, tangent mgl64.Vec3) Pose {
	return Pose{
		Position: pos.Sub(tangent.Mul(c.Back)).Add(c.Up.Mul(c.Height)),
		LookAt:   pos.Add(tangent.Mul(c.Ahead)).Add(c.Up.Mul(c.LookHeight)),
	}
}

// CameraRig eases a rendered camera towards successive target poses.
//
// Each Update moves the current pose the fraction Smoothness of the way to
// the target: 1 snaps, lower values lag behind. The first Update after
// construction or Reset snaps.
type CameraRig struct {
	smoothness float64
	pose       Pose
	primed     bool
}

// NewCameraRig returns a rig with the given smoothing factor.
// Panics if smoothness is outside (0, 1].
func NewCameraRig(smoothness float64) *CameraRig {
	if !(smoothness > 0) || smoothness > 1 {
		panic(ErrBadSmoothness.Error())
	}

	return &CameraRig{smoothness: smoothness}
}

// Update blends the current pose towards target and returns the result.
func (r *CameraRig) Update(target Pose) Pose {
	if !r.primed {
		r.pose = target
		r.primed = true
		return r.pose
	}
	r.pose = Pose{
		Position: lerp(r.pose.Position, target.Position, r.smoothness),
		LookAt:   lerp(r.pose.LookAt, target.LookAt, r.smoothness),
	}

	return r.pose
}

// Pose returns the current pose; false before the first Update.
func (r *CameraRig) Pose() (Pose, bool) { return r.pose, r.primed }

// Reset forgets the current pose so the next Update snaps.
func (r *CameraRig) Reset() {
	r.pose = Pose{}
	r.primed = false
}

func lerp(a, b mgl64.Vec3, f float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(f))
}
