package playback_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/campusnav/playback"
)

func TestCamera_PoseFor(t *testing.T) {
	cam := playback.Camera{Back: 2, Height: 1, Ahead: 3, LookHeight: 0.5, Up: mgl64.Vec3{0, 0, 1}}
	pose := cam.PoseFor(mgl64.Vec3{1, 1, 0}, mgl64.Vec3{0, 1, 0})

	assert.Equal(t, mgl64.Vec3{1, -1, 1}, pose.Position)
	assert.Equal(t, mgl64.Vec3{1, 4, 0.5}, pose.LookAt)
}

func TestCameraRig_FirstUpdateSnaps(t *testing.T) {
	rig := playback.NewCameraRig(playback.DefaultSmoothness)
	_, ok := rig.Pose()
	assert.False(t, ok)

	target := playback.Pose{Position: mgl64.Vec3{10, 0, 0}, LookAt: mgl64.Vec3{12, 0, 0}}
	assert.Equal(t, target, rig.Update(target))
}

func TestCameraRig_Lerps(t *testing.T) {
	rig := playback.NewCameraRig(0.25)
	rig.Update(playback.Pose{})

	got := rig.Update(playback.Pose{Position: mgl64.Vec3{8, 0, 0}, LookAt: mgl64.Vec3{0, 4, 0}})
	assert.InDelta(t, 2.0, got.Position.X(), 1e-12)
	assert.InDelta(t, 1.0, got.LookAt.Y(), 1e-12)

	// Repeated updates converge on a fixed target.
	target := playback.Pose{Position: mgl64.Vec3{8, 0, 0}, LookAt: mgl64.Vec3{0, 4, 0}}
	for i := 0; i < 200; i++ {
		got = rig.Update(target)
	}
	assert.InDelta(t, 8.0, got.Position.X(), 1e-6)

	rig.Reset()
	_, ok := rig.Pose()
	assert.False(t, ok)
}

func TestCameraRig_SnapFactor(t *testing.T) {
	rig := playback.NewCameraRig(1)
	rig.Update(playback.Pose{})
	target := playback.Pose{Position: mgl64.Vec3{1, 2, 3}}
	assert.Equal(t, target, rig.Update(target))
}

func TestNewCameraRig_Panics(t *testing.T) {
	assert.Panics(t, func() { playback.NewCameraRig(0) })
	assert.Panics(t, func() { playback.NewCameraRig(1.5) })
}
