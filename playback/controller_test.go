package playback_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/playback"
	"github.com/katalvlaran/campusnav/routepath"
)

// line is a straight Sampler along +X of the given length.
type line struct {
	length    float64
	waypoints int
}

func (l line) SampleAt(t float64) (mgl64.Vec3, mgl64.Vec3) {
	return mgl64.Vec3{t * l.length, 0, 0}, mgl64.Vec3{1, 0, 0}
}
func (l line) Length() float64    { return l.length }
func (l line) WaypointCount() int { return l.waypoints }

func loaded(t *testing.T, length float64, opts ...playback.Option) *playback.Controller {
	t.Helper()
	c := playback.New(opts...)
	c.Load(line{length: length, waypoints: 2})
	require.True(t, c.HasRoute())

	return c
}

func TestNew_Defaults(t *testing.T) {
	c := playback.New()
	assert.Equal(t, playback.Idle, c.State())
	assert.Equal(t, 0.0, c.Progress())
	assert.Equal(t, playback.DefaultSpeed, c.Speed())
	assert.Equal(t, playback.DefaultMinSpeed, c.MinSpeed())
	assert.False(t, c.Follow())
	assert.False(t, c.HasRoute())
}

func TestNoRoute_IsSafe(t *testing.T) {
	c := playback.New()
	assert.False(t, c.Start())
	assert.False(t, c.Tick(1))
	assert.False(t, c.Pause())
	c.Reset()
	assert.Equal(t, playback.Idle, c.State())

	_, ok := c.Sample()
	assert.False(t, ok)
	c.SetFollow(true)
	_, ok = c.CameraPose()
	assert.False(t, ok)
}

func TestLoad_RejectsShortRoutes(t *testing.T) {
	c := playback.New()
	c.Load(line{length: 10, waypoints: 1})
	assert.False(t, c.HasRoute())
	assert.False(t, c.Start())

	c.Load(nil)
	assert.False(t, c.HasRoute())
}

func TestTick_ReachesFinishedExactly(t *testing.T) {
	c := loaded(t, 10, playback.WithSpeed(3))
	require.True(t, c.Start())

	// 10 / 3 seconds in 1/60 s frames, then some.
	frames := int(math.Ceil(10.0/3.0*60)) + 5
	for i := 0; i < frames; i++ {
		c.Tick(1.0 / 60)
		assert.LessOrEqual(t, c.Progress(), 1.0)
	}
	assert.Equal(t, playback.Finished, c.State())
	assert.Equal(t, 1.0, c.Progress())

	// Finished is terminal for Tick.
	assert.False(t, c.Tick(1))
	assert.Equal(t, 1.0, c.Progress())
}

func TestTick_ExactDuration(t *testing.T) {
	c := loaded(t, 12, playback.WithSpeed(4))
	require.True(t, c.Start())
	c.Tick(1)
	c.Tick(1)
	assert.Equal(t, playback.Playing, c.State())
	c.Tick(1)
	assert.Equal(t, playback.Finished, c.State())
	assert.Equal(t, 1.0, c.Progress())
}

func TestTick_OnlyWhilePlaying(t *testing.T) {
	c := loaded(t, 10)
	assert.False(t, c.Tick(1), "idle")

	require.True(t, c.Start())
	require.True(t, c.Tick(1))
	p := c.Progress()
	assert.InDelta(t, 0.3, p, 1e-12)

	require.True(t, c.Pause())
	assert.False(t, c.Tick(1), "paused")
	assert.Equal(t, p, c.Progress())
	assert.Equal(t, playback.Paused, c.State())

	require.True(t, c.Start())
	assert.Equal(t, p, c.Progress(), "resume keeps progress")
}

func TestTick_IgnoresBadDt(t *testing.T) {
	c := loaded(t, 10)
	require.True(t, c.Start())
	assert.False(t, c.Tick(-1))
	assert.False(t, c.Tick(math.NaN()))
	assert.Equal(t, 0.0, c.Progress())
}

func TestTick_ZeroLengthFinishesImmediately(t *testing.T) {
	c := loaded(t, 0)
	require.True(t, c.Start())
	assert.True(t, c.Tick(0.001))
	assert.Equal(t, playback.Finished, c.State())
	assert.Equal(t, 1.0, c.Progress())
}

func TestStop_IsPause(t *testing.T) {
	c := loaded(t, 10)
	require.True(t, c.Start())
	c.Tick(1)
	assert.True(t, c.Stop())
	assert.Equal(t, playback.Paused, c.State())
	assert.Greater(t, c.Progress(), 0.0)
	assert.False(t, c.Stop(), "already paused")
}

func TestReset_FromAnyState(t *testing.T) {
	c := loaded(t, 10)
	require.True(t, c.Start())
	c.Tick(1)
	c.Reset()
	assert.Equal(t, playback.Idle, c.State())
	assert.Equal(t, 0.0, c.Progress())

	require.True(t, c.Start())
	c.Tick(100)
	require.Equal(t, playback.Finished, c.State())
	c.Reset()
	assert.Equal(t, playback.Idle, c.State())
	assert.Equal(t, 0.0, c.Progress())
}

func TestStart_FromFinishedRestarts(t *testing.T) {
	c := loaded(t, 10)
	require.True(t, c.Start())
	c.Tick(100)
	require.Equal(t, playback.Finished, c.State())

	require.True(t, c.Start())
	assert.Equal(t, playback.Playing, c.State())
	assert.Equal(t, 0.0, c.Progress())
	assert.False(t, c.Start(), "already playing")
}

func TestLoad_ForcesIdle(t *testing.T) {
	c := loaded(t, 10)
	require.True(t, c.Start())
	c.Tick(1)

	c.Load(line{length: 20, waypoints: 3})
	assert.Equal(t, playback.Idle, c.State())
	assert.Equal(t, 0.0, c.Progress())
}

func TestSetSpeed(t *testing.T) {
	c := loaded(t, 10)
	assert.Equal(t, playback.DefaultMinSpeed, c.SetSpeed(0))
	assert.Equal(t, playback.DefaultMinSpeed, c.SetSpeed(-4))
	assert.Equal(t, playback.DefaultMinSpeed, c.SetSpeed(math.NaN()))
	assert.Equal(t, 5.0, c.SetSpeed(5))

	// A speed change mid-route keeps progress and applies on the next tick.
	require.True(t, c.Start())
	c.Tick(1) // 5/10
	assert.InDelta(t, 0.5, c.Progress(), 1e-12)
	c.SetSpeed(1)
	assert.InDelta(t, 0.5, c.Progress(), 1e-12)
	c.Tick(1) // +1/10
	assert.InDelta(t, 0.6, c.Progress(), 1e-12)
}

func TestWithSpeed_RaisedToMinimum(t *testing.T) {
	c := playback.New(playback.WithSpeed(1), playback.WithMinSpeed(2))
	assert.Equal(t, 2.0, c.Speed())
}

func TestSample(t *testing.T) {
	c := loaded(t, 10)
	require.True(t, c.Start())
	c.Tick(1)

	s, ok := c.Sample()
	require.True(t, ok)
	assert.InDelta(t, 3.0, s.Position.X(), 1e-12)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, s.Tangent)
	assert.Equal(t, c.Progress(), s.Progress)
}

func TestCameraPose_BehindAboveLookingAhead(t *testing.T) {
	c := loaded(t, 10)
	_, ok := c.CameraPose()
	assert.False(t, ok, "follow off")

	c.SetFollow(true)
	require.True(t, c.Start())
	c.Tick(1) // walker at x=3, heading +X

	pose, ok := c.CameraPose()
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{3 - 6, 4, 0}, pose.Position)
	assert.Equal(t, mgl64.Vec3{3 + 2, 1, 0}, pose.LookAt)

	// Direction of view is along travel.
	view := pose.LookAt.Sub(pose.Position)
	assert.Greater(t, view.X(), 0.0)
	assert.Less(t, view.Y(), 0.0)
}

func TestWithRoutePath(t *testing.T) {
	p, err := routepath.New([]mgl64.Vec3{{0, 0, 0}, {0, 0, 3}, {4, 0, 3}})
	require.NoError(t, err)

	c := playback.New(playback.WithSpeed(p.Length()))
	c.Load(p)
	require.True(t, c.Start())
	c.Tick(0.5)
	assert.InDelta(t, 0.5, c.Progress(), 1e-12)
	c.Tick(0.5)
	assert.Equal(t, playback.Finished, c.State())

	s, ok := c.Sample()
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{4, 0, 3}, s.Position)
}

func TestLogger_RecordsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := playback.New(playback.WithLogger(logger))
	c.Load(line{length: 1, waypoints: 2})
	c.Start()
	c.Tick(10)

	out := buf.String()
	assert.Contains(t, out, "to=playing")
	assert.Contains(t, out, "to=finished")
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { playback.WithSpeed(0) })
	assert.Panics(t, func() { playback.WithSpeed(math.Inf(1)) })
	assert.Panics(t, func() { playback.WithMinSpeed(math.NaN()) })
	assert.Panics(t, func() { playback.WithLogger(nil) })
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", playback.Idle.String())
	assert.Equal(t, "playing", playback.Playing.String())
	assert.Equal(t, "paused", playback.Paused.String())
	assert.Equal(t, "finished", playback.Finished.String())
	assert.Equal(t, "unknown", playback.State(42).String())
}
