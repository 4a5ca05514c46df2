// Package config loads the navigation settings file.
//
// A settings file is YAML; every key is optional and unknown keys are an
// error:
//
//	map: campus.json
//	start: main_gate
//	end: library
//	frame_rate: 60
//	log_level: warn
//	playback: {speed: 3, min_speed: 0.5, follow: true}
//	camera:   {back: 6, height: 4, ahead: 2, look_height: 1, smoothness: 0.1}
//	path:     {alpha: 0.5, divisions: 32}
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/mapio"
	"github.com/katalvlaran/campusnav/navigator"
	"github.com/katalvlaran/campusnav/playback"
	"github.com/katalvlaran/campusnav/routepath"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid setting")

// DefaultFrameRate is the simulated frame rate of the CLI playback.
const DefaultFrameRate = 60.0

// Config is the settings file.
type Config struct {
	Map             string  `yaml:"map"`
	Start           string  `yaml:"start"`
	End             string  `yaml:"end"`
	StrictEndpoints bool    `yaml:"strict_endpoints"`
	FrameRate       float64 `yaml:"frame_rate"`
	LogLevel        string  `yaml:"log_level"`

	Playback Playback `yaml:"playback"`
	Camera   Camera   `yaml:"camera"`
	Path     Path     `yaml:"path"`
}

// Playback holds the walker settings.
type Playback struct {
	Speed    float64 `yaml:"speed"`
	MinSpeed float64 `yaml:"min_speed"`
	Follow   bool    `yaml:"follow"`
}

// Camera holds the follow-camera offsets and smoothing.
type Camera struct {
	Back       float64 `yaml:"back"`
	Height     float64 `yaml:"height"`
	Ahead      float64 `yaml:"ahead"`
	LookHeight float64 `yaml:"look_height"`
	Smoothness float64 `yaml:"smoothness"`
}

// Path holds the route curve settings.
type Path struct {
	Alpha     float64 `yaml:"alpha"`
	Divisions int     `yaml:"divisions"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	cam := playback.DefaultCamera()
	return Config{
		FrameRate: DefaultFrameRate,
		LogLevel:  "warn",
		Playback: Playback{
			Speed:    playback.DefaultSpeed,
			MinSpeed: playback.DefaultMinSpeed,
		},
		Camera: Camera{
			Back:       cam.Back,
			Height:     cam.Height,
			Ahead:      cam.Ahead,
			LookHeight: cam.LookHeight,
			Smoothness: playback.DefaultSmoothness,
		},
		Path: Path{
			Alpha:     routepath.DefaultAlpha,
			Divisions: routepath.DefaultDivisions,
		},
	}
}

// Load reads and validates the settings file at path. Keys absent from the
// file keep their Default value.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse reads and validates settings from r. An empty document yields Default.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate reports every out-of-range setting, joined.
func (c Config) Validate() error {
	var errs []error
	bad := func(field string, v any, want string) {
		errs = append(errs, fmt.Errorf("%w: %s = %v, want %s", ErrInvalid, field, v, want))
	}
	positive := func(v float64) bool { return v > 0 && !math.IsInf(v, 1) }
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

	if !positive(c.FrameRate) {
		bad("frame_rate", c.FrameRate, "> 0")
	}
	if _, err := c.SlogLevel(); err != nil {
		bad("log_level", c.LogLevel, "debug, info, warn or error")
	}
	if !positive(c.Playback.Speed) {
		bad("playback.speed", c.Playback.Speed, "> 0")
	}
	if !positive(c.Playback.MinSpeed) {
		bad("playback.min_speed", c.Playback.MinSpeed, "> 0")
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"camera.back", c.Camera.Back},
		{"camera.height", c.Camera.Height},
		{"camera.ahead", c.Camera.Ahead},
		{"camera.look_height", c.Camera.LookHeight},
	} {
		if !finite(f.v) {
			bad(f.name, f.v, "a finite number")
		}
	}
	if !(c.Camera.Smoothness > 0) || c.Camera.Smoothness > 1 {
		bad("camera.smoothness", c.Camera.Smoothness, "within (0, 1]")
	}
	if !(c.Path.Alpha >= 0) || c.Path.Alpha > 1 {
		bad("path.alpha", c.Path.Alpha, "within [0, 1]")
	}
	if c.Path.Divisions < 1 {
		bad("path.divisions", c.Path.Divisions, ">= 1")
	}

	return errors.Join(errs...)
}

// SlogLevel parses LogLevel; empty means warn.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(c.LogLevel) == "" {
		return slog.LevelWarn, nil
	}
	err := level.UnmarshalText([]byte(c.LogLevel))

	return level, err
}

// Interval is the simulated time step, 1/FrameRate seconds.
func (c Config) Interval() float64 { return 1 / c.FrameRate }

// PlaybackOptions converts the walker and camera settings.
// The Config must be valid.
func (c Config) PlaybackOptions() []playback.Option {
	return []playback.Option{
		playback.WithMinSpeed(c.Playback.MinSpeed),
		playback.WithSpeed(c.Playback.Speed),
		playback.WithFollow(c.Playback.Follow),
		playback.WithCamera(playback.Camera{
			Back:       c.Camera.Back,
			Height:     c.Camera.Height,
			Ahead:      c.Camera.Ahead,
			LookHeight: c.Camera.LookHeight,
			Up:         playback.DefaultCamera().Up,
		}),
	}
}

// PathOptions converts the curve settings. The Config must be valid.
func (c Config) PathOptions() []routepath.Option {
	return []routepath.Option{
		routepath.WithAlpha(c.Path.Alpha),
		routepath.WithDivisions(c.Path.Divisions),
	}
}

// MapOptions converts the map loading settings.
func (c Config) MapOptions(logger *slog.Logger) []mapio.Option {
	opts := []mapio.Option{mapio.WithLogger(logger)}
	if c.StrictEndpoints {
		opts = append(opts, mapio.WithStrictEndpoints())
	}

	return opts
}

// NavigatorOptions assembles the session options, logger included.
// Start and End are left to the session default when empty.
// The Config must be valid.
func (c Config) NavigatorOptions(logger *slog.Logger) []navigator.Option {
	return []navigator.Option{
		navigator.WithLogger(logger),
		navigator.WithSelection(c.Start, c.End),
		navigator.WithPlayback(c.PlaybackOptions()...),
		navigator.WithPath(c.PathOptions()...),
		navigator.WithCameraSmoothing(c.Camera.Smoothness),
	}
}
