package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/campusnav/config"
	"github.com/katalvlaran/campusnav/mapio"
	"github.com/katalvlaran/campusnav/mapsvg"
	"github.com/katalvlaran/campusnav/navigator"
	"github.com/katalvlaran/campusnav/playback"
)

var errNoRoute = errors.New("no route")

func runRoute(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("route", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath = fs.String("config", "", "settings file (YAML)")
		mapPath = fs.String("map", "", "map document (.json, .yaml)")
		from    = fs.String("from", "", "start landmark key (default: first landmark)")
		to      = fs.String("to", "", "destination landmark key (default: second landmark)")
		speed   = fs.Float64("speed", 0, "walking speed in scene units per second")
		fps     = fs.Float64("fps", 0, "simulated frame rate")
		follow  = fs.Bool("follow", false, "report the follow-camera pose")
		trace   = fs.Bool("trace", false, "print the walker once per simulated second")
		svgPath = fs.String("svg", "", "write a top-down SVG of the map and route")
		verb    verbosity
	)
	verb.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "map":
			cfg.Map = *mapPath
		case "from":
			cfg.Start = *from
		case "to":
			cfg.End = *to
		case "speed":
			cfg.Playback.Speed = *speed
		case "fps":
			cfg.FrameRate = *fps
		case "follow":
			cfg.Playback.Follow = *follow
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Map == "" {
		return errors.New("no map: pass -map or set map in the settings file")
	}

	level, _ := cfg.SlogLevel()
	logger := verb.logger(stderr, level)

	g, err := mapio.Load(cfg.Map, cfg.MapOptions(logger)...)
	if err != nil {
		return err
	}
	s, err := navigator.NewSession(g, cfg.NavigatorOptions(logger)...)
	if err != nil {
		return err
	}

	snap := s.Snapshot()
	fmt.Fprintf(stdout, "%s -> %s: %s\n", snap.Start, snap.End, snap.Status)
	if snap.Status == navigator.StatusUnreachable || snap.Status == navigator.StatusUnknownLandmark {
		if dest := s.Reachable(); len(dest) > 0 {
			fmt.Fprintf(stdout, "reachable from %s: %v\n", snap.Start, dest)
		}
		return fmt.Errorf("%w: %s", errNoRoute, snap.Status)
	}
	for i, step := range s.Directions() {
		fmt.Fprintf(stdout, "%2d. %s\n", i+1, step)
	}
	fmt.Fprintf(stdout, "cost %.2f, path length %.2f, %d landmarks\n", snap.Cost, snap.Length, snap.Waypoints)

	if snap.Status == navigator.StatusRouted {
		walk(s, cfg.Interval(), *trace, stdout)
	}

	if *svgPath != "" {
		if err = writeSVG(*svgPath, s); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "map written to %s\n", *svgPath)
	}

	return nil
}

// walk plays the route to the end at a fixed time step.
func walk(s *navigator.Session, dt float64, trace bool, w io.Writer) {
	snap := s.Snapshot()
	limit := int(math.Ceil(snap.Length/(snap.Speed*dt))) + 2
	perSecond := max(1, int(math.Round(1/dt)))

	s.Start()
	var f navigator.Frame
	frames := 0
	for frames < limit {
		f = s.Tick(dt)
		frames++
		if trace && (frames%perSecond == 0 || f.Arrived) {
			p := f.Sample.Position
			fmt.Fprintf(w, "  t=%6.2fs  %5.1f%%  at (%.2f, %.2f, %.2f)", float64(frames)*dt, 100*f.Progress, p.X(), p.Y(), p.Z())
			if f.Following {
				e := f.Camera.Position
				fmt.Fprintf(w, "  eye (%.2f, %.2f, %.2f)", e.X(), e.Y(), e.Z())
			}
			fmt.Fprintln(w)
		}
		if f.State != playback.Playing {
			break
		}
	}
	fmt.Fprintf(w, "walk %s after %.2fs (%d frames)\n", f.State, float64(frames)*dt, frames)
}

func writeSVG(path string, s *navigator.Session) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return mapsvg.Render(f, s.Graph(), s.Path())
}
