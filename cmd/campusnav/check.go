package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/samber/lo"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dfs"
	"github.com/katalvlaran/campusnav/mapio"
)

var errMapProblems = errors.New("map has problems")

// oneWay returns the connections with no connection back, in insertion order.
func oneWay(g *core.Graph) []core.Connection {
	conns := g.Connections()
	back := lo.SliceToMap(conns, func(c core.Connection) ([2]string, bool) {
		return [2]string{c.From, c.To}, true
	})

	return lo.Filter(conns, func(c core.Connection, _ int) bool {
		return c.From != c.To && !back[[2]string{c.To, c.From}]
	})
}

func runCheck(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		mapPath = fs.String("map", "", "map document (.json, .yaml)")
		allowOW = fs.Bool("allow-oneway", false, "do not count one-way connections as problems")
		verb    verbosity
	)
	verb.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mapPath == "" {
		fs.Usage()
		return errUsage
	}
	logger := verb.logger(stderr, slog.LevelWarn)

	g, err := mapio.Load(*mapPath, mapio.WithLogger(logger))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d landmarks, %d connections\n", g.LandmarkCount(), g.ConnectionCount())

	problems := 0
	if err = g.Validate(); err != nil {
		for _, e := range flatten(err) {
			fmt.Fprintln(stdout, "dangling:", e)
			problems++
		}
	}

	ow := oneWay(g)
	for _, c := range ow {
		fmt.Fprintf(stdout, "one-way: %s -> %s (%.2f)\n", c.From, c.To, c.Weight)
	}
	if !*allowOW {
		problems += len(ow)
	}

	islands, err := dfs.Islands(g)
	if err != nil {
		return err
	}
	if len(islands) > 1 {
		for i, island := range islands {
			fmt.Fprintf(stdout, "island %d: %v\n", i+1, island)
		}
		problems += len(islands) - 1
	}

	if problems > 0 {
		return fmt.Errorf("%w: %d", errMapProblems, problems)
	}
	fmt.Fprintln(stdout, "ok")

	return nil
}

// flatten unpacks an errors.Join result.
func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}

	return []error{err}
}
