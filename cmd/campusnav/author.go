package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/builder"
	"github.com/katalvlaran/campusnav/mapio"
)

// markRecord is one entry of a marker log. JSON logs parse as YAML too.
type markRecord struct {
	Name     string    `yaml:"name"`
	Position []float64 `yaml:"position"`
}

func readMarks(r io.Reader) ([]builder.Mark, error) {
	var records []markRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, builder.ErrTooFewMarks
		}
		return nil, fmt.Errorf("marker log: %w", err)
	}
	marks := make([]builder.Mark, 0, len(records))
	for i, rec := range records {
		if len(rec.Position) != 3 {
			return nil, fmt.Errorf("marker log: mark #%d %q: position needs 3 coordinates, got %d", i, rec.Name, len(rec.Position))
		}
		marks = append(marks, builder.Mark{
			Name:     rec.Name,
			Position: mgl64.Vec3{rec.Position[0], rec.Position[1], rec.Position[2]},
		})
	}

	return marks, nil
}

func runAuthor(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("author", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		in        = fs.String("in", "", "marker log: a YAML or JSON list of {name, position: [x, y, z]}")
		out       = fs.String("out", "", "map document to write (.json, .yaml)")
		exactIDs  = fs.Bool("exact-ids", false, "use trimmed names as keys instead of slugs")
		oneWay    = fs.Bool("oneway", false, "connect marks in log order only")
		ground    = fs.Bool("ground", false, "weigh walkways by distance on the ground plane")
		precision = fs.Int("precision", builder.DefaultPrecision, "decimals kept in weights")
		spanning  = fs.Bool("spanning", false, "join marks by the shortest walkway set instead of log order")
		verb      verbosity
	)
	verb.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		fs.Usage()
		return errUsage
	}
	if *precision < 0 || *precision > builder.MaxPrecision {
		return fmt.Errorf("precision must be within [0, %d]", builder.MaxPrecision)
	}
	logger := verb.logger(stderr, slog.LevelWarn)

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	marks, err := readMarks(f)
	f.Close()
	if err != nil {
		return err
	}

	opts := []builder.BuilderOption{builder.WithPrecision(*precision)}
	if *exactIDs {
		opts = append(opts, builder.WithExactIDs())
	}
	if *oneWay {
		opts = append(opts, builder.WithOneWay())
	}
	if *ground {
		opts = append(opts, builder.WithWeightFn(builder.GroundWeightFn))
	}
	build := builder.Chain
	if *spanning {
		build = builder.SpanningTree
	}
	g, err := build(marks, opts...)
	if err != nil {
		return err
	}
	logger.Info("map built", "marks", len(marks), "landmarks", g.LandmarkCount(), "connections", g.ConnectionCount())

	if err = mapio.Save(*out, g); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d landmarks, %d connections written to %s\n", g.LandmarkCount(), g.ConnectionCount(), *out)

	return nil
}
