// Package mapio defines the sentinel errors, the on-disk landmark record
// and the functional options shared by the JSON and YAML codecs.
package mapio

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/campusnav/core"
)

// Sentinel errors returned by the decoders.
var (
	// ErrMalformedDocument indicates the document is not an object with
	// a "nodes" object and an "edges" array, or a node has the wrong shape.
	ErrMalformedDocument = errors.New("mapio: malformed map document")

	// ErrMalformedEdge indicates an edge that is not a [from, to, weight]
	// triple of string, string, number.
	ErrMalformedEdge = errors.New("mapio: malformed edge")

	// ErrNilGraph indicates a nil graph passed to an encoder.
	ErrNilGraph = errors.New("mapio: graph is nil")

	// ErrUnknownFormat indicates a file extension Load and Save cannot map
	// to a codec.
	ErrUnknownFormat = errors.New("mapio: unknown map format")
)

// node is one landmark record: {"x":..,"y":..,"z":..,"label":..}.
type node struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Z     float64 `json:"z" yaml:"z"`
	Label string  `json:"label" yaml:"label"`
}

// Options configures decoding.
type Options struct {
	// Strict rejects edges whose endpoints are not nodes.
	Strict bool
	// Logger receives a warning per dangling edge and a summary per map.
	Logger *slog.Logger
}

// Option represents a functional option for the decoders.
type Option func(*Options)

// WithStrictEndpoints builds the graph with core.WithStrictEndpoints, so
// an edge naming an unknown node fails the decode.
func WithStrictEndpoints() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithLogger routes decode diagnostics to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mapio: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns tolerant decoding with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Strict: false,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) graphOptions() []core.GraphOption {
	if o.Strict {
		return []core.GraphOption{core.WithStrictEndpoints()}
	}

	return nil
}
