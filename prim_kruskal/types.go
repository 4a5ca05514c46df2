// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// ErrGraphNil indicates a nil graph.
var ErrGraphNil = errors.New("prim_kruskal: graph is nil")

// ErrEmptyRoot indicates that no start landmark was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root landmark")

// ErrDisconnected indicates that the walkways do not join every landmark,
// so no spanning tree exists.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all connections and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which
// landmark to grow from.
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   string - start landmark for Prim; ignored by Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting landmark for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting landmark for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
	}
}

// Compute selects and runs the MST algorithm based on the options.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, Root), Root defaulting to the first landmark.
//	– Otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) ([]core.Connection, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		if o.Root == "" && graph != nil && graph.LandmarkCount() > 0 {
			o.Root = graph.Keys()[0]
		}
		return Prim(graph, o.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}
