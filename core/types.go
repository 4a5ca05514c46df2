// Package core defines the Landmark, Connection and Graph types, the
// sentinel errors shared by every graph operation, and the NewGraph
// constructor with its functional options.
package core

import (
	"errors"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyKey indicates that a landmark key (or connection endpoint) is empty.
	ErrEmptyKey = errors.New("core: landmark key is empty")

	// ErrLandmarkNotFound indicates an operation referenced a non-existent landmark.
	ErrLandmarkNotFound = errors.New("core: landmark not found")

	// ErrNegativeWeight indicates a connection weight below zero.
	ErrNegativeWeight = errors.New("core: negative connection weight")

	// ErrBadWeight indicates a NaN or infinite connection weight.
	ErrBadWeight = errors.New("core: connection weight is not finite")

	// ErrNoLandmarks indicates a graph without any landmark.
	ErrNoLandmarks = errors.New("core: graph has no landmarks")

	// ErrDanglingConnection indicates a connection whose endpoint is not a landmark.
	ErrDanglingConnection = errors.New("core: connection references unknown landmark")
)

// Landmark is a named point in 3D space usable as a route endpoint.
type Landmark struct {
	// Key is the stable identifier; never regenerated.
	Key string

	// Position is the landmark coordinate in scene units.
	Position mgl64.Vec3

	// Label is display-only text and may collide between landmarks.
	Label string
}

// Connection is a directed, weighted traversable link between two landmarks.
type Connection struct {
	From   string
	To     string
	Weight float64
}

// Neighbor is one outgoing connection as seen from its source landmark.
type Neighbor struct {
	Key    string
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictEndpoints makes AddConnection fail with ErrLandmarkNotFound
// when either endpoint has not been added as a landmark yet.
func WithStrictEndpoints() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// WithCapacity pre-sizes internal tables for n landmarks.
// Panics if n is negative.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n<0)")
	}
	return func(g *Graph) { g.capacity = n }
}

// Graph is the landmark graph.
//
// landmarks holds key → Landmark, order remembers first-discovery order of
// keys, connections keeps every connection in insertion order and
// adjacency indexes those connections by source key.
type Graph struct {
	mu sync.RWMutex

	strict   bool
	capacity int

	landmarks   map[string]*Landmark
	order       []string
	connections []Connection
	adjacency   map[string][]Neighbor
}

// NewGraph creates an empty Graph.
// By default endpoints are not validated and no capacity hint is used.
// Complexity: O(1) plus the capacity hint.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.landmarks = make(map[string]*Landmark, g.capacity)
	g.order = make([]string, 0, g.capacity)
	g.adjacency = make(map[string][]Neighbor, g.capacity)

	return g
}

// StrictEndpoints reports whether the graph was built with WithStrictEndpoints.
func (g *Graph) StrictEndpoints() bool {
	return g.strict
}
