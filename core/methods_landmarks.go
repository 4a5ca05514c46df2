// File: methods_landmarks.go
// Role: Landmark lifecycle & queries.
//
// Determinism:
//   - Keys() and Landmarks() follow discovery order (first AddLandmark per key).
//
// Concurrency:
//   - Writers take g.mu exclusively, readers take g.mu.RLock.
package core

import "github.com/go-gl/mathgl/mgl64"

// AddLandmark inserts or overwrites the landmark stored under key.
//
// Behavior highlights:
//   - Overwrite keeps the key's discovery position; only Position and Label change.
//   - Connections that were added earlier with this key as a dangling endpoint
//     become resolvable as soon as the landmark exists.
//
// Errors:
//   - ErrEmptyKey: if key == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddLandmark(key string, pos mgl64.Vec3, label string) error {
	if key == "" {
		return ErrEmptyKey
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if lm, exists := g.landmarks[key]; exists {
		lm.Position = pos
		lm.Label = label

		return nil
	}
	g.landmarks[key] = &Landmark{Key: key, Position: pos, Label: label}
	g.order = append(g.order, key)

	return nil
}

// Contains reports whether a landmark with the given key exists (empty key ⇒ false).
// Complexity: O(1).
func (g *Graph) Contains(key string) bool {
	if key == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.landmarks[key]

	return ok
}

// Landmark returns a copy of the landmark stored under key.
// Complexity: O(1).
func (g *Graph) Landmark(key string) (Landmark, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	lm, ok := g.landmarks[key]
	if !ok {
		return Landmark{}, false
	}

	return *lm, true
}

// Keys returns every landmark key in discovery order.
// The returned slice is a fresh copy owned by the caller.
// Complexity: O(L).
func (g *Graph) Keys() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Landmarks returns copies of all landmarks in discovery order.
// Complexity: O(L).
func (g *Graph) Landmarks() []Landmark {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Landmark, 0, len(g.order))
	for _, key := range g.order {
		out = append(out, *g.landmarks[key])
	}

	return out
}

// LandmarkCount returns the number of landmarks.
func (g *Graph) LandmarkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Positions resolves keys to coordinates in the given order.
// The first unknown key fails the call with a *LookupError, which matches
// ErrLandmarkNotFound under errors.Is.
// Complexity: O(len(keys)).
func (g *Graph) Positions(keys []string) ([]mgl64.Vec3, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]mgl64.Vec3, 0, len(keys))
	for _, key := range keys {
		lm, ok := g.landmarks[key]
		if !ok {
			return nil, &LookupError{Key: key}
		}
		out = append(out, lm.Position)
	}

	return out, nil
}

// LookupError reports the key that failed a lookup.
// It matches ErrLandmarkNotFound under errors.Is.
type LookupError struct {
	Key string
}

func (e *LookupError) Error() string {
	return "core: landmark not found: " + e.Key
}

// Unwrap exposes ErrLandmarkNotFound for errors.Is.
func (e *LookupError) Unwrap() error {
	return ErrLandmarkNotFound
}
