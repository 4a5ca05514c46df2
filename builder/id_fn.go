// Package builder provides helper functions and types
// for turning recorded mark names into landmark keys.
package builder

import (
	"strings"
	"unicode"
)

// IDFn generates a landmark key from a mark name.
// It must be a pure, deterministic function: the same name always yields
// the same key, so re-recording a walk never renames a landmark.
type IDFn func(name string) string

// SlugIDFn lowercases name, trims it, and joins whitespace-separated
// words with underscores: "Main  Gate" → "main_gate".
// Complexity: O(len(name)).
func SlugIDFn(name string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(name), unicode.IsSpace), "_")
}

// ExactIDFn uses the trimmed name as the key, unchanged otherwise.
func ExactIDFn(name string) string {
	return strings.TrimSpace(name)
}

// WithSlugIDs resets the key scheme to SlugIDFn.
func WithSlugIDs() BuilderOption {
	return WithIDScheme(SlugIDFn)
}

// WithExactIDs sets the key scheme to ExactIDFn.
func WithExactIDs() BuilderOption {
	return WithIDScheme(ExactIDFn)
}
