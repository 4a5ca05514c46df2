// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`; core sentinels
//     (core.ErrLandmarkNotFound, core.ErrBadWeight, ...) pass through intact.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewMarks indicates a marker log without any mark.
// Usage: if errors.Is(err, ErrTooFewMarks) { /* nothing was recorded */ }.
var ErrTooFewMarks = errors.New("builder: too few marks")

// ErrEmptyName indicates a mark whose name maps to an empty landmark key
// (blank or whitespace-only name).
var ErrEmptyName = errors.New("builder: mark name yields empty key")

// ErrConstructFailed indicates BuildGraph was handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
