// SPDX-License-Identifier: MIT
// Package: mirage/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf, which keeps %w.
//   • Constructors never panic; option constructors (WithX) do.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates an invalid count or length (count < 1, n < 1).
// Usage: if errors.Is(err, ErrBadSize) { /* fix count/n */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrDegreeTooHigh indicates a sample too short to pin down its polynomial:
// with n ≤ degree the stack ends before the polynomial is fully reduced and
// the sample no longer extrapolates to p(n).
var ErrDegreeTooHigh = errors.New("builder: degree too high for sample length")

// ErrValueOverflow indicates a polynomial value outside int64, typically from
// a high degree combined with a long sample.
var ErrValueOverflow = errors.New("builder: polynomial value overflows int64")

// builderErrorf prefixes a formatted message with the constructor name.
// Wrapping verbs (%w) in format are preserved for errors.Is.
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
