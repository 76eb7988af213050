// SPDX-License-Identifier: MIT
// Package: mirage/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithGenerator.

package builder

import (
	rng "github.com/leesper/go_rng"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// Int64Source draws uniform integers in [a, b).
// *rng.UniformGenerator from github.com/leesper/go_rng satisfies it.
type Int64Source interface {
	Int64Range(a, b int64) int64
}

// WithDegree sets the polynomial degree k (≥0).
// Panics on a negative degree.
// Complexity: O(1) time, O(1) space.
func WithDegree(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithDegree(k<0)")
	}
	return func(c *builderConfig) {
		c.degree = k
	}
}

// WithCoeffBound draws coefficients from [−b, b].
// Panics unless 1 ≤ b ≤ MaxCoeffBound.
// Complexity: O(1) time, O(1) space.
func WithCoeffBound(b int64) BuilderOption {
	if b < 1 || b > MaxCoeffBound {
		panic("builder: WithCoeffBound(b out of [1, MaxCoeffBound])")
	}
	return func(c *builderConfig) {
		c.coeffBound = b
	}
}

// WithGenerator provides an explicit random source shared across calls.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithGenerator(g Int64Source) BuilderOption {
	if g == nil {
		panic("builder: WithGenerator(nil)")
	}
	return func(c *builderConfig) {
		c.gen = g
	}
}

// WithSeed installs a go_rng uniform generator seeded with seed.
// It overrides the seed argument of the constructor.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.gen = rng.NewUniformGenerator(seed)
	}
}
