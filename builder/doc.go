// Package builder synthesizes integer histories with a known answer.
//
// Every generated history is a polynomial p of degree k sampled at
// x = 0..n−1. Whenever n > k the reduction stack of the sample collapses to
// zeros, so its forward extrapolation is exactly p(n) and its backward
// extrapolation is exactly p(−1). The builder therefore doubles as an oracle
// for property tests, benchmarks and the CLI -generate mode.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   degree, coefficient bound and random source.
//   - Random constructors (seeded through github.com/leesper/go_rng):
//     – BuildPolynomial: one polynomial with coefficients in [−bound, bound].
//     – BuildSamples:    count polynomials sampled at n points, with answers.
//     – BuildHistories:  the histories of BuildSamples only.
//   - Deterministic fixtures:
//     – BuildArithmetic: start, start+step, …
//     – BuildTriangular: 1, 3, 6, 10, …
//
// Guarantees:
//
//   - Determinism: identical (seed, options) produce identical output.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation errors wrap ErrBadSize / ErrDegreeTooHigh with the
//     constructor name, e.g. "BuildSamples: degree 5 needs n ≥ 6, got 4".
package builder
