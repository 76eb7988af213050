// SPDX-License-Identifier: MIT
// Package: mirage/builder
//
// impl_polynomial.go — random polynomial histories with known extrapolations.
//
// Contract:
//   • BuildPolynomial(seed, opts...) draws degree+1 coefficients uniformly
//     from [−bound, bound] via go_rng.
//   • BuildSamples(count, n, seed, opts...) samples count polynomials at
//     x = 0..n−1; Next = p(n), Previous = p(−1).
//   • Strict determinism per (seed, options); no panics; no global state.
//   • Values outside int64 fail with ErrValueOverflow, never wrap.
//   • The leading coefficient is forced non-zero so the degree is exact.

package builder

import (
	"github.com/katalvlaran/mirage/history"
)

// Sample is one generated history together with its generating polynomial
// and the values extrapolation must recover.
type Sample struct {
	Poly     Polynomial
	History  history.History
	Next     int64 // p(n)
	Previous int64 // p(−1)
}

// BuildPolynomial returns a random polynomial of the configured degree.
// Complexity: O(k) time and memory.
func BuildPolynomial(seed int64, opts ...BuilderOption) Polynomial {
	cfg := newBuilderConfig(opts...)

	return drawPolynomial(cfg, genFrom(cfg, seed))
}

// BuildSamples returns count samples of length n drawn from one random stream.
// Returns ErrBadSize for count < 1 or n < 1, ErrDegreeTooHigh for n ≤ degree
// and ErrValueOverflow if a sampled or extrapolated value leaves int64.
// Complexity: O(count·n·k) time, O(count·n) memory.
func BuildSamples(count, n int, seed int64, opts ...BuilderOption) ([]Sample, error) {
	if err := validateMin(MethodSamples, count, MinCount); err != nil {
		return nil, err
	}
	if err := validateMin(MethodSamples, n, MinLength); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if err := validateDegree(MethodSamples, cfg.degree, n); err != nil {
		return nil, err
	}

	gen := genFrom(cfg, seed)
	out := make([]Sample, count)
	for i := range out {
		smp, err := sample(drawPolynomial(cfg, gen), n)
		if err != nil {
			return nil, builderErrorf(MethodSamples, "sample %d: %w", i, err)
		}
		out[i] = smp
	}

	return out, nil
}

// sample evaluates p on 0..n−1 and at both extrapolation points.
func sample(p Polynomial, n int) (Sample, error) {
	h, err := p.Sample(n)
	if err != nil {
		return Sample{}, err
	}
	next, err := p.At(int64(n))
	if err != nil {
		return Sample{}, err
	}
	prev, err := p.At(-1)
	if err != nil {
		return Sample{}, err
	}

	return Sample{Poly: p, History: h, Next: next, Previous: prev}, nil
}

// BuildHistories is BuildSamples without the answers.
func BuildHistories(count, n int, seed int64, opts ...BuilderOption) ([]history.History, error) {
	samples, err := BuildSamples(count, n, seed, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]history.History, len(samples))
	for i, s := range samples {
		out[i] = s.History
	}

	return out, nil
}

// drawPolynomial draws degree+1 coefficients from gen.
func drawPolynomial(cfg builderConfig, gen Int64Source) Polynomial {
	b := cfg.coeffBound
	coeffs := make([]int64, cfg.degree+1)
	for i := range coeffs {
		coeffs[i] = gen.Int64Range(-b, b+1)
	}
	// Redraw a zero leading coefficient from [1, b] and pick its sign.
	if top := len(coeffs) - 1; top > 0 && coeffs[top] == 0 {
		coeffs[top] = gen.Int64Range(1, b+1)
		if gen.Int64Range(0, 2) == 0 {
			coeffs[top] = -coeffs[top]
		}
	}

	return Polynomial{Coeffs: coeffs}
}
