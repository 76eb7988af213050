// Package mirage predicts the next or previous value of integer sequences by
// repeated finite differencing, and sums the predictions over a batch.
//
// Layout:
//
//	difference/    first differences and immutable reduction stacks
//	extrapolate/   forward / backward folds over a stack, Predictor interface
//	history/       line-oriented input parsing and writing
//	solver/        batch pipeline: reduce → extrapolate → sum, worker pool, stats
//	builder/       synthetic polynomial histories with known answers
//	config/        defaults and HCL settings files
//	cmd/           mirage (with -mode), part1 (next), part2 (previous)
//
// Quick example:
//
//	0 3 6 9 12 15        next = 18, previous = -3
//	 3 3 3 3 3
//	  0 0 0 0
//
// A sequence sampled from a polynomial of degree k reaches an all-zero level
// after k+1 steps; walking back up the stack adds (forward) or subtracts
// (backward) one boundary element per level.
package mirage
