// Package extrapolate predicts the value that follows or precedes an integer
// history by walking its reduction stack back up from the all-zero level.
//
// Forward (next value):
//
//	next(level) = last(level) + next(level+1),   next(terminal) = last(terminal) = 0
//
// Backward (previous value):
//
//	prev(level) = first(level) − prev(level+1),  prev(terminal) = first(terminal) = 0
//
// Both folds read the immutable difference.Stack and never write into its
// levels; Trace returns the per-level values as a separate slice.
//
// Usage:
//
//	v, err := extrapolate.Extrapolate([]int64{0, 3, 6, 9, 12, 15}, extrapolate.Forward)
//	// v == 18
//
//	p := extrapolate.NewPredictor(extrapolate.Backward)
//	v, err = p.Predict([]int64{0, 3, 6, 9, 12, 15})
//	// v == -3
//
// Complexity: O(d) on a built stack of depth d; O(n²) including Reduce.
package extrapolate
