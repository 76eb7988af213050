// Package solver runs the extrapolation pipeline over a batch of histories:
//
//	reduce → extrapolate → sum
//
// Each history is independent, so Solve can spread the work over a fixed pool
// of goroutines (Options.Workers). Values are stored by input index and summed
// in input order after every worker finishes; the result is identical for any
// worker count. The first failing history aborts the batch and its error is
// returned with the history's 1-based position.
//
// Usage:
//
//	opts := solver.DefaultOptions()
//	opts.Direction = extrapolate.Backward
//	res, err := solver.Solve(ctx, histories, opts)
//	fmt.Println("Answer", res.Sum)
package solver
