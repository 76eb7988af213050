package solver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/mirage/difference"
	"github.com/katalvlaran/mirage/extrapolate"
	"github.com/katalvlaran/mirage/history"
)

// Solve extrapolates every history in direction opts.Direction and sums the
// values. ctx is checked before each history.
//
// Errors:
//   - ErrBadWorkers, extrapolate.ErrUnknownDirection for invalid options.
//   - *HistoryError wrapping difference.ErrEmptySequence or
//     difference.ErrOverflow for the first failing history.
//   - ErrOverflow if the sum leaves int64.
//   - ctx.Err() on cancellation.
//
// Complexity: O(Σ n_i²) time; O(max n_i²) memory per worker.
func Solve(ctx context.Context, hs []history.History, opts Options) (Result, error) {
	if opts.Workers < 1 {
		return Result{}, fmt.Errorf("%w, got %d", ErrBadWorkers, opts.Workers)
	}
	if !opts.Direction.Valid() {
		return Result{}, fmt.Errorf("solver: %s: %w", opts.Direction, extrapolate.ErrUnknownDirection)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p := extrapolate.NewPredictor(opts.Direction)
	values := make([]int64, len(hs))
	var err error
	if opts.Workers == 1 || len(hs) < 2 {
		err = solveSequential(ctx, hs, values, p, log)
	} else {
		err = solvePool(ctx, hs, values, opts.Workers, p, log)
	}
	if err != nil {
		return Result{}, err
	}

	sum, err := Sum(values)
	if err != nil {
		return Result{}, err
	}
	log.Info("solved",
		slog.Int("histories", len(hs)),
		slog.String("direction", p.Name()),
		slog.Int("workers", opts.Workers),
		slog.Int64("sum", sum))

	return Result{Sum: sum, Values: values, Summary: Summarize(values)}, nil
}

// solveSequential processes hs in order on the calling goroutine.
func solveSequential(ctx context.Context, hs []history.History, values []int64, p extrapolate.Predictor, log *slog.Logger) error {
	for i, h := range hs {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := solveOne(i, h, p, log)
		if err != nil {
			return err
		}
		values[i] = v
	}

	return nil
}

// solvePool fans indices out to n goroutines. The first error cancels the
// remaining work.
func solvePool(ctx context.Context, hs []history.History, values []int64, n int, p extrapolate.Predictor, log *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	jobs := make(chan int)
	workers := min(n, len(hs))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				v, err := solveOne(i, hs[i], p, log)
				if err != nil {
					fail(err)

					continue
				}
				values[i] = v
			}
		}()
	}

feed:
	for i := range hs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}

	return ctx.Err()
}

// solveOne reduces and extrapolates history i.
func solveOne(i int, h history.History, p extrapolate.Predictor, log *slog.Logger) (int64, error) {
	s, err := difference.Reduce(h)
	if err != nil {
		return 0, &HistoryError{Index: i + 1, Err: err}
	}
	v, err := p.PredictStack(s)
	if err != nil {
		return 0, &HistoryError{Index: i + 1, Err: err}
	}
	log.Debug("extrapolated",
		slog.Int("index", i+1),
		slog.Int("len", len(h)),
		slog.Int("depth", s.Depth()),
		slog.Int64("value", v))

	return v, nil
}

// Sum adds values, reporting ErrOverflow if the total leaves int64.
func Sum(values []int64) (int64, error) {
	var sum int64
	for i, v := range values {
		next, ok := difference.Add(sum, v)
		if !ok {
			return 0, fmt.Errorf("%w at value %d", ErrOverflow, i+1)
		}
		sum = next
	}

	return sum, nil
}
