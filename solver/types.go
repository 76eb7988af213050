package solver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/mirage/extrapolate"
)

var (
	// ErrOverflow indicates the sum of extrapolated values does not fit in int64.
	ErrOverflow = errors.New("solver: sum overflows int64")
	// ErrBadWorkers indicates Options.Workers < 1.
	ErrBadWorkers = errors.New("solver: workers must be ≥ 1")
)

// Options configures Solve.
//   - Direction: Forward (next value) or Backward (previous value).
//   - Workers:   number of goroutines; 1 processes histories sequentially.
//   - Logger:    receives per-history debug records and a run summary;
//     nil discards them.
type Options struct {
	Direction extrapolate.Direction
	Workers   int
	Logger    *slog.Logger
}

// DefaultOptions returns Forward, one worker, no logging.
func DefaultOptions() Options {
	return Options{
		Direction: extrapolate.Forward,
		Workers:   1,
	}
}

// Result holds the outcome of a batch.
type Result struct {
	Sum     int64   // sum of Values
	Values  []int64 // one extrapolated value per history, input order
	Summary Summary // descriptive statistics of Values
}

// HistoryError locates the history that failed.
type HistoryError struct {
	Index int // 1-based position in the batch
	Err   error
}

func (e *HistoryError) Error() string {
	return fmt.Sprintf("solver: history %d: %v", e.Index, e.Err)
}

func (e *HistoryError) Unwrap() error {
	return e.Err
}
