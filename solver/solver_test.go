package solver_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mirage/builder"
	"github.com/katalvlaran/mirage/difference"
	"github.com/katalvlaran/mirage/extrapolate"
	"github.com/katalvlaran/mirage/history"
	"github.com/katalvlaran/mirage/solver"
)

// SolverSuite exercises Solve end-to-end on in-memory batches.
type SolverSuite struct {
	suite.Suite
	reference []history.History
}

func (s *SolverSuite) SetupTest() {
	s.reference = []history.History{
		{0, 3, 6, 9, 12, 15},
		{1, 3, 6, 10, 15, 21},
		{10, 13, 16, 21, 30, 45},
	}
}

// TestForward verifies the part 1 answer on the reference batch.
func (s *SolverSuite) TestForward() {
	res, err := solver.Solve(context.Background(), s.reference, solver.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(114), res.Sum)
	require.Equal(s.T(), []int64{18, 28, 68}, res.Values)
}

// TestBackward verifies the part 2 answer on the reference batch.
func (s *SolverSuite) TestBackward() {
	opts := solver.DefaultOptions()
	opts.Direction = extrapolate.Backward
	res, err := solver.Solve(context.Background(), s.reference, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Sum)
	require.Equal(s.T(), []int64{-3, 0, 5}, res.Values)
}

// TestWorkersAgree checks that any worker count yields the same result.
func (s *SolverSuite) TestWorkersAgree() {
	samples, err := builder.BuildSamples(300, 21, 77, builder.WithDegree(5))
	require.NoError(s.T(), err)
	hs := make([]history.History, len(samples))
	var want int64
	for i, smp := range samples {
		hs[i] = smp.History
		want += smp.Previous
	}

	for _, workers := range []int{1, 2, 8, 1000} {
		opts := solver.DefaultOptions()
		opts.Direction = extrapolate.Backward
		opts.Workers = workers
		res, err := solver.Solve(context.Background(), hs, opts)
		require.NoError(s.T(), err, "workers=%d", workers)
		require.Equal(s.T(), want, res.Sum, "workers=%d", workers)
		for i, smp := range samples {
			require.Equal(s.T(), smp.Previous, res.Values[i], "workers=%d index=%d", workers, i)
		}
	}
}

// TestEmptyHistory reports the failing position for both execution modes.
func (s *SolverSuite) TestEmptyHistory() {
	hs := append(append([]history.History{}, s.reference...), history.History{})
	for _, workers := range []int{1, 4} {
		opts := solver.DefaultOptions()
		opts.Workers = workers
		_, err := solver.Solve(context.Background(), hs, opts)
		require.ErrorIs(s.T(), err, difference.ErrEmptySequence)

		var he *solver.HistoryError
		require.True(s.T(), errors.As(err, &he))
		require.Equal(s.T(), 4, he.Index)
	}
}

// TestExtrapolationOverflow surfaces a fold overflow as a HistoryError
// instead of a wrapped value.
func (s *SolverSuite) TestExtrapolationOverflow() {
	hs := []history.History{
		{0, 3, 6, 9, 12, 15},
		{math.MaxInt64 - 1, math.MaxInt64},
	}
	for _, workers := range []int{1, 2} {
		opts := solver.DefaultOptions()
		opts.Workers = workers
		_, err := solver.Solve(context.Background(), hs, opts)
		require.ErrorIs(s.T(), err, difference.ErrOverflow, "workers=%d", workers)

		var he *solver.HistoryError
		require.True(s.T(), errors.As(err, &he))
		require.Equal(s.T(), 2, he.Index)
	}
}

// TestBadOptions rejects invalid worker counts and directions.
func (s *SolverSuite) TestBadOptions() {
	opts := solver.DefaultOptions()
	opts.Workers = 0
	_, err := solver.Solve(context.Background(), s.reference, opts)
	require.ErrorIs(s.T(), err, solver.ErrBadWorkers)

	opts = solver.DefaultOptions()
	opts.Direction = extrapolate.Direction(5)
	_, err = solver.Solve(context.Background(), s.reference, opts)
	require.ErrorIs(s.T(), err, extrapolate.ErrUnknownDirection)
}

// TestCanceled returns the context error when canceled up front.
func (s *SolverSuite) TestCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 3} {
		opts := solver.DefaultOptions()
		opts.Workers = workers
		_, err := solver.Solve(ctx, s.reference, opts)
		require.ErrorIs(s.T(), err, context.Canceled, "workers=%d", workers)
	}
}

// TestEmptyBatch sums to zero.
func (s *SolverSuite) TestEmptyBatch() {
	res, err := solver.Solve(context.Background(), nil, solver.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), res.Sum)
	require.Equal(s.T(), solver.Summary{}, res.Summary)
}

// TestLogging checks the debug and info records.
func (s *SolverSuite) TestLogging() {
	var buf bytes.Buffer
	opts := solver.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := solver.Solve(context.Background(), s.reference, opts)
	require.NoError(s.T(), err)

	out := buf.String()
	require.Contains(s.T(), out, "msg=extrapolated index=3 len=6 depth=5 value=68")
	require.Contains(s.T(), out, "msg=solved histories=3 direction=next workers=1 sum=114")
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

// TestSum covers plain addition and both overflow directions.
func TestSum(t *testing.T) {
	sum, err := solver.Sum([]int64{18, 28, 68})
	require.NoError(t, err)
	require.Equal(t, int64(114), sum)

	_, err = solver.Sum([]int64{math.MaxInt64, 1})
	require.ErrorIs(t, err, solver.ErrOverflow)

	_, err = solver.Sum([]int64{math.MinInt64, -1})
	require.ErrorIs(t, err, solver.ErrOverflow)

	sum, err = solver.Sum([]int64{math.MaxInt64, -1, 1})
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), sum)
}

// TestSummarize checks the descriptive statistics.
func TestSummarize(t *testing.T) {
	s := solver.Summarize([]int64{18, 68, 28})
	require.Equal(t, 3, s.Count)
	require.Equal(t, int64(18), s.Min)
	require.Equal(t, int64(68), s.Max)
	require.InDelta(t, 38.0, s.Mean, 1e-9)
	require.InDelta(t, math.Sqrt(700), s.StdDev, 1e-9)
	require.Equal(t, 28.0, s.Median)
	require.Equal(t, "count=3 min=18 max=68 mean=38.000 stddev=26.458 median=28.0", s.String())

	one := solver.Summarize([]int64{-3})
	require.Equal(t, -3.0, one.Mean)
	require.Equal(t, 0.0, one.StdDev)
	require.Equal(t, -3.0, one.Median)
}
