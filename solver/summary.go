package solver

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of extrapolated values.
// Min and Max are exact; Mean, StdDev and Median are float64 estimates.
type Summary struct {
	Count  int
	Min    int64
	Max    int64
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for fewer than two values
	Median float64
}

// Summarize computes a Summary with gonum/stat. An empty input yields the zero Summary.
// Complexity: O(n log n) time, O(n) memory.
func Summarize(values []int64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	x := make([]float64, len(values))
	for i, v := range values {
		x[i] = float64(v)
	}
	s := Summary{
		Count: len(values),
		Min:   slices.Min(values),
		Max:   slices.Max(values),
	}
	if len(x) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
	} else {
		s.Mean = x[0]
	}
	slices.Sort(x)
	s.Median = stat.Quantile(0.5, stat.Empirical, x, nil)

	return s
}

// String renders the summary on one line for the CLI -stats output.
func (s Summary) String() string {
	return fmt.Sprintf("count=%d min=%d max=%d mean=%.3f stddev=%.3f median=%.1f",
		s.Count, s.Min, s.Max, s.Mean, s.StdDev, s.Median)
}
