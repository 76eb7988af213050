package difference_test

import (
	"testing"

	"github.com/katalvlaran/mirage/difference"
)

// benchmarkReduce runs Reduce on a cubic history of length n.
func benchmarkReduce(b *testing.B, n int) {
	h := make([]int64, n)
	for i := range h {
		x := int64(i)
		h[i] = x*x*x - 4*x*x + 7
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := difference.Reduce(h); err != nil {
			b.Fatalf("Reduce failed: %v", err)
		}
	}
}

// BenchmarkReduce_Short benchmarks a puzzle-sized history.
func BenchmarkReduce_Short(b *testing.B) { benchmarkReduce(b, 21) }

// BenchmarkReduce_Long benchmarks a longer history with the same shallow stack.
func BenchmarkReduce_Long(b *testing.B) { benchmarkReduce(b, 1000) }
