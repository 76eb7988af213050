package difference

import "fmt"

// Difference returns the first difference of seq: out[i] = seq[i+1] − seq[i].
// Sequences of length 0 or 1 yield an empty, non-nil slice.
// Returns ErrOverflow (wrapped with the offending index) if a difference
// does not fit in int64.
// Complexity: O(n) time, O(n) memory.
func Difference(seq []int64) ([]int64, error) {
	if len(seq) < 2 {
		return []int64{}, nil
	}
	out := make([]int64, len(seq)-1)
	for i := 0; i < len(out); i++ {
		d, ok := Sub(seq[i+1], seq[i])
		if !ok {
			return nil, fmt.Errorf("difference: %d - %d at index %d: %w", seq[i+1], seq[i], i, ErrOverflow)
		}
		out[i] = d
	}

	return out, nil
}

// IsZero reports whether every element of seq equals zero.
// An empty sequence is all-zero.
func IsZero(seq []int64) bool {
	for _, v := range seq {
		if v != 0 {
			return false
		}
	}

	return true
}
