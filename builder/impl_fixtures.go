package builder

// BuildArithmetic returns start, start+step, …, start+(n−1)·step.
// Returns ErrBadSize for n < 1.
// Complexity: O(n).
func BuildArithmetic(n int, start, step int64) ([]int64, error) {
	if err := validateMin(MethodArithmetic, n, MinLength); err != nil {
		return nil, err
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = start + int64(i)*step
	}

	return out, nil
}

// BuildTriangular returns the first n triangular numbers 1, 3, 6, 10, ….
// Returns ErrBadSize for n < 1.
// Complexity: O(n).
func BuildTriangular(n int) ([]int64, error) {
	if err := validateMin(MethodTriangular, n, MinLength); err != nil {
		return nil, err
	}
	out := make([]int64, n)
	for i := range out {
		k := int64(i + 1)
		out[i] = k * (k + 1) / 2
	}

	return out, nil
}
