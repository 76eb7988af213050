package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>" wrapping ErrBadSize.
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "parameter must be ≥ %d, got %d: %w", min, got, ErrBadSize)
	}

	return nil
}

// validateDegree ensures a sample of length n reduces fully for degree k (n > k).
// Complexity: O(1) time and space.
func validateDegree(method string, degree, n int) error {
	if n <= degree {
		return builderErrorf(method, "degree %d needs n ≥ %d, got %d: %w", degree, degree+1, n, ErrDegreeTooHigh)
	}

	return nil
}
