package difference

// Add returns a+b and false if the sum overflows int64.
func Add(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}

// Sub returns a−b and false if the subtraction overflows int64.
func Sub(a, b int64) (int64, bool) {
	d := a - b
	// Overflow iff operands have different signs and the result's sign differs from a.
	if (a >= 0) != (b >= 0) && (d >= 0) != (a >= 0) {
		return 0, false
	}

	return d, true
}
