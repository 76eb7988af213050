// SPDX-License-Identifier: MIT
// Package: mirage/builder
//
// sequence_primitives.go — integer polynomials used by the sequence builders.
//
// Contract:
//   • Pure helpers (no global state).
//   • Evaluation is checked: a value outside int64 yields ErrValueOverflow
//     instead of a wrapped number.

package builder

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/mirage/difference"
)

// Polynomial is p(x) = Coeffs[0] + Coeffs[1]·x + … + Coeffs[k]·x^k.
type Polynomial struct {
	Coeffs []int64
}

// Degree returns len(Coeffs)−1, or −1 for the zero-length polynomial.
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// At evaluates p at x with Horner's rule.
// Returns ErrValueOverflow if an intermediate value leaves int64.
// Complexity: O(k).
func (p Polynomial) At(x int64) (int64, error) {
	var v int64
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		m, ok := mul(v, x)
		if ok {
			v, ok = difference.Add(m, p.Coeffs[i])
		}
		if !ok {
			return 0, fmt.Errorf("%w: p(%d) = %s", ErrValueOverflow, x, p)
		}
	}

	return v, nil
}

// Sample returns p(0), p(1), …, p(n−1). n < 1 yields nil.
// Complexity: O(n·k).
func (p Polynomial) Sample(n int) ([]int64, error) {
	if n < 1 {
		return nil, nil
	}
	out := make([]int64, n)
	for i := range out {
		v, err := p.At(int64(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// mul returns a·b and false if the product overflows int64.
func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}

	return c, true
}

// String renders p in ascending powers, e.g. "3 - 2x + x^2".
func (p Polynomial) String() string {
	var sb strings.Builder
	for i, c := range p.Coeffs {
		if c == 0 && len(p.Coeffs) > 1 {
			continue
		}
		if sb.Len() > 0 {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		}
		switch {
		case i == 0:
			fmt.Fprintf(&sb, "%d", c)
		case c == 1:
			sb.WriteString(term(i))
		case c == -1:
			sb.WriteString("-" + term(i))
		default:
			fmt.Fprintf(&sb, "%d%s", c, term(i))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}

// term renders x^i for i ≥ 1.
func term(i int) string {
	if i == 1 {
		return "x"
	}

	return fmt.Sprintf("x^%d", i)
}
