package extrapolate

import (
	"fmt"

	"github.com/katalvlaran/mirage/difference"
)

// Next returns the value that would follow the original level of s.
// Levels are visited terminal first; each adds its last element to the
// running value. Returns difference.ErrOverflow (wrapped with the level)
// if a running value leaves int64. Complexity: O(Depth).
func Next(s *difference.Stack) (int64, error) {
	return fold(s, Forward)
}

// Previous returns the value that would precede the original level of s.
// Levels are visited terminal first; each subtracts the running value from
// its first element. Overflow is reported as in Next. Complexity: O(Depth).
func Previous(s *difference.Stack) (int64, error) {
	return fold(s, Backward)
}

// Fold extrapolates a built stack in direction dir.
// Returns ErrUnknownDirection for an invalid dir and difference.ErrOverflow
// if a running value leaves int64.
func Fold(s *difference.Stack, dir Direction) (int64, error) {
	if !dir.Valid() {
		return 0, fmt.Errorf("extrapolate: fold %s: %w", dir, ErrUnknownDirection)
	}

	return fold(s, dir)
}

// Trace returns the extrapolated value of every level of s, indexed like the
// stack (out[0] is the answer for the original level, out[Depth-1] is 0).
// Returns ErrUnknownDirection for an invalid dir, difference.ErrOverflow if
// a level's value leaves int64.
func Trace(s *difference.Stack, dir Direction) ([]int64, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("extrapolate: trace %s: %w", dir, ErrUnknownDirection)
	}
	out := make([]int64, s.Depth())
	var below int64
	for i := s.Depth() - 1; i >= 0; i-- {
		v, err := step(s, i, dir, below)
		if err != nil {
			return nil, err
		}
		out[i] = v
		below = v
	}

	return out, nil
}

// Extrapolate reduces h and extrapolates it in direction dir.
// Errors from difference.Reduce and Fold are returned wrapped.
func Extrapolate(h []int64, dir Direction) (int64, error) {
	if !dir.Valid() {
		return 0, fmt.Errorf("extrapolate: %s: %w", dir, ErrUnknownDirection)
	}
	s, err := difference.Reduce(h)
	if err != nil {
		return 0, fmt.Errorf("extrapolate: %w", err)
	}

	return fold(s, dir)
}

// fold walks s from the terminal level up; dir must be valid.
func fold(s *difference.Stack, dir Direction) (int64, error) {
	var v int64
	for i := s.Depth() - 1; i >= 0; i-- {
		var err error
		if v, err = step(s, i, dir, v); err != nil {
			return 0, err
		}
	}

	return v, nil
}

// step combines level i with the value extrapolated for level i+1.
func step(s *difference.Stack, i int, dir Direction, below int64) (int64, error) {
	var (
		v  int64
		ok bool
	)
	if dir == Forward {
		v, ok = difference.Add(s.Last(i), below)
	} else {
		v, ok = difference.Sub(s.First(i), below)
	}
	if !ok {
		return 0, fmt.Errorf("extrapolate: %s at level %d: %w", dir, i, difference.ErrOverflow)
	}

	return v, nil
}

// predictor is the Predictor returned by NewPredictor.
type predictor struct {
	dir Direction
}

// NewPredictor returns a Predictor extrapolating in direction dir.
// Predict reports ErrUnknownDirection if dir is invalid.
func NewPredictor(dir Direction) Predictor {
	return &predictor{dir: dir}
}

func (p *predictor) Name() string {
	return p.dir.String()
}

func (p *predictor) Predict(h []int64) (int64, error) {
	return Extrapolate(h, p.dir)
}

func (p *predictor) PredictStack(s *difference.Stack) (int64, error) {
	return Fold(s, p.dir)
}
