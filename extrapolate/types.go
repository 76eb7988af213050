package extrapolate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mirage/difference"
)

// ErrUnknownDirection indicates a Direction value or name outside {Forward, Backward}.
var ErrUnknownDirection = errors.New("extrapolate: unknown direction")

// Direction selects which end of a history is extrapolated.
type Direction int

const (
	// Forward predicts the value after the last element (part 1).
	Forward Direction = iota
	// Backward predicts the value before the first element (part 2).
	Backward
)

// String returns "next" for Forward and "previous" for Backward.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "next"
	case Backward:
		return "previous"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is Forward or Backward.
func (d Direction) Valid() bool {
	return d == Forward || d == Backward
}

// ParseDirection maps a mode name to a Direction. Accepted names, case-insensitive:
// next, forward, part1 (Forward) and previous, prev, backward, part2 (Backward).
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "next", "forward", "part1", "1":
		return Forward, nil
	case "previous", "prev", "backward", "part2", "2":
		return Backward, nil
	default:
		return 0, fmt.Errorf("extrapolate: %q: %w", name, ErrUnknownDirection)
	}
}

// Predictor extrapolates one value from a history, or from a stack the
// caller has already reduced.
type Predictor interface {
	Name() string
	Predict(h []int64) (int64, error)
	PredictStack(s *difference.Stack) (int64, error)
}
