package difference

import (
	"fmt"
	"strings"
)

// Stack is the reduction stack of one history.
// Level 0 is a private copy of the history, level i+1 is the first
// difference of level i, and the last level is all zeros.
// A Stack is immutable once built.
type Stack struct {
	levels [][]int64
}

// Reduce builds the reduction stack of h.
// The input is copied; later changes to h do not affect the Stack.
// Returns ErrEmptySequence if h is empty, ErrOverflow if any level overflows.
// Complexity: O(n²) time and memory worst case, n = len(h).
func Reduce(h []int64) (*Stack, error) {
	if len(h) == 0 {
		return nil, ErrEmptySequence
	}
	curr := make([]int64, len(h))
	copy(curr, h)

	levels := make([][]int64, 0, len(h)+1)
	levels = append(levels, curr)
	for !IsZero(curr) {
		next, err := Difference(curr)
		if err != nil {
			return nil, fmt.Errorf("reduce level %d: %w", len(levels)-1, err)
		}
		levels = append(levels, next)
		curr = next
	}

	return &Stack{levels: levels}, nil
}

// Depth returns the number of levels, terminal level included.
func (s *Stack) Depth() int {
	return len(s.levels)
}

// Level returns a copy of level i, or nil if i is out of range.
func (s *Stack) Level(i int) []int64 {
	if i < 0 || i >= len(s.levels) {
		return nil
	}
	out := make([]int64, len(s.levels[i]))
	copy(out, s.levels[i])

	return out
}

// Original returns a copy of level 0.
func (s *Stack) Original() []int64 {
	return s.Level(0)
}

// Terminal returns a copy of the all-zero level.
func (s *Stack) Terminal() []int64 {
	return s.Level(len(s.levels) - 1)
}

// Levels returns a deep copy of every level, original first.
func (s *Stack) Levels() [][]int64 {
	out := make([][]int64, len(s.levels))
	for i := range s.levels {
		out[i] = s.Level(i)
	}

	return out
}

// First returns the leading element of level i; an empty level yields 0.
// i must lie in [0, Depth()).
// Complexity: O(1).
func (s *Stack) First(i int) int64 {
	if len(s.levels[i]) == 0 {
		return 0
	}

	return s.levels[i][0]
}

// Last returns the trailing element of level i; an empty level yields 0.
// i must lie in [0, Depth()).
// Complexity: O(1).
func (s *Stack) Last(i int) int64 {
	lvl := s.levels[i]
	if len(lvl) == 0 {
		return 0
	}

	return lvl[len(lvl)-1]
}

// String renders the stack as an indented pyramid, one level per line.
func (s *Stack) String() string {
	var sb strings.Builder
	for i, lvl := range s.levels {
		sb.WriteString(strings.Repeat(" ", i))
		for j, v := range lvl {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
