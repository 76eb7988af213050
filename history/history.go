package history

import (
	"slices"
	"strconv"
	"strings"
)

// History is one ordered sequence of readings.
type History []int64

// Reverse returns a reversed copy of h.
func (h History) Reverse() History {
	out := slices.Clone(h)
	slices.Reverse(out)

	return out
}

// String renders h in the input format: values separated by single spaces.
func (h History) String() string {
	parts := make([]string, len(h))
	for i, v := range h {
		parts[i] = strconv.FormatInt(v, 10)
	}

	return strings.Join(parts, " ")
}
