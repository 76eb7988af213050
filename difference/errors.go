package difference

import "errors"

var (
	// ErrEmptySequence indicates Reduce received a history with no values.
	ErrEmptySequence = errors.New("difference: sequence must be non-empty")
	// ErrOverflow indicates a first difference does not fit in int64.
	ErrOverflow = errors.New("difference: int64 overflow")
)
