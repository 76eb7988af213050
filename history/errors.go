package history

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedToken indicates a token that is not a base-10 int64.
	ErrMalformedToken = errors.New("history: malformed token")
	// ErrEmptyHistory indicates a line that holds no tokens.
	ErrEmptyHistory = errors.New("history: empty history")
	// ErrNoHistories indicates an input without a single history.
	ErrNoHistories = errors.New("history: input holds no histories")
)

// ParseError locates a parsing failure in the input.
// Line and Column are 1-based; Column counts tokens, not bytes.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("history: line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("history: line %d, token %d %q: %v", e.Line, e.Column, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
