// Package history reads and writes the line-oriented history format:
// one history per line, base-10 signed integers separated by whitespace.
//
//	0 3 6 9 12 15
//	1 3 6 10 15 21
//	10 13 16 21 30 45
//
// Leading and trailing whitespace is ignored, as are blank lines.
// Parsing fails fast: the first malformed token aborts the whole input with a
// *ParseError that records the line, column and token.
package history
