package history_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mirage/history"
)

const sample = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`

// TestParse_Sample parses the reference input.
func TestParse_Sample(t *testing.T) {
	hs, err := history.ParseString(sample)
	require.NoError(t, err)
	require.Len(t, hs, 3)
	assert.Equal(t, history.History{0, 3, 6, 9, 12, 15}, hs[0])
	assert.Equal(t, history.History{1, 3, 6, 10, 15, 21}, hs[1])
	assert.Equal(t, history.History{10, 13, 16, 21, 30, 45}, hs[2])
}

// TestParse_Whitespace tolerates padding, tabs, CRLF and blank lines.
func TestParse_Whitespace(t *testing.T) {
	in := "\n   -4  7\t-2 \r\n\n  \n5\r\n"
	hs, err := history.ParseString(in)
	require.NoError(t, err)
	assert.Equal(t, []history.History{{-4, 7, -2}, {5}}, hs)
}

// TestParse_Malformed verifies the malformed-token error and its location.
func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		line   int
		column int
		token  string
		cause  error
	}{
		{"Letters", "1 2 3\n4 x 6\n", 2, 2, "x", strconv.ErrSyntax},
		{"Float", "1.5 2\n", 1, 1, "1.5", strconv.ErrSyntax},
		{"Range", "1 99999999999999999999\n", 1, 2, "99999999999999999999", strconv.ErrRange},
		{"AfterBlank", "\n\n7 8 9-\n", 3, 3, "9-", strconv.ErrSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := history.ParseString(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, history.ErrMalformedToken)
			assert.ErrorIs(t, err, tc.cause)

			var pe *history.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
			assert.Equal(t, tc.column, pe.Column)
			assert.Equal(t, tc.token, pe.Token)
		})
	}
}

// TestParse_NoHistories rejects inputs that hold nothing.
func TestParse_NoHistories(t *testing.T) {
	for _, in := range []string{"", "\n", "   \n\t\n"} {
		_, err := history.ParseString(in)
		assert.ErrorIs(t, err, history.ErrNoHistories, "%q", in)
	}
}

// TestParseLine_Empty rejects a line without tokens.
func TestParseLine_Empty(t *testing.T) {
	_, err := history.ParseLine("  \t ", 4)
	assert.ErrorIs(t, err, history.ErrEmptyHistory)
	assert.EqualError(t, err, "history: line 4: history: empty history")
}

// TestReadFile covers a present and a missing file.
func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	hs, err := history.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, hs, 3)

	_, err = history.ReadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestWrite round-trips the reference input through Write.
func TestWrite(t *testing.T) {
	hs, err := history.ParseString(sample)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, history.Write(&buf, hs))
	assert.Equal(t, sample, buf.String())
}

// TestHistory_Reverse returns a copy and leaves the receiver untouched.
func TestHistory_Reverse(t *testing.T) {
	h := history.History{1, 2, 3}
	r := h.Reverse()
	assert.Equal(t, history.History{3, 2, 1}, r)
	assert.Equal(t, history.History{1, 2, 3}, h)
	assert.Equal(t, "-1 0 12", history.History{-1, 0, 12}.String())
}
