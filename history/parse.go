package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineSize bounds a single input line (1 MiB).
const maxLineSize = 1 << 20

// ParseLine parses one line into a History. lineNo is only used for error
// reporting. A line without tokens yields ErrEmptyHistory; a token that is not
// a base-10 int64 yields ErrMalformedToken. Both come as *ParseError.
func ParseLine(line string, lineNo int) (History, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, &ParseError{Line: lineNo, Err: ErrEmptyHistory}
	}
	h := make(History, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, &ParseError{
				Line:   lineNo,
				Column: i + 1,
				Token:  tok,
				Err:    fmt.Errorf("%w: %w", ErrMalformedToken, numError(err)),
			}
		}
		h[i] = v
	}

	return h, nil
}

// Parse reads every history from r. Blank lines are skipped.
// Returns ErrNoHistories if r holds none.
func Parse(r io.Reader) ([]History, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var out []History
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		h, err := ParseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("history: read line %d: %w", lineNo+1, err)
	}
	if len(out) == 0 {
		return nil, ErrNoHistories
	}

	return out, nil
}

// ParseString is Parse over an in-memory input.
func ParseString(s string) ([]History, error) {
	return Parse(strings.NewReader(s))
}

// ReadFile opens path and parses it. A missing file keeps fs.ErrNotExist in
// the error chain.
func ReadFile(path string) ([]History, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("history: open input: %w", err)
	}
	defer f.Close()

	hs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return hs, nil
}

// numError strips the strconv.NumError wrapper down to its cause
// (strconv.ErrSyntax or strconv.ErrRange).
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}

	return err
}
