package history

import (
	"bufio"
	"fmt"
	"io"
)

// Write writes hs to w in the input format, one history per line.
func Write(w io.Writer, hs []History) error {
	bw := bufio.NewWriter(w)
	for i, h := range hs {
		if _, err := bw.WriteString(h.String()); err != nil {
			return fmt.Errorf("history: write %d: %w", i, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("history: write %d: %w", i, err)
		}
	}

	return bw.Flush()
}
