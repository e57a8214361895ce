package output

import (
	"bufio"
	"fmt"
	"io"
)

// Stats summarizes a render pass.
type Stats struct {
	Lines   int
	Matches int
}

// Render streams input through the formatter line by line, writing the
// rewritten lines to w. Long lines up to 1MB are supported.
func Render(r io.Reader, w io.Writer, f Formatter) (Stats, error) {
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line, matches := f.ProcessLine(scanner.Text())
		stats.Lines++
		stats.Matches += matches

		if _, err := fmt.Fprintln(w, line); err != nil {
			return stats, err
		}
	}

	return stats, scanner.Err()
}
