package treefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/umwelt-studio/treepath/internal/pathcmp"
)

// ReadPaths reads one path per line. Blank lines are skipped. A line may end
// with a tab followed by a Unix timestamp, which becomes the entry's
// modification time; otherwise the time is 0.
func ReadPaths(r io.Reader) ([]pathcmp.Timed, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var entries []pathcmp.Timed
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		entry := pathcmp.Timed{Path: line}
		if i := strings.LastIndexByte(line, '\t'); i >= 0 {
			ts, err := strconv.ParseInt(strings.TrimSpace(line[i+1:]), 10, 64)
			if err == nil {
				entry = pathcmp.Timed{Path: line[:i], ModTime: ts}
			}
		}
		entries = append(entries, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read paths: %w", err)
	}
	return entries, nil
}

// WritePaths writes one path per line. Entries with a non-zero time get a
// tab and the timestamp appended when withTimes is set.
func WritePaths(w io.Writer, entries []pathcmp.Timed, withTimes bool) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		line := e.Path
		if withTimes && e.ModTime != 0 {
			line += "\t" + strconv.FormatInt(e.ModTime, 10)
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write paths: %w", err)
		}
	}
	return bw.Flush()
}

// Paths returns the path of every entry.
func Paths(entries []pathcmp.Timed) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}
