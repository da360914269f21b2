// Package addresslist reads the plain-text list of addresses to export: one
// address per line, lines separated by \r\n, \n or a lone \r. Blank lines are
// ignored; addresses are returned as written and normalized later by the
// export service.
package addresslist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabapcia/txexport/internal/export"
)

// maxLineSize bounds the length of a single line.
const maxLineSize = 1 << 20

// Read returns the entries of the address list at path.
//
// A file that cannot be opened yields an error wrapping
// export.ErrInputUnavailable, which callers treat as an empty list.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", export.ErrInputUnavailable, err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", export.ErrInputUnavailable, path, err)
	}

	return entries, nil
}

// Parse returns the non-blank entries of r, each trimmed of surrounding whitespace.
func Parse(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)

	entries := make([]string, 0)
	for scanner.Scan() {
		entry := strings.TrimSpace(scanner.Text())
		if entry == "" {
			continue
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// scanLines is a bufio.SplitFunc splitting on \r\n, \n or \r.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}

		// A \r at the end of the buffer may be the first half of \r\n.
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}

		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
