// Package lines reads puzzle input as a slice of lines.
package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrNotFound is returned (wrapped) when the input file does not exist.
var ErrNotFound = errors.New("input not found")

// Read returns the lines of the file at path with line endings stripped.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	out, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// FromReader returns every line from r with "\n" or "\r\n" stripped.
// A final newline does not produce an extra empty line.
func FromReader(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		out = append(out, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FromString splits s the same way FromReader would.
func FromString(s string) []string {
	out, _ := FromReader(strings.NewReader(s))
	return out
}

// Blocks splits lines on empty lines. Consecutive empty lines produce empty
// blocks, and a nil input produces a single empty block.
func Blocks(lines []string) [][]string {
	blocks := [][]string{}
	start := 0
	for i, line := range lines {
		if line == "" {
			blocks = append(blocks, lines[start:i])
			start = i + 1
		}
	}
	return append(blocks, lines[start:])
}
