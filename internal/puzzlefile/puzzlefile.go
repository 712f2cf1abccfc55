// Package puzzlefile reads the line-oriented text formats puzzle definitions
// are stored in: whitespace-separated tokens, one record per line, blank lines
// ignored. Errors carry the 1-based line number.
package puzzlefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformed wraps every syntax error found in a puzzle file.
var ErrMalformed = errors.New("malformed puzzle file")

// Scanner yields the non-blank lines of a puzzle file split into fields.
type Scanner struct {
	sc   *bufio.Scanner
	line int
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// Next returns the fields of the next non-blank line. At end of input it
// returns io.EOF; read errors are returned unchanged.
func (s *Scanner) Next() ([]string, error) {
	for s.sc.Scan() {
		s.line++
		if fields := strings.Fields(s.sc.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := s.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Require is Next with end of input turned into a malformed-file error
// naming what was expected.
func (s *Scanner) Require(what string) ([]string, error) {
	fields, err := s.Next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: line %d: unexpected end of file, want %s", ErrMalformed, s.line+1, what)
	}
	return fields, err
}

// Line returns the number of the line last returned by Next.
func (s *Scanner) Line() int { return s.line }

// Errorf reports a malformed-file error at the current line.
func (s *Scanner) Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, s.line, fmt.Sprintf(format, args...))
}

// Wrap attaches the current line to err and marks it as malformed.
func (s *Scanner) Wrap(err error) error {
	return fmt.Errorf("%w: line %d: %w", ErrMalformed, s.line, err)
}

// Load opens path and hands it to parse. I/O errors are returned unchanged;
// parse errors are prefixed with the file name.
func Load[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
