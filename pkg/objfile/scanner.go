package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// scanner splits OBJ input into lines of whitespace-separated fields.
// It is single pass; blank lines are skipped.
type scanner struct {
	r      *bufio.Reader
	lineNo int
	fields []string
	err    error
	done   bool
}

func newScanner(r io.Reader) *scanner {
	return &scanner{r: bufio.NewReader(r)}
}

// next advances to the next non-blank line.
// It returns false at end of input or on a read error.
func (s *scanner) next() bool {
	for !s.done {
		line, err := s.r.ReadString('\n')
		if err != nil {
			s.done = true
			if !errors.Is(err, io.EOF) {
				s.err = fmt.Errorf("%w: after line %d: %w", ErrIO, s.lineNo, err)
				return false
			}
			if line == "" {
				return false
			}
		}

		s.lineNo++
		if s.lineNo == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		s.fields = strings.Fields(line)
		if len(s.fields) > 0 {
			return true
		}
	}
	return false
}

// command returns the first word of the current line.
func (s *scanner) command() string {
	return s.fields[0]
}

// args returns the payload tokens after the command word.
func (s *scanner) args() []string {
	return s.fields[1:]
}

func (s *scanner) line() int {
	return s.lineNo
}

func (s *scanner) readErr() error {
	return s.err
}
