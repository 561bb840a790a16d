package objfile

import (
	"errors"
	"fmt"
)

// Parse error categories. Use errors.Is to test for them.
var (
	ErrIO        = errors.New("reading OBJ input")
	ErrFormat    = errors.New("malformed OBJ line")
	ErrReference = errors.New("OBJ index out of range")
)

// ParseError reports the line and command a parse failed on.
type ParseError struct {
	Line    int
	Command string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Command, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func formatErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...))
}

func referenceErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrReference, fmt.Sprintf(format, args...))
}
