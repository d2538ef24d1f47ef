package tables

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotFound marks errors caused by a missing input table.
	ErrNotFound = errors.New("table not found")
	// ErrIO marks errors raised while reading an input table.
	ErrIO = errors.New("table read failed")
	// ErrParse marks malformed table lines.
	ErrParse = errors.New("malformed table line")
)

// ParseError describes a line that could not be turned into a particle.
type ParseError struct {
	// Source names the table the line came from.
	Source string
	// Line is the 1-based line number.
	Line int
	// Text is the raw line.
	Text string
	// Column is the 0-based column that failed, or -1 when the column count was wrong.
	Column int
	// Err is the underlying conversion error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: column %d: %v", e.Source, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrParse) match any *ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
