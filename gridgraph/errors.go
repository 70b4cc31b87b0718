package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidDigit indicates a cell character outside '0'..'9'.
	ErrInvalidDigit = errors.New("gridgraph: cell is not a decimal digit")
)

// ParseError reports where ParseDigits rejected its input.
// Line and Column are 1-based; Column is 0 for row-level failures.
type ParseError struct {
	Line   int
	Column int
	Char   rune
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %q: %v", e.Line, e.Column, e.Char, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
