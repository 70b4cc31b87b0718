package gridgraph

import (
	"bufio"
	"io"
	"math"
	"strings"
)

// initialLineBuffer is the scanner's starting buffer; it grows on demand up
// to math.MaxInt32 bytes so row width is limited only by memory.
const initialLineBuffer = 64 * 1024

// ParseDigits reads a digit grid: one row per line, each rune '0'..'9'.
// CRLF endings are accepted and leading or trailing blank lines are ignored; any
// blank line between rows is a row of length zero and therefore ragged.
//
// Errors:
//   - ErrEmptyGrid when no rows are present.
//   - *ParseError wrapping ErrInvalidDigit for a non-digit rune.
//   - *ParseError wrapping ErrNonRectangular when a row's length differs from the first row.
//   - Any read error from r, unwrapped.
func ParseDigits(r io.Reader) ([][]int, error) {
	var (
		rows    [][]int
		pending int // blank lines seen since the last non-blank row
		line    int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt32)
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" {
			pending++
			continue
		}
		if pending > 0 && len(rows) > 0 {
			// a blank row sandwiched between data rows
			return nil, &ParseError{Line: line - pending, Err: ErrNonRectangular}
		}
		pending = 0

		row := make([]int, 0, len(text))
		col := 0
		for _, c := range text {
			col++
			if c < '0' || c > '9' {
				return nil, &ParseError{Line: line, Column: col, Char: c, Err: ErrInvalidDigit}
			}
			row = append(row, int(c-'0'))
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, &ParseError{Line: line, Err: ErrNonRectangular}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	return rows, nil
}
