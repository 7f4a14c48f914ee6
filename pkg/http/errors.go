package http

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shapestone/shape-httpmsg/internal/grammar"
)

// ParseError reports that the input did not match a grammar rule.
type ParseError struct {
	Rule     string   // grammar rule being matched, e.g. "field_line"
	Expected []string // what would have let matching continue, e.g. `"\r\n"`, "field_name"
	Offset   int      // byte offset in input
	Line     int      // 1-indexed line number
	Column   int      // 1-indexed byte column within the line
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("http: parse error at line %d, column %d: expected %s in %s",
		e.Line, e.Column, expectedString(e.Expected), e.Rule)
}

func expectedString(expected []string) string {
	if len(expected) == 0 {
		return "nothing"
	}
	return strings.Join(expected, " or ")
}

// newParseError converts a grammar failure on input into a *ParseError.
func newParseError(input string, err error) error {
	var gerr *grammar.Error
	if !errors.As(err, &gerr) {
		return errors.Wrap(err, "http")
	}

	line, col := position(input, gerr.Offset)
	return &ParseError{
		Rule:     gerr.Rule.String(),
		Expected: gerr.Expected,
		Offset:   gerr.Offset,
		Line:     line,
		Column:   col,
	}
}

// position maps a byte offset to a 1-indexed line and column. Lines are
// counted by "\n" so a bare LF in a body still advances the line.
func position(input string, offset int) (line, col int) {
	if offset > len(input) {
		offset = len(input)
	}
	before := input[:offset]
	line = strings.Count(before, "\n") + 1
	col = offset - (strings.LastIndexByte(before, '\n') + 1) + 1
	return line, col
}
