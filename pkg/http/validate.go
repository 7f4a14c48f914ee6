package http

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/shapestone/shape-httpmsg/internal/parser"
	"github.com/shapestone/shape-httpmsg/internal/tokenizer"
)

// Validate checks that input is a message the grammar accepts. The kind is
// detected from the start line.
// Returns nil if valid, or a *ParseError identifying the problem.
func Validate(input string) error {
	var err error
	if tokenizer.Classify(input) == tokenizer.KindResponse {
		_, err = parser.ParseResponse(input)
	} else {
		_, err = parser.ParseRequest(input)
	}
	if err != nil {
		return newParseError(input, err)
	}
	return nil
}

// ValidateReader reads all data from r and validates it as an HTTP message.
// See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return Validate(string(data))
}

// readAll reads all data from r.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, "http: read")
	}
	return buf.Bytes(), nil
}
