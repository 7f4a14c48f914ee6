package http

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpmsg/internal/parser"
	"github.com/shapestone/shape-httpmsg/internal/tokenizer"
)

// Parse parses HTTP wire format into an AST from a string.
//
// The message kind is detected from the start line. Returns an
// ast.ObjectNode with properties matching the message type.
//
// For requests:
//
//	{ "type": "request", "method": "GET", "uri": "/",
//	  "version": "HTTP/1.1", "fields": ["Host: example.com", ...] }
//
// For responses:
//
//	{ "type": "response", "version": "HTTP/1.1", "status": "200",
//	  "message": "OK", "fields": ["Content-Length: 5", ...], "body": "..." }
func Parse(input string) (ast.SchemaNode, error) {
	if tokenizer.Classify(input) == tokenizer.KindResponse {
		rec, err := parser.ParseResponse(input)
		if err != nil {
			return nil, newParseError(input, err)
		}
		return parser.ResponseToNode(rec), nil
	}

	rec, err := parser.ParseRequest(input)
	if err != nil {
		return nil, newParseError(input, err)
	}
	return parser.RequestToNode(rec), nil
}

// ParseReader reads all data from r and parses it as an HTTP message into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}
