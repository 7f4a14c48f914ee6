package http

import (
	"github.com/cockroachdb/errors"
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpmsg/internal/parser"
)

// Render converts an AST node (from Parse) back to HTTP wire format bytes.
//
// The node must be an ObjectNode with a "type" property of "request" or "response",
// as produced by Parse() or ParseReader().
func Render(node ast.SchemaNode) ([]byte, error) {
	msgType, err := parser.NodeType(node)
	if err != nil {
		return nil, errors.Wrap(err, "http: Render")
	}

	switch msgType {
	case parser.TypeRequest:
		req, err := NodeToRequest(node)
		if err != nil {
			return nil, errors.Wrap(err, "http: Render")
		}
		return Marshal(req)

	case parser.TypeResponse:
		resp, err := NodeToResponse(node)
		if err != nil {
			return nil, errors.Wrap(err, "http: Render")
		}
		return Marshal(resp)

	default:
		return nil, errors.Newf("http: Render: unknown message type %q", msgType)
	}
}
