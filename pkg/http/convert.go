package http

import (
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpmsg/internal/parser"
)

// NodeToRequest converts an AST ObjectNode to a Request.
func NodeToRequest(node ast.SchemaNode) (Request, error) {
	rec, err := parser.NodeToRequest(node)
	if err != nil {
		return Request{}, err
	}
	return requestFromRecord(rec), nil
}

// NodeToResponse converts an AST ObjectNode to a Response.
func NodeToResponse(node ast.SchemaNode) (Response, error) {
	rec, err := parser.NodeToResponse(node)
	if err != nil {
		return Response{}, err
	}
	return responseFromRecord(rec), nil
}

// RequestToNode converts a Request to an AST ObjectNode.
func RequestToNode(req Request) ast.SchemaNode {
	return parser.RequestToNode(requestToRecord(&req))
}

// ResponseToNode converts a Response to an AST ObjectNode.
func ResponseToNode(resp Response) ast.SchemaNode {
	return parser.ResponseToNode(responseToRecord(&resp))
}

// NodeToInterface converts an AST node to native Go types.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}
