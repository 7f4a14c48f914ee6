package parser

import (
	"github.com/cockroachdb/errors"
	"github.com/shapestone/shape-core/pkg/ast"
)

// The AST form of a message is an ObjectNode:
//
// Request:
//
//	{ "type": "request", "method": "GET", "uri": "/",
//	  "version": "HTTP/1.1", "fields": ["Host: example.com", ...] }
//
// Response:
//
//	{ "type": "response", "version": "HTTP/1.1", "status": "200",
//	  "message": "OK", "fields": ["Content-Length: 5", ...], "body": "..." }

var zeroPos = ast.Position{}

// Node type names stored under the "type" property.
const (
	TypeRequest  = "request"
	TypeResponse = "response"
)

// RequestToNode converts a request record to an AST ObjectNode.
func RequestToNode(req *Request) ast.SchemaNode {
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode(TypeRequest, zeroPos),
		"method":  ast.NewLiteralNode(req.Method, zeroPos),
		"uri":     ast.NewLiteralNode(req.URI, zeroPos),
		"version": ast.NewLiteralNode(req.Version, zeroPos),
		"fields":  fieldsToNode(req.Fields),
	}, zeroPos)
}

// ResponseToNode converts a response record to an AST ObjectNode.
func ResponseToNode(resp *Response) ast.SchemaNode {
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode(TypeResponse, zeroPos),
		"version": ast.NewLiteralNode(resp.Version, zeroPos),
		"status":  ast.NewLiteralNode(resp.Status, zeroPos),
		"message": ast.NewLiteralNode(resp.Message, zeroPos),
		"fields":  fieldsToNode(resp.Fields),
		"body":    ast.NewLiteralNode(resp.Body, zeroPos),
	}, zeroPos)
}

// NodeType returns the "type" property of an ObjectNode.
func NodeType(node ast.SchemaNode) (string, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return "", errors.Newf("expected ObjectNode, got %T", node)
	}
	typ, ok := obj.Properties()["type"]
	if !ok {
		return "", errors.New("missing 'type' property")
	}
	s, ok := literalString(typ)
	if !ok {
		return "", errors.New("'type' is not a string literal")
	}
	return s, nil
}

// NodeToRequest converts an AST ObjectNode back to a request record.
// Missing properties are left empty.
func NodeToRequest(node ast.SchemaNode) (*Request, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, errors.Newf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	req := &Request{}
	req.Method, _ = literalString(props["method"])
	req.URI, _ = literalString(props["uri"])
	req.Version, _ = literalString(props["version"])

	if v, ok := props["fields"]; ok {
		fields, err := nodeToFields(v)
		if err != nil {
			return nil, err
		}
		req.Fields = fields
	}
	return req, nil
}

// NodeToResponse converts an AST ObjectNode back to a response record.
// Missing properties are left empty.
func NodeToResponse(node ast.SchemaNode) (*Response, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, errors.Newf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	resp := &Response{}
	resp.Version, _ = literalString(props["version"])
	resp.Status, _ = literalString(props["status"])
	resp.Message, _ = literalString(props["message"])
	resp.Body, _ = literalString(props["body"])

	if v, ok := props["fields"]; ok {
		fields, err := nodeToFields(v)
		if err != nil {
			return nil, err
		}
		resp.Fields = fields
	}
	return resp, nil
}

func fieldsToNode(fields []string) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(fields))
	for i, f := range fields {
		elements[i] = ast.NewLiteralNode(f, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

func nodeToFields(node ast.SchemaNode) ([]string, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, errors.Newf("expected ArrayDataNode for fields, got %T", node)
	}

	elements := arr.Elements()
	if len(elements) == 0 {
		return nil, nil
	}
	fields := make([]string, 0, len(elements))
	for i, elem := range elements {
		s, ok := literalString(elem)
		if !ok {
			return nil, errors.Newf("field %d is not a string literal", i)
		}
		fields = append(fields, s)
	}
	return fields, nil
}

func literalString(node ast.SchemaNode) (string, bool) {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return "", false
	}
	s, ok := lit.Value().(string)
	return s, ok
}
