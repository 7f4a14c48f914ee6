package http

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestRequestToNode_AndBack(t *testing.T) {
	req := NewRequestBuilder().
		SetMethod("POST").
		SetURI("/api/users").
		SetVersion("HTTP/1.1").
		AppendFields("Host: example.com", "Content-Type: application/json").
		Build()

	node := RequestToNode(req)

	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	if lit := props["type"].(*ast.LiteralNode); lit.Value() != "request" {
		t.Errorf("type = %v, want request", lit.Value())
	}
	if lit := props["method"].(*ast.LiteralNode); lit.Value() != "POST" {
		t.Errorf("method = %v, want POST", lit.Value())
	}
	if arr := props["fields"].(*ast.ArrayDataNode); len(arr.Elements()) != 2 {
		t.Errorf("fields has %d elements, want 2", len(arr.Elements()))
	}

	// Convert back
	req2, err := NodeToRequest(node)
	if err != nil {
		t.Fatalf("NodeToRequest() error = %v", err)
	}
	if !req2.Equal(req) {
		t.Errorf("NodeToRequest() = %#v, want %#v", req2, req)
	}
}

func TestResponseToNode_AndBack(t *testing.T) {
	resp := NewResponseBuilder().
		SetVersion("HTTP/1.1").
		SetStatusCode("404").
		SetMessage("Not Found").
		PushFieldLine("Content-Type: text/html").
		SetBody("<h1>Not Found</h1>").
		Build()

	node := ResponseToNode(resp)

	props := node.(*ast.ObjectNode).Properties()
	if lit := props["status"].(*ast.LiteralNode); lit.Value() != "404" {
		t.Errorf("status = %v, want \"404\"", lit.Value())
	}

	resp2, err := NodeToResponse(node)
	if err != nil {
		t.Fatalf("NodeToResponse() error = %v", err)
	}
	if !resp2.Equal(resp) {
		t.Errorf("NodeToResponse() = %#v, want %#v", resp2, resp)
	}
}

func TestNodeToRequest_NonObjectNode(t *testing.T) {
	node := ast.NewLiteralNode("hello", ast.Position{})
	_, err := NodeToRequest(node)
	if err == nil {
		t.Error("expected error for non-ObjectNode")
	}
}

func TestNodeToResponse_NonObjectNode(t *testing.T) {
	node := ast.NewLiteralNode("hello", ast.Position{})
	_, err := NodeToResponse(node)
	if err == nil {
		t.Error("expected error for non-ObjectNode")
	}
}

func TestNodeToRequest_MissingProperties(t *testing.T) {
	node := ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":   ast.NewLiteralNode("request", ast.Position{}),
		"method": ast.NewLiteralNode("GET", ast.Position{}),
	}, ast.Position{})

	req, err := NodeToRequest(node)
	if err != nil {
		t.Fatalf("NodeToRequest() error = %v", err)
	}
	if req.Method() != "GET" {
		t.Errorf("Method() = %q, want GET", req.Method())
	}
	if req.IsComplete() {
		t.Error("IsComplete() = true with uri and version missing")
	}
}

func TestNodeToInterface(t *testing.T) {
	node := ast.NewObjectNode(map[string]ast.SchemaNode{
		"method": ast.NewLiteralNode("GET", ast.Position{}),
		"status": ast.NewLiteralNode("200", ast.Position{}),
	}, ast.Position{})

	result := NodeToInterface(node)
	m, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map, got %T", result)
	}
	if m["method"] != "GET" {
		t.Errorf("method = %v, want GET", m["method"])
	}
	if m["status"] != "200" {
		t.Errorf("status = %v, want 200", m["status"])
	}
}

func TestNodeToInterface_Array(t *testing.T) {
	node := ast.NewArrayDataNode([]ast.SchemaNode{
		ast.NewLiteralNode("a", ast.Position{}),
		ast.NewLiteralNode("b", ast.Position{}),
	}, ast.Position{})

	result := NodeToInterface(node)
	arr, ok := result.([]interface{})
	if !ok {
		t.Fatalf("expected []interface{}, got %T", result)
	}
	if len(arr) != 2 {
		t.Fatalf("len = %d, want 2", len(arr))
	}
	if arr[0] != "a" || arr[1] != "b" {
		t.Errorf("arr = %v, want [a b]", arr)
	}
}

func TestNodeToInterface_UnknownType(t *testing.T) {
	result := NodeToInterface(nil)
	if result != nil {
		t.Errorf("expected nil for unknown type, got %v", result)
	}
}
