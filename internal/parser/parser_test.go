package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpmsg/internal/grammar"
)

func TestParseRequest_NoFields(t *testing.T) {
	req, err := ParseRequest("GET / HTTP/1.1\r\n")
	if err != nil {
		t.Fatalf("ParseRequest() error = %v", err)
	}

	want := &Request{Method: "GET", URI: "/", Version: "HTTP/1.1"}
	if !reflect.DeepEqual(req, want) {
		t.Errorf("ParseRequest() = %+v, want %+v", req, want)
	}
}

func TestParseRequest_FieldsInOrder(t *testing.T) {
	req, err := ParseRequest("POST /api HTTP/1.1\r\nHost: a\r\nAccept: */*\r\nHost: b")
	if err != nil {
		t.Fatalf("ParseRequest() error = %v", err)
	}

	want := []string{"Host: a", "Accept: */*", "Host: b"}
	if !reflect.DeepEqual(req.Fields, want) {
		t.Errorf("Fields = %q, want %q", req.Fields, want)
	}
	if req.Method != "POST" || req.URI != "/api" {
		t.Errorf("start line = %q %q", req.Method, req.URI)
	}
}

func TestParseRequest_Error(t *testing.T) {
	_, err := ParseRequest("GET /{ HTTP/1.1\r\n")

	var gerr *grammar.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %v, want *grammar.Error", err)
	}
	if gerr.Offset != 5 {
		t.Errorf("Offset = %d, want 5", gerr.Offset)
	}
}

func TestParseResponse(t *testing.T) {
	resp, err := ParseResponse("HTTP/1.1 200 OK\r\nContent-Length: 299\r\n\r\n<body text>")
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}

	want := &Response{
		Version: "HTTP/1.1",
		Status:  "200",
		Message: "OK",
		Fields:  []string{"Content-Length: 299"},
		Body:    "<body text>",
	}
	if !reflect.DeepEqual(resp, want) {
		t.Errorf("ParseResponse() = %+v, want %+v", resp, want)
	}
}

func TestParseResponse_MessageWithSpaces(t *testing.T) {
	resp, err := ParseResponse("HTTP/1.1 404 NOT FOUND\r\nContent-Length: 206\r\n\r\n\r\n<html>\r\n")
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if resp.Message != "NOT FOUND" {
		t.Errorf("Message = %q, want NOT FOUND", resp.Message)
	}
	if resp.Body != "\r\n<html>\r\n" {
		t.Errorf("Body = %q", resp.Body)
	}
}

func TestParseStatusLine(t *testing.T) {
	sl, err := ParseStatusLine("HTTP/1.1 200 OK")
	if err != nil {
		t.Fatalf("ParseStatusLine() error = %v", err)
	}
	want := StatusLine{Version: "HTTP/1.1", Status: "200", Message: "OK"}
	if sl != want {
		t.Errorf("ParseStatusLine() = %+v, want %+v", sl, want)
	}

	if _, err := ParseStatusLine("HTTP/1.1 200"); err == nil {
		t.Error("expected error for status line without reason phrase")
	}
}

func TestNodeRoundTrip_Request(t *testing.T) {
	req := &Request{Method: "GET", URI: "/x", Version: "HTTP/1.1", Fields: []string{"Host: a", "B: c"}}

	node := RequestToNode(req)
	typ, err := NodeType(node)
	if err != nil || typ != TypeRequest {
		t.Fatalf("NodeType() = %q, %v", typ, err)
	}

	got, err := NodeToRequest(node)
	if err != nil {
		t.Fatalf("NodeToRequest() error = %v", err)
	}
	if !reflect.DeepEqual(got, req) {
		t.Errorf("NodeToRequest() = %+v, want %+v", got, req)
	}
}

func TestNodeRoundTrip_Response(t *testing.T) {
	resp := &Response{Version: "HTTP/1.1", Status: "200", Message: "OK", Fields: []string{"A: b"}, Body: "hi"}

	got, err := NodeToResponse(ResponseToNode(resp))
	if err != nil {
		t.Fatalf("NodeToResponse() error = %v", err)
	}
	if !reflect.DeepEqual(got, resp) {
		t.Errorf("NodeToResponse() = %+v, want %+v", got, resp)
	}
}

func TestNodeToRequest_Errors(t *testing.T) {
	if _, err := NodeToRequest(ast.NewLiteralNode("x", zeroPos)); err == nil {
		t.Error("expected error for non-object node")
	}

	bad := ast.NewObjectNode(map[string]ast.SchemaNode{
		"fields": ast.NewLiteralNode("Host: a", zeroPos),
	}, zeroPos)
	if _, err := NodeToRequest(bad); err == nil {
		t.Error("expected error for non-array fields")
	}

	badElem := ast.NewObjectNode(map[string]ast.SchemaNode{
		"fields": ast.NewArrayDataNode([]ast.SchemaNode{ast.NewLiteralNode(int64(1), zeroPos)}, zeroPos),
	}, zeroPos)
	if _, err := NodeToResponse(badElem); err == nil {
		t.Error("expected error for non-string field element")
	}
}

func TestNodeType_Errors(t *testing.T) {
	if _, err := NodeType(ast.NewObjectNode(map[string]ast.SchemaNode{}, zeroPos)); err == nil {
		t.Error("expected error for missing type")
	}
	typed := ast.NewObjectNode(map[string]ast.SchemaNode{"type": ast.NewLiteralNode(int64(3), zeroPos)}, zeroPos)
	if _, err := NodeType(typed); err == nil {
		t.Error("expected error for non-string type")
	}
}
