// Package parser maps the token stream produced by the grammar onto request
// and response records, and converts those records to and from shape-core
// AST nodes.
package parser

import (
	"github.com/shapestone/shape-httpmsg/internal/grammar"
)

// Request is a parsed HTTP request.
type Request struct {
	Method  string
	URI     string
	Version string
	Fields  []string // raw "Name: value" lines in input order
}

// Response is a parsed HTTP response.
type Response struct {
	Version string
	Status  string
	Message string
	Fields  []string
	Body    string
}

// StatusLine is the first line of a response.
type StatusLine struct {
	Version string
	Status  string
	Message string
}

// ParseRequest applies the http_request rule to input.
// Errors are *grammar.Error values.
func ParseRequest(input string) (*Request, error) {
	tokens, err := grammar.Parse(grammar.Request, input)
	if err != nil {
		return nil, err
	}

	req := &Request{}
	for _, tok := range tokens {
		switch tok.Rule {
		case grammar.Method:
			req.Method = tok.Text
		case grammar.URI:
			req.URI = tok.Text
		case grammar.Version:
			req.Version = tok.Text
		case grammar.FieldLine:
			req.Fields = append(req.Fields, tok.Text)
		}
	}
	return req, nil
}

// ParseResponse applies the http_response rule to input.
// Errors are *grammar.Error values.
func ParseResponse(input string) (*Response, error) {
	tokens, err := grammar.Parse(grammar.Response, input)
	if err != nil {
		return nil, err
	}

	resp := &Response{}
	for _, tok := range tokens {
		switch tok.Rule {
		case grammar.Version:
			resp.Version = tok.Text
		case grammar.StatusCode:
			resp.Status = tok.Text
		case grammar.StatusMessage:
			resp.Message = tok.Text
		case grammar.FieldLine:
			resp.Fields = append(resp.Fields, tok.Text)
		case grammar.ResponseBody:
			resp.Body = tok.Text
		}
	}
	return resp, nil
}

// ParseStatusLine applies the status_line rule to input.
func ParseStatusLine(input string) (StatusLine, error) {
	tokens, err := grammar.Parse(grammar.StatusLine, input)
	if err != nil {
		return StatusLine{}, err
	}

	var sl StatusLine
	for _, tok := range tokens {
		switch tok.Rule {
		case grammar.Version:
			sl.Version = tok.Text
		case grammar.StatusCode:
			sl.Status = tok.Text
		case grammar.StatusMessage:
			sl.Message = tok.Text
		}
	}
	return sl, nil
}
