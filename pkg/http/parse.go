package http

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/shapestone/shape-httpmsg/internal/grammar"
	"github.com/shapestone/shape-httpmsg/internal/parser"
	"github.com/shapestone/shape-httpmsg/internal/tokenizer"
)

// ParseRequest parses raw as a complete request.
//
// The request line must be followed by "\r\n". Field lines, if any, follow
// that terminator and are separated by "\r\n"; a terminator after the last
// field line is optional. Anything else is rejected with a *ParseError.
func ParseRequest(raw string) (Request, error) {
	rec, err := parser.ParseRequest(raw)
	if err != nil {
		return Request{}, newParseError(raw, err)
	}
	return requestFromRecord(rec), nil
}

// ParseResponse parses raw as a complete response: status line, at least one
// field line, a blank line, then the body (everything that remains).
func ParseResponse(raw string) (Response, error) {
	rec, err := parser.ParseResponse(raw)
	if err != nil {
		return Response{}, newParseError(raw, err)
	}
	return responseFromRecord(rec), nil
}

// ParseStatusLine parses a lone status line such as "HTTP/1.1 200 OK".
func ParseStatusLine(line string) (StatusLine, error) {
	sl, err := parser.ParseStatusLine(line)
	if err != nil {
		return StatusLine{}, newParseError(line, err)
	}
	return StatusLine(sl), nil
}

// ParseRequestReader reads all data from r and parses it as a request.
func ParseRequestReader(r io.Reader) (Request, error) {
	data, err := readAll(r)
	if err != nil {
		return Request{}, err
	}
	return ParseRequest(string(data))
}

// ParseResponseReader reads all data from r and parses it as a response.
func ParseResponseReader(r io.Reader) (Response, error) {
	data, err := readAll(r)
	if err != nil {
		return Response{}, err
	}
	return ParseResponse(string(data))
}

// MatchRule applies a single named grammar rule to the whole of text.
// Rule names are those reported by RuleNames, e.g. "method", "uri",
// "version_number", "field_name", "field".
// Returns nil on a match, a *ParseError on a mismatch.
func MatchRule(rule, text string) error {
	r, ok := grammar.Lookup(rule)
	if !ok {
		return errors.Newf("http: unknown grammar rule %q", rule)
	}
	if _, err := grammar.Parse(r, text); err != nil {
		return newParseError(text, err)
	}
	return nil
}

// RuleNames returns the names of all grammar rules.
func RuleNames() []string {
	return lo.Map(grammar.Rules(), func(r grammar.Rule, _ int) string {
		return r.String()
	})
}

// DetectMessageType returns "request" or "response" based on the start line.
// A start line beginning with an HTTP version token is a response; everything
// else is a request.
func DetectMessageType(data []byte) string {
	return string(tokenizer.Classify(string(data)))
}

func requestFromRecord(rec *parser.Request) Request {
	return Request{
		method:  rec.Method,
		uri:     rec.URI,
		version: rec.Version,
		fields:  rec.Fields,
	}
}

func responseFromRecord(rec *parser.Response) Response {
	return Response{
		version: rec.Version,
		status:  rec.Status,
		message: rec.Message,
		fields:  rec.Fields,
		body:    rec.Body,
	}
}

func requestToRecord(req *Request) *parser.Request {
	return &parser.Request{
		Method:  req.method,
		URI:     req.uri,
		Version: req.version,
		Fields:  req.fields,
	}
}

func responseToRecord(resp *Response) *parser.Response {
	return &parser.Response{
		Version: resp.version,
		Status:  resp.status,
		Message: resp.message,
		Fields:  resp.fields,
		Body:    resp.body,
	}
}
