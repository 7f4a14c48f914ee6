// Package http parses raw HTTP/1.1 request and response messages into typed
// values and renders those values back into wire-format text.
//
// Parsing is driven by a small anchored grammar: a message is accepted only
// when every byte of the input matches. Line terminators are always the two
// characters "\r\n"; a bare "\n" never terminates a line. Header lines are
// kept verbatim, in input order, as "Name: value" strings. Bodies are kept
// verbatim.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Request and Response are immutable values; builders are not safe for
// concurrent use.
//
// # Parsing APIs
//
//   - ParseRequest/ParseResponse/ParseStatusLine - typed values or a *ParseError
//   - Unmarshal - fill a *Request or *Response
//   - Parse/ParseReader - AST view via shape-core
//   - Validate/MatchRule - acceptance checks without building values
package http

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Request is an HTTP/1.1 request: a request line plus optional field lines.
// The zero value is an empty, incomplete request. Build one with
// NewRequestBuilder or ParseRequest.
type Request struct {
	method  string
	uri     string
	version string
	fields  Fields
}

// Method returns the request method, e.g. "GET".
func (r Request) Method() string { return r.method }

// URI returns the request target, e.g. "/index.html".
func (r Request) URI() string { return r.uri }

// Version returns the protocol version, e.g. "HTTP/1.1".
func (r Request) Version() string { return r.version }

// Fields returns a copy of the field lines in order.
func (r Request) Fields() Fields { return slices.Clone(r.fields) }

// IsComplete reports whether method, uri and version are all set.
// Field lines are not required.
func (r Request) IsComplete() bool {
	return r.method != "" && r.uri != "" && r.version != ""
}

// IsValid is an alias of IsComplete.
func (r Request) IsValid() bool { return r.IsComplete() }

// Equal reports whether r and o hold the same start line and field lines.
func (r Request) Equal(o Request) bool {
	return r.method == o.method &&
		r.uri == o.uri &&
		r.version == o.version &&
		slices.Equal(r.fields, o.fields)
}

// String renders the request in wire format.
//
// A request without field lines ends in "\r\n". A request with field lines
// has no terminator after the last one.
func (r Request) String() string {
	return string(appendRequest(make([]byte, 0, r.size()), &r))
}

// Response is an HTTP/1.1 response: status line, field lines and body.
// The zero value is an empty, incomplete response. Build one with
// NewResponseBuilder or ParseResponse.
type Response struct {
	version string
	status  string
	message string
	fields  Fields
	body    string
}

// Version returns the protocol version, e.g. "HTTP/1.1".
func (r Response) Version() string { return r.version }

// Status returns the numeric status code as text, e.g. "200".
func (r Response) Status() string { return r.status }

// Message returns the reason phrase, e.g. "OK".
func (r Response) Message() string { return r.message }

// Fields returns a copy of the field lines in order.
func (r Response) Fields() Fields { return slices.Clone(r.fields) }

// Body returns the raw body text.
func (r Response) Body() string { return r.body }

// IsComplete reports whether version, status and message are set and the
// response carries at least one field line and a non-empty body.
//
// This rejects legitimate responses such as "204 No Content", which have no
// body. The rule is kept as is; callers that accept such responses should
// check the individual getters instead.
func (r Response) IsComplete() bool {
	return r.version != "" &&
		r.status != "" &&
		r.message != "" &&
		len(r.fields) > 0 &&
		r.body != ""
}

// IsValid is an alias of IsComplete.
func (r Response) IsValid() bool { return r.IsComplete() }

// Equal reports whether r and o are identical.
func (r Response) Equal(o Response) bool {
	return r.version == o.version &&
		r.status == o.status &&
		r.message == o.message &&
		r.body == o.body &&
		slices.Equal(r.fields, o.fields)
}

// String renders the response in wire format: status line, field lines, a
// blank line, then the body with no trailing terminator.
func (r Response) String() string {
	return string(appendResponse(make([]byte, 0, r.size()), &r))
}

// StatusLine is the first line of a response.
type StatusLine struct {
	Version string // "HTTP/1.1"
	Status  string // "200"
	Message string // "OK"
}

// Message is the interface shared by Request and Response.
type Message interface {
	Version() string
	Fields() Fields
	IsComplete() bool
	String() string
}

var (
	_ Message = Request{}
	_ Message = Response{}
)

// Fields is an ordered, repeatable list of raw "Name: value" field lines.
// Lines are stored exactly as parsed or pushed; nothing is folded or merged.
type Fields []string

// Names returns the field name of every line, in order.
// Lines without a ": " separator are skipped.
func (f Fields) Names() []string {
	return lo.FilterMap(f, func(line string, _ int) (string, bool) {
		name, _, ok := splitFieldLine(line)
		return name, ok
	})
}

// Get returns the value of the first line whose name matches (case-insensitive).
// Returns empty string if not found.
func (f Fields) Get(name string) string {
	for _, line := range f {
		if n, v, ok := splitFieldLine(line); ok && strings.EqualFold(n, name) {
			return v
		}
	}
	return ""
}

// Values returns the values of all lines whose name matches (case-insensitive).
func (f Fields) Values(name string) []string {
	return lo.FilterMap(f, func(line string, _ int) (string, bool) {
		n, v, ok := splitFieldLine(line)
		return v, ok && strings.EqualFold(n, name)
	})
}

func splitFieldLine(line string) (name, value string, ok bool) {
	return strings.Cut(line, ": ")
}

// Marshaler is the interface implemented by types that can marshal themselves
// into valid HTTP wire format.
type Marshaler interface {
	MarshalHTTP() ([]byte, error)
}

// Unmarshaler is the interface implemented by types that can unmarshal
// an HTTP wire-format description of themselves.
type Unmarshaler interface {
	UnmarshalHTTP([]byte) error
}
