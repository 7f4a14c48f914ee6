package http

import (
	"slices"

	"github.com/shapestone/shape-httpmsg/internal/parser"
)

// RequestBuilder accumulates request fields. Setters never validate and
// return the builder for chaining; Build produces an immutable Request.
type RequestBuilder struct {
	req Request
}

// NewRequestBuilder returns an empty request builder.
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{}
}

// SetMethod sets the request method.
func (b *RequestBuilder) SetMethod(method string) *RequestBuilder {
	b.req.method = method
	return b
}

// SetURI sets the request target.
func (b *RequestBuilder) SetURI(uri string) *RequestBuilder {
	b.req.uri = uri
	return b
}

// SetVersion sets the protocol version.
func (b *RequestBuilder) SetVersion(version string) *RequestBuilder {
	b.req.version = version
	return b
}

// PushFieldLine appends one "Name: value" line.
func (b *RequestBuilder) PushFieldLine(line string) *RequestBuilder {
	b.req.fields = append(b.req.fields, line)
	return b
}

// AppendFields appends lines in order.
func (b *RequestBuilder) AppendFields(lines ...string) *RequestBuilder {
	b.req.fields = append(b.req.fields, lines...)
	return b
}

// Build returns the accumulated request. The builder may be reused; later
// calls do not affect requests already built.
func (b *RequestBuilder) Build() Request {
	req := b.req
	req.fields = slices.Clone(b.req.fields)
	return req
}

// ResponseBuilder accumulates response fields. Setters never validate and
// return the builder for chaining; Build produces an immutable Response.
type ResponseBuilder struct {
	resp Response
}

// NewResponseBuilder returns an empty response builder.
func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{}
}

// SetVersion sets the protocol version.
func (b *ResponseBuilder) SetVersion(version string) *ResponseBuilder {
	b.resp.version = version
	return b
}

// SetStatusCode sets the numeric status code.
func (b *ResponseBuilder) SetStatusCode(status string) *ResponseBuilder {
	b.resp.status = status
	return b
}

// SetMessage sets the reason phrase.
func (b *ResponseBuilder) SetMessage(message string) *ResponseBuilder {
	b.resp.message = message
	return b
}

// SetBody sets the body verbatim.
func (b *ResponseBuilder) SetBody(body string) *ResponseBuilder {
	b.resp.body = body
	return b
}

// PushFieldLine appends one "Name: value" line.
func (b *ResponseBuilder) PushFieldLine(line string) *ResponseBuilder {
	b.resp.fields = append(b.resp.fields, line)
	return b
}

// AppendFields appends lines in order.
func (b *ResponseBuilder) AppendFields(lines ...string) *ResponseBuilder {
	b.resp.fields = append(b.resp.fields, lines...)
	return b
}

// SetStatusLine parses line with the status_line rule and sets version,
// status and message from it. On failure it returns a *ParseError and the
// builder is left unchanged.
func (b *ResponseBuilder) SetStatusLine(line string) error {
	sl, err := parser.ParseStatusLine(line)
	if err != nil {
		return newParseError(line, err)
	}
	b.resp.version = sl.Version
	b.resp.status = sl.Status
	b.resp.message = sl.Message
	return nil
}

// Build returns the accumulated response. The builder may be reused; later
// calls do not affect responses already built.
func (b *ResponseBuilder) Build() Response {
	resp := b.resp
	resp.fields = slices.Clone(b.resp.fields)
	return resp
}
