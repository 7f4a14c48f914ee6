// Package grammar defines the HTTP/1.1 message grammar as a set of named
// parsing-expression rules and applies them to input text.
//
// Every rule is anchored: Parse succeeds only when the rule consumes the whole
// input. A successful parse yields the recognized tokens in document order,
// each tagged with the rule that produced it. A failed parse yields an *Error
// describing the furthest offset reached and what was expected there.
//
// The rules never backtrack into a completed repetition (PEG semantics), so a
// parse is linear in the input length. Header blocks of any size cannot
// trigger exponential work.
package grammar

import "strconv"

// Rule identifies a named grammar rule.
type Rule int

const (
	Method Rule = iota
	URI
	VersionNumber
	Version
	FieldName
	FieldValue
	FieldLine
	Field
	StatusCode
	StatusMessage
	StatusLine
	RequestLine
	Request
	Response
	ResponseBody

	ruleCount
)

var ruleNames = [ruleCount]string{
	Method:        "method",
	URI:           "uri",
	VersionNumber: "version_number",
	Version:       "version",
	FieldName:     "field_name",
	FieldValue:    "field_value",
	FieldLine:     "field_line",
	Field:         "field",
	StatusCode:    "status_code",
	StatusMessage: "status_message",
	StatusLine:    "status_line",
	RequestLine:   "request_line",
	Request:       "http_request",
	Response:      "http_response",
	ResponseBody:  "response_body",
}

// String returns the rule name as used in diagnostics.
func (r Rule) String() string {
	if !r.valid() {
		return "rule(" + strconv.Itoa(int(r)) + ")"
	}
	return ruleNames[r]
}

func (r Rule) valid() bool {
	return r >= 0 && r < ruleCount
}

// Lookup returns the rule with the given name.
func Lookup(name string) (Rule, bool) {
	for r, n := range ruleNames {
		if n == name {
			return Rule(r), true
		}
	}
	return 0, false
}

// Rules returns every defined rule in declaration order.
func Rules() []Rule {
	out := make([]Rule, ruleCount)
	for i := range out {
		out[i] = Rule(i)
	}
	return out
}

var rules [ruleCount]expr

// Rule bodies reference each other through ref, so they are wired in init
// rather than in the var block.
func init() {
	crlf := lit("\r\n")
	sp := lit(" ")
	digits := plus(class("digit", isDigit))

	rules[Method] = plus(class("uppercase letter", isUpper))

	rules[URI] = seq(lit("/"), star(class("uri character", isURIChar)))

	rules[VersionNumber] = seq(digits, plus(seq(lit("."), digits)))

	rules[Version] = seq(lit("HTTP/"), ref(VersionNumber))

	// A name is any run of letters, digits and hyphens that ends in a letter
	// or digit.
	rules[FieldName] = plus(seq(star(lit("-")), class("letter or digit", isAlnum)))

	rules[FieldValue] = star(class("field value character", isLineChar))

	rules[FieldLine] = seq(ref(FieldName), lit(": "), ref(FieldValue))

	// No terminator after the last line.
	rules[Field] = seq(ref(FieldLine), star(seq(crlf, ref(FieldLine))))

	rules[StatusCode] = digits

	rules[StatusMessage] = plus(class("reason phrase character", isLineChar))

	rules[StatusLine] = seq(ref(Version), sp, ref(StatusCode), sp, ref(StatusMessage))

	rules[RequestLine] = seq(ref(Method), sp, ref(URI), sp, ref(Version))

	rules[Request] = seq(
		ref(RequestLine),
		choice(
			seq(crlf, ref(Field), opt(crlf)),
			crlf,
		),
	)

	rules[Response] = seq(
		ref(StatusLine), crlf,
		ref(Field), crlf,
		crlf,
		ref(ResponseBody),
	)

	rules[ResponseBody] = rest{}
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlnum(c byte) bool {
	return isDigit(c) || isUpper(c) || (c >= 'a' && c <= 'z')
}

// isURIChar accepts visible ASCII except the reserved '{' and '\'.
func isURIChar(c byte) bool {
	return c > ' ' && c < 0x7f && c != '{' && c != '\\'
}

func isLineChar(c byte) bool { return c != '\r' && c != '\n' }
