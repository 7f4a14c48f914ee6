// Package tokenizer lexes HTTP start lines with Shape's tokenizer framework.
package tokenizer

// Token kinds produced by NewTokenizer.
const (
	TokenText    = "Text"    // method, uri, status code, reason words, header names
	TokenVersion = "Version" // HTTP/1.1
	TokenColon   = "Colon"   // :
	TokenSP      = "SP"      // single space
	TokenCRLF    = "CRLF"    // \r\n only; a bare \r or \n is not a terminator
)

// MessageKind classifies a message by its start line.
type MessageKind string

const (
	KindRequest  MessageKind = "request"
	KindResponse MessageKind = "response"
)
