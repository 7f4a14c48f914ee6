package tokenizer

import (
	"strings"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for HTTP start lines and field lines.
// Matchers are tried in order:
// 1. CRLF
// 2. SP
// 3. Colon
// 4. HTTP version
// 5. Text (everything else up to SP, CR, LF or colon)
//
// Whitespace is significant in HTTP, so no whitespace skipper is installed.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		CRLFMatcher(),
		SPMatcher(),
		tokenizer.StringMatcherFunc(TokenColon, ":"),
		VersionMatcher(),
		TextMatcher(),
	)
}

// NewTokenizerWithStream creates a tokenizer over a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// Classify reports whether data starts with a status line (a leading version
// token) or a request line. Only the first line is lexed.
func Classify(data string) MessageKind {
	line := data
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	if line == "" {
		return KindRequest
	}

	tok := NewTokenizer()
	tok.Initialize(line)
	tokens, _ := tok.Tokenize()
	if len(tokens) > 0 && tokens[0].Kind() == TokenVersion {
		return KindResponse
	}
	return KindRequest
}

// CRLFMatcher matches the two-character sequence \r\n.
func CRLFMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '\r' {
			return nil
		}
		stream.NextChar()
		r, ok = stream.PeekChar()
		if !ok || r != '\n' {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenCRLF, []rune{'\r', '\n'})
	}
}

// SPMatcher matches a single space character.
func SPMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != ' ' {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenSP, []rune{' '})
	}
}

// VersionMatcher matches "HTTP/" followed by digits and dots.
func VersionMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for _, expected := range "HTTP/" {
			r, ok := stream.PeekChar()
			if !ok || r != expected {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}

		for {
			r, ok := stream.PeekChar()
			if !ok || !((r >= '0' && r <= '9') || r == '.') {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		return tokenizer.NewToken(TokenVersion, value)
	}
}

// TextMatcher matches any run of characters up to SP, CR, LF, colon or end
// of stream.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || r == ' ' || r == '\r' || r == '\n' || r == ':' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenText, value)
	}
}
