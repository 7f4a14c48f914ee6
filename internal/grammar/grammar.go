package grammar

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Token is a slice of the input recognized by a named rule.
type Token struct {
	Rule  Rule
	Text  string
	Start int // byte offset of the first character
	End   int // byte offset just past the last character
}

// Error reports where and why a rule failed to match the input.
type Error struct {
	Rule     Rule     // innermost rule being matched at Offset
	Expected []string // labels of what would have allowed matching to continue
	Offset   int      // byte offset of the furthest failure
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("expected %s at offset %d in %s", e.ExpectedString(), e.Offset, e.Rule)
}

// ExpectedString joins the expected labels for display.
func (e *Error) ExpectedString() string {
	if len(e.Expected) == 0 {
		return "nothing"
	}
	return strings.Join(e.Expected, " or ")
}

// Parse applies rule to the whole of input.
//
// On success the returned tokens are in document order; a token for an
// enclosing rule precedes the tokens of the rules nested inside it. On
// failure the error is an *Error.
func Parse(rule Rule, input string) ([]Token, error) {
	if !rule.valid() {
		return nil, fmt.Errorf("grammar: unknown rule %d", int(rule))
	}

	s := &state{input: input, top: rule, furthest: -1}
	if _, ok := seq(ref(rule), eoi{}).match(s, 0); !ok {
		return nil, &Error{
			Rule:     s.context,
			Expected: s.expected,
			Offset:   s.furthest,
		}
	}
	return s.tokens, nil
}

// Match reports whether rule accepts the whole of input.
func Match(rule Rule, input string) bool {
	_, err := Parse(rule, input)
	return err == nil
}

type state struct {
	input  string
	tokens []Token
	stack  []Rule
	top    Rule

	furthest int
	expected []string
	context  Rule
}

func (s *state) current() Rule {
	if len(s.stack) == 0 {
		return s.top
	}
	return s.stack[len(s.stack)-1]
}

// fail records a failed attempt to match label at pos. Only failures at the
// furthest offset seen so far are kept; the context is the rule of the most
// recent of them.
func (s *state) fail(pos int, label string) {
	switch {
	case pos > s.furthest:
		s.furthest = pos
		s.expected = append(s.expected[:0], label)
		s.context = s.current()
	case pos == s.furthest:
		if !slices.Contains(s.expected, label) {
			s.expected = append(s.expected, label)
		}
		s.context = s.current()
	}
}

type expr interface {
	match(s *state, pos int) (int, bool)
}

type literal string

func lit(text string) expr { return literal(text) }

func (l literal) match(s *state, pos int) (int, bool) {
	if strings.HasPrefix(s.input[pos:], string(l)) {
		return pos + len(l), true
	}
	s.fail(pos, strconv.Quote(string(l)))
	return pos, false
}

type charClass struct {
	label  string
	accept func(byte) bool
}

func class(label string, accept func(byte) bool) expr {
	return charClass{label: label, accept: accept}
}

func (c charClass) match(s *state, pos int) (int, bool) {
	if pos < len(s.input) && c.accept(s.input[pos]) {
		return pos + 1, true
	}
	s.fail(pos, c.label)
	return pos, false
}

type sequence []expr

func seq(exprs ...expr) expr { return sequence(exprs) }

func (q sequence) match(s *state, pos int) (int, bool) {
	start := pos
	mark := len(s.tokens)
	for _, e := range q {
		next, ok := e.match(s, pos)
		if !ok {
			s.tokens = s.tokens[:mark]
			return start, false
		}
		pos = next
	}
	return pos, true
}

// ordered choice: the first alternative that matches wins
type alternatives []expr

func choice(exprs ...expr) expr { return alternatives(exprs) }

func (a alternatives) match(s *state, pos int) (int, bool) {
	for _, e := range a {
		if next, ok := e.match(s, pos); ok {
			return next, true
		}
	}
	return pos, false
}

type repeat struct {
	e   expr
	min int
}

func star(e expr) expr { return repeat{e: e} }

func plus(e expr) expr { return repeat{e: e, min: 1} }

func (r repeat) match(s *state, pos int) (int, bool) {
	start := pos
	mark := len(s.tokens)
	n := 0
	for {
		next, ok := r.e.match(s, pos)
		if !ok || next == pos {
			break
		}
		pos = next
		n++
	}
	if n < r.min {
		s.tokens = s.tokens[:mark]
		return start, false
	}
	return pos, true
}

type optional struct{ e expr }

func opt(e expr) expr { return optional{e: e} }

func (o optional) match(s *state, pos int) (int, bool) {
	if next, ok := o.e.match(s, pos); ok {
		return next, true
	}
	return pos, true
}

// rest consumes everything up to the end of input.
type rest struct{}

func (rest) match(s *state, pos int) (int, bool) {
	return len(s.input), true
}

type eoi struct{}

func (eoi) match(s *state, pos int) (int, bool) {
	if pos == len(s.input) {
		return pos, true
	}
	s.fail(pos, "end of input")
	return pos, false
}

// ruleRef matches a named rule and records a token for it.
type ruleRef Rule

func ref(r Rule) expr { return ruleRef(r) }

func (r ruleRef) match(s *state, pos int) (int, bool) {
	rule := Rule(r)
	mark := len(s.tokens)
	s.tokens = append(s.tokens, Token{Rule: rule, Start: pos})

	prevFurthest, prevExpected := s.furthest, len(s.expected)
	s.stack = append(s.stack, rule)
	end, ok := rules[rule].match(s, pos)
	s.stack = s.stack[:len(s.stack)-1]

	if !ok {
		s.tokens = s.tokens[:mark]
		// Nothing got past the start of this rule: report the rule by name
		// instead of the first terminal inside it.
		if s.furthest == pos {
			if prevFurthest != pos {
				prevExpected = 0
			}
			s.expected = s.expected[:prevExpected]
			if !slices.Contains(s.expected, rule.String()) {
				s.expected = append(s.expected, rule.String())
			}
			s.context = s.current()
		}
		return pos, false
	}

	s.tokens[mark].Text = s.input[pos:end]
	s.tokens[mark].End = end
	return end, true
}
