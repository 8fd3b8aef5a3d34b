// Package parser turns target spec strings into pkg/types expression trees.
package parser

import "github.com/mesh-intelligence/targetspec/pkg/types"

// Token kinds produced by the lexer.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokLParen
	tokRParen
	tokComma
	tokEquals
	tokError
)

// token is a lexed unit with its byte span in the input.
type token struct {
	kind   tokenKind
	text   string // ident text or string literal contents (quotes stripped)
	offset int
	length int
	err    *types.ParseError // set when kind is tokError
}

// lexer scans cfg() expression input. Whitespace separates tokens and is
// otherwise ignored.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// next returns the next token. After EOF it keeps returning EOF.
func (l *lexer) next() token {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return token{kind: tokEOF, offset: len(l.input), length: 1}
	}

	start := l.pos
	switch c := l.input[l.pos]; c {
	case '(':
		l.pos++
		return token{kind: tokLParen, text: "(", offset: start, length: 1}
	case ')':
		l.pos++
		return token{kind: tokRParen, text: ")", offset: start, length: 1}
	case ',':
		l.pos++
		return token{kind: tokComma, text: ",", offset: start, length: 1}
	case '=':
		l.pos++
		return token{kind: tokEquals, text: "=", offset: start, length: 1}
	case '"':
		return l.lexString()
	default:
		if isIdentChar(c) {
			return l.lexIdent()
		}
		l.pos++
		return token{
			kind:   tokError,
			offset: start,
			length: 1,
			err: types.NewParseError(l.input, start, 1,
				types.ParseKindUnexpectedToken, "unexpected character "+string(c)),
		}
	}
}

// lexString scans a double-quoted string literal. cfg strings carry no
// escape sequences, so the literal runs to the next quote.
func (l *lexer) lexString() token {
	start := l.pos
	l.pos++ // opening quote
	for l.pos < len(l.input) {
		if l.input[l.pos] == '"' {
			l.pos++
			return token{
				kind:   tokString,
				text:   l.input[start+1 : l.pos-1],
				offset: start,
				length: l.pos - start,
			}
		}
		l.pos++
	}
	return token{
		kind:   tokError,
		offset: start,
		length: len(l.input) - start,
		err: types.NewParseError(l.input, start, len(l.input)-start,
			types.ParseKindBadString, "unterminated string literal"),
	}
}

// lexIdent scans an identifier: letters, digits, underscores, and hyphens.
func (l *lexer) lexIdent() token {
	start := l.pos
	for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
		l.pos++
	}
	return token{
		kind:   tokIdent,
		text:   l.input[start:l.pos],
		offset: start,
		length: l.pos - start,
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '-' || c == '.' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
