// Recursive descent parser for the target spec grammar:
//
//	spec  := triple | "cfg" "(" expr ")"
//	expr  := "all" "(" list ")" | "any" "(" list ")" | "not" "(" expr ")" | pred
//	list  := ε | expr ("," expr)* ","?
//	pred  := ident | ident "=" string
package parser

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/targetspec/pkg/types"
)

// Parse parses a target spec string into an expression tree. Errors are
// always *types.ParseError with a span into the input.
func Parse(input string) (types.Expr, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, types.NewParseError(input, 0, 1,
			types.ParseKindEmptyExpression, "empty target spec")
	}

	p := &parser{input: input, lex: newLexer(input)}
	p.advance()

	if p.cur.kind == tokIdent && p.cur.text == "cfg" && p.peekIs(tokLParen) {
		return p.parseCfg()
	}
	return p.parseBareTriple(trimmed)
}

// parser holds one token of lookahead over the lexer.
type parser struct {
	input string
	lex   *lexer
	cur   token
	ahead *token
}

func (p *parser) advance() {
	if p.ahead != nil {
		p.cur = *p.ahead
		p.ahead = nil
		return
	}
	p.cur = p.lex.next()
}

func (p *parser) peek() token {
	if p.ahead == nil {
		tok := p.lex.next()
		p.ahead = &tok
	}
	return *p.ahead
}

func (p *parser) peekIs(kind tokenKind) bool {
	return p.peek().kind == kind
}

// parseBareTriple handles the non-cfg form: the whole input is one triple
// string, resolved leniently.
func (p *parser) parseBareTriple(trimmed string) (types.Expr, error) {
	start := strings.Index(p.input, trimmed)
	if i := strings.IndexAny(trimmed, " \t()=,\""); i >= 0 {
		return nil, types.NewParseError(p.input, start+i, 1,
			types.ParseKindUnexpectedToken,
			fmt.Sprintf("unexpected character %q in target triple", trimmed[i]))
	}
	triple, err := types.ParseTriple(trimmed)
	if err != nil {
		return nil, types.NewParseError(p.input, start, len(trimmed),
			types.ParseKindUnknownTriple,
			fmt.Sprintf("unrecognized target triple %q", trimmed))
	}
	return &types.TripleExpr{Triple: triple}, nil
}

// parseCfg parses "cfg" "(" expr ")" and rejects trailing input.
func (p *parser) parseCfg() (types.Expr, error) {
	p.advance() // cfg
	p.advance() // (

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.cur.kind != tokRParen {
		return nil, p.closeParenError()
	}
	p.advance()

	if p.cur.kind != tokEOF {
		return nil, types.NewParseError(p.input, p.cur.offset, len(p.input)-p.cur.offset,
			types.ParseKindTrailingContent, "unexpected input after cfg() expression")
	}
	return expr, nil
}

// parseExpr parses one expression: an operator call or a predicate.
func (p *parser) parseExpr() (types.Expr, error) {
	if p.cur.kind == tokError {
		return nil, p.cur.err
	}
	if p.cur.kind == tokEOF {
		return nil, types.NewParseError(p.input, p.cur.offset, 1,
			types.ParseKindUnexpectedEOF, "expected an expression")
	}
	if p.cur.kind != tokIdent {
		return nil, types.NewParseError(p.input, p.cur.offset, p.cur.length,
			types.ParseKindUnexpectedToken,
			fmt.Sprintf("expected an expression, found %q", p.cur.text))
	}

	name := p.cur
	switch {
	case name.text == "all" && p.peekIs(tokLParen):
		p.advance()
		p.advance()
		operands, err := p.parseList()
		if err != nil {
			return nil, err
		}
		return &types.AllExpr{Operands: operands}, nil

	case name.text == "any" && p.peekIs(tokLParen):
		p.advance()
		p.advance()
		operands, err := p.parseList()
		if err != nil {
			return nil, err
		}
		return &types.AnyExpr{Operands: operands}, nil

	case name.text == "not" && p.peekIs(tokLParen):
		p.advance()
		p.advance()
		return p.parseNot()
	}

	return p.parsePred()
}

// parseNot parses the operand list of not(...), which must be exactly one
// expression.
func (p *parser) parseNot() (types.Expr, error) {
	operand, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokComma {
		p.advance()
		if p.cur.kind != tokRParen {
			extraStart := p.cur.offset
			if _, err := p.parseExpr(); err != nil {
				return nil, err
			}
			extraEnd := p.cur.offset
			if extraEnd <= extraStart {
				extraEnd = extraStart + 1
			}
			return nil, types.NewParseError(p.input, extraStart, extraEnd-extraStart,
				types.ParseKindNotArity, "not() takes exactly one operand")
		}
	}
	if p.cur.kind != tokRParen {
		return nil, p.closeParenError()
	}
	p.advance()
	return &types.NotExpr{Operand: operand}, nil
}

// parseList parses a possibly empty comma-separated operand list up to the
// closing paren, which is consumed. A trailing comma is allowed.
func (p *parser) parseList() ([]types.Expr, error) {
	var operands []types.Expr
	for {
		if p.cur.kind == tokRParen {
			p.advance()
			return operands, nil
		}
		if p.cur.kind == tokEOF {
			return nil, p.closeParenError()
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		operands = append(operands, expr)

		switch p.cur.kind {
		case tokComma:
			p.advance()
		case tokRParen:
			// Closed on the next loop iteration.
		case tokEOF:
			return nil, p.closeParenError()
		default:
			return nil, types.NewParseError(p.input, p.cur.offset, p.cur.length,
				types.ParseKindUnexpectedToken,
				fmt.Sprintf("expected %q or %q, found %q", ",", ")", p.cur.text))
		}
	}
}

// parsePred parses a bare flag ident or a key = "value" predicate. The
// current token is the ident.
func (p *parser) parsePred() (types.Expr, error) {
	name := p.cur
	p.advance()

	if p.cur.kind != tokEquals {
		return &types.FlagExpr{Name: name.text}, nil
	}
	p.advance() // =

	if !types.KnownPredicate(name.text) {
		return nil, types.NewParseError(p.input, name.offset, name.length,
			types.ParseKindUnknownPredicate,
			fmt.Sprintf("unknown predicate `%s`", name.text))
	}

	switch p.cur.kind {
	case tokString:
		value := p.cur.text
		p.advance()
		return &types.PredExpr{Key: name.text, Value: value}, nil
	case tokError:
		return nil, p.cur.err
	case tokEOF:
		return nil, types.NewParseError(p.input, p.cur.offset, 1,
			types.ParseKindUnexpectedEOF, "expected a string value")
	default:
		return nil, types.NewParseError(p.input, p.cur.offset, p.cur.length,
			types.ParseKindUnexpectedToken,
			fmt.Sprintf("expected a string value, found %q", p.cur.text))
	}
}

// closeParenError reports a missing closing paren: unbalanced-paren at EOF,
// unexpected-token otherwise.
func (p *parser) closeParenError() *types.ParseError {
	if p.cur.kind == tokEOF {
		return types.NewParseError(p.input, p.cur.offset, 1,
			types.ParseKindUnbalancedParen, "unbalanced parenthesis: expected \")\"")
	}
	if p.cur.kind == tokError {
		return p.cur.err
	}
	return types.NewParseError(p.input, p.cur.offset, p.cur.length,
		types.ParseKindUnexpectedToken,
		fmt.Sprintf("expected %q, found %q", ")", p.cur.text))
}
