package types

import "fmt"

// ParseError kinds. Stable machine codes carried by diagnostics and JSON
// output.
const (
	ParseKindUnexpectedEOF    = "unexpected-eof"
	ParseKindUnexpectedToken  = "unexpected-token"
	ParseKindUnbalancedParen  = "unbalanced-paren"
	ParseKindUnknownPredicate = "unknown-predicate"
	ParseKindBadString        = "bad-string"
	ParseKindTrailingContent  = "trailing-content"
	ParseKindNotArity         = "not-arity"
	ParseKindUnknownTriple    = "unknown-triple"
	ParseKindEmptyExpression  = "empty-expression"
)

// ParseError is a positioned parse failure. Offset and Length identify the
// offending bytes inside Input so callers can render a span.
type ParseError struct {
	Input   string // full original spec string
	Offset  int    // byte offset of the offending token
	Length  int    // token length, at least 1
	Kind    string // one of the ParseKind constants
	Message string // human-readable description
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q at offset %d: %s", e.Input, e.Offset, e.Message)
}

// Unwrap maps kinds with a sentinel equivalent onto that sentinel so
// errors.Is works at package boundaries.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case ParseKindUnknownTriple:
		return ErrUnknownTriple
	case ParseKindEmptyExpression:
		return ErrEmptyExpression
	}
	return nil
}

// NewParseError builds a ParseError with the span clamped to the input.
// A zero or negative length becomes 1; an offset past the end of input is
// clamped to len(input) (EOF position).
func NewParseError(input string, offset, length int, kind, message string) *ParseError {
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}
	if length < 1 {
		length = 1
	}
	if offset+length > len(input)+1 {
		length = len(input) + 1 - offset
		if length < 1 {
			length = 1
		}
	}
	return &ParseError{
		Input:   input,
		Offset:  offset,
		Length:  length,
		Kind:    kind,
		Message: message,
	}
}
