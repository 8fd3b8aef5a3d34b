package diagnostics

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/targetspec/pkg/types"
)

// CodePrefix namespaces diagnostic codes produced from parse errors.
const CodePrefix = "targetspec::"

// OriginExpression marks diagnostics whose source is an ad-hoc expression
// rather than a file.
const OriginExpression = "<expression>"

// labelMessages maps parse error kinds to the message rendered under the
// caret.
var labelMessages = map[string]string{
	types.ParseKindUnexpectedEOF:    "input ends here",
	types.ParseKindUnexpectedToken:  "not valid here",
	types.ParseKindUnbalancedParen:  "expected a closing parenthesis",
	types.ParseKindUnknownPredicate: "not a recognized cfg() predicate",
	types.ParseKindBadString:        "string is never closed",
	types.ParseKindTrailingContent:  "extra input",
	types.ParseKindNotArity:         "extra operand",
	types.ParseKindUnknownTriple:    "not a recognized target triple",
	types.ParseKindEmptyExpression:  "nothing to parse",
}

// flagSugar lists the bare idents considered when suggesting predicate
// fixes alongside the key = "value" predicate names.
var flagSugar = []string{types.FamilyUnix, types.FamilyWindows}

// FromParseError adapts a positioned parse error into a renderable
// diagnostic. origin names the file the input came from; pass "" for
// ad-hoc expressions. Returns false when err is not a *types.ParseError.
func FromParseError(err error, origin string) (*Diagnostic, bool) {
	var perr *types.ParseError
	if !errors.As(err, &perr) {
		return nil, false
	}
	if origin == "" {
		origin = OriginExpression
	}

	d := &Diagnostic{
		Severity: Error,
		Code:     CodePrefix + perr.Kind,
		Message:  perr.Message,
		Source:   perr.Input,
		Origin:   origin,
		Labels: []Label{{
			Span:    Span{Offset: perr.Offset, Length: perr.Length},
			Message: labelMessages[perr.Kind],
		}},
	}
	d.Help = helpFor(perr)
	return d, true
}

// helpFor builds a kind-specific help line, empty when there is nothing
// useful to say.
func helpFor(perr *types.ParseError) string {
	switch perr.Kind {
	case types.ParseKindUnknownPredicate:
		bad := spanText(perr)
		candidates := append(append([]string(nil), types.KnownPredicates...), flagSugar...)
		if name, ok := suggest(bad, candidates, 2); ok {
			return fmt.Sprintf("did you mean `%s`?", name)
		}
		return "see cfg() reference for the recognized predicate keys"
	case types.ParseKindUnknownTriple:
		return "builtin triples follow the arch-vendor-os-env layout, e.g. x86_64-unknown-linux-gnu"
	case types.ParseKindNotArity:
		return "not() takes exactly one operand; wrap alternatives in any() or all()"
	case types.ParseKindBadString:
		return `cfg() values are double-quoted, e.g. target_os = "linux"`
	case types.ParseKindEmptyExpression:
		return "pass a target triple or a cfg() expression"
	}
	return ""
}

// spanText extracts the offending bytes named by the error's span.
func spanText(perr *types.ParseError) string {
	start := perr.Offset
	end := start + perr.Length
	if start < 0 || start >= len(perr.Input) {
		return ""
	}
	if end > len(perr.Input) {
		end = len(perr.Input)
	}
	return perr.Input[start:end]
}
