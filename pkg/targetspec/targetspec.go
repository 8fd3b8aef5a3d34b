// Package targetspec provides the public API for parsing and evaluating
// target spec expressions. Parsing details live in internal/parser; this
// package exposes the stable entry points.
package targetspec

import (
	"github.com/mesh-intelligence/targetspec/internal/parser"
	"github.com/mesh-intelligence/targetspec/pkg/types"
)

// Version is the targetspec release version.
const Version = "v0.3.0"

// Parse parses a target spec string: either a plain target triple or a
// cfg() expression. Errors are *types.ParseError values carrying a byte
// span into the input.
//
// Example:
//
//	expr, err := targetspec.Parse(`cfg(all(unix, target_arch = "x86_64"))`)
func Parse(s string) (types.Expr, error) {
	return parser.Parse(s)
}

// MustParse is Parse that panics on error. For expressions known valid at
// compile time, such as package-level variables in tests.
func MustParse(s string) types.Expr {
	expr, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return expr
}

// Matches parses a target spec and evaluates it against a platform in one
// call. Returns types.ErrUnknownEval when the platform does not carry
// enough feature knowledge to decide.
func Matches(s string, p *types.Platform) (bool, error) {
	expr, err := Parse(s)
	if err != nil {
		return false, err
	}
	return types.Matches(expr, p)
}
