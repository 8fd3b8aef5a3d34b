package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Evaluation errors.
var (
	ErrEmptyExpression = errors.New("empty target spec expression")
	ErrUnknownEval     = errors.New("evaluation result is unknown")
)

// Predicate keys accepted in cfg() key = "value" position. The bare idents
// unix and windows are sugar for the corresponding target_family values;
// any other bare ident is matched against the platform's cfg flags.
const (
	PredTargetOS           = "target_os"
	PredTargetArch         = "target_arch"
	PredTargetVendor       = "target_vendor"
	PredTargetEnv          = "target_env"
	PredTargetABI          = "target_abi"
	PredTargetFamily       = "target_family"
	PredTargetEndian       = "target_endian"
	PredTargetPointerWidth = "target_pointer_width"
	PredTargetFeature      = "target_feature"
	PredPanic              = "panic"
	PredFeature            = "feature"
)

// KnownPredicates lists the recognized key = "value" predicate keys.
var KnownPredicates = []string{
	PredTargetOS,
	PredTargetArch,
	PredTargetVendor,
	PredTargetEnv,
	PredTargetABI,
	PredTargetFamily,
	PredTargetEndian,
	PredTargetPointerWidth,
	PredTargetFeature,
	PredPanic,
	PredFeature,
}

// validPredicates is the set form of KnownPredicates.
var validPredicates = map[string]bool{}

func init() {
	for _, p := range KnownPredicates {
		validPredicates[p] = true
	}
}

// KnownPredicate reports whether key is a recognized predicate key.
func KnownPredicate(key string) bool {
	return validPredicates[key]
}

// Expr is a parsed target spec: either a plain triple or a cfg() boolean
// tree. Eval is three-valued so that unknown feature knowledge propagates
// instead of silently becoming false.
type Expr interface {
	// Eval evaluates the expression against a platform. known is false
	// when the result depends on information the platform does not carry.
	Eval(p *Platform) (value, known bool)

	// String returns a canonical rendering of the expression.
	String() string
}

// Matches evaluates a parsed expression against a platform, folding the
// three-valued result into (bool, error): an unknown result is
// ErrUnknownEval.
func Matches(e Expr, p *Platform) (bool, error) {
	value, known := e.Eval(p)
	if !known {
		return false, ErrUnknownEval
	}
	return value, nil
}

// TripleExpr matches a platform by exact triple string comparison.
type TripleExpr struct {
	Triple Triple
}

func (e *TripleExpr) Eval(p *Platform) (bool, bool) {
	return e.Triple.Value == p.TripleStr(), true
}

func (e *TripleExpr) String() string {
	return e.Triple.Value
}

// AllExpr is cfg all(...): true when every operand is true. Empty all() is
// true.
type AllExpr struct {
	Operands []Expr
}

func (e *AllExpr) Eval(p *Platform) (bool, bool) {
	anyUnknown := false
	for _, op := range e.Operands {
		value, known := op.Eval(p)
		if known && !value {
			return false, true
		}
		if !known {
			anyUnknown = true
		}
	}
	if anyUnknown {
		return false, false
	}
	return true, true
}

func (e *AllExpr) String() string {
	return renderList("all", e.Operands)
}

// AnyExpr is cfg any(...): true when at least one operand is true. Empty
// any() is false.
type AnyExpr struct {
	Operands []Expr
}

func (e *AnyExpr) Eval(p *Platform) (bool, bool) {
	anyUnknown := false
	for _, op := range e.Operands {
		value, known := op.Eval(p)
		if known && value {
			return true, true
		}
		if !known {
			anyUnknown = true
		}
	}
	if anyUnknown {
		return false, false
	}
	return false, true
}

func (e *AnyExpr) String() string {
	return renderList("any", e.Operands)
}

// NotExpr is cfg not(...): negates its single operand. Unknown stays
// unknown.
type NotExpr struct {
	Operand Expr
}

func (e *NotExpr) Eval(p *Platform) (bool, bool) {
	value, known := e.Operand.Eval(p)
	if !known {
		return false, false
	}
	return !value, true
}

func (e *NotExpr) String() string {
	return "not(" + e.Operand.String() + ")"
}

// PredExpr is a key = "value" predicate inside cfg().
type PredExpr struct {
	Key   string
	Value string
}

func (e *PredExpr) Eval(p *Platform) (bool, bool) {
	spec := p.Triple().Spec
	switch e.Key {
	case PredTargetOS:
		return spec.OS == e.Value, true
	case PredTargetArch:
		return spec.Arch == e.Value, true
	case PredTargetVendor:
		return spec.Vendor == e.Value, true
	case PredTargetEnv:
		return spec.Env == e.Value, true
	case PredTargetABI:
		return spec.ABI == e.Value, true
	case PredTargetFamily:
		return spec.HasFamily(e.Value), true
	case PredTargetEndian:
		return spec.Endian == e.Value, true
	case PredTargetPointerWidth:
		width, err := strconv.Atoi(e.Value)
		if err != nil {
			return false, true
		}
		return spec.PointerWidth == width, true
	case PredTargetFeature:
		return p.TargetFeatures().Matches(e.Value)
	case PredPanic:
		return spec.Panic == e.Value, true
	case PredFeature:
		// Crate features are resolved by the build system, not the
		// target; a target evaluator always answers false.
		return false, true
	}
	return false, true
}

func (e *PredExpr) String() string {
	return fmt.Sprintf("%s = %q", e.Key, e.Value)
}

// FlagExpr is a bare ident inside cfg(): unix and windows test the target
// family, anything else tests the platform's cfg flags.
type FlagExpr struct {
	Name string
}

func (e *FlagExpr) Eval(p *Platform) (bool, bool) {
	switch e.Name {
	case FamilyUnix, FamilyWindows:
		return p.Triple().Spec.HasFamily(e.Name), true
	}
	return p.HasFlag(e.Name), true
}

func (e *FlagExpr) String() string {
	return e.Name
}

// renderList renders an operator with its operand list.
func renderList(op string, operands []Expr) string {
	out := op + "("
	for i, e := range operands {
		if i > 0 {
			out += ", "
		}
		out += e.String()
	}
	return out + ")"
}
