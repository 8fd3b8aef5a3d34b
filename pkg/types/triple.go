package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Triple resolution sources. A triple records how its characteristics were
// determined.
const (
	TripleSourceBuiltin   = "builtin"
	TripleSourceHeuristic = "heuristic"
	TripleSourceCustom    = "custom"
)

// validTripleSources is the set of recognized triple source values.
var validTripleSources = map[string]bool{
	TripleSourceBuiltin:   true,
	TripleSourceHeuristic: true,
	TripleSourceCustom:    true,
}

// Byte orders for TargetSpec.Endian.
const (
	EndianLittle = "little"
	EndianBig    = "big"
)

// Target families for TargetSpec.Families.
const (
	FamilyUnix    = "unix"
	FamilyWindows = "windows"
	FamilyWasm    = "wasm"
)

// validFamilies is the set of recognized target family values.
var validFamilies = map[string]bool{
	FamilyUnix:    true,
	FamilyWindows: true,
	FamilyWasm:    true,
}

// Panic strategies for TargetSpec.Panic.
const (
	PanicUnwind = "unwind"
	PanicAbort  = "abort"
)

// Triple resolution errors.
var (
	ErrUnknownTriple       = errors.New("unknown target triple")
	ErrCustomTripleInvalid = errors.New("invalid custom target definition")
)

// TargetSpec describes the characteristics of a target that cfg()
// predicates match against. Fields named target_* in cfg expressions map
// directly onto these fields.
type TargetSpec struct {
	OS           string   // e.g. "linux", "macos", "windows".
	Arch         string   // e.g. "x86_64", "aarch64", "wasm32".
	Vendor       string   // e.g. "unknown", "apple", "pc".
	Env          string   // e.g. "gnu", "musl", "msvc"; empty when none.
	ABI          string   // e.g. "eabihf"; empty when none.
	Families     []string // Family constants; empty for bare-metal targets.
	Endian       string   // EndianLittle or EndianBig.
	PointerWidth int      // 16, 32, or 64.
	Panic        string   // PanicUnwind or PanicAbort.
}

// HasFamily reports whether the spec belongs to the given target family.
func (s TargetSpec) HasFamily(family string) bool {
	for _, f := range s.Families {
		if f == family {
			return true
		}
	}
	return false
}

// Triple is a target triple string together with its resolved
// characteristics and the source of that resolution.
type Triple struct {
	Value  string     // Full triple string, e.g. "x86_64-unknown-linux-gnu".
	Source string     // One of the TripleSource constants.
	Spec   TargetSpec // Resolved characteristics.
}

// String returns the triple string.
func (t Triple) String() string {
	return t.Value
}

// IsBuiltin reports whether the triple was resolved from the builtin table.
func (t Triple) IsBuiltin() bool {
	return t.Source == TripleSourceBuiltin
}

// IsHeuristic reports whether the triple characteristics were inferred from
// the triple string.
func (t Triple) IsHeuristic() bool {
	return t.Source == TripleSourceHeuristic
}

// IsCustom reports whether the triple was built from a custom target
// definition.
func (t Triple) IsCustom() bool {
	return t.Source == TripleSourceCustom
}

// IsStandard reports whether the triple is builtin or heuristic, as opposed
// to custom.
func (t Triple) IsStandard() bool {
	return t.Source == TripleSourceBuiltin || t.Source == TripleSourceHeuristic
}

// ParseTriple resolves a triple string against the builtin table, falling
// back to heuristic inference from the triple components. Returns
// ErrUnknownTriple when even the architecture cannot be identified.
func ParseTriple(s string) (Triple, error) {
	if spec, ok := builtinTriples[s]; ok {
		return Triple{Value: s, Source: TripleSourceBuiltin, Spec: spec}, nil
	}
	spec, err := heuristicSpec(s)
	if err != nil {
		return Triple{}, err
	}
	return Triple{Value: s, Source: TripleSourceHeuristic, Spec: spec}, nil
}

// ParseTripleStrict resolves a triple string against the builtin table only.
// Returns ErrUnknownTriple for anything not in the table.
func ParseTripleStrict(s string) (Triple, error) {
	spec, ok := builtinTriples[s]
	if !ok {
		return Triple{}, fmt.Errorf("%w: %q", ErrUnknownTriple, s)
	}
	return Triple{Value: s, Source: TripleSourceBuiltin, Spec: spec}, nil
}

// customTargetJSON mirrors the subset of the rustc custom target JSON format
// needed to build a TargetSpec. target-family accepts a string or a list;
// target-pointer-width accepts a string or a number.
type customTargetJSON struct {
	Arch          string          `json:"arch"`
	OS            string          `json:"os"`
	Vendor        string          `json:"vendor"`
	Env           string          `json:"env"`
	ABI           string          `json:"abi"`
	TargetFamily  json.RawMessage `json:"target-family"`
	TargetEndian  string          `json:"target-endian"`
	PointerWidth  json.RawMessage `json:"target-pointer-width"`
	PanicStrategy string          `json:"panic-strategy"`
}

// NewCustomTriple builds a triple from a custom target definition in the
// rustc JSON format. The triple string names the target; the definition
// supplies its characteristics. Only arch is required. Endianness defaults
// to little, pointer width to 64, vendor to "unknown", and panic strategy
// to unwind.
func NewCustomTriple(s string, def []byte) (Triple, error) {
	if s == "" {
		return Triple{}, fmt.Errorf("%w: empty triple string", ErrCustomTripleInvalid)
	}
	var raw customTargetJSON
	if err := json.Unmarshal(def, &raw); err != nil {
		return Triple{}, fmt.Errorf("%w: %v", ErrCustomTripleInvalid, err)
	}
	if raw.Arch == "" {
		return Triple{}, fmt.Errorf("%w: missing arch", ErrCustomTripleInvalid)
	}

	spec := TargetSpec{
		OS:           raw.OS,
		Arch:         raw.Arch,
		Vendor:       raw.Vendor,
		Env:          raw.Env,
		ABI:          raw.ABI,
		Endian:       raw.TargetEndian,
		PointerWidth: 64,
		Panic:        raw.PanicStrategy,
	}
	if spec.Vendor == "" {
		spec.Vendor = "unknown"
	}
	if spec.Endian == "" {
		spec.Endian = EndianLittle
	}
	if spec.Endian != EndianLittle && spec.Endian != EndianBig {
		return Triple{}, fmt.Errorf("%w: target-endian %q", ErrCustomTripleInvalid, spec.Endian)
	}
	if spec.Panic == "" {
		spec.Panic = PanicUnwind
	}
	if spec.Panic != PanicUnwind && spec.Panic != PanicAbort {
		return Triple{}, fmt.Errorf("%w: panic-strategy %q", ErrCustomTripleInvalid, spec.Panic)
	}

	families, err := parseFamilyField(raw.TargetFamily)
	if err != nil {
		return Triple{}, err
	}
	spec.Families = families

	if len(raw.PointerWidth) > 0 {
		width, err := parsePointerWidthField(raw.PointerWidth)
		if err != nil {
			return Triple{}, err
		}
		spec.PointerWidth = width
	}

	return Triple{Value: s, Source: TripleSourceCustom, Spec: spec}, nil
}

// parseFamilyField decodes target-family as either a single string or a
// list of strings.
func parseFamilyField(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: target-family must be a string or list", ErrCustomTripleInvalid)
	}
	return list, nil
}

// parsePointerWidthField decodes target-pointer-width as either a quoted
// string (the rustc form) or a bare number.
func parsePointerWidthField(raw json.RawMessage) (int, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		width, err := strconv.Atoi(asString)
		if err != nil {
			return 0, fmt.Errorf("%w: target-pointer-width %q", ErrCustomTripleInvalid, asString)
		}
		return validatePointerWidth(width)
	}
	var asNumber int
	if err := json.Unmarshal(raw, &asNumber); err != nil {
		return 0, fmt.Errorf("%w: target-pointer-width must be a string or number", ErrCustomTripleInvalid)
	}
	return validatePointerWidth(asNumber)
}

func validatePointerWidth(width int) (int, error) {
	switch width {
	case 16, 32, 64:
		return width, nil
	}
	return 0, fmt.Errorf("%w: target-pointer-width %d", ErrCustomTripleInvalid, width)
}
