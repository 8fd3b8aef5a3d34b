package types

import (
	"fmt"
	"runtime"
	"sort"
)

// Platform is a target triple plus what is known about its features and any
// extra cfg flags. Flags model ad-hoc cfg values such as "test" or
// "cargo_web": a flag that was never added evaluates to false, never to
// unknown.
type Platform struct {
	triple   Triple
	features TargetFeatures
	flags    map[string]bool
}

// NewPlatform builds a platform from a triple string, resolving against the
// builtin table with heuristic fallback.
func NewPlatform(tripleStr string, features TargetFeatures) (*Platform, error) {
	triple, err := ParseTriple(tripleStr)
	if err != nil {
		return nil, err
	}
	return &Platform{triple: triple, features: features}, nil
}

// NewPlatformStrict builds a platform from a triple string, accepting only
// builtin triples.
func NewPlatformStrict(tripleStr string, features TargetFeatures) (*Platform, error) {
	triple, err := ParseTripleStrict(tripleStr)
	if err != nil {
		return nil, err
	}
	return &Platform{triple: triple, features: features}, nil
}

// NewCustomPlatform builds a platform from a triple string and a custom
// target definition in the rustc JSON format.
func NewCustomPlatform(tripleStr string, def []byte, features TargetFeatures) (*Platform, error) {
	triple, err := NewCustomTriple(tripleStr, def)
	if err != nil {
		return nil, err
	}
	return &Platform{triple: triple, features: features}, nil
}

// FromTriple wraps an already-resolved triple in a platform.
func FromTriple(triple Triple, features TargetFeatures) *Platform {
	return &Platform{triple: triple, features: features}
}

// goTriples maps runtime.GOOS/GOARCH pairs to builtin triple strings for
// CurrentPlatform.
var goTriples = map[string]string{
	"linux/amd64":   "x86_64-unknown-linux-gnu",
	"linux/386":     "i686-unknown-linux-gnu",
	"linux/arm64":   "aarch64-unknown-linux-gnu",
	"linux/arm":     "armv7-unknown-linux-gnueabihf",
	"linux/riscv64": "riscv64gc-unknown-linux-gnu",
	"linux/ppc64le": "powerpc64le-unknown-linux-gnu",
	"linux/s390x":   "s390x-unknown-linux-gnu",
	"linux/loong64": "loongarch64-unknown-linux-gnu",
	"darwin/amd64":  "x86_64-apple-darwin",
	"darwin/arm64":  "aarch64-apple-darwin",
	"windows/amd64": "x86_64-pc-windows-msvc",
	"windows/386":   "i686-pc-windows-msvc",
	"windows/arm64": "aarch64-pc-windows-msvc",
	"freebsd/amd64": "x86_64-unknown-freebsd",
	"netbsd/amd64":  "x86_64-unknown-netbsd",
	"openbsd/amd64": "x86_64-unknown-openbsd",
	"illumos/amd64": "x86_64-unknown-illumos",
	"solaris/amd64": "x86_64-pc-solaris",
	"android/arm64": "aarch64-linux-android",
	"ios/arm64":     "aarch64-apple-ios",
	"js/wasm":       "wasm32-unknown-unknown",
	"wasip1/wasm":   "wasm32-wasip1",
}

// CurrentPlatform returns the platform the process is running on, mapped
// from runtime.GOOS/GOARCH to a builtin triple. Feature knowledge is
// unknown: the Go runtime cannot see which target features a foreign
// toolchain would enable. Returns ErrUnknownTriple for Go ports with no
// triple mapping.
func CurrentPlatform() (*Platform, error) {
	key := runtime.GOOS + "/" + runtime.GOARCH
	tripleStr, ok := goTriples[key]
	if !ok {
		return nil, fmt.Errorf("%w: no triple for %s", ErrUnknownTriple, key)
	}
	return NewPlatformStrict(tripleStr, FeaturesUnknown())
}

// TripleStr returns the platform's triple string.
func (p *Platform) TripleStr() string {
	return p.triple.Value
}

// Triple returns the platform's resolved triple.
func (p *Platform) Triple() Triple {
	return p.triple
}

// TargetFeatures returns the platform's feature knowledge.
func (p *Platform) TargetFeatures() TargetFeatures {
	return p.features
}

// AddFlags enables the given cfg flags on the platform.
func (p *Platform) AddFlags(flags ...string) {
	if p.flags == nil {
		p.flags = make(map[string]bool, len(flags))
	}
	for _, f := range flags {
		p.flags[f] = true
	}
}

// HasFlag reports whether the named cfg flag has been added.
func (p *Platform) HasFlag(name string) bool {
	return p.flags[name]
}

// Flags returns the added cfg flags in sorted order.
func (p *Platform) Flags() []string {
	if len(p.flags) == 0 {
		return nil
	}
	flags := make([]string, 0, len(p.flags))
	for f := range p.flags {
		flags = append(flags, f)
	}
	sort.Strings(flags)
	return flags
}

// IsStandard reports whether the triple is builtin or heuristic.
func (p *Platform) IsStandard() bool { return p.triple.IsStandard() }

// IsBuiltin reports whether the triple came from the builtin table.
func (p *Platform) IsBuiltin() bool { return p.triple.IsBuiltin() }

// IsHeuristic reports whether the triple was inferred from its components.
func (p *Platform) IsHeuristic() bool { return p.triple.IsHeuristic() }

// IsCustom reports whether the triple came from a custom target definition.
func (p *Platform) IsCustom() bool { return p.triple.IsCustom() }
