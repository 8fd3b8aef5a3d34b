package types

import (
	"fmt"
	"strings"
)

// archInfo holds the characteristics implied by a triple's architecture
// component.
type archInfo struct {
	arch   string
	width  int
	endian string
}

// archPrefixes maps architecture component prefixes to normalized
// characteristics. Checked in order; longer prefixes come before their
// shorter variants.
var archPrefixes = []struct {
	prefix string
	info   archInfo
}{
	{"x86_64", archInfo{"x86_64", 64, EndianLittle}},
	{"i686", archInfo{"x86", 32, EndianLittle}},
	{"i586", archInfo{"x86", 32, EndianLittle}},
	{"i486", archInfo{"x86", 32, EndianLittle}},
	{"i386", archInfo{"x86", 32, EndianLittle}},
	{"aarch64_be", archInfo{"aarch64", 64, EndianBig}},
	{"aarch64", archInfo{"aarch64", 64, EndianLittle}},
	{"arm64", archInfo{"aarch64", 64, EndianLittle}},
	{"armeb", archInfo{"arm", 32, EndianBig}},
	{"arm", archInfo{"arm", 32, EndianLittle}},
	{"thumbv", archInfo{"arm", 32, EndianLittle}},
	{"riscv64", archInfo{"riscv64", 64, EndianLittle}},
	{"riscv32", archInfo{"riscv32", 32, EndianLittle}},
	{"wasm64", archInfo{"wasm64", 64, EndianLittle}},
	{"wasm32", archInfo{"wasm32", 32, EndianLittle}},
	{"powerpc64le", archInfo{"powerpc64", 64, EndianLittle}},
	{"powerpc64", archInfo{"powerpc64", 64, EndianBig}},
	{"powerpc", archInfo{"powerpc", 32, EndianBig}},
	{"mips64el", archInfo{"mips64", 64, EndianLittle}},
	{"mips64", archInfo{"mips64", 64, EndianBig}},
	{"mipsel", archInfo{"mips", 32, EndianLittle}},
	{"mips", archInfo{"mips", 32, EndianBig}},
	{"s390x", archInfo{"s390x", 64, EndianBig}},
	{"sparcv9", archInfo{"sparc64", 64, EndianBig}},
	{"sparc64", archInfo{"sparc64", 64, EndianBig}},
	{"sparc", archInfo{"sparc", 32, EndianBig}},
	{"loongarch64", archInfo{"loongarch64", 64, EndianLittle}},
	{"hexagon", archInfo{"hexagon", 32, EndianLittle}},
	{"avr", archInfo{"avr", 16, EndianLittle}},
	{"msp430", archInfo{"msp430", 16, EndianLittle}},
	{"m68k", archInfo{"m68k", 32, EndianBig}},
	{"bpfel", archInfo{"bpf", 64, EndianLittle}},
	{"bpfeb", archInfo{"bpf", 64, EndianBig}},
	{"nvptx64", archInfo{"nvptx64", 64, EndianLittle}},
	{"csky", archInfo{"csky", 32, EndianLittle}},
}

// knownVendors is the set of vendor components recognized in the second
// triple position.
var knownVendors = map[string]bool{
	"unknown":   true,
	"pc":        true,
	"apple":     true,
	"sony":      true,
	"nvidia":    true,
	"fortanix":  true,
	"ibm":       true,
	"wrs":       true,
	"espressif": true,
	"sun":       true,
	"uwp":       true,
	"win7":      true,
	"amd":       true,
	"openwrt":   true,
}

// osInfo holds the operating system and families implied by a triple's OS
// component.
type osInfo struct {
	os       string
	families []string
}

// knownOS maps OS components to their characteristics. Families follow the
// rustc target definitions: android and the BSDs are unix, wasi and
// emscripten carry the wasm family.
var knownOS = map[string]osInfo{
	"linux":      {"linux", []string{FamilyUnix}},
	"android":    {"android", []string{FamilyUnix}},
	"darwin":     {"macos", []string{FamilyUnix}},
	"macos":      {"macos", []string{FamilyUnix}},
	"ios":        {"ios", []string{FamilyUnix}},
	"tvos":       {"tvos", []string{FamilyUnix}},
	"watchos":    {"watchos", []string{FamilyUnix}},
	"visionos":   {"visionos", []string{FamilyUnix}},
	"windows":    {"windows", []string{FamilyWindows}},
	"freebsd":    {"freebsd", []string{FamilyUnix}},
	"netbsd":     {"netbsd", []string{FamilyUnix}},
	"openbsd":    {"openbsd", []string{FamilyUnix}},
	"dragonfly":  {"dragonfly", []string{FamilyUnix}},
	"solaris":    {"solaris", []string{FamilyUnix}},
	"illumos":    {"illumos", []string{FamilyUnix}},
	"fuchsia":    {"fuchsia", []string{FamilyUnix}},
	"haiku":      {"haiku", []string{FamilyUnix}},
	"redox":      {"redox", []string{FamilyUnix}},
	"hurd":       {"hurd", []string{FamilyUnix}},
	"vxworks":    {"vxworks", []string{FamilyUnix}},
	"espidf":     {"espidf", []string{FamilyUnix}},
	"emscripten": {"emscripten", []string{FamilyUnix, FamilyWasm}},
	"wasi":       {"wasi", []string{FamilyWasm}},
	"wasip1":     {"wasi", []string{FamilyWasm}},
	"wasip2":     {"wasi", []string{FamilyWasm}},
	"cuda":       {"cuda", nil},
	"uefi":       {"uefi", nil},
	"hermit":     {"hermit", nil},
	"none":       {"none", nil},
	"psp":        {"psp", nil},
	"ps4":        {"ps4", nil},
	"ps5":        {"ps5", nil},
	"vita":       {"vita", nil},
	"nto":        {"nto", []string{FamilyUnix}},
}

// heuristicSpec infers target characteristics from the components of a
// triple string absent from the builtin table. Components are
// arch[-vendor][-os][-env]; at minimum the architecture must be
// recognizable.
func heuristicSpec(s string) (TargetSpec, error) {
	if s == "" {
		return TargetSpec{}, fmt.Errorf("%w: empty triple", ErrUnknownTriple)
	}
	comps := strings.Split(s, "-")
	if len(comps) > 4 {
		return TargetSpec{}, fmt.Errorf("%w: %q has too many components", ErrUnknownTriple, s)
	}

	arch, ok := lookupArch(comps[0])
	if !ok {
		return TargetSpec{}, fmt.Errorf("%w: unrecognized architecture in %q", ErrUnknownTriple, s)
	}

	spec := TargetSpec{
		Arch:         arch.arch,
		Vendor:       "unknown",
		Endian:       arch.endian,
		PointerWidth: arch.width,
		Panic:        PanicUnwind,
	}

	var osComp, envComp string
	switch len(comps) {
	case 1:
		osComp = "none"
	case 2:
		osComp = comps[1]
	case 3:
		if knownVendors[comps[1]] {
			spec.Vendor = comps[1]
			osComp = comps[2]
		} else {
			osComp = comps[1]
			envComp = comps[2]
		}
	case 4:
		if knownVendors[comps[1]] {
			spec.Vendor = comps[1]
		}
		osComp = comps[2]
		envComp = comps[3]
	}

	// arm-linux-androideabi style: the env component names the real OS.
	if osComp == "linux" && strings.HasPrefix(envComp, "android") {
		osComp = "android"
		envComp = strings.TrimPrefix(envComp, "android")
	}

	if info, ok := knownOS[osComp]; ok {
		spec.OS = info.os
		spec.Families = info.families
	} else if osComp == "unknown" {
		spec.OS = "unknown"
		if spec.Arch == "wasm32" || spec.Arch == "wasm64" {
			spec.Families = []string{FamilyWasm}
		}
	} else {
		// Unrecognized OS component with a known architecture: treat as a
		// bare-metal target rather than guessing.
		spec.OS = "none"
	}

	spec.Env, spec.ABI = splitEnvComponent(envComp)
	if spec.ABI == "x32" {
		spec.PointerWidth = 32
	}

	return spec, nil
}

// lookupArch resolves an architecture component by prefix.
func lookupArch(comp string) (archInfo, bool) {
	for _, entry := range archPrefixes {
		if strings.HasPrefix(comp, entry.prefix) {
			return entry.info, true
		}
	}
	return archInfo{}, false
}

// splitEnvComponent separates a combined env component into environment and
// ABI parts: "gnueabihf" is env "gnu" with ABI "eabihf", a bare "eabi" is
// ABI only, and "elf" carries neither.
func splitEnvComponent(comp string) (env, abi string) {
	switch {
	case comp == "" || comp == "elf":
		return "", ""
	case strings.HasPrefix(comp, "gnu"):
		return "gnu", strings.TrimPrefix(comp, "gnu")
	case strings.HasPrefix(comp, "musl"):
		return "musl", strings.TrimPrefix(comp, "musl")
	case strings.HasPrefix(comp, "uclibc"):
		return "uclibc", strings.TrimPrefix(comp, "uclibc")
	case comp == "msvc" || comp == "sgx" || comp == "ohos" || comp == "relibc" || comp == "newlib":
		return comp, ""
	case comp == "eabi" || comp == "eabihf" || comp == "sim" || comp == "macabi" || comp == "softfloat" || comp == "abi64" || comp == "x32":
		return "", comp
	default:
		return comp, ""
	}
}
