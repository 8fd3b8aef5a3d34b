// Generate target: regenerate pkg/types/builtin.go from targets.json.

//go:build mage

package main

import (
	"encoding/json"
	"fmt"
	"go/format"
	"os"
	"strings"
)

const (
	targetsJSON   = "magefiles/targets.json"
	builtinGoFile = "pkg/types/builtin.go"
)

// targetEntry mirrors one record in targets.json.
type targetEntry struct {
	Triple       string   `json:"triple"`
	OS           string   `json:"os"`
	Arch         string   `json:"arch"`
	Vendor       string   `json:"vendor"`
	Env          string   `json:"env,omitempty"`
	ABI          string   `json:"abi,omitempty"`
	Families     []string `json:"families,omitempty"`
	Endian       string   `json:"endian"`
	PointerWidth int      `json:"pointer-width"`
	Panic        string   `json:"panic"`
}

// Generate rewrites the builtin triple table from magefiles/targets.json.
func Generate() error {
	data, err := os.ReadFile(targetsJSON)
	if err != nil {
		return fmt.Errorf("reading %s: %w", targetsJSON, err)
	}

	var entries []targetEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parsing %s: %w", targetsJSON, err)
	}

	seen := map[string]bool{}
	for _, e := range entries {
		if e.Triple == "" {
			return fmt.Errorf("%s: entry with empty triple", targetsJSON)
		}
		if seen[e.Triple] {
			return fmt.Errorf("%s: duplicate triple %q", targetsJSON, e.Triple)
		}
		seen[e.Triple] = true
	}

	var b strings.Builder
	b.WriteString("// Code generated by mage generate from magefiles/targets.json. DO NOT EDIT.\n\n")
	b.WriteString("package types\n\n")
	b.WriteString("// builtinTriples maps builtin triple strings to their target\n")
	b.WriteString("// characteristics. Regenerate with `mage generate` after editing\n")
	b.WriteString("// magefiles/targets.json.\n")
	b.WriteString("var builtinTriples = map[string]TargetSpec{\n")
	for _, e := range entries {
		b.WriteString("\t" + entryLiteral(e) + "\n")
	}
	b.WriteString("}\n\n")
	b.WriteString("// BuiltinTriples returns the builtin triple strings in map order.\n")
	b.WriteString("func BuiltinTriples() []string {\n")
	b.WriteString("\tnames := make([]string, 0, len(builtinTriples))\n")
	b.WriteString("\tfor name := range builtinTriples {\n")
	b.WriteString("\t\tnames = append(names, name)\n")
	b.WriteString("\t}\n")
	b.WriteString("\treturn names\n")
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	if err := os.WriteFile(builtinGoFile, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", builtinGoFile, err)
	}
	fmt.Printf("wrote %s (%d triples)\n", builtinGoFile, len(entries))
	return nil
}

// entryLiteral renders one map entry of the builtin table. The value opens
// its own brace so gofmt does not column-align entries against each other.
func entryLiteral(e targetEntry) string {
	var fields []string
	fields = append(fields, fmt.Sprintf("OS: %q", e.OS))
	fields = append(fields, fmt.Sprintf("Arch: %q", e.Arch))
	fields = append(fields, fmt.Sprintf("Vendor: %q", e.Vendor))
	if e.Env != "" {
		fields = append(fields, fmt.Sprintf("Env: %q", e.Env))
	}
	if e.ABI != "" {
		fields = append(fields, fmt.Sprintf("ABI: %q", e.ABI))
	}
	if len(e.Families) > 0 {
		quoted := make([]string, len(e.Families))
		for i, f := range e.Families {
			quoted[i] = fmt.Sprintf("%q", f)
		}
		fields = append(fields, fmt.Sprintf("Families: []string{%s}", strings.Join(quoted, ", ")))
	}
	fields = append(fields, fmt.Sprintf("Endian: %q", e.Endian))
	fields = append(fields, fmt.Sprintf("PointerWidth: %d", e.PointerWidth))
	fields = append(fields, fmt.Sprintf("Panic: %q", e.Panic))
	return fmt.Sprintf("%q: {\n\t\t%s,\n\t},", e.Triple, strings.Join(fields, ", "))
}
