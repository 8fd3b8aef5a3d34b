// Package docgen renders README files from a template with {{name}}
// placeholders and checks the committed output byte-for-byte against a
// fresh render. Writes are atomic and durable.
package docgen

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/google/renameio/v2"

	"github.com/mesh-intelligence/targetspec/pkg/diagnostics"
)

// Config names the inputs of one README render.
type Config struct {
	TemplatePath string   // template with {{name}} placeholders
	FragmentPath string   // body fragment substituted for {{readme}}
	OutputPath   string   // rendered README destination
	Crate        string   // value for {{crate}}
	Version      string   // value for {{version}}
	License      string   // value for {{license}}
	Badges       []string // lines joined for {{badges}}
}

// Placeholder names recognized in templates.
var placeholderNames = map[string]bool{
	"crate":   true,
	"readme":  true,
	"version": true,
	"license": true,
	"badges":  true,
}

// Template error kinds.
const (
	KindUnknownPlaceholder = "unknown-placeholder"
	KindBadPlaceholder     = "bad-placeholder"
)

// TemplateError is a positioned error inside a template file.
type TemplateError struct {
	Path   string // template file path
	Source string // full template text
	Offset int    // byte offset of the offending span
	Length int    // span length
	Kind   string // KindUnknownPlaceholder or KindBadPlaceholder
	Name   string // placeholder name, when one could be read
}

func (e *TemplateError) Error() string {
	switch e.Kind {
	case KindBadPlaceholder:
		return fmt.Sprintf("%s: `{{` at offset %d is never closed", e.Path, e.Offset)
	default:
		return fmt.Sprintf("%s: unknown placeholder `{{%s}}`", e.Path, e.Name)
	}
}

// Diagnostic converts the error into a renderable span-labeled report.
func (e *TemplateError) Diagnostic() *diagnostics.Diagnostic {
	d := &diagnostics.Diagnostic{
		Severity: diagnostics.Error,
		Code:     diagnostics.CodePrefix + e.Kind,
		Message:  e.Error(),
		Source:   e.Source,
		Origin:   e.Path,
		Labels: []diagnostics.Label{{
			Span: diagnostics.Span{Offset: e.Offset, Length: e.Length},
		}},
	}
	switch e.Kind {
	case KindBadPlaceholder:
		d.Labels[0].Message = "opened here"
		d.Help = "close the placeholder with `}}`"
	default:
		d.Labels[0].Message = "not a recognized placeholder"
		d.Help = "recognized names: crate, readme, version, license, badges"
	}
	return d
}

// Render produces the README bytes for the config. The result always ends
// with exactly one newline regardless of how the template or fragment end.
func Render(cfg Config) ([]byte, error) {
	template, err := os.ReadFile(cfg.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	fragment := ""
	if cfg.FragmentPath != "" {
		data, err := os.ReadFile(cfg.FragmentPath)
		if err != nil {
			return nil, fmt.Errorf("reading fragment: %w", err)
		}
		fragment = string(data)
	}

	values := map[string]string{
		"crate":   cfg.Crate,
		"readme":  fragment,
		"version": cfg.Version,
		"license": cfg.License,
		"badges":  strings.Join(cfg.Badges, "\n"),
	}
	out, err := substitute(string(template), values, cfg.TemplatePath)
	if err != nil {
		return nil, err
	}
	out = strings.TrimRight(out, "\n") + "\n"
	return []byte(out), nil
}

// substitute replaces every {{name}} placeholder in the template. Unknown
// names and unterminated placeholders are positioned errors.
func substitute(template string, values map[string]string, path string) (string, error) {
	var b strings.Builder
	rest := template
	base := 0
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:open])

		tail := rest[open+2:]
		closing := strings.Index(tail, "}}")
		if closing < 0 {
			return "", &TemplateError{
				Path:   path,
				Source: template,
				Offset: base + open,
				Length: 2,
				Kind:   KindBadPlaceholder,
			}
		}
		name := strings.TrimSpace(tail[:closing])
		if !placeholderNames[name] {
			return "", &TemplateError{
				Path:   path,
				Source: template,
				Offset: base + open,
				Length: closing + 4,
				Kind:   KindUnknownPlaceholder,
				Name:   name,
			}
		}
		b.WriteString(values[name])

		consumed := open + 2 + closing + 2
		base += consumed
		rest = rest[consumed:]
	}
}

// Generate renders the README and writes it to the output path atomically.
func Generate(cfg Config) error {
	out, err := Render(cfg)
	if err != nil {
		return err
	}

	pending, err := renameio.NewPendingFile(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("creating pending file: %w", err)
	}
	defer pending.Cleanup()

	if _, err := pending.Write(out); err != nil {
		return fmt.Errorf("writing pending file: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing %s: %w", cfg.OutputPath, err)
	}
	return nil
}

// Drift describes how the on-disk README differs from a fresh render.
type Drift struct {
	Path      string // output path compared
	FirstLine int    // 1-based first differing line; 0 when the file is missing
	Missing   bool   // output file does not exist
}

// Check re-renders the README and byte-compares it against the output
// file. A nil Drift means they are identical.
func Check(cfg Config) (*Drift, error) {
	want, err := Render(cfg)
	if err != nil {
		return nil, err
	}

	got, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Drift{Path: cfg.OutputPath, Missing: true}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", cfg.OutputPath, err)
	}

	if bytes.Equal(got, want) {
		return nil, nil
	}
	return &Drift{
		Path:      cfg.OutputPath,
		FirstLine: firstDifferingLine(got, want),
	}, nil
}

// firstDifferingLine returns the 1-based number of the first line where
// the two byte slices disagree.
func firstDifferingLine(a, b []byte) int {
	aLines := bytes.Split(a, []byte("\n"))
	bLines := bytes.Split(b, []byte("\n"))
	n := len(aLines)
	if len(bLines) < n {
		n = len(bLines)
	}
	for i := 0; i < n; i++ {
		if !bytes.Equal(aLines[i], bLines[i]) {
			return i + 1
		}
	}
	return n + 1
}
