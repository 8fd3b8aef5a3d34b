// Package manifest scans TOML manifests for platform-conditional sections
// of the form [target.'<spec>'.<anything>] and reports findings with
// span-labeled diagnostics. Specs are located in the raw file so a
// diagnostic can point into the manifest rather than at a detached string.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mesh-intelligence/targetspec/pkg/diagnostics"
	"github.com/mesh-intelligence/targetspec/pkg/targetspec"
	"github.com/mesh-intelligence/targetspec/pkg/types"
)

// Finding reports one target spec encountered in a manifest. A nil Diag
// means the spec parsed cleanly.
type Finding struct {
	Path string                  `json:"path"`
	Spec string                  `json:"spec"`
	Line int                     `json:"line,omitempty"`
	Diag *diagnostics.Diagnostic `json:"diagnostic,omitempty"`

	// Evaluation results; meaningful only when a platform was supplied and
	// the spec parsed.
	Evaluated bool `json:"evaluated,omitempty"`
	Matched   bool `json:"matched,omitempty"`
	Known     bool `json:"known,omitempty"`
}

// Report aggregates the findings of one scan run.
type Report struct {
	RunID    string        `json:"run_id"`
	Started  time.Time     `json:"started"`
	Elapsed  time.Duration `json:"elapsed"`
	Files    int           `json:"files"`
	Specs    int           `json:"specs"`
	Errors   int           `json:"errors"`
	Matches  int           `json:"matches,omitempty"`
	Findings []Finding     `json:"findings"`
}

// HasErrors reports whether any finding carries an error diagnostic.
func (r *Report) HasErrors() bool {
	return r.Errors > 0
}

// Scan parses every target spec found in one manifest file.
func Scan(path string) (*Report, error) {
	return Check([]string{path}, nil)
}

// Check scans each manifest and, when platform is non-nil, evaluates every
// valid spec against it. The returned error covers I/O failures only;
// malformed manifests and bad specs surface as findings.
func Check(paths []string, platform *types.Platform) (*Report, error) {
	report := &Report{
		RunID:   newRunID(),
		Started: time.Now().UTC(),
	}
	for _, path := range paths {
		if err := scanFile(report, path, platform); err != nil {
			return nil, err
		}
	}
	report.Elapsed = time.Since(report.Started)
	return report, nil
}

// scanFile appends findings for one manifest to the report.
func scanFile(report *Report, path string, platform *types.Platform) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	report.Files++

	var decoded map[string]any
	meta, err := toml.Decode(string(raw), &decoded)
	if err != nil {
		report.Errors++
		report.Findings = append(report.Findings, tomlFinding(path, string(raw), err))
		return nil
	}

	for _, spec := range targetSpecs(meta) {
		report.Specs++
		finding := Finding{Path: path, Spec: spec}

		loc := locateSpec(string(raw), spec)
		finding.Line = loc.line

		expr, err := targetspec.Parse(spec)
		if err != nil {
			report.Errors++
			finding.Diag = specDiagnostic(err, path, string(raw), loc)
			report.Findings = append(report.Findings, finding)
			continue
		}

		if platform != nil {
			finding.Evaluated = true
			matched, err := types.Matches(expr, platform)
			finding.Known = !errors.Is(err, types.ErrUnknownEval)
			finding.Matched = matched && finding.Known
			if finding.Matched {
				report.Matches++
			}
		}
		report.Findings = append(report.Findings, finding)
	}
	return nil
}

// targetSpecs extracts the unique spec strings named by [target.'...']
// keys, in order of first appearance.
func targetSpecs(meta toml.MetaData) []string {
	var specs []string
	seen := make(map[string]bool)
	for _, key := range meta.Keys() {
		if len(key) < 2 || key[0] != "target" {
			continue
		}
		spec := key[1]
		if seen[spec] {
			continue
		}
		seen[spec] = true
		specs = append(specs, spec)
	}
	return specs
}

// specDiagnostic builds a diagnostic for a bad spec, spanning into the
// manifest file when the spec could be located in it.
func specDiagnostic(err error, path, raw string, loc specLocation) *diagnostics.Diagnostic {
	d, ok := diagnostics.FromParseError(err, path)
	if !ok {
		return &diagnostics.Diagnostic{
			Severity: diagnostics.Error,
			Code:     diagnostics.CodePrefix + "invalid-spec",
			Message:  err.Error(),
			Origin:   path,
			Line:     loc.line,
		}
	}
	if loc.offset >= 0 {
		// Shift the label spans from the detached spec string into the
		// file so the snippet shows the manifest line.
		d.Source = raw
		d.Line = loc.line
		for i := range d.Labels {
			d.Labels[i].Span.Offset += loc.offset
		}
	}
	return d
}

// tomlFinding converts a TOML decode failure into a single positioned
// finding for the whole file.
func tomlFinding(path, raw string, err error) Finding {
	d := &diagnostics.Diagnostic{
		Severity: diagnostics.Error,
		Code:     "targetspec::manifest-syntax",
		Message:  "manifest is not valid TOML",
		Origin:   path,
		Source:   raw,
	}
	var perr toml.ParseError
	if errors.As(err, &perr) {
		d.Message = perr.Message
		d.Line = perr.Position.Line
		length := perr.Position.Len
		if length < 1 {
			length = 1
		}
		d.Labels = []diagnostics.Label{{
			Span:    diagnostics.Span{Offset: perr.Position.Start, Length: length},
			Message: "syntax error here",
		}}
	} else {
		d.Message = err.Error()
	}
	return Finding{Path: path, Diag: d}
}
