// Package cli holds output plumbing shared by atlas commands: exit codes,
// JSON printing, color-mode resolution, diagnostic rendering, and markdown
// preview.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/targetspec/pkg/diagnostics"
)

// Exit codes. Unknown evaluation gets its own code so scripts can tell "no
// match" apart from "cannot decide".
const (
	ExitSuccess   = 0
	ExitUserError = 1
	ExitUnknown   = 2
	ExitSysError  = 3
)

// CodedError pairs an error with the process exit code it should produce.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string { return e.Err.Error() }

func (e *CodedError) Unwrap() error { return e.Err }

// WithCode wraps err with an explicit exit code. A nil err returns nil.
func WithCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}

// ExitCode extracts the exit code for err: the wrapped code when present,
// ExitUserError otherwise, ExitSuccess for nil.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ExitUserError
}

// PrintJSON writes v as indented JSON followed by a newline.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderDiagnostic writes one diagnostic to w, styled when color is on.
func RenderDiagnostic(w io.Writer, d *diagnostics.Diagnostic, color bool) {
	fmt.Fprint(w, diagnostics.NewRenderer(color).Render(d))
}

// RenderDiagnostics writes each diagnostic to w separated by blank lines.
func RenderDiagnostics(w io.Writer, diags []*diagnostics.Diagnostic, color bool) {
	fmt.Fprint(w, diagnostics.NewRenderer(color).RenderAll(diags))
}
