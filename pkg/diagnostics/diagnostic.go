// Package diagnostics renders span-labeled error reports for target spec
// parse failures and manifest findings. It carries a small diagnostic model,
// an adapter from positioned parse errors, and a terminal renderer.
package diagnostics

import "encoding/json"

// Severity classifies a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Advice
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Advice:
		return "advice"
	default:
		return "error"
	}
}

// Span is a byte range into a diagnostic's source text.
type Span struct {
	Offset int
	Length int
}

// Label annotates one span of the source with a message.
type Label struct {
	Span    Span
	Message string
}

// Diagnostic is a renderable report about one location in one source text.
type Diagnostic struct {
	Severity Severity
	Code     string  // stable machine code, e.g. "targetspec::unknown-predicate"
	Message  string  // headline message
	Source   string  // text the label spans index into
	Origin   string  // file path, or "<expression>" for ad-hoc input
	Line     int     // 1-based line of the first span within the origin file; 0 when unknown
	Labels   []Label // spans to underline, in source order
	Help     string  // optional trailing hint
}

// diagnosticJSON is the stable wire form for --format json output.
type diagnosticJSON struct {
	Severity string      `json:"severity"`
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	Origin   string      `json:"origin,omitempty"`
	Line     int         `json:"line,omitempty"`
	Source   string      `json:"source,omitempty"`
	Labels   []labelJSON `json:"labels,omitempty"`
	Help     string      `json:"help,omitempty"`
}

type labelJSON struct {
	Offset  int    `json:"offset"`
	Length  int    `json:"length"`
	Message string `json:"message,omitempty"`
}

// MarshalJSON implements json.Marshaler with stable field names.
func (d *Diagnostic) MarshalJSON() ([]byte, error) {
	out := diagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code,
		Message:  d.Message,
		Origin:   d.Origin,
		Line:     d.Line,
		Source:   d.Source,
		Help:     d.Help,
	}
	for _, l := range d.Labels {
		out.Labels = append(out.Labels, labelJSON{
			Offset:  l.Span.Offset,
			Length:  l.Span.Length,
			Message: l.Message,
		})
	}
	return json.Marshal(out)
}
