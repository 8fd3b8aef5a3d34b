package diagnostics

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for diagnostic rendering.
var (
	colorError   = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
	colorAdvice  = lipgloss.Color("#2196F3")
	colorGutter  = lipgloss.Color("#5f87d7")
	colorHelp    = lipgloss.Color("#4db6ac")
)

// Styles holds the lipgloss styles used by the renderer.
type Styles struct {
	ErrorHeader   lipgloss.Style
	WarningHeader lipgloss.Style
	AdviceHeader  lipgloss.Style
	Gutter        lipgloss.Style
	Caret         lipgloss.Style
	Help          lipgloss.Style
}

// DefaultStyles builds the colored style set from the palette.
func DefaultStyles() Styles {
	return Styles{
		ErrorHeader:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		WarningHeader: lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		AdviceHeader:  lipgloss.NewStyle().Foreground(colorAdvice).Bold(true),
		Gutter:        lipgloss.NewStyle().Foreground(colorGutter),
		Caret:         lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Help:          lipgloss.NewStyle().Foreground(colorHelp),
	}
}

// PlainStyles builds a style set that emits no ANSI sequences.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		ErrorHeader:   plain,
		WarningHeader: plain,
		AdviceHeader:  plain,
		Gutter:        plain,
		Caret:         plain,
		Help:          plain,
	}
}

// Renderer renders diagnostics in a gutter-annotated text format.
type Renderer struct {
	styles Styles
}

// NewRenderer returns a renderer; color selects the default palette or
// plain output.
func NewRenderer(color bool) *Renderer {
	if color {
		return &Renderer{styles: DefaultStyles()}
	}
	return &Renderer{styles: PlainStyles()}
}

// Render formats one diagnostic:
//
//	error[targetspec::unknown-predicate]: unknown predicate `target_oss`
//	  --> Cargo.toml:12
//	   |
//	12 | cfg(all(target_oss = "linux", target_arch = "x86_64"))
//	   |         ^^^^^^^^^^ not a recognized cfg() predicate
//	   = help: did you mean `target_os`?
//
// The rendered snippet is the source line holding the first label's span;
// labels outside that line are dropped.
func (r *Renderer) Render(d *Diagnostic) string {
	var b strings.Builder

	header := r.headerStyle(d.Severity)
	headline := d.Severity.String()
	if d.Code != "" {
		headline += "[" + d.Code + "]"
	}
	b.WriteString(header.Render(headline+":") + " " + d.Message + "\n")

	location := d.Origin
	if location == "" {
		location = OriginExpression
	}
	lineStart, lineText, lineNo := r.snippetLine(d)
	if d.Line > 0 {
		location += ":" + strconv.Itoa(d.Line)
	}
	b.WriteString("  --> " + location + "\n")

	if d.Source == "" {
		return b.String()
	}

	gutter := strconv.Itoa(lineNo)
	pad := strings.Repeat(" ", len(gutter))
	b.WriteString(r.styles.Gutter.Render(pad+" |") + "\n")
	b.WriteString(r.styles.Gutter.Render(gutter+" |") + " " + lineText + "\n")

	for _, label := range d.Labels {
		caretLine, ok := r.caretLine(label, lineStart, len(lineText))
		if !ok {
			continue
		}
		b.WriteString(r.styles.Gutter.Render(pad+" |") + " " + caretLine + "\n")
	}

	if d.Help != "" {
		b.WriteString(pad + " " + r.styles.Help.Render("= help: "+d.Help) + "\n")
	}
	return b.String()
}

// headerStyle selects the headline style for a severity.
func (r *Renderer) headerStyle(s Severity) lipgloss.Style {
	switch s {
	case Warning:
		return r.styles.WarningHeader
	case Advice:
		return r.styles.AdviceHeader
	default:
		return r.styles.ErrorHeader
	}
}

// snippetLine locates the source line containing the first label's offset.
// Returns the line's byte offset within Source, its text, and the gutter
// line number (the diagnostic's Line when set, the 1-based line within
// Source otherwise).
func (r *Renderer) snippetLine(d *Diagnostic) (lineStart int, lineText string, lineNo int) {
	offset := 0
	if len(d.Labels) > 0 {
		offset = d.Labels[0].Span.Offset
	}
	if offset > len(d.Source) {
		offset = len(d.Source)
	}

	lineNo = 1
	lineStart = 0
	for i := 0; i < offset; i++ {
		if d.Source[i] == '\n' {
			lineNo++
			lineStart = i + 1
		}
	}
	lineEnd := len(d.Source)
	if i := strings.IndexByte(d.Source[lineStart:], '\n'); i >= 0 {
		lineEnd = lineStart + i
	}
	lineText = d.Source[lineStart:lineEnd]

	if d.Line > 0 {
		lineNo = d.Line
	}
	return lineStart, lineText, lineNo
}

// caretLine builds the underline row for one label relative to the rendered
// line. Labels that start outside the line are skipped; EOF spans render a
// single caret past the last column.
func (r *Renderer) caretLine(label Label, lineStart, lineLen int) (string, bool) {
	col := label.Span.Offset - lineStart
	if col < 0 || col > lineLen {
		return "", false
	}
	count := label.Span.Length
	if col+count > lineLen {
		count = lineLen - col
	}
	if count < 1 {
		count = 1
	}

	line := strings.Repeat(" ", col) + r.styles.Caret.Render(strings.Repeat("^", count))
	if label.Message != "" {
		line += " " + label.Message
	}
	return line, true
}

// RenderAll renders a batch of diagnostics separated by blank lines.
func (r *Renderer) RenderAll(ds []*Diagnostic) string {
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		parts = append(parts, r.Render(d))
	}
	return strings.Join(parts, "\n")
}
