// Markdown preview through glamour.
package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// previewWidth is the word-wrap column for rendered markdown.
const previewWidth = 100

// PreviewMarkdown renders markdown for terminal display using the
// terminal-appropriate glamour style.
func PreviewMarkdown(markdown []byte) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(previewWidth),
	)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := renderer.Render(string(markdown))
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
