// Spec location: finding the byte offset of a target spec inside the raw
// manifest text so diagnostics can span into the file.
package manifest

import (
	"strings"

	"github.com/google/uuid"
)

// specLocation is the position of a spec string within a manifest. offset
// is -1 when the spec could not be located.
type specLocation struct {
	offset int
	line   int
}

// locateSpec finds where a target spec appears in the raw manifest text.
// TOML allows the spec key to be written single-quoted, double-quoted, or
// bare, so each form is tried in turn. The returned offset points at the
// first byte of the spec text itself, not its quote.
func locateSpec(raw, spec string) specLocation {
	for _, quoted := range []string{"'" + spec + "'", `"` + spec + `"`} {
		if idx := strings.Index(raw, quoted); idx >= 0 {
			return specLocation{offset: idx + 1, line: lineAt(raw, idx)}
		}
	}
	if idx := strings.Index(raw, "target."+spec); idx >= 0 {
		off := idx + len("target.")
		return specLocation{offset: off, line: lineAt(raw, off)}
	}
	return specLocation{offset: -1}
}

// lineAt returns the 1-based line number containing the given byte offset.
func lineAt(raw string, offset int) int {
	if offset > len(raw) {
		offset = len(raw)
	}
	return 1 + strings.Count(raw[:offset], "\n")
}

// newRunID generates a UUID v7 run identifier, falling back to v4 if v7
// generation fails.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
