// Color-mode resolution for terminal output.
package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ResolveColor decides whether styled output is enabled. "always" and
// "never" are unconditional; "auto" enables color when stderr is a
// terminal and NO_COLOR is unset. An unrecognized mode is an error.
func ResolveColor(mode string) (bool, error) {
	switch mode {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	case ColorAuto, "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		fd := os.Stderr.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	default:
		return false, fmt.Errorf("invalid color mode %q: use auto, always, or never", mode)
	}
}
