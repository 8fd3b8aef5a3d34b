// Package logging configures the process-wide zerolog logger. The CLI is
// quiet by default; diagnostics go to stderr through their own renderer and
// structured logs only appear at debug level when --verbose is set.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Verbose bool      // enable debug-level output
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Service string    // optional service name attached to every entry
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global zerolog logger exactly once. Without
// verbose, the level is raised high enough that routine logs are silent.
func Configure(cfg Config) {
	once.Do(func() {
		level := zerolog.ErrorLevel
		if cfg.Verbose {
			level = zerolog.DebugLevel
		} else if env := os.Getenv("LOG_LEVEL"); env != "" {
			if parsed, err := zerolog.ParseLevel(env); err == nil {
				level = parsed
			}
		}
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = time.RFC3339

		writer := cfg.Output
		if writer == nil {
			writer = stderrWriter()
		}

		service := cfg.Service
		if service == "" {
			service = "atlas"
		}

		base = zerolog.New(writer).With().
			Timestamp().
			Str("service", service).
			Logger()
	})
}

// stderrWriter returns the default log destination: stderr wrapped in a
// console writer when it is a terminal, raw JSON when piped.
func stderrWriter() io.Writer {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return os.Stderr
}

func logger() zerolog.Logger {
	Configure(Config{})
	return base
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return logger()
}

// WithComponent returns a child logger annotated with the given component
// name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str("component", component).Logger()
}
