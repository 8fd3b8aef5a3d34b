// File watching: re-scan manifests on change with debounce.
package manifest

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/targetspec/internal/logging"
	"github.com/mesh-intelligence/targetspec/pkg/types"
)

// debounceDuration coalesces rapid editor write bursts into one re-scan.
const debounceDuration = 500 * time.Millisecond

// Watcher re-runs Check over a fixed set of manifests whenever one of them
// changes, delivering each report to the OnReport callback.
type Watcher struct {
	paths    []string
	platform *types.Platform
	watcher  *fsnotify.Watcher
	logger   zerolog.Logger

	// OnReport receives every scan report, including the initial one.
	OnReport func(*Report)
}

// NewWatcher builds a watcher over the given manifest paths. platform may
// be nil to scan without evaluation.
func NewWatcher(paths []string, platform *types.Platform) *Watcher {
	return &Watcher{
		paths:    paths,
		platform: platform,
		logger:   logging.WithComponent("manifest-watch"),
	}
}

// Run scans once immediately, then watches until ctx is cancelled. Each
// change re-scans the full path set after the debounce window.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	w.watcher = watcher
	defer watcher.Close()

	for _, path := range w.paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}
	w.logger.Debug().
		Strs("paths", w.paths).
		Msg("watching manifests")

	w.rescan()

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Write and Create cover in-place writes and the editor
			// rename-over-original save pattern.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug().
				Str("path", event.Name).
				Str("op", event.Op.String()).
				Msg("manifest changed")
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDuration, w.rescan)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("watcher error")
		}
	}
}

// rescan runs a full check and hands the report to the callback.
func (w *Watcher) rescan() {
	report, err := Check(w.paths, w.platform)
	if err != nil {
		w.logger.Error().Err(err).Msg("scan failed")
		return
	}
	w.logger.Debug().
		Str("run_id", report.RunID).
		Int("specs", report.Specs).
		Int("errors", report.Errors).
		Msg("scan complete")
	if w.OnReport != nil {
		w.OnReport(report)
	}
}
