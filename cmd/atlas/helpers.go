// Shared helpers for atlas CLI commands.
package main

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/targetspec/internal/catalog"
	"github.com/mesh-intelligence/targetspec/internal/cli"
	"github.com/mesh-intelligence/targetspec/pkg/diagnostics"
	"github.com/mesh-intelligence/targetspec/pkg/types"
)

// attachCatalog resolves the data directory, creates a catalog backend,
// and attaches it. The caller must defer backend.Detach().
func attachCatalog() (*catalog.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := catalog.NewBackend()
	if err := backend.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}); err != nil {
		return nil, fmt.Errorf("attach catalog: %w", err)
	}
	return backend, nil
}

// buildPlatform constructs the evaluation platform named by eval/check
// flags. Feature knowledge comes from exactly one of --all-features,
// --unknown-features, or the accumulated --feature values.
func buildPlatform(triple string, features []string, flags []string, allFeatures, unknownFeatures bool) (*types.Platform, error) {
	var tf types.TargetFeatures
	switch {
	case allFeatures:
		tf = types.AllFeatures()
	case unknownFeatures:
		tf = types.FeaturesUnknown()
	default:
		tf = types.FeatureSet(features...)
	}

	platform, err := types.NewPlatform(triple, tf)
	if err != nil {
		return nil, err
	}
	platform.AddFlags(flags...)
	return platform, nil
}

// reportSpecError renders a spec parse error to stderr as a diagnostic
// when possible, plainly otherwise.
func reportSpecError(err error) {
	if d, ok := diagnostics.FromParseError(err, ""); ok {
		cli.RenderDiagnostic(os.Stderr, d, colorOutput)
		return
	}
	fmt.Fprintln(os.Stderr, "error:", err)
}
