// Integration tests for the platforms command group: catalog CRUD,
// export, and import.
package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlatformsListBuiltins(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunAtlas("init")

	result := env.MustRunAtlas("platforms", "list")
	if !strings.Contains(result.Stdout, "x86_64-unknown-linux-gnu") {
		t.Errorf("expected builtin triple in list: %s", result.Stdout)
	}
	if !strings.Contains(result.Stdout, "platform(s)") {
		t.Errorf("expected count line: %s", result.Stdout)
	}
}

func TestPlatformsListFilters(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunAtlas("init")

	result := env.MustRunAtlas("platforms", "list", "--os", "windows", "--json")
	records := ParseJSON[[]PlatformJSON](t, result.Stdout)
	if len(records) == 0 {
		t.Fatal("expected windows platforms")
	}
	for _, rec := range records {
		if rec.OS != "windows" {
			t.Errorf("filter leaked %s (os %s)", rec.Triple, rec.OS)
		}
	}

	result = env.MustRunAtlas("platforms", "list", "--family", "unix", "--arch", "aarch64", "--json")
	records = ParseJSON[[]PlatformJSON](t, result.Stdout)
	for _, rec := range records {
		if rec.Arch != "aarch64" {
			t.Errorf("arch filter leaked %s", rec.Triple)
		}
	}
}

func TestPlatformsAddShowRemove(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunAtlas("init")

	result := env.MustRunAtlas("platforms", "add", "m68k-unknown-openbsd",
		"--feature", "fpu", "--notes", "retro box")
	if !strings.Contains(result.Stdout, "added m68k-unknown-openbsd (") {
		t.Errorf("unexpected add output: %s", result.Stdout)
	}

	result = env.MustRunAtlas("platforms", "show", "m68k-unknown-openbsd")
	for _, want := range []string{"heuristic", "openbsd", "m68k", "fpu", "retro box"} {
		if !strings.Contains(result.Stdout, want) {
			t.Errorf("show output missing %q: %s", want, result.Stdout)
		}
	}

	result = env.MustRunAtlas("platforms", "remove", "m68k-unknown-openbsd")
	if !strings.Contains(result.Stdout, "removed m68k-unknown-openbsd") {
		t.Errorf("unexpected remove output: %s", result.Stdout)
	}

	result = env.RunAtlas("platforms", "show", "m68k-unknown-openbsd")
	if result.ExitCode == 0 {
		t.Error("expected show to fail after removal")
	}
}

func TestPlatformsAddDuplicate(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunAtlas("init")

	result := env.RunAtlas("platforms", "add", "x86_64-unknown-linux-gnu")
	if result.ExitCode == 0 {
		t.Error("expected duplicate add to fail")
	}
}

func TestPlatformsAddBadTriple(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunAtlas("init")

	result := env.RunAtlas("platforms", "add", "notanarch-unknown-linux-gnu")
	if result.ExitCode != 1 {
		t.Fatalf("expected exit 1, got %d", result.ExitCode)
	}
	if result.Stderr == "" {
		t.Error("expected a diagnostic on stderr")
	}
}

func TestPlatformsRemoveBuiltin(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunAtlas("init")

	result := env.RunAtlas("platforms", "remove", "x86_64-unknown-linux-gnu")
	if result.ExitCode == 0 {
		t.Error("expected builtin removal to fail")
	}
}

func TestPlatformsAddCustom(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunAtlas("init")

	defPath := env.WriteFile("mycpu.json", `{
  "arch": "mycpu",
  "os": "none",
  "target-endian": "big",
  "target-pointer-width": "32",
  "panic-strategy": "abort"
}`)

	env.MustRunAtlas("platforms", "add", "mycpu-vendor-none", "--json", defPath)

	result := env.MustRunAtlas("platforms", "show", "mycpu-vendor-none", "--json")
	parsed := ParseJSON[struct {
		Platform PlatformJSON `json:"platform"`
		Features []string     `json:"features"`
	}](t, result.Stdout)
	if parsed.Platform.Source != "custom" {
		t.Errorf("expected custom source, got %s", parsed.Platform.Source)
	}
	if parsed.Platform.Arch != "mycpu" {
		t.Errorf("expected mycpu arch, got %s", parsed.Platform.Arch)
	}
	if parsed.Platform.PointerWidth != 32 {
		t.Errorf("expected pointer width 32, got %d", parsed.Platform.PointerWidth)
	}
}

func TestPlatformsExportImport(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunAtlas("init")
	env.MustRunAtlas("platforms", "add", "m68k-unknown-openbsd", "--feature", "fpu")

	exportDir := filepath.Join(env.TempDir, "export")
	env.MustRunAtlas("platforms", "export", "--out", exportDir)
	for _, name := range []string{"platforms.jsonl", "features.jsonl"} {
		if _, err := os.Stat(filepath.Join(exportDir, name)); err != nil {
			t.Fatalf("expected exported %s: %v", name, err)
		}
	}

	// Import into a fresh environment and verify the added platform
	// survived the round trip.
	fresh := NewTestEnv(t)
	result := fresh.MustRunAtlas("platforms", "import", "--from", exportDir)
	if !strings.Contains(result.Stdout, "imported catalog:") {
		t.Errorf("unexpected import output: %s", result.Stdout)
	}

	result = fresh.MustRunAtlas("platforms", "show", "m68k-unknown-openbsd")
	if !strings.Contains(result.Stdout, "fpu") {
		t.Errorf("expected feature to survive import: %s", result.Stdout)
	}
}

func TestPlatformsImportMissingSource(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunAtlas("platforms", "import", "--from", filepath.Join(env.TempDir, "nowhere"))
	if result.ExitCode == 0 {
		t.Error("expected import from a missing directory to fail")
	}
}

func TestPlatformsCatalogSurvivesCacheDeletion(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunAtlas("init")
	env.MustRunAtlas("platforms", "add", "m68k-unknown-openbsd")

	// The SQLite file is a cache; the JSONL files are the source of
	// truth, so deleting it must not lose data.
	if err := os.Remove(filepath.Join(env.DataDir, "catalog.db")); err != nil {
		t.Fatalf("failed to delete cache: %v", err)
	}

	result := env.MustRunAtlas("platforms", "show", "m68k-unknown-openbsd")
	if !strings.Contains(result.Stdout, "m68k-unknown-openbsd") {
		t.Errorf("expected platform to survive cache deletion: %s", result.Stdout)
	}
}
