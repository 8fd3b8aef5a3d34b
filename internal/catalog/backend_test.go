// Tests for catalog backend lifecycle and JSONL durability.
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/targetspec/pkg/types"
)

func testConfig(dir string) types.Config {
	return types.Config{
		Backend: types.BackendSQLite,
		DataDir: dir,
	}
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	err := b.Attach(testConfig(tmpDir))
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	// Database and JSONL files exist after attach.
	for _, name := range []string{dbFileName, platformsJSONL, featuresJSONL} {
		if _, err := os.Stat(filepath.Join(tmpDir, name)); err != nil {
			t.Errorf("%s not created: %v", name, err)
		}
	}

	// Double attach fails.
	if err := b.Attach(testConfig(tmpDir)); err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(testConfig(t.TempDir())); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}
	// Idempotent.
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}
	// Operations fail after detach.
	if _, err := b.GetTable(types.PlatformsTable); err != types.ErrCatalogDetached {
		t.Errorf("expected ErrCatalogDetached, got %v", err)
	}
}

func TestBackend_GetTable(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(testConfig(t.TempDir())); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	for _, name := range types.StandardTableNames {
		if _, err := b.GetTable(name); err != nil {
			t.Errorf("GetTable(%q) failed: %v", name, err)
		}
	}
	if _, err := b.GetTable("nonexistent"); err != types.ErrTableNotFound {
		t.Errorf("expected ErrTableNotFound, got %v", err)
	}
}

func TestBackend_SeedsBuiltins(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(testConfig(t.TempDir())); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	table, err := b.GetTable(types.PlatformsTable)
	if err != nil {
		t.Fatalf("GetTable failed: %v", err)
	}
	results, err := table.Fetch(map[string]any{"source": types.TripleSourceBuiltin})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	want := len(types.BuiltinTriples())
	if len(results) != want {
		t.Errorf("seeded %d builtin platforms, want %d", len(results), want)
	}
}

func TestBackend_SeedIdempotent(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	if err := b.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("first Attach failed: %v", err)
	}

	table, _ := b.GetTable(types.PlatformsTable)
	first, err := table.Fetch(nil)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	firstIDs := make(map[string]string)
	for _, r := range first {
		rec := r.(*types.PlatformRecord)
		firstIDs[rec.TripleStr] = rec.RecordID
	}
	b.Detach()

	// Reattach over the same data directory: same rows, same IDs.
	b2 := NewBackend()
	if err := b2.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("second Attach failed: %v", err)
	}
	defer b2.Detach()

	table2, _ := b2.GetTable(types.PlatformsTable)
	second, err := table2.Fetch(nil)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("reattach changed row count: %d -> %d", len(first), len(second))
	}
	for _, r := range second {
		rec := r.(*types.PlatformRecord)
		if firstIDs[rec.TripleStr] != rec.RecordID {
			t.Errorf("record ID for %s changed across reattach", rec.TripleStr)
		}
	}
}

func TestBackend_SurvivesDatabaseDeletion(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	if err := b.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	table, _ := b.GetTable(types.PlatformsTable)
	triple, err := types.ParseTriple("m68k-unknown-openbsd")
	if err != nil {
		t.Fatalf("ParseTriple failed: %v", err)
	}
	rec := types.NewPlatformRecord(triple)
	id, err := table.Set("", rec)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	b.Detach()

	// The SQLite file is a cache; JSONL carries the data.
	if err := os.Remove(filepath.Join(tmpDir, dbFileName)); err != nil {
		t.Fatalf("removing database: %v", err)
	}

	b2 := NewBackend()
	if err := b2.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("reattach failed: %v", err)
	}
	defer b2.Detach()

	table2, _ := b2.GetTable(types.PlatformsTable)
	got, err := table2.Get(id)
	if err != nil {
		t.Fatalf("Get after rebuild failed: %v", err)
	}
	if got.(*types.PlatformRecord).TripleStr != "m68k-unknown-openbsd" {
		t.Errorf("unexpected triple after rebuild: %s", got.(*types.PlatformRecord).TripleStr)
	}
}
