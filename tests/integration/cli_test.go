// CLI integration tests for atlas: binary build, init, and version.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the atlas binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "atlas-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "atlas")
	SetAtlasBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/atlas")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{
			Err:    err,
			Output: string(output),
		})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}

func TestInit(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunAtlas("init")

	if !strings.Contains(result.Stdout, "Atlas initialized successfully") {
		t.Errorf("unexpected init output: %s", result.Stdout)
	}

	// Attach creates the data directory, the SQLite cache, and the two
	// JSONL source-of-truth files.
	for _, name := range []string{"catalog.db", "platforms.jsonl", "features.jsonl"} {
		if _, err := os.Stat(filepath.Join(env.DataDir, name)); err != nil {
			t.Errorf("expected %s in data dir: %v", name, err)
		}
	}
}

func TestInitIdempotent(t *testing.T) {
	env := NewTestEnv(t)

	env.MustRunAtlas("init")
	env.MustRunAtlas("init")
}

func TestVersion(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunAtlas("version")
	if !strings.HasPrefix(result.Stdout, "atlas v") {
		t.Errorf("unexpected version output: %q", result.Stdout)
	}
}
