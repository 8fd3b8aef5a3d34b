// Integration tests for the readme command group: generate, check, and
// template error reporting.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const readmeTemplate = `# {{crate}}

{{readme}}

Current version: {{version}}
`

const readmeFragment = `Evaluates target specs against platforms.

## Usage

Run ` + "`atlas eval`" + `.
`

func setupReadme(t *testing.T) *TestEnv {
	t.Helper()
	env := NewTestEnv(t)
	env.WriteFile("docs/readme/README.tpl.md", readmeTemplate)
	env.WriteFile("docs/readme/README.md", readmeFragment)
	return env
}

func TestReadmeGenerate(t *testing.T) {
	env := setupReadme(t)

	result := env.MustRunAtlas("readme", "generate")
	if !strings.Contains(result.Stdout, "wrote README.md") {
		t.Errorf("unexpected output: %s", result.Stdout)
	}

	data, err := os.ReadFile(filepath.Join(env.TempDir, "README.md"))
	if err != nil {
		t.Fatalf("failed to read generated README: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# targetspec\n") {
		t.Errorf("crate placeholder not substituted: %s", content)
	}
	if !strings.Contains(content, "Evaluates target specs against platforms.") {
		t.Errorf("fragment not substituted: %s", content)
	}
	if !strings.Contains(content, "Current version: v") {
		t.Errorf("version placeholder not substituted: %s", content)
	}
	if !strings.HasSuffix(content, "\n") || strings.HasSuffix(content, "\n\n") {
		t.Errorf("expected exactly one trailing newline: %q", content)
	}
}

func TestReadmeCheckUpToDate(t *testing.T) {
	env := setupReadme(t)
	env.MustRunAtlas("readme", "generate")

	result := env.MustRunAtlas("readme", "check")
	if !strings.Contains(result.Stdout, "is up to date") {
		t.Errorf("unexpected output: %s", result.Stdout)
	}
}

func TestReadmeCheckDrift(t *testing.T) {
	env := setupReadme(t)
	env.MustRunAtlas("readme", "generate")

	// Hand-editing the output drifts it from a fresh render.
	path := filepath.Join(env.TempDir, "README.md")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, append(data, []byte("stale edit\n")...), 0644); err != nil {
		t.Fatal(err)
	}

	result := env.RunAtlas("readme", "check")
	if result.ExitCode != 1 {
		t.Fatalf("expected exit 1, got %d", result.ExitCode)
	}
	if !strings.Contains(result.Stderr, "differs from a fresh render") {
		t.Errorf("unexpected drift message: %s", result.Stderr)
	}
}

func TestReadmeCheckMissingOutput(t *testing.T) {
	env := setupReadme(t)

	result := env.RunAtlas("readme", "check")
	if result.ExitCode != 1 {
		t.Fatalf("expected exit 1, got %d", result.ExitCode)
	}
	if !strings.Contains(result.Stderr, "does not exist") {
		t.Errorf("unexpected message: %s", result.Stderr)
	}
}

func TestReadmeUnknownPlaceholder(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFile("docs/readme/README.tpl.md", "# {{crate}}\n\nBy {{autor}}\n")
	env.WriteFile("docs/readme/README.md", "body\n")

	result := env.RunAtlas("readme", "generate")
	if result.ExitCode != 1 {
		t.Fatalf("expected exit 1, got %d", result.ExitCode)
	}
	if !strings.Contains(result.Stderr, "autor") {
		t.Errorf("expected diagnostic naming the placeholder: %s", result.Stderr)
	}
}

// TestReadmeCheckCommittedFiles verifies the repository's own README.md is
// byte-identical to a fresh render of docs/readme/.
func TestReadmeCheckCommittedFiles(t *testing.T) {
	if buildErr != nil {
		t.Fatalf("failed to build atlas: %v", buildErr)
	}
	root, err := FindProjectRoot()
	if err != nil {
		t.Fatalf("failed to find project root: %v", err)
	}

	cmd := exec.Command(atlasBin, "--config-dir", t.TempDir(), "--color", "never", "readme", "check")
	cmd.Dir = root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("readme check against committed files failed: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "is up to date") {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestReadmeMissingTemplate(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunAtlas("readme", "generate")
	if result.ExitCode != 3 {
		t.Fatalf("expected exit 3, got %d", result.ExitCode)
	}
}
