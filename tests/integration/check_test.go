// Integration tests for the check command: manifest scanning,
// evaluation, and the JSON report.
package integration

import (
	"strings"
	"testing"
)

const cleanManifest = `[package]
name = "demo"
version = "0.1.0"

[target.'cfg(unix)'.dependencies]
libc = "0.2"

[target.'cfg(windows)'.dependencies]
winapi = "0.3"

[target.x86_64-unknown-linux-gnu.dependencies]
nix = "0.27"
`

const brokenManifest = `[target.'cfg(unix)'.dependencies]
libc = "0.2"

[target.'cfg(target_oss = "linux")'.dependencies]
badcrate = "1.0"
`

func TestCheckCleanManifest(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteFile("Cargo.toml", cleanManifest)

	result := env.MustRunAtlas("check", path)
	if !strings.Contains(result.Stdout, "1 file(s), 3 spec(s), 0 error(s)") {
		t.Errorf("unexpected summary: %s", result.Stdout)
	}
	if !strings.Contains(result.Stdout, "cfg(unix) ok") {
		t.Errorf("expected ok line for cfg(unix): %s", result.Stdout)
	}
}

func TestCheckBadSpec(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteFile("Cargo.toml", brokenManifest)

	result := env.RunAtlas("check", path)
	if result.ExitCode != 1 {
		t.Fatalf("expected exit 1, got %d", result.ExitCode)
	}
	if !strings.Contains(result.Stdout, "1 error(s)") {
		t.Errorf("unexpected summary: %s", result.Stdout)
	}
	if !strings.Contains(result.Stderr, "target_oss") {
		t.Errorf("expected diagnostic naming the bad key: %s", result.Stderr)
	}
}

func TestCheckTomlSyntaxError(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteFile("Cargo.toml", "[target.'cfg(unix)'\nbroken\n")

	result := env.RunAtlas("check", path)
	if result.ExitCode != 1 {
		t.Fatalf("expected exit 1, got %d", result.ExitCode)
	}
	if result.Stderr == "" {
		t.Error("expected a syntax diagnostic on stderr")
	}
}

func TestCheckWithPlatform(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteFile("Cargo.toml", cleanManifest)

	result := env.MustRunAtlas("check", path, "--platform", "x86_64-unknown-linux-gnu")
	if !strings.Contains(result.Stdout, "cfg(unix) -> true") {
		t.Errorf("expected cfg(unix) to match: %s", result.Stdout)
	}
	if !strings.Contains(result.Stdout, "cfg(windows) -> false") {
		t.Errorf("expected cfg(windows) not to match: %s", result.Stdout)
	}
}

func TestCheckPlatformUnknownFeatures(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteFile("Cargo.toml",
		"[target.'cfg(target_feature = \"sse2\")'.dependencies]\nsimd = \"1\"\n")

	// The check platform carries an open feature set, so feature
	// predicates stay undecided instead of evaluating to false.
	result := env.MustRunAtlas("check", path, "--platform", "x86_64-unknown-linux-gnu")
	if !strings.Contains(result.Stdout, "-> unknown") {
		t.Errorf("expected unknown result: %s", result.Stdout)
	}
}

func TestCheckMissingFile(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunAtlas("check", "no-such-manifest.toml")
	if result.ExitCode != 3 {
		t.Fatalf("expected exit 3, got %d", result.ExitCode)
	}
}

func TestCheckJSONReport(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteFile("Cargo.toml", cleanManifest)

	result := env.MustRunAtlas("check", path, "--platform", "x86_64-unknown-linux-gnu", "--format", "json")

	report := ParseJSON[CheckReport](t, result.Stdout)
	if report.Files != 1 || report.Specs != 3 || report.Errors != 0 {
		t.Errorf("unexpected counts: files=%d specs=%d errors=%d", report.Files, report.Specs, report.Errors)
	}
	if report.RunID == "" {
		t.Error("expected a run id")
	}
	if len(report.Findings) != 3 {
		t.Fatalf("expected 3 findings, got %d", len(report.Findings))
	}
	for _, f := range report.Findings {
		if f.Path != path {
			t.Errorf("unexpected finding path: %s", f.Path)
		}
		if !f.Evaluated {
			t.Errorf("expected %s to be evaluated", f.Spec)
		}
	}
	if report.Matches != 2 {
		t.Errorf("expected 2 matches, got %d", report.Matches)
	}
}

func TestCheckMultipleFiles(t *testing.T) {
	env := NewTestEnv(t)
	a := env.WriteFile("a/Cargo.toml", cleanManifest)
	b := env.WriteFile("b/Cargo.toml", brokenManifest)

	result := env.RunAtlas("check", a, b)
	if result.ExitCode != 1 {
		t.Fatalf("expected exit 1, got %d", result.ExitCode)
	}
	if !strings.Contains(result.Stdout, "2 file(s)") {
		t.Errorf("unexpected summary: %s", result.Stdout)
	}
}
