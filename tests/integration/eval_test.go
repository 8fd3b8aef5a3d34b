// Integration tests for the eval command exit code contract:
// 0 match, 1 no match, 2 unknown, 3 error.
package integration

import (
	"strings"
	"testing"
)

func TestEvalMatch(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunAtlas("eval", "cfg(unix)", "x86_64-unknown-linux-gnu")
	if result.ExitCode != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", result.ExitCode, result.Stderr)
	}
	if strings.TrimSpace(result.Stdout) != "true" {
		t.Errorf("expected true, got %q", result.Stdout)
	}
}

func TestEvalNoMatch(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunAtlas("eval", "cfg(windows)", "x86_64-unknown-linux-gnu")
	if result.ExitCode != 1 {
		t.Fatalf("expected exit 1, got %d", result.ExitCode)
	}
	if strings.TrimSpace(result.Stdout) != "false" {
		t.Errorf("expected false, got %q", result.Stdout)
	}
}

func TestEvalUnknown(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunAtlas("eval", `cfg(target_feature = "sse2")`, "x86_64-unknown-linux-gnu", "--unknown-features")
	if result.ExitCode != 2 {
		t.Fatalf("expected exit 2, got %d", result.ExitCode)
	}
	if strings.TrimSpace(result.Stdout) != "unknown" {
		t.Errorf("expected unknown, got %q", result.Stdout)
	}
}

func TestEvalFeatureFlags(t *testing.T) {
	env := NewTestEnv(t)

	// An explicitly enabled feature matches.
	result := env.RunAtlas("eval", `cfg(target_feature = "sse2")`, "x86_64-unknown-linux-gnu", "--feature", "sse2")
	if result.ExitCode != 0 {
		t.Fatalf("expected exit 0 for enabled feature, got %d", result.ExitCode)
	}

	// Without the feature the set is closed, so the answer is a known false.
	result = env.RunAtlas("eval", `cfg(target_feature = "sse2")`, "x86_64-unknown-linux-gnu")
	if result.ExitCode != 1 {
		t.Fatalf("expected exit 1 for disabled feature, got %d", result.ExitCode)
	}

	// --all-features enables everything.
	result = env.RunAtlas("eval", `cfg(target_feature = "avx512f")`, "x86_64-unknown-linux-gnu", "--all-features")
	if result.ExitCode != 0 {
		t.Fatalf("expected exit 0 with --all-features, got %d", result.ExitCode)
	}
}

func TestEvalCustomFlag(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunAtlas("eval", "cfg(fuzzing)", "x86_64-unknown-linux-gnu", "--flag", "fuzzing")
	if result.ExitCode != 0 {
		t.Fatalf("expected exit 0 for set flag, got %d", result.ExitCode)
	}
}

func TestEvalParseError(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunAtlas("eval", `cfg(target_os = `, "x86_64-unknown-linux-gnu")
	if result.ExitCode != 3 {
		t.Fatalf("expected exit 3, got %d", result.ExitCode)
	}
	if result.Stderr == "" {
		t.Error("expected a diagnostic on stderr")
	}
}

func TestEvalBadTriple(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunAtlas("eval", "cfg(unix)", "notanarch-unknown-linux-gnu")
	if result.ExitCode != 3 {
		t.Fatalf("expected exit 3, got %d (stderr: %s)", result.ExitCode, result.Stderr)
	}
}

func TestEvalJSON(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunAtlas("eval", "cfg(unix)", "x86_64-unknown-linux-gnu", "--json")
	if result.ExitCode != 0 {
		t.Fatalf("expected exit 0, got %d", result.ExitCode)
	}
	parsed := ParseJSON[EvalResult](t, result.Stdout)
	if parsed.Spec != "cfg(unix)" {
		t.Errorf("unexpected spec: %q", parsed.Spec)
	}
	if parsed.Triple != "x86_64-unknown-linux-gnu" {
		t.Errorf("unexpected triple: %q", parsed.Triple)
	}
	if parsed.Result != "true" {
		t.Errorf("unexpected result: %q", parsed.Result)
	}
}

func TestEvalBareTriple(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunAtlas("eval", "aarch64-apple-darwin", "aarch64-apple-darwin")
	if result.ExitCode != 0 {
		t.Fatalf("expected exit 0, got %d", result.ExitCode)
	}

	result = env.RunAtlas("eval", "aarch64-apple-darwin", "x86_64-unknown-linux-gnu")
	if result.ExitCode != 1 {
		t.Fatalf("expected exit 1, got %d", result.ExitCode)
	}
}
