// Package integration provides CLI integration tests for atlas.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// atlasBin is the path to the built atlas binary.
	atlasBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with its compiler output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetAtlasBin sets the path to the atlas binary (called from TestMain).
func SetAtlasBin(path string) {
	atlasBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and
// data directory. Commands run with the environment's temp directory as
// working directory so relative paths stay inside it.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build atlas: %v", buildErr)
	}
	if atlasBin == "" {
		t.Fatal("atlas binary not built (atlasBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: sqlite\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of one atlas command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunAtlas executes the atlas CLI with the given arguments.
func (e *TestEnv) RunAtlas(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir, "--color", "never"}, args...)
	cmd := exec.Command(atlasBin, allArgs...)
	cmd.Dir = e.TempDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run atlas: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunAtlas executes the atlas CLI and fails the test on non-zero exit.
func (e *TestEnv) MustRunAtlas(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunAtlas(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("atlas %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// WriteFile writes a file inside the environment's temp directory,
// creating parent directories as needed, and returns its absolute path.
func (e *TestEnv) WriteFile(rel, content string) string {
	e.t.Helper()
	path := filepath.Join(e.TempDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", rel, err)
	}
	return path
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// EvalResult mirrors the eval --json output.
type EvalResult struct {
	Spec   string `json:"spec"`
	Triple string `json:"triple"`
	Result string `json:"result"`
}

// CheckFinding mirrors one finding in the check --format json output.
type CheckFinding struct {
	Path      string `json:"path"`
	Spec      string `json:"spec"`
	Line      int    `json:"line"`
	Evaluated bool   `json:"evaluated"`
	Matched   bool   `json:"matched"`
	Known     bool   `json:"known"`
}

// CheckReport mirrors the check --format json output.
type CheckReport struct {
	RunID    string         `json:"run_id"`
	Files    int            `json:"files"`
	Specs    int            `json:"specs"`
	Errors   int            `json:"errors"`
	Matches  int            `json:"matches"`
	Findings []CheckFinding `json:"findings"`
}

// PlatformJSON mirrors one platform record in platforms --json output.
type PlatformJSON struct {
	Triple       string   `json:"triple"`
	Source       string   `json:"source"`
	OS           string   `json:"os"`
	Arch         string   `json:"arch"`
	Vendor       string   `json:"vendor"`
	Env          string   `json:"env"`
	Families     []string `json:"families"`
	Endian       string   `json:"endian"`
	PointerWidth int      `json:"pointer_width"`
}
