//go:build mage

// Package main provides Mage build targets for the targetspec project.
//
// Usage:
//
//	mage build            Compile the atlas binary to bin/
//	mage generate         Regenerate pkg/types/builtin.go from targets.json
//	mage test             Run all tests
//	mage testUnit         Run tests outside tests/
//	mage testIntegration  Build atlas, then run tests/
//	mage readme           Regenerate README.md with atlas itself
//	mage lint             Run golangci-lint
//	mage check            Lint plus README drift check
//	mage clean            Remove build artifacts
//	mage install          Install atlas to GOPATH/bin
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "atlas"
	binaryDir  = "bin"
	cmdDir     = "./cmd/atlas"
)

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}

// Build compiles the atlas binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", binaryPath(), cmdDir)
}

// Test runs every test in the module.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestUnit runs the package tests, excluding tests/.
func TestUnit() error {
	out, err := sh.Output("go", "list", "./...")
	if err != nil {
		return err
	}
	var pkgs []string
	for _, pkg := range strings.Split(out, "\n") {
		if pkg == "" || strings.Contains(pkg, "/tests/") {
			continue
		}
		pkgs = append(pkgs, pkg)
	}
	return sh.RunV("go", append([]string{"test"}, pkgs...)...)
}

// TestIntegration runs the CLI tests under tests/. The suite builds its
// own binary, but building here first surfaces compile errors early.
func TestIntegration() error {
	mg.Deps(Build)
	return sh.RunV("go", "test", "./tests/...")
}

// Readme re-renders README.md from docs/readme/ using the built atlas.
func Readme() error {
	mg.Deps(Build)
	return sh.RunV(binaryPath(), "readme", "generate")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Check runs the lint pass and verifies README.md matches a fresh render.
func Check() error {
	mg.Deps(Lint, Build)
	return sh.RunV(binaryPath(), "readme", "check")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	return sh.Copy(filepath.Join(gopath, "bin", binaryName), binaryPath())
}
