// Package main provides the atlas CLI: target spec parsing and evaluation,
// manifest checking, the platform catalog, and README generation.
package main

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/targetspec/internal/cli"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
