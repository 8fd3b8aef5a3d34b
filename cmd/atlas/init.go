// Init command for the atlas CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/targetspec/internal/cli"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize atlas configuration and catalog storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Resolve config directory (flag > env > default) and ensure it
		// exists with a default config.yaml.
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(cli.ExitSysError)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(cli.ExitSysError)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(cli.ExitSysError)
		}

		// Attach the catalog; this creates the data directory and seeds
		// the builtin platforms.
		backend, err := attachCatalog()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(cli.ExitSysError)
		}
		defer backend.Detach()

		fmt.Fprintln(cmd.OutOrStdout(), "Atlas initialized successfully")
		fmt.Fprintln(cmd.OutOrStdout(), "  config:", configDir)
		fmt.Fprintln(cmd.OutOrStdout(), "  data:  ", backend.DataDir())
		return nil
	},
}
