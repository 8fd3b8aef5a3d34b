// Version command for the atlas CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/targetspec/pkg/targetspec"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the atlas version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "atlas", targetspec.Version)
	},
}
