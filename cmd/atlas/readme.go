// Readme command group: generate, check, and preview the README.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/targetspec/internal/cli"
	"github.com/mesh-intelligence/targetspec/internal/docgen"
)

var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Generate and verify the README from its template",
}

func init() {
	readmeCmd.AddCommand(readmeGenerateCmd)
	readmeCmd.AddCommand(readmeCheckCmd)
	readmeCmd.AddCommand(readmePreviewCmd)
}

var readmeGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the README template and write the output file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := docgen.Generate(readmeConfig); err != nil {
			return reportDocgenError(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", readmeConfig.OutputPath)
		return nil
	},
}

var readmeCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the committed README matches a fresh render byte-for-byte",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		drift, err := docgen.Check(readmeConfig)
		if err != nil {
			return reportDocgenError(err)
		}
		if drift == nil {
			fmt.Fprintln(cmd.OutOrStdout(), readmeConfig.OutputPath, "is up to date")
			return nil
		}
		if drift.Missing {
			fmt.Fprintln(os.Stderr, drift.Path, "does not exist; run `atlas readme generate`")
		} else {
			fmt.Fprintf(os.Stderr, "%s differs from a fresh render (first difference at line %d); run `atlas readme generate`\n",
				drift.Path, drift.FirstLine)
		}
		os.Exit(cli.ExitUserError)
		return nil
	},
}

var readmePreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the README and display it in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := docgen.Render(readmeConfig)
		if err != nil {
			return reportDocgenError(err)
		}
		rendered, err := cli.PreviewMarkdown(out)
		if err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// reportDocgenError renders template errors as diagnostics and tiers the
// exit code: template mistakes are user errors, the rest are system
// errors.
func reportDocgenError(err error) error {
	var terr *docgen.TemplateError
	if errors.As(err, &terr) {
		cli.RenderDiagnostic(os.Stderr, terr.Diagnostic(), colorOutput)
		os.Exit(cli.ExitUserError)
	}
	return cli.WithCode(cli.ExitSysError, err)
}
