// Eval command: evaluate a target spec against a platform.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/targetspec/internal/cli"
	"github.com/mesh-intelligence/targetspec/pkg/targetspec"
	"github.com/mesh-intelligence/targetspec/pkg/types"
)

var (
	evalFeatures        []string
	evalFlags           []string
	evalAllFeatures     bool
	evalUnknownFeatures bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <spec> <triple>",
	Short: "Evaluate a target spec against a target triple",
	Long: `Evaluate a target spec (a triple or a cfg() expression) against a
platform built from the given triple. Prints true, false, or unknown.

Exit codes: 0 match, 1 no match, 2 unknown, 3 error.`,
	Args: cobra.ExactArgs(2),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringArrayVar(&evalFeatures, "feature", nil, "target feature enabled on the platform (repeatable)")
	evalCmd.Flags().StringArrayVar(&evalFlags, "flag", nil, "extra cfg flag set on the platform (repeatable)")
	evalCmd.Flags().BoolVar(&evalAllFeatures, "all-features", false, "treat every target feature as enabled")
	evalCmd.Flags().BoolVar(&evalUnknownFeatures, "unknown-features", false, "treat target features as unknown")
}

// evalResult is the --json wire form of one evaluation.
type evalResult struct {
	Spec   string `json:"spec"`
	Triple string `json:"triple"`
	Result string `json:"result"`
}

func runEval(cmd *cobra.Command, args []string) error {
	spec, triple := args[0], args[1]

	expr, err := targetspec.Parse(spec)
	if err != nil {
		reportSpecError(err)
		os.Exit(cli.ExitSysError)
	}

	platform, err := buildPlatform(triple, evalFeatures, evalFlags, evalAllFeatures, evalUnknownFeatures)
	if err != nil {
		reportSpecError(err)
		os.Exit(cli.ExitSysError)
	}

	matched, err := types.Matches(expr, platform)
	result := "false"
	exit := cli.ExitUserError
	switch {
	case errors.Is(err, types.ErrUnknownEval):
		result = "unknown"
		exit = cli.ExitUnknown
	case err != nil:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.ExitSysError)
	case matched:
		result = "true"
		exit = cli.ExitSuccess
	}

	if flagJSON {
		if err := cli.PrintJSON(cmd.OutOrStdout(), evalResult{Spec: spec, Triple: triple, Result: result}); err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	os.Exit(exit)
	return nil
}
