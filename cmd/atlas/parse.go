// Parse command: check target spec syntax and dump the expression shape.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/targetspec/internal/cli"
	"github.com/mesh-intelligence/targetspec/pkg/targetspec"
	"github.com/mesh-intelligence/targetspec/pkg/types"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <spec>",
	Short: "Parse a target spec and report errors as diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "text", "output format: text or json")
}

func runParse(cmd *cobra.Command, args []string) error {
	expr, err := targetspec.Parse(args[0])
	if err != nil {
		reportSpecError(err)
		os.Exit(cli.ExitUserError)
	}

	if parseFormat == "json" || flagJSON {
		return cli.PrintJSON(cmd.OutOrStdout(), exprShape(expr))
	}
	fmt.Fprintln(cmd.OutOrStdout(), expr.String())
	return nil
}

// exprShape converts an expression into a JSON-friendly tree.
func exprShape(e types.Expr) map[string]any {
	switch v := e.(type) {
	case *types.TripleExpr:
		return map[string]any{
			"kind":   "triple",
			"triple": v.Triple.Value,
			"source": v.Triple.Source,
		}
	case *types.AllExpr:
		return map[string]any{"kind": "all", "operands": shapeList(v.Operands)}
	case *types.AnyExpr:
		return map[string]any{"kind": "any", "operands": shapeList(v.Operands)}
	case *types.NotExpr:
		return map[string]any{"kind": "not", "operand": exprShape(v.Operand)}
	case *types.PredExpr:
		return map[string]any{"kind": "predicate", "key": v.Key, "value": v.Value}
	case *types.FlagExpr:
		return map[string]any{"kind": "flag", "name": v.Name}
	default:
		return map[string]any{"kind": "unknown", "text": e.String()}
	}
}

func shapeList(operands []types.Expr) []map[string]any {
	shapes := make([]map[string]any, len(operands))
	for i, op := range operands {
		shapes[i] = exprShape(op)
	}
	return shapes
}
