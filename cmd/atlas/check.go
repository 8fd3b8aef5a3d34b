// Check command: scan TOML manifests for target specs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/targetspec/internal/cli"
	"github.com/mesh-intelligence/targetspec/internal/manifest"
	"github.com/mesh-intelligence/targetspec/pkg/diagnostics"
	"github.com/mesh-intelligence/targetspec/pkg/types"
)

var (
	checkPlatform string
	checkWatch    bool
	checkFormat   string
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Scan TOML manifests for target specs and report findings",
	Long: `Scan manifest files for [target.'<spec>'.*] tables, parse every spec,
and report bad ones as span-labeled diagnostics. With --platform, valid
specs are also evaluated against that platform.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkPlatform, "platform", "", "evaluate specs against this target triple")
	checkCmd.Flags().BoolVar(&checkWatch, "watch", false, "re-scan when a manifest changes")
	checkCmd.Flags().StringVar(&checkFormat, "format", "text", "output format: text or json")
}

func runCheck(cmd *cobra.Command, args []string) error {
	var platform *types.Platform
	if checkPlatform != "" {
		var err error
		platform, err = buildPlatform(checkPlatform, nil, nil, false, true)
		if err != nil {
			reportSpecError(err)
			os.Exit(cli.ExitSysError)
		}
	}

	if checkWatch {
		return runCheckWatch(args, platform)
	}

	report, err := manifest.Check(args, platform)
	if err != nil {
		return cli.WithCode(cli.ExitSysError, err)
	}
	printReport(report)
	if report.HasErrors() {
		os.Exit(cli.ExitUserError)
	}
	return nil
}

// runCheckWatch scans, then re-scans on every manifest change until
// interrupted.
func runCheckWatch(paths []string, platform *types.Platform) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher := manifest.NewWatcher(paths, platform)
	watcher.OnReport = printReport
	if err := watcher.Run(ctx); err != nil {
		return cli.WithCode(cli.ExitSysError, err)
	}
	return nil
}

// printReport writes one scan report to stdout (and diagnostics to
// stderr) in the selected format.
func printReport(report *manifest.Report) {
	if checkFormat == "json" || flagJSON {
		_ = cli.PrintJSON(os.Stdout, report)
		return
	}

	var diags []*diagnostics.Diagnostic
	for _, f := range report.Findings {
		if f.Diag != nil {
			diags = append(diags, f.Diag)
			continue
		}
		if f.Evaluated {
			result := "false"
			if !f.Known {
				result = "unknown"
			} else if f.Matched {
				result = "true"
			}
			fmt.Printf("%s:%d: %s -> %s\n", f.Path, f.Line, f.Spec, result)
		} else {
			fmt.Printf("%s:%d: %s ok\n", f.Path, f.Line, f.Spec)
		}
	}
	cli.RenderDiagnostics(os.Stderr, diags, colorOutput)
	fmt.Printf("%d file(s), %d spec(s), %d error(s)\n", report.Files, report.Specs, report.Errors)
}
