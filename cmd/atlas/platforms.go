// Platforms command group: catalog CRUD, export, and import.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/targetspec/internal/catalog"
	"github.com/mesh-intelligence/targetspec/internal/cli"
	"github.com/mesh-intelligence/targetspec/pkg/types"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "Manage the platform catalog",
}

var (
	platformsListOS     string
	platformsListArch   string
	platformsListFamily string
	platformsListSource string

	platformsAddJSON     string
	platformsAddNotes    string
	platformsAddFeatures []string

	platformsExportDir string
	platformsImportDir string
)

func init() {
	platformsListCmd.Flags().StringVar(&platformsListOS, "os", "", "filter by operating system")
	platformsListCmd.Flags().StringVar(&platformsListArch, "arch", "", "filter by architecture")
	platformsListCmd.Flags().StringVar(&platformsListFamily, "family", "", "filter by target family")
	platformsListCmd.Flags().StringVar(&platformsListSource, "source", "", "filter by source: builtin, heuristic, or custom")

	platformsAddCmd.Flags().StringVar(&platformsAddJSON, "json", "", "custom target definition file (rustc JSON format)")
	platformsAddCmd.Flags().StringVar(&platformsAddNotes, "notes", "", "free-form notes stored with the platform")
	platformsAddCmd.Flags().StringArrayVar(&platformsAddFeatures, "feature", nil, "target feature to record for the platform (repeatable)")

	platformsExportCmd.Flags().StringVar(&platformsExportDir, "out", ".", "directory to export catalog files into")
	platformsImportCmd.Flags().StringVar(&platformsImportDir, "from", "", "directory holding platforms.jsonl and features.jsonl")
	_ = platformsImportCmd.MarkFlagRequired("from")

	platformsCmd.AddCommand(platformsListCmd)
	platformsCmd.AddCommand(platformsShowCmd)
	platformsCmd.AddCommand(platformsAddCmd)
	platformsCmd.AddCommand(platformsRemoveCmd)
	platformsCmd.AddCommand(platformsExportCmd)
	platformsCmd.AddCommand(platformsImportCmd)
}

var platformsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog platforms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachCatalog()
		if err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.PlatformsTable)
		if err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}

		filter := map[string]any{}
		for key, value := range map[string]string{
			"os":     platformsListOS,
			"arch":   platformsListArch,
			"family": platformsListFamily,
			"source": platformsListSource,
		} {
			if value != "" {
				filter[key] = value
			}
		}

		results, err := table.Fetch(filter)
		if err != nil {
			return err
		}

		records := make([]*types.PlatformRecord, len(results))
		for i, r := range results {
			records[i] = r.(*types.PlatformRecord)
		}
		if flagJSON {
			return cli.PrintJSON(cmd.OutOrStdout(), recordsJSON(records))
		}
		for _, rec := range records {
			fmt.Fprintf(cmd.OutOrStdout(), "%-40s %-10s %s/%s\n", rec.TripleStr, rec.Source, rec.OS, rec.Arch)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d platform(s)\n", len(records))
		return nil
	},
}

var platformsShowCmd = &cobra.Command{
	Use:   "show <triple>",
	Short: "Show one platform with its recorded features",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachCatalog()
		if err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}
		defer backend.Detach()

		rec, err := findPlatform(backend, args[0])
		if err != nil {
			return err
		}
		features, err := platformFeatures(backend, rec.TripleStr)
		if err != nil {
			return err
		}

		if flagJSON {
			return cli.PrintJSON(cmd.OutOrStdout(), map[string]any{
				"platform": recordJSON(rec),
				"features": features,
			})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "triple:       ", rec.TripleStr)
		fmt.Fprintln(out, "source:       ", rec.Source)
		fmt.Fprintln(out, "os:           ", rec.OS)
		fmt.Fprintln(out, "arch:         ", rec.Arch)
		fmt.Fprintln(out, "vendor:       ", rec.Vendor)
		if rec.Env != "" {
			fmt.Fprintln(out, "env:          ", rec.Env)
		}
		if rec.ABI != "" {
			fmt.Fprintln(out, "abi:          ", rec.ABI)
		}
		if len(rec.Families) > 0 {
			fmt.Fprintln(out, "families:     ", strings.Join(rec.Families, ", "))
		}
		fmt.Fprintln(out, "endian:       ", rec.Endian)
		fmt.Fprintln(out, "pointer width:", rec.PointerWidth)
		if len(features) > 0 {
			fmt.Fprintln(out, "features:     ", strings.Join(features, ", "))
		}
		if rec.Notes != "" {
			fmt.Fprintln(out, "notes:        ", rec.Notes)
		}
		return nil
	},
}

var platformsAddCmd = &cobra.Command{
	Use:   "add <triple>",
	Short: "Register a platform in the catalog",
	Long: `Register a platform. Without --json the triple is resolved through the
builtin table with heuristic fallback; with --json it is registered as a
custom platform from a rustc target definition file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tripleStr := args[0]

		var triple types.Triple
		var customJSON string
		if platformsAddJSON != "" {
			def, err := os.ReadFile(platformsAddJSON)
			if err != nil {
				return cli.WithCode(cli.ExitSysError, fmt.Errorf("reading definition: %w", err))
			}
			triple, err = types.NewCustomTriple(tripleStr, def)
			if err != nil {
				return err
			}
			customJSON = string(def)
		} else {
			var err error
			triple, err = types.ParseTriple(tripleStr)
			if err != nil {
				reportSpecError(err)
				os.Exit(cli.ExitUserError)
			}
		}

		backend, err := attachCatalog()
		if err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.PlatformsTable)
		if err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}

		rec := types.NewPlatformRecord(triple)
		rec.CustomJSON = customJSON
		rec.Notes = platformsAddNotes
		id, err := table.Set("", rec)
		if err != nil {
			return err
		}

		if len(platformsAddFeatures) > 0 {
			features, err := backend.GetTable(types.FeaturesTable)
			if err != nil {
				return cli.WithCode(cli.ExitSysError, err)
			}
			for _, name := range platformsAddFeatures {
				if _, err := features.Set("", &types.FeatureRecord{
					TripleStr: tripleStr,
					Feature:   name,
				}); err != nil {
					return err
				}
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", tripleStr, id)
		return nil
	},
}

var platformsRemoveCmd = &cobra.Command{
	Use:   "remove <triple>",
	Short: "Remove a platform and its features from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachCatalog()
		if err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}
		defer backend.Detach()

		rec, err := findPlatform(backend, args[0])
		if err != nil {
			return err
		}
		table, err := backend.GetTable(types.PlatformsTable)
		if err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}
		if err := table.Delete(rec.RecordID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", rec.TripleStr)
		return nil
	},
}

var platformsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog JSONL files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachCatalog()
		if err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}
		defer backend.Detach()

		if err := os.MkdirAll(platformsExportDir, 0o755); err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}
		for _, name := range []string{"platforms.jsonl", "features.jsonl"} {
			src := filepath.Join(backend.DataDir(), name)
			dst := filepath.Join(platformsExportDir, name)
			if err := copyFile(src, dst); err != nil {
				return cli.WithCode(cli.ExitSysError, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "exported", dst)
		}
		return nil
	},
}

var platformsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import catalog JSONL files into the data directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir()
		if err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}
		for _, name := range []string{"platforms.jsonl", "features.jsonl"} {
			src := filepath.Join(platformsImportDir, name)
			if _, err := os.Stat(src); err != nil {
				return fmt.Errorf("import source %s: %w", src, err)
			}
			if err := copyFile(src, filepath.Join(dataDir, name)); err != nil {
				return cli.WithCode(cli.ExitSysError, err)
			}
		}

		// Attaching validates the imported files and re-seeds any missing
		// builtin platforms.
		backend, err := attachCatalog()
		if err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}
		defer backend.Detach()

		table, err := backend.GetTable(types.PlatformsTable)
		if err != nil {
			return cli.WithCode(cli.ExitSysError, err)
		}
		results, err := table.Fetch(nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported catalog: %d platform(s)\n", len(results))
		return nil
	},
}

// findPlatform looks a platform up by triple string.
func findPlatform(backend *catalog.Backend, triple string) (*types.PlatformRecord, error) {
	table, err := backend.GetTable(types.PlatformsTable)
	if err != nil {
		return nil, cli.WithCode(cli.ExitSysError, err)
	}
	results, err := table.Fetch(map[string]any{"triple": triple})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("platform %q is not in the catalog", triple)
	}
	return results[0].(*types.PlatformRecord), nil
}

// platformFeatures returns the feature names recorded for a triple, in
// catalog order.
func platformFeatures(backend *catalog.Backend, triple string) ([]string, error) {
	table, err := backend.GetTable(types.FeaturesTable)
	if err != nil {
		return nil, cli.WithCode(cli.ExitSysError, err)
	}
	results, err := table.Fetch(map[string]any{"triple": triple})
	if err != nil {
		return nil, err
	}
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.(*types.FeatureRecord).Feature
	}
	return names, nil
}

// recordJSON is the stable wire form of one platform record.
func recordJSON(rec *types.PlatformRecord) map[string]any {
	m := map[string]any{
		"triple":        rec.TripleStr,
		"source":        rec.Source,
		"os":            rec.OS,
		"arch":          rec.Arch,
		"vendor":        rec.Vendor,
		"endian":        rec.Endian,
		"pointer_width": rec.PointerWidth,
	}
	if rec.Env != "" {
		m["env"] = rec.Env
	}
	if rec.ABI != "" {
		m["abi"] = rec.ABI
	}
	if len(rec.Families) > 0 {
		m["families"] = rec.Families
	}
	if rec.Notes != "" {
		m["notes"] = rec.Notes
	}
	return m
}

func recordsJSON(recs []*types.PlatformRecord) []map[string]any {
	out := make([]map[string]any, len(recs))
	for i, rec := range recs {
		out[i] = recordJSON(rec)
	}
	return out
}

// copyFile copies src to dst, truncating any existing dst.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
