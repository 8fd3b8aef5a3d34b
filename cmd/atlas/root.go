// Root command for the atlas CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/targetspec/internal/cli"
	"github.com/mesh-intelligence/targetspec/internal/logging"
	"github.com/mesh-intelligence/targetspec/internal/paths"
	"github.com/mesh-intelligence/targetspec/pkg/targetspec"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
	flagColor     string
)

// configDataDir holds the data_dir value loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var configDataDir string

// colorOutput is the resolved --color decision.
var colorOutput bool

var rootCmd = &cobra.Command{
	Use:     "atlas",
	Short:   "Atlas evaluates target specs and keeps a platform catalog",
	Version: targetspec.Version,
	// Errors are rendered by the commands or by main.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Configure(logging.Config{Verbose: flagVerbose})

		var err error
		colorOutput, err = cli.ResolveColor(flagColor)
		if err != nil {
			return err
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configDataDir = cfg.GetString(cfgKeyDataDir)
		loadReadmeConfig(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.atlas-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", cli.ColorAuto, "colored output: auto, always, or never")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(readmeCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > ATLAS_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > ATLAS_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
