// Config loading for the atlas CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/targetspec/internal/docgen"
	"github.com/mesh-intelligence/targetspec/pkg/targetspec"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend        = "backend"
	cfgKeyDataDir        = "data_dir"
	cfgKeyReadmeTemplate = "readme.template"
	cfgKeyReadmeFragment = "readme.fragment"
	cfgKeyReadmeOutput   = "readme.output"
	cfgKeyReadmeCrate    = "readme.crate"
	cfgKeyReadmeLicense  = "readme.license"
	cfgKeyReadmeBadges   = "readme.badges"

	defaultBackend = "sqlite"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Atlas CLI configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# README generation inputs for "atlas readme". Paths are relative to the
# directory atlas runs in.
readme:
  template: docs/readme/README.tpl.md
  fragment: docs/readme/README.md
  output: README.md
  crate: targetspec
  license: "MIT"
  badges: []
`

// readmeConfig holds the docgen inputs resolved from config.yaml.
var readmeConfig docgen.Config

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyReadmeTemplate, "docs/readme/README.tpl.md")
	v.SetDefault(cfgKeyReadmeFragment, "docs/readme/README.md")
	v.SetDefault(cfgKeyReadmeOutput, "README.md")
	v.SetDefault(cfgKeyReadmeCrate, "targetspec")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// loadReadmeConfig fills the docgen config from viper values.
func loadReadmeConfig(v *viper.Viper) {
	readmeConfig = docgen.Config{
		TemplatePath: v.GetString(cfgKeyReadmeTemplate),
		FragmentPath: v.GetString(cfgKeyReadmeFragment),
		OutputPath:   v.GetString(cfgKeyReadmeOutput),
		Crate:        v.GetString(cfgKeyReadmeCrate),
		Version:      targetspec.Version,
		License:      v.GetString(cfgKeyReadmeLicense),
		Badges:       v.GetStringSlice(cfgKeyReadmeBadges),
	}
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
