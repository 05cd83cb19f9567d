// Package config loads nodegen's configuration with Viper.
//
// Precedence, lowest to highest: built-in defaults, a nodegen.toml project
// file discovered by walking up from the working directory, then NODEGEN_*
// environment variables. Command-line flags override all of these in the
// command layer.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/nodegen/errors"
)

// ProjectFileName is the per-project configuration file nodegen looks for.
const ProjectFileName = "nodegen.toml"

// Config holds the generator settings.
type Config struct {
	// Schema is the path to the node schema document.
	Schema string `mapstructure:"schema"`

	// Output is the path the generated unit is written to. Empty means
	// stdout.
	Output string `mapstructure:"output"`

	// Lang is the target language.
	Lang string `mapstructure:"lang"`

	// JSONLogs switches logging to JSON structured output.
	JSONLogs bool `mapstructure:"json_logs"`
}

// SetDefaults installs the built-in defaults on a Viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("schema", "config.yml")
	v.SetDefault("output", "")
	v.SetDefault("lang", "rust")
	v.SetDefault("json_logs", false)
}

// Load reads configuration from defaults, the discovered project file, and
// the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("NODEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path, applying the
// same defaults but skipping discovery and environment binding.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	return &config, nil
}

// findProjectConfig searches for nodegen.toml by walking up the directory
// tree. Returns the first file found, or empty string if none.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ProjectFileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
