// Package config manages shq configuration from files and environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds shq configuration.
type Config struct {
	// Shell is the default dialect name when --shell is not given.
	// Empty means fall back to the basename of $SHELL, then "sh".
	Shell string `mapstructure:"shell"`

	// Strict makes quoting fail on bytes the dialect cannot represent,
	// as if --check were always passed.
	Strict bool `mapstructure:"strict"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Shell:  "",
		Strict: false,
	}
}

// Load reads configuration from file and environment variables.
// Configuration is loaded from (in order of precedence):
//  1. Environment variables (SHQ_*)
//  2. Config file ($XDG_CONFIG_HOME/shq/config.toml or ~/.config/shq/config.toml)
//  3. Default values
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults for all config keys
	v.SetDefault("shell", "")
	v.SetDefault("strict", false)

	// Config file settings
	v.SetConfigName("config")
	v.SetConfigType("toml")

	// Add config paths in order of precedence
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		v.AddConfigPath(filepath.Join(xdgConfig, "shq"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "shq"))
	}

	// Environment variable overrides
	v.SetEnvPrefix("SHQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			return nil, err
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
