// Package config provides configuration loading and management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version  int      `mapstructure:"version" json:"version"`
	Master   string   `mapstructure:"master" json:"master,omitempty"`
	Catalog  string   `mapstructure:"catalog" json:"catalog,omitempty"`
	Defaults Defaults `mapstructure:"defaults" json:"defaults"`
	Output   Output   `mapstructure:"output" json:"output"`
}

// Defaults contains global default settings.
type Defaults struct {
	Format string `mapstructure:"format" json:"format,omitempty"`
}

// Output controls where generated files go and how they are named.
type Output struct {
	Dir    string `mapstructure:"dir" json:"dir,omitempty"`
	Prefix string `mapstructure:"prefix" json:"prefix,omitempty"`
	Ext    string `mapstructure:"ext" json:"ext,omitempty"`
	Script string `mapstructure:"script" json:"script,omitempty"`
}

var (
	cfg     *Config
	cfgFile string
)

// configDir returns the configuration directory path.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "evtpages"), nil
}

// Init initializes the configuration system.
// Config files are searched in the following order:
// 1. Explicit path via cfgPath parameter (--config flag)
// 2. Project-local: .evtpages/config.yaml (current directory)
// 3. User global: ~/.config/evtpages/config.yaml
func Init(cfgPath string) error {
	cfgFile = cfgPath

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Check for project-local config first
		viper.AddConfigPath(".evtpages")
		// Then check user global config
		configPath, err := configDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(configPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("master", "master.html")
	viper.SetDefault("defaults.format", "plain")
	viper.SetDefault("output.dir", ".")
	viper.SetDefault("output.prefix", "evt_")
	viper.SetDefault("output.ext", ".html")
	viper.SetDefault("output.script", "evtest.js")

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - we'll use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration.
// Returns nil if Init has not been called.
func Get() *Config {
	return cfg
}

// ConfigFilePath returns the path to the config file being used.
func ConfigFilePath() string {
	return viper.ConfigFileUsed()
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
