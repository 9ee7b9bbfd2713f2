// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory and the
	// environment variable prefix.
	AppName = "rhask"

	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
)

// Config holds tool-level settings. Task declarations never live here; they
// belong to the rhaskfile.
type Config struct {
	// File overrides rhaskfile discovery with an explicit path ("" = walk up
	// from the working directory).
	File string `mapstructure:"file"`

	// Verbose enables diagnostic logging.
	Verbose bool `mapstructure:"verbose"`

	// NoColor disables styled output.
	NoColor bool `mapstructure:"no_color"`
}

// ConfigDir returns the rhask configuration directory using platform
// conventions: %APPDATA% on Windows, ~/Library/Application Support on macOS,
// $XDG_CONFIG_HOME (default ~/.config) elsewhere.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration. A missing config file is not an error; the
// file only supplies overrides for the defaults, and RHASK_* environment
// variables override the file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("file", "")
	v.SetDefault("verbose", false)
	v.SetDefault("no_color", false)

	v.SetEnvPrefix(AppName)
	v.AutomaticEnv()

	cfgDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cfgDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}
