package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spec-kitty/kitty-bridge/internal/branding"
	"github.com/spf13/viper"
)

const fileName = "config.yaml"

// Dir resolves the per-user settings directory. When the home directory
// cannot be determined the working directory is used instead.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the settings file location inside Dir.
func FilePath() string {
	return filepath.Join(Dir(), fileName)
}

// EnsureDir creates the settings directory if needed.
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", Dir(), err)
	}
	return nil
}

// Load points viper at the settings file and the KITTYBRIDGE_* environment.
// A missing file is fine; every key then reads as unset.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Get reads a settings key, empty when unset.
func Get(key string) string {
	return viper.GetString(key)
}

// Set stores a key and persists the settings file, creating the directory
// on first use.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}
	viper.Set(key, value)
	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing %s: %w", FilePath(), err)
	}
	return nil
}
