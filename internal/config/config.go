// Package config reads the optional config.toml next to the database
// file. Flags take precedence over the file; the file exists so users
// do not have to repeat --storage/--debug on every invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/zenhabits/zenhabits/internal/constants"
)

// Config is the on-disk application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Debug   bool          `toml:"debug"`
}

// StorageConfig selects the persistence backend. Type is "sqlite"
// (default) or "postgres". For postgres, ConnString may be left empty
// to fall back to the OS keyring.
type StorageConfig struct {
	Type       string `toml:"type"`
	Path       string `toml:"path,omitempty"`        // sqlite database file
	ConnString string `toml:"conn_string,omitempty"` // postgres, no embedded password
}

// Default returns the configuration used when no config file exists.
func Default(configDir string) Config {
	return Config{
		Storage: StorageConfig{
			Type: "sqlite",
			Path: filepath.Join(configDir, constants.AppName+".db"),
		},
	}
}

// Load reads config.toml from the config directory, returning defaults
// when the file is absent.
func Load(configDir string) (Config, error) {
	cfg := Default(configDir)

	path := filepath.Join(configDir, constants.ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "sqlite"
	}
	if cfg.Storage.Type == "sqlite" && cfg.Storage.Path == "" {
		cfg.Storage.Path = filepath.Join(configDir, constants.AppName+".db")
	}

	return cfg, nil
}

// Save writes the configuration to config.toml in the config directory.
func Save(configDir string, cfg Config) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(configDir, constants.ConfigFileName), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
