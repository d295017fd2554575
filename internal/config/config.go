// Package config loads application settings from an optional YAML file
// with environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides, e.g. MEDMAN_DB_PATH.
const EnvPrefix = "medman"

// Config holds everything the composition root needs to wire the
// application.
type Config struct {
	// DBPath is where the medicines database lives.
	DBPath string `yaml:"db_path" envconfig:"DB_PATH"`

	// AuthURL is the identity provider's base URL.
	AuthURL string `yaml:"auth_url" envconfig:"AUTH_URL"`

	// AuthAPIKey is the identity provider project key.
	AuthAPIKey string `yaml:"auth_api_key" envconfig:"AUTH_API_KEY"`

	// SessionPath is where the signed-in session token is kept.
	SessionPath string `yaml:"session_path" envconfig:"SESSION_PATH"`
}

// Default returns the built-in configuration, rooted under the user's
// config directory.
func Default() Config {
	base, err := os.UserConfigDir()
	if err != nil {
		// No home directory: fall back to the working directory.
		base = "."
	}
	dir := filepath.Join(base, "medman")

	return Config{
		DBPath:      filepath.Join(dir, "medicines.db"),
		AuthURL:     "https://identitytoolkit.googleapis.com",
		SessionPath: filepath.Join(dir, "session.json"),
	}
}

// DefaultPath is where Load looks for the config file when no explicit
// path is given.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "medman", "config.yaml")
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (a missing file is fine), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults + env only.
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("apply env overrides: %w", err)
	}

	return cfg, nil
}
