package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default configuration file location.
const ConfigPath = "config.yaml"

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	CatalogPath         string `yaml:"catalogPath"`
	DatabasePath        string `yaml:"databasePath"`
	CredentialCachePath string `yaml:"credentialCachePath"`
	LogLevel            string `yaml:"logLevel"`
	// ResetOnStart drops accounts and history on startup, matching the
	// historical behavior. Leave false to keep data across restarts.
	ResetOnStart bool `yaml:"resetOnStart"`
}

// Load reads config from path (defaults to config.yaml).
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{}
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	// Override with environment variables
	if v := os.Getenv("MEDIMATCH_CATALOG_PATH"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("MEDIMATCH_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("MEDIMATCH_CREDENTIAL_CACHE_PATH"); v != "" {
		cfg.CredentialCachePath = v
	}
	if v := os.Getenv("MEDIMATCH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("MEDIMATCH_RESET_ON_START"); v != "" {
		cfg.ResetOnStart = v == "1" || strings.EqualFold(v, "true")
	}
	if cfg.CredentialCachePath == "" {
		cfg.CredentialCachePath = "user_credentials.json"
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	if cfg.CatalogPath == "" {
		return errors.New("config: catalogPath is required (set in config.yaml)")
	}
	if cfg.DatabasePath == "" {
		return errors.New("config: databasePath is required (set in config.yaml)")
	}
	return nil
}
