// Package config handles workspace configuration for testreport.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the workspace configuration (config.yaml).
// Request-level settings always take precedence over file settings.
type Config struct {
	// Output settings
	ReportPath string `yaml:"reportPath"` // Output directory for generated reports
	Title      string `yaml:"title"`      // Report title override

	// Rendering settings
	ReportStyle string `yaml:"reportStyle"` // "overview" or "detailed"
	Environment string `yaml:"environment"` // Environment badge (staging, production, ...)
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromDir looks for config.yaml or config.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	configPath = filepath.Join(dir, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return empty config
	return &Config{}, nil
}
