// Package config loads optional file-based defaults for the CLI. Flags and
// environment variables take precedence over anything loaded here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults a config file can provide.
type Config struct {
	// File is the default store file path.
	File string `yaml:"file"`
	// Format names the store format, overriding extension detection.
	Format string `yaml:"format"`
	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// Load reads a YAML config file. An empty path yields an empty Config; a
// path that was explicitly provided must exist and parse.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}
