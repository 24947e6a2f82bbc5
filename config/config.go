// Package config loads the app configuration and user-authored template
// files from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings.
type Config struct {
	// DataFile is the JSON document holding tasks and templates.
	DataFile string `yaml:"dataFile"`
	// TemplatesFile optionally points at a YAML file of user templates.
	TemplatesFile string `yaml:"templatesFile"`
	// HorizonMonths is the default generation window length.
	HorizonMonths int `yaml:"horizonMonths"`
	// MaxOccurrences caps occurrence enumeration per template.
	MaxOccurrences int `yaml:"maxOccurrences"`
}

// Default returns the built-in settings used when no config file exists.
func Default() Config {
	return Config{
		DataFile:       "pe-fund-ops.json",
		HorizonMonths:  12,
		MaxOccurrences: 100,
	}
}

// Load reads the YAML config at path, filling unset fields from Default.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = Default().DataFile
	}
	if cfg.HorizonMonths <= 0 {
		cfg.HorizonMonths = Default().HorizonMonths
	}
	if cfg.MaxOccurrences <= 0 {
		cfg.MaxOccurrences = Default().MaxOccurrences
	}
	return cfg, nil
}
