package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = ".xrv.yaml"

// config is the optional tool configuration read from .xrv.yaml in the
// working directory. Flags override it.
type config struct {
	Format   string `yaml:"format"`    // default dump format (json, line)
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	Color    *bool  `yaml:"color"`     // nil means auto-detect
}

func loadConfig(dir string) (*config, error) {
	cfg := &config{Format: "line"}
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}
	if cfg.Format == "" {
		cfg.Format = "line"
	}
	return cfg, nil
}
