// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

// Package config loads optional on-disk defaults for the birch CLI.
//
// Command-line flags always take precedence; Config only supplies values
// the user didn't set explicitly. The zero Config means "no file found,
// use built-in defaults" — the same posture parse_args takes by seeding
// results_size = 1 and alignment = Aligned before any argument is read.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of a birch config file (YAML).
type Config struct {
	ResultCount      int      `yaml:"result_count"`
	DefaultAlignment string   `yaml:"default_alignment"`
	DefaultEndian    string   `yaml:"default_endian"`
	Ignore           []string `yaml:"ignore"`
}

// DefaultPath is the config file birch looks for when -c is not given.
const DefaultPath = ".birch.yaml"

// Load reads and parses a YAML config file at path. A missing file at the
// default path is not an error — it reports the zero Config instead, so
// callers can always use the result without checking for ErrNotExist
// themselves.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}
