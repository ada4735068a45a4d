// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig wraps validation failures.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrConfigExists is returned by CreateDefault when the file is present.
	ErrConfigExists = errors.New("config file already exists")

	validate = validator.New()
)

// DefaultPath returns ~/.skyroute/skyroute.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".skyroute", "skyroute.yaml"), nil
}

// Load reads the config at path.
//
// # Description
//
// An empty path means DefaultPath. A missing default file is not an error:
// DefaultConfig is returned and nothing is written. A missing explicit path
// is an error. Keys absent from the file keep their default values.
//
// # Outputs
//
//   - SkyrouteConfig: The validated config.
//   - string: The path that was read, or "" when defaults were used.
//   - error: Read, parse or ErrInvalidConfig failures.
func Load(path string) (SkyrouteConfig, string, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, "", nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, "", nil
		}
		return cfg, "", fmt.Errorf("failed to read the config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, "", fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, "", fmt.Errorf("%s: %w", path, err)
	}
	return cfg, path, nil
}

// Validate checks field constraints declared in the struct tags.
func Validate(cfg SkyrouteConfig) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s=%s, got %q)", fe.Namespace(), fe.Tag(), fe.Param(), fmt.Sprint(fe.Value())))
			}
			return fmt.Errorf("%w: %v", ErrInvalidConfig, fields)
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg SkyrouteConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// CreateDefault writes DefaultConfig to path, creating parent directories.
// An existing file is left alone unless force is set.
func CreateDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
