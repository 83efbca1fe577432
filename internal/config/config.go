// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads the installer configuration: target directories,
// skipped components, and per-component overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// appDirName is the directory used under XDG base dirs.
const appDirName = "developer-platform-install"

// Override adjusts one catalog component from configuration.
type Override struct {
	URL     string `toml:"url,omitempty"`
	SHA256  string `toml:"sha256,omitempty"`
	Version string `toml:"version,omitempty"`
}

// Config is the on-disk installer configuration.
type Config struct {
	// InstallDir is where components are staged and installed.
	InstallDir string `toml:"install_dir"`

	// BundleDir caches downloaded installer artifacts between runs.
	BundleDir string `toml:"bundle_dir"`

	// Skip lists component keys excluded from the run.
	Skip []string `toml:"skip,omitempty"`

	// Components holds per-component overrides keyed by catalog key.
	Components map[string]Override `toml:"components,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		InstallDir: filepath.Join(home, appDirName),
		BundleDir:  filepath.Join(GetXDGCacheHome(), appDirName, "bundles"),
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	return filepath.Join(GetXDGConfigHome(), appDirName, "config.toml")
}

// Load reads the configuration from path, falling back to defaults when
// the file does not exist. Values absent from the file keep defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the --config flag
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Skipped reports whether a component key is excluded from the run.
func (c *Config) Skipped(key string) bool {
	for _, skip := range c.Skip {
		if skip == key {
			return true
		}
	}

	return false
}

// GetXDGConfigHome returns the XDG config home directory.
func GetXDGConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".config"
	}

	return filepath.Join(home, ".config")
}

// GetXDGCacheHome returns the XDG cache home directory.
func GetXDGCacheHome() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".cache"
	}

	return filepath.Join(home, ".cache")
}
