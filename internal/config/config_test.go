// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))

	require.NoError(t, err)
	assert.NotEmpty(t, cfg.InstallDir)
	assert.NotEmpty(t, cfg.BundleDir)
	assert.Empty(t, cfg.Skip)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`skip = ["cygwin", "vagrant"]`), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"cygwin", "vagrant"}, cfg.Skip)
	assert.NotEmpty(t, cfg.InstallDir, "unset fields keep their defaults")
	assert.NotEmpty(t, cfg.BundleDir)
}

func TestLoad_FullFile(t *testing.T) {
	t.Parallel()

	content := `
install_dir = "/opt/devsuite"
bundle_dir = "/var/cache/devsuite/bundles"
skip = ["virtualbox"]

[components.jdk]
url = "https://mirror.example/openjdk.exe"
sha256 = "cafebabe"
version = "8u144"
`

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/opt/devsuite", cfg.InstallDir)
	assert.Equal(t, "/var/cache/devsuite/bundles", cfg.BundleDir)

	override, ok := cfg.Components["jdk"]
	require.True(t, ok)
	assert.Equal(t, "https://mirror.example/openjdk.exe", override.URL)
	assert.Equal(t, "cafebabe", override.SHA256)
	assert.Equal(t, "8u144", override.Version)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`install_dir = [broken`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestConfig_Skipped(t *testing.T) {
	t.Parallel()

	cfg := &Config{Skip: []string{"cygwin"}}

	assert.True(t, cfg.Skipped("cygwin"))
	assert.False(t, cfg.Skipped("jdk"))
}

func TestDefaultPath_HonorsXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "developer-platform-install", "config.toml"), DefaultPath())
}

func TestDefault_BundleDirUnderXDGCache(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)

	cfg := Default()

	assert.Equal(t, filepath.Join(dir, "developer-platform-install", "bundles"), cfg.BundleDir)
}
