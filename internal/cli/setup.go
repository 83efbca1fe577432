// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"fmt"
	"time"

	"github.com/Kryndex/developer-platform-install/internal/adapters/network"
	"github.com/Kryndex/developer-platform-install/internal/adapters/platform"
	"github.com/Kryndex/developer-platform-install/internal/config"
	"github.com/Kryndex/developer-platform-install/internal/installables"
	"github.com/Kryndex/developer-platform-install/internal/registry"
)

// downloadTimeout bounds a single artifact download.
const downloadTimeout = 30 * time.Minute

// Version is the build version, overridden at link time.
var Version = "dev" //nolint:gochecknoglobals

// buildRegistry assembles the ordered registry from the catalog, applying
// configuration overrides and skip markers.
func buildRegistry(cfg *config.Config, dryRun, verbose bool) (*registry.Registry, error) {
	client := network.NewHTTPClient(downloadTimeout)
	runner := platform.NewCommandRunner(verbose, dryRun)
	files := platform.NewFileManager(verbose)

	reg := registry.New()

	for _, component := range installables.Catalog() {
		component = applyOverride(component, cfg)

		unit := installables.NewArtifact(
			component,
			cfg.BundleDir,
			cfg.InstallDir,
			cfg.Skipped(component.Key),
			client,
			runner,
			files,
		)

		if err := reg.AddItemToInstall(component.Key, unit); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", component.Key, err)
		}
	}

	return reg, nil
}

// applyOverride folds per-component configuration into a catalog entry.
func applyOverride(component installables.Component, cfg *config.Config) installables.Component {
	override, ok := cfg.Components[component.Key]
	if !ok {
		return component
	}

	if override.URL != "" {
		component.URL = override.URL
	}

	if override.SHA256 != "" {
		component.SHA256 = override.SHA256
	}

	if override.Version != "" {
		component.Version = override.Version
	}

	return component
}
