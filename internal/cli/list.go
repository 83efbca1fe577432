// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Kryndex/developer-platform-install/internal/adapters/platform"
	"github.com/Kryndex/developer-platform-install/internal/config"
	"github.com/Kryndex/developer-platform-install/internal/console"
	"github.com/Kryndex/developer-platform-install/internal/domain"
	"github.com/Kryndex/developer-platform-install/internal/installables"
	"github.com/Kryndex/developer-platform-install/internal/progress"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "List catalog components in install order",
		Action: runList,
	}
}

func runList(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return domain.NewExitError(ExitConfigError, "failed to load configuration", err)
	}

	out := console.DefaultOutput

	if out.JSON {
		components := make([]map[string]any, 0)

		for _, component := range installables.Catalog() {
			components = append(components, map[string]any{
				"key":         component.Key,
				"name":        component.Name,
				"version":     component.Version,
				"description": component.Description,
				"size":        component.Size,
				"skipped":     cfg.Skipped(component.Key),
			})
		}

		out.JSONResult("ok", map[string]any{"components": components})

		return nil
	}

	if !out.Plain {
		out.Result(out.Bold(fmt.Sprintf("  %-12s %-10s %-10s %s", "key", "version", "size", "name")))
	}

	for _, component := range installables.Catalog() {
		marker := " "
		if cfg.Skipped(component.Key) {
			marker = "s"
		}

		if out.Plain {
			out.PlainStatus(component.Key, component.Version)

			continue
		}

		out.Result(fmt.Sprintf("%s %-12s %-10s %-10s %s",
			marker, component.Key, component.Version,
			progress.SizeInKB(component.Size), component.Name))
	}

	return nil
}

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show which installer artifacts are already downloaded",
		Action: runStatus,
	}
}

func runStatus(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return domain.NewExitError(ExitConfigError, "failed to load configuration", err)
	}

	files := platform.NewFileManager(cmd.Bool("verbose"))
	out := console.DefaultOutput

	for _, component := range installables.Catalog() {
		bundle := installables.NewArtifact(component, cfg.BundleDir, cfg.InstallDir,
			cfg.Skipped(component.Key), nil, nil, files)

		out.PlainStatus(component.Key, string(bundle.State()))
	}

	return nil
}
