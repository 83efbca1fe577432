// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the command-line interface of the installer.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Kryndex/developer-platform-install/internal/config"
	"github.com/Kryndex/developer-platform-install/internal/console"
	"github.com/Kryndex/developer-platform-install/internal/domain"
	"github.com/Kryndex/developer-platform-install/internal/engine"
	"github.com/Kryndex/developer-platform-install/internal/installables"
	"github.com/Kryndex/developer-platform-install/internal/registry"
	"github.com/Kryndex/developer-platform-install/internal/tui"
)

// Exit codes follow standard Unix conventions for better scripting support.
const (
	ExitSuccess      = 0  // Operation completed successfully
	ExitGeneralError = 1  // Generic failure (catch-all)
	ExitUsageError   = 2  // Invalid command line usage
	ExitConfigError  = 3  // Configuration file error
	ExitNetworkError = 11 // Download failed
	ExitInstallError = 22 // Component installation failed
)

// ErrComponentsFailed is returned when one or more components end in the
// failed state.
var ErrComponentsFailed = errors.New("components failed to install")

// App creates the CLI application with all commands.
func App() *cli.Command {
	return &cli.Command{
		Name:    "developer-platform-install",
		Usage:   "Download and install the developer platform components",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "verbose output"},
			&cli.BoolFlag{Name: "json", Usage: "JSON output"},
			&cli.BoolFlag{Name: "plain", Usage: "plain output for scripting"},
			&cli.StringFlag{Name: "config", Usage: "configuration file path", Value: config.DefaultPath()},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			console.DefaultOutput.SetMode(cmd.Bool("verbose"), cmd.Bool("json"), cmd.Bool("plain"))

			return ctx, nil
		},
		Commands: []*cli.Command{
			installCommand(),
			listCommand(),
			statusCommand(),
		},
	}
}

func installCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install all configured components in dependency order",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "headless", Usage: "run without the terminal UI"},
			&cli.BoolFlag{Name: "dry-run", Usage: "resolve and report without installing"},
			&cli.StringSliceFlag{Name: "skip", Usage: "component keys to skip"},
		},
		Action: runInstall,
	}
}

func runInstall(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return domain.NewExitError(ExitConfigError, "failed to load configuration", err)
	}

	for _, key := range cmd.StringSlice("skip") {
		if _, ok := installables.Lookup(key); !ok {
			console.DefaultOutput.Warningf("unknown component key in --skip: %s", key)
		}
	}

	cfg.Skip = append(cfg.Skip, cmd.StringSlice("skip")...)

	reg, err := buildRegistry(cfg, cmd.Bool("dry-run"), cmd.Bool("verbose"))
	if err != nil {
		return domain.NewExitError(ExitConfigError, "failed to assemble component registry", err)
	}

	if cmd.Bool("headless") || cmd.Bool("json") || cmd.Bool("plain") {
		return runHeadless(ctx, reg)
	}

	sink := tui.NewSink()
	controller := engine.New(reg, engine.WithEventSink(sink))

	if err := tui.Run(ctx, reg, sink, controller); err != nil {
		return domain.NewExitError(ExitGeneralError, "progress screen failed", err)
	}

	return exitFromSummary(reg)
}

// runHeadless drives the controller without the TUI, reporting progress
// through the console.
func runHeadless(ctx context.Context, reg *registry.Registry) error {
	sink := newConsoleSink(console.DefaultOutput)
	controller := engine.New(reg, engine.WithEventSink(sink))

	controller.Start(ctx)
	controller.Wait()

	return exitFromSummary(reg)
}

func exitFromSummary(reg *registry.Registry) error {
	installed, failed, skipped, total := reg.Summary()

	out := console.DefaultOutput
	if out.JSON {
		out.JSONResult("done", map[string]any{
			"installed": installed,
			"failed":    failed,
			"skipped":   skipped,
			"total":     total,
		})
	} else {
		out.Successf("%d/%d components installed (%d failed, %d skipped)",
			installed, total, failed, skipped)
	}

	if failed > 0 {
		msg := fmt.Sprintf("%d of %d components failed to install", failed, total)

		// Pure download failures exit with the network code so scripts
		// can tell connectivity problems from broken installers.
		code := ExitInstallError
		if reg.FailedInstalls() == 0 && reg.FailedDownloads() > 0 {
			code = ExitNetworkError
		}

		return domain.NewExitError(code, msg, ErrComponentsFailed)
	}

	return nil
}
