// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for the developer platform
// installer.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/Kryndex/developer-platform-install/internal/cli"
	"github.com/Kryndex/developer-platform-install/internal/domain"
)

func main() {
	os.Exit(run())
}

func run() int {
	// One installer instance at a time; concurrent runs would race on
	// the bundle cache and the install directory.
	lockPath := filepath.Join(os.TempDir(), "developer-platform-install.lock")
	lock := flock.New(lockPath)

	locked, err := lock.TryLock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to acquire process lock: %v\n", err)

		return cli.ExitGeneralError
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another installer instance is already running\n")

		return cli.ExitGeneralError
	}

	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to release process lock: %v\n", unlockErr)
		}
	}()

	app := cli.App()

	if err := app.Run(context.Background(), os.Args); err != nil {
		exitErr := &domain.ExitError{}
		if errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "%s\n", exitErr.Message)

			return exitErr.Code
		}

		fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)

		return cli.ExitGeneralError
	}

	return cli.ExitSuccess
}
