// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform implements the process-execution and file-operation
// ports on top of the local operating system.
package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/Kryndex/developer-platform-install/internal/console"
)

// CommandRunner executes child installer processes.
type CommandRunner struct {
	verbose bool
	dryRun  bool
}

// NewCommandRunner creates a command runner.
func NewCommandRunner(verbose, dryRun bool) *CommandRunner {
	return &CommandRunner{verbose: verbose, dryRun: dryRun}
}

// Execute runs a command and returns an error on non-zero exit.
func (r *CommandRunner) Execute(ctx context.Context, name string, args ...string) error {
	if r.dryRun {
		console.DefaultOutput.Progressf("dry-run: %s %v", name, args)

		return nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), ProxyEnv()...)

	if r.verbose {
		cmd.Stdout = os.Stderr
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %s failed: %w", name, err)
	}

	return nil
}

// CommandExists checks if a command is available on the system.
func (r *CommandRunner) CommandExists(name string) bool {
	_, err := exec.LookPath(name)

	return err == nil
}
