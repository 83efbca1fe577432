// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package installables

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Kryndex/developer-platform-install/internal/domain"
)

// Artifact is the production installable unit: it downloads the
// component's installer into the bundle directory, verifies its digest,
// stages it into the install directory with byte progress, and runs the
// installer command. Both phases are asynchronous and report through the
// engine's callbacks.
type Artifact struct {
	component  Component
	bundleDir  string
	installDir string

	network domain.NetworkClient
	runner  domain.CommandRunner
	files   domain.FileManager

	mu    sync.Mutex
	state domain.State
	size  int64
}

// NewArtifact creates an installable unit for a catalog component.
// A unit whose installer already sits in the bundle directory starts in
// the downloaded state and skips straight to install; a skipped unit
// never enters either phase.
func NewArtifact(
	component Component,
	bundleDir, installDir string,
	skipped bool,
	network domain.NetworkClient,
	runner domain.CommandRunner,
	files domain.FileManager,
) *Artifact {
	artifact := &Artifact{
		component:  component,
		bundleDir:  bundleDir,
		installDir: installDir,
		network:    network,
		runner:     runner,
		files:      files,
		state:      domain.StateNotDownloaded,
		size:       component.Size,
	}

	switch {
	case skipped:
		artifact.state = domain.StateSkipped
	case files != nil && files.FileExists(artifact.BundlePath()):
		artifact.state = domain.StateDownloaded
	}

	return artifact
}

// Key returns the unique component identifier.
func (a *Artifact) Key() string { return a.component.Key }

// DisplayName returns the human-readable component name.
func (a *Artifact) DisplayName() string { return a.component.Name }

// Version returns the component version string.
func (a *Artifact) Version() string { return a.component.Version }

// Description returns the short presentation description.
func (a *Artifact) Description() string { return a.component.Description }

// State returns the current pipeline state.
func (a *Artifact) State() domain.State {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.state
}

// IsSkipped reports whether the user excluded this unit from the run.
func (a *Artifact) IsSkipped() bool {
	return a.State() == domain.StateSkipped
}

// IsDownloadRequired reports whether the installer artifact still needs
// to be fetched.
func (a *Artifact) IsDownloadRequired() bool {
	return a.State() == domain.StateNotDownloaded
}

// TotalSize returns the artifact size in bytes: the advertised catalog
// size until the download reveals the real one.
func (a *Artifact) TotalSize() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.size
}

// BundlePath returns where the downloaded installer is cached.
func (a *Artifact) BundlePath() string {
	return filepath.Join(a.bundleDir, a.component.InstallerFileName())
}

// StagedPath returns where the installer is staged before execution.
func (a *Artifact) StagedPath() string {
	return filepath.Join(a.installDir, a.component.Key, a.component.InstallerFileName())
}

// DownloadInstaller fetches the installer artifact asynchronously.
func (a *Artifact) DownloadInstaller(ctx context.Context, callbacks domain.Callbacks) {
	if err := a.transition(domain.StateDownloading); err != nil {
		callbacks.OnFailure(err)

		return
	}

	go func() {
		if err := a.files.EnsureDir(a.bundleDir); err != nil {
			a.fail()
			callbacks.OnFailure(err)

			return
		}

		written, err := a.network.Download(ctx, a.component.URL, a.BundlePath(), callbacks.OnProgress)
		if err != nil {
			a.fail()
			callbacks.OnFailure(err)

			return
		}

		if err := a.network.VerifySHA256(a.BundlePath(), a.component.SHA256); err != nil {
			_ = a.files.RemoveFile(a.BundlePath())
			a.fail()
			callbacks.OnFailure(err)

			return
		}

		a.mu.Lock()
		a.size = written
		a.mu.Unlock()

		if err := a.transition(domain.StateDownloaded); err != nil {
			callbacks.OnFailure(err)

			return
		}

		callbacks.OnSuccess()
	}()
}

// Install stages the downloaded installer with byte progress and runs
// the installer command asynchronously.
func (a *Artifact) Install(ctx context.Context, callbacks domain.Callbacks) {
	if err := a.transition(domain.StateInstalling); err != nil {
		callbacks.OnFailure(err)

		return
	}

	go func() {
		// Fail before staging a large payload when the program that
		// consumes the installer is not on the system.
		if a.component.Command != "" && !a.runner.CommandExists(a.component.Command) {
			a.fail()
			callbacks.OnFailure(fmt.Errorf("%w: %s", domain.ErrCommandNotFound, a.component.Command))

			return
		}

		staged := a.StagedPath()

		if err := a.files.CopyFileWithProgress(a.BundlePath(), staged, callbacks.OnProgress); err != nil {
			a.fail()
			callbacks.OnFailure(err)

			return
		}

		name, args := a.installerCommand(staged)
		if err := a.runner.Execute(ctx, name, args...); err != nil {
			a.fail()
			callbacks.OnFailure(err)

			return
		}

		if err := a.transition(domain.StateInstalled); err != nil {
			callbacks.OnFailure(err)

			return
		}

		callbacks.OnSuccess()
	}()
}

// RestartDownload resets a failed unit so its download can be attempted
// again. The cached bundle is discarded; a stale partial download must
// not satisfy the retry.
func (a *Artifact) RestartDownload() {
	a.mu.Lock()
	a.state = domain.StateNotDownloaded
	a.mu.Unlock()

	_ = a.files.RemoveFile(a.BundlePath())
}

// installerCommand resolves the program and arguments that consume the
// staged installer.
func (a *Artifact) installerCommand(staged string) (string, []string) {
	args := make([]string, 0, len(a.component.Args))
	for _, arg := range a.component.Args {
		args = append(args, strings.ReplaceAll(arg, "{installer}", staged))
	}

	if a.component.Command != "" {
		return a.component.Command, args
	}

	return staged, args
}

func (a *Artifact) transition(to domain.State) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next, err := domain.Transition(a.component.Key, a.state, to)
	if err != nil {
		return fmt.Errorf("pipeline violation: %w", err)
	}

	a.state = next

	return nil
}

func (a *Artifact) fail() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state = domain.StateFailed
}
