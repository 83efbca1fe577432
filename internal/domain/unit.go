// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain defines the core contracts of the install orchestration
// engine: the installable unit, its state machine, and the ports the
// engine consumes.
package domain

import "context"

// State represents a unit's position in the download/install pipeline.
type State string

// Pipeline states. Installed and Failed are terminal; Failed is
// re-enterable through a user-initiated retry.
const (
	StateNotDownloaded State = "not-downloaded"
	StateDownloading   State = "downloading"
	StateDownloaded    State = "downloaded"
	StateInstalling    State = "installing"
	StateInstalled     State = "installed"
	StateSkipped       State = "skipped"
	StateFailed        State = "failed"
)

// Terminal reports whether the state ends a unit's pipeline.
func (s State) Terminal() bool {
	return s == StateInstalled || s == StateFailed || s == StateSkipped
}

// Callbacks bundles the three outcomes of an asynchronous phase.
// OnProgress delivers the absolute transferred amount so far, not a delta.
type Callbacks struct {
	OnProgress func(transferred int64)
	OnSuccess  func()
	OnFailure  func(err error)
}

// Installable is the contract each component exposes to the engine.
// DownloadInstaller and Install are asynchronous: they return immediately
// and report their outcome through the callbacks, never blocking the
// caller. Implementations run to completion or failure; there is no
// cancellation primitive beyond the context.
type Installable interface {
	// Key returns the unique identifier, stable across the run.
	Key() string

	// DisplayName returns the human-readable component name.
	DisplayName() string

	// Version returns the component version string.
	Version() string

	// Description returns the short presentation description.
	Description() string

	// State returns the current pipeline state.
	State() State

	// IsSkipped reports whether the user excluded this unit from the run.
	IsSkipped() bool

	// IsDownloadRequired reports whether the installer artifact still
	// needs to be fetched. Already-downloaded units skip straight to
	// install.
	IsDownloadRequired() bool

	// TotalSize returns the artifact size in bytes, 0 when unknown.
	TotalSize() int64

	// DownloadInstaller fetches the installer artifact.
	DownloadInstaller(ctx context.Context, callbacks Callbacks)

	// Install runs the installer for a downloaded artifact.
	Install(ctx context.Context, callbacks Callbacks)

	// RestartDownload resets a failed unit so its download can be
	// attempted again.
	RestartDownload()
}
