// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "context"

// NetworkClient defines the interface for artifact downloads.
// Implemented by the HTTP adapter.
type NetworkClient interface {
	// Download fetches url into destPath, reporting the cumulative
	// number of bytes written through onProgress. Returns the total
	// size written.
	Download(ctx context.Context, url, destPath string, onProgress func(written int64)) (int64, error)

	// VerifySHA256 checks a downloaded file against an expected hex digest.
	VerifySHA256(path, expected string) error
}

// CommandRunner defines the interface for executing installer processes.
type CommandRunner interface {
	// Execute runs a command and returns an error on non-zero exit.
	Execute(ctx context.Context, name string, args ...string) error

	// CommandExists checks if a command is available on the system.
	CommandExists(name string) bool
}

// FileManager defines the interface for file operations used by the
// install phase.
type FileManager interface {
	// FileExists checks if a file exists.
	FileExists(path string) bool

	// EnsureDir creates a directory and all parents if missing.
	EnsureDir(path string) error

	// CopyFileWithProgress copies src to dest, reporting cumulative
	// bytes written through onProgress.
	CopyFileWithProgress(src, dest string, onProgress func(written int64)) error

	// RemoveFile removes a file.
	RemoveFile(path string) error
}
