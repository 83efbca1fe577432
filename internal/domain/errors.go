// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
)

// Common domain errors.
var (
	// ErrChecksumMismatch indicates a downloaded artifact failed integrity verification.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrUnknownComponent is returned when the requested component is not in the catalog.
	ErrUnknownComponent = errors.New("unknown component")
	// ErrDuplicateKey is returned when a key is registered twice.
	ErrDuplicateKey = errors.New("duplicate component key")
	// ErrNotFailed is returned when a retry is requested for a unit that has not failed.
	ErrNotFailed = errors.New("component has not failed")
	// ErrCommandNotFound indicates the program that runs an installer is not on the system.
	ErrCommandNotFound = errors.New("required command not found")
)

// DownloadError reports a network or integrity failure while fetching an
// installer artifact.
type DownloadError struct {
	Key string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download of %s failed: %v", e.Key, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// InstallError reports a non-zero exit or exception from the install step.
type InstallError struct {
	Key string
	Err error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installation of %s failed: %v", e.Key, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// StateError reports an invariant violation in the unit state machine,
// such as double completion. Defensive only; it should not occur under
// correct use.
type StateError struct {
	Key  string
	From State
	To   State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("invalid state transition for %s: %s -> %s", e.Key, e.From, e.To)
}

// FailureMessage renders the user-facing message for a pipeline failure,
// complementing the structured record emitted alongside it.
func FailureMessage(err error) string {
	var downloadErr *DownloadError
	if errors.As(err, &downloadErr) {
		return fmt.Sprintf("✗ Failed to download %s (check your internet connection and retry)", downloadErr.Key)
	}

	var installErr *InstallError
	if errors.As(err, &installErr) {
		return fmt.Sprintf("✗ Failed to install %s (retry, or run with --verbose for details)", installErr.Key)
	}

	return "✗ " + err.Error()
}
