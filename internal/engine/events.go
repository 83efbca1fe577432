// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package engine

import "github.com/Kryndex/developer-platform-install/internal/domain"

// EventSink receives pipeline events from the controller. The TUI adapter
// forwards them into the Bubble Tea program; the headless reporter prints
// them to the console. Publish must be safe for concurrent use.
type EventSink interface {
	Publish(event any)
}

// ProgressEvent carries the refreshed label and percentage for one unit's
// active phase.
type ProgressEvent struct {
	Key     string
	Status  string
	Label   string
	Percent int
}

// StateEvent reports a unit's transition into a new pipeline state.
type StateEvent struct {
	Key   string
	State domain.State
}

// FailureEvent reports a failed download or install. The error is a
// *domain.DownloadError or *domain.InstallError carrying the key and the
// underlying cause.
type FailureEvent struct {
	Key string
	Err error
}

// RetryEvent signals that a user-initiated retry started for a previously
// failed unit; the UI closes any error dialog bound to that unit.
type RetryEvent struct {
	Key string
}

// DoneEvent reports that every unit has reached a terminal state.
type DoneEvent struct {
	Installed int
	Failed    int
	Skipped   int
	Total     int
}

// nopSink discards events when no sink is configured.
type nopSink struct{}

func (nopSink) Publish(any) {}
