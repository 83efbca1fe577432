// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// validTransitions enumerates the allowed pipeline transitions.
// Skipped is reachable only from the initial state; Failed from either
// active phase; a retry re-enters Downloading from Failed.
var validTransitions = map[State][]State{ //nolint:gochecknoglobals
	StateNotDownloaded: {StateDownloading, StateInstalling, StateSkipped},
	StateDownloading:   {StateDownloaded, StateFailed},
	StateDownloaded:    {StateInstalling, StateFailed},
	StateInstalling:    {StateInstalled, StateFailed},
	StateFailed:        {StateNotDownloaded, StateDownloading},
}

// CanTransition reports whether moving from one state to another is a
// legal pipeline step.
func CanTransition(from, to State) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// Transition validates a state change, returning a StateError on an
// illegal step. Installed and Skipped never transition again; a unit
// reaches Installed or Failed at most once per attempt.
func Transition(key string, from, to State) (State, error) {
	if !CanTransition(from, to) {
		return from, &StateError{Key: key, From: from, To: to}
	}

	return to, nil
}
