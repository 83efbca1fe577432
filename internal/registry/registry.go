// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package registry holds the ordered collection of installable units and
// the in-flight bookkeeping shared by every unit's pipeline. All counters
// are mutated only through registry methods, under one mutex, so
// concurrent pipelines never lose updates.
package registry

import (
	"fmt"
	"sync"

	"github.com/Kryndex/developer-platform-install/internal/domain"
)

// Registry is an ordered mapping from component key to installable unit
// plus bookkeeping of in-flight downloads and installs. Iteration order
// is insertion order, which is the dependency/display order chosen by
// the caller.
type Registry struct {
	mu              sync.Mutex
	keys            []string
	units           map[string]domain.Installable
	toDownload      map[string]struct{}
	toInstall       map[string]struct{}
	finished        map[string]struct{}
	failedDownloads map[string]struct{}
	failedInstalls  map[string]struct{}
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		units:           make(map[string]domain.Installable),
		toDownload:      make(map[string]struct{}),
		toInstall:       make(map[string]struct{}),
		finished:        make(map[string]struct{}),
		failedDownloads: make(map[string]struct{}),
		failedInstalls:  make(map[string]struct{}),
	}
}

// AddItemToInstall registers a unit under its key, preserving insertion
// order. Registering a key twice is an error.
func (r *Registry) AddItemToInstall(key string, unit domain.Installable) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.units[key]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateKey, key)
	}

	r.keys = append(r.keys, key)
	r.units[key] = unit

	return nil
}

// Get returns the unit registered under key.
func (r *Registry) Get(key string) (domain.Installable, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	unit, ok := r.units[key]

	return unit, ok
}

// Keys returns the registered keys in insertion order.
func (r *Registry) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, len(r.keys))
	copy(keys, r.keys)

	return keys
}

// Each calls fn for every unit in insertion order. The registry lock is
// not held during the calls, so fn may call back into the registry.
func (r *Registry) Each(fn func(key string, unit domain.Installable)) {
	for _, key := range r.Keys() {
		if unit, ok := r.Get(key); ok {
			fn(key, unit)
		}
	}
}

// StartDownload registers key as having an in-flight download. A retry
// re-enters here, so any earlier failure mark for the key is cleared.
func (r *Registry) StartDownload(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.toDownload[key] = struct{}{}
	delete(r.failedDownloads, key)
	delete(r.failedInstalls, key)
}

// DownloadDone removes key from the in-flight download set.
func (r *Registry) DownloadDone(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.toDownload, key)
}

// StartInstall registers key as having an in-flight install.
func (r *Registry) StartInstall(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.toInstall[key] = struct{}{}
}

// InstallDone removes key from the in-flight install set and marks the
// unit finished.
func (r *Registry) InstallDone(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.toInstall, key)
	r.finished[key] = struct{}{}
}

// InstallAborted removes key from the in-flight install set without
// marking the unit finished, used when the install phase fails.
func (r *Registry) InstallAborted(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.toInstall, key)
}

// DownloadFailed records that key's download phase failed, for exit-code
// classification.
func (r *Registry) DownloadFailed(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.failedDownloads[key] = struct{}{}
}

// InstallFailed records that key's install phase failed.
func (r *Registry) InstallFailed(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.failedInstalls[key] = struct{}{}
}

// FailedDownloads returns how many units currently sit in the failed
// state because their download phase failed.
func (r *Registry) FailedDownloads() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.failedDownloads)
}

// FailedInstalls returns how many units currently sit in the failed
// state because their install phase failed.
func (r *Registry) FailedInstalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.failedInstalls)
}

// SetupDone marks a unit finished without any download or install work,
// used for skipped units.
func (r *Registry) SetupDone(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.finished[key] = struct{}{}
}

// Downloading reports whether any download is in flight.
func (r *Registry) Downloading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.toDownload) > 0
}

// Installing reports whether any install is in flight.
func (r *Registry) Installing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.toInstall) > 0
}

// ToDownload returns the keys with downloads currently in flight.
func (r *Registry) ToDownload() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return setKeys(r.toDownload)
}

// ToInstall returns the keys with installs currently in flight.
func (r *Registry) ToInstall() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return setKeys(r.toInstall)
}

// Finished reports whether the unit under key has completed its pipeline,
// by install or by skip.
func (r *Registry) Finished(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.finished[key]

	return ok
}

// Summary returns aggregate pipeline counts for status reporting.
func (r *Registry) Summary() (installed, failed, skipped, total int) {
	r.mu.Lock()
	units := make([]domain.Installable, 0, len(r.keys))

	for _, key := range r.keys {
		units = append(units, r.units[key])
	}
	r.mu.Unlock()

	for _, unit := range units {
		switch unit.State() {
		case domain.StateInstalled:
			installed++
		case domain.StateFailed:
			failed++
		case domain.StateSkipped:
			skipped++
		case domain.StateNotDownloaded, domain.StateDownloading,
			domain.StateDownloaded, domain.StateInstalling:
		}
	}

	return installed, failed, skipped, len(units)
}

// Done reports whether every registered unit has reached a terminal state.
func (r *Registry) Done() bool {
	done := true

	r.Each(func(_ string, unit domain.Installable) {
		if !unit.State().Terminal() {
			done = false
		}
	})

	return done
}

func setKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	return keys
}
