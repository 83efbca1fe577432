// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package progress converts transferred-amount samples into a percentage,
// a smoothed ETA, and a rendered status label for one phase of a unit's
// pipeline. One estimator is created per phase and discarded when the
// phase ends.
package progress

import (
	"fmt"
	"sync"
	"time"
)

// Phase labels used as estimator statuses.
const (
	StatusDownloading = "Downloading"
	StatusInstalling  = "Installing"
	StatusComplete    = "Complete"
)

// smoothingFactor weights a new throughput sample against accumulated
// history. History keeps 85%; a single noisy sample would make the ETA
// jitter otherwise.
const smoothingFactor = 0.15

// Notifier receives a refresh signal after every state-changing call.
type Notifier interface {
	Refresh()
}

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Estimator tracks the amount transferred for one unit of work and
// derives percentage, smoothed ETA, and a human-readable label.
type Estimator struct {
	mu sync.Mutex

	min, max      int
	totalAmount   int64
	currentAmount int64
	current       int

	// averageSpeed is the exponentially smoothed throughput in bytes
	// per millisecond. Zero means no sample has been taken yet.
	averageSpeed float64

	// lastTime is captured at construction and stays fixed, so the
	// instantaneous rate is really an average-since-start rate. Kept
	// as-is: behavior, not correctness, is the contract.
	lastTime time.Time

	status string
	label  string

	notifier Notifier
	clock    Clock
}

// NewEstimator creates an estimator for one phase with a 0-100 scale.
func NewEstimator(status string, notifier Notifier) *Estimator {
	return NewEstimatorWithClock(status, notifier, systemClock{})
}

// NewEstimatorWithClock creates an estimator with an injected clock.
func NewEstimatorWithClock(status string, notifier Notifier, clock Clock) *Estimator {
	return &Estimator{
		min:      0,
		max:      100,
		status:   status,
		notifier: notifier,
		clock:    clock,
		lastTime: clock.Now(),
	}
}

// SetTotalAmount sets the absolute size of the work unit. The current
// amount is reset only when no total was known yet.
func (e *Estimator) SetTotalAmount(total int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.totalAmount == 0 {
		e.currentAmount = 0
	}

	e.totalAmount = total
}

// SetCurrent records a transferred-amount sample. A repeated sample is a
// no-op: no recompute, no refresh.
func (e *Estimator) SetCurrent(amount int64) {
	e.mu.Lock()

	if amount == e.currentAmount {
		e.mu.Unlock()

		return
	}

	e.currentAmount = amount
	e.current = e.percentage()
	e.label = e.renderLabel()
	e.mu.Unlock()

	e.notify()
}

// SetStatus switches the phase label. Setting the same status again is a
// no-op. Leaving the downloading phase pins the percentage to 100 and
// clears the label; entering it resets all counters and shows "0%".
func (e *Estimator) SetStatus(status string) {
	e.mu.Lock()

	if status == e.status {
		e.mu.Unlock()

		return
	}

	e.status = status
	if status == StatusDownloading {
		e.current = 0
		e.currentAmount = 0
		e.totalAmount = 0
		e.label = "0%"
	} else {
		e.current = e.max
		e.label = ""
	}

	e.mu.Unlock()

	e.notify()
}

// SetComplete marks the phase finished regardless of prior state.
func (e *Estimator) SetComplete() {
	e.mu.Lock()
	e.status = StatusComplete
	e.current = e.max
	e.label = ""
	e.mu.Unlock()

	e.notify()
}

// CalculateTime returns the estimated remaining time in milliseconds,
// folding the latest rate sample into the exponential moving average.
func (e *Estimator) CalculateTime() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.calculateTimeLocked()
}

func (e *Estimator) calculateTimeLocked() float64 {
	elapsed := float64(e.clock.Now().Sub(e.lastTime)) / float64(time.Millisecond)
	if elapsed <= 0 {
		return 0
	}

	rate := float64(e.currentAmount) / elapsed
	if e.averageSpeed == 0 {
		e.averageSpeed = rate
	} else {
		e.averageSpeed = smoothingFactor*rate + (1-smoothingFactor)*e.averageSpeed
	}

	if e.averageSpeed == 0 {
		return 0
	}

	return float64(e.totalAmount-e.currentAmount) / e.averageSpeed
}

// percentage derives the clamped integer percent from the amounts.
// Callers must hold the mutex.
func (e *Estimator) percentage() int {
	if e.totalAmount <= 0 {
		return e.min
	}

	percent := int(float64(e.currentAmount)/float64(e.totalAmount)*float64(e.max-e.min)) + e.min
	if percent < e.min {
		percent = e.min
	}

	if percent > e.max {
		percent = e.max
	}

	return percent
}

// renderLabel builds "<cur KB> / <total KB> (<pct>%) <remaining>".
// The ETA suffix is appended only when computable. Callers must hold
// the mutex.
func (e *Estimator) renderLabel() string {
	label := fmt.Sprintf("%s / %s (%d%%)", SizeInKB(e.currentAmount), SizeInKB(e.totalAmount), e.current)

	if e.totalAmount > 0 && e.currentAmount > 0 {
		if remaining := e.calculateTimeLocked(); remaining > 0 {
			label += " " + FormatRemaining(remaining)
		}
	}

	return label
}

func (e *Estimator) notify() {
	if e.notifier != nil {
		e.notifier.Refresh()
	}
}

// Current returns the derived integer percentage.
func (e *Estimator) Current() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.current
}

// CurrentAmount returns the last recorded transferred amount.
func (e *Estimator) CurrentAmount() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.currentAmount
}

// TotalAmount returns the absolute size of the work unit.
func (e *Estimator) TotalAmount() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.totalAmount
}

// AverageSpeed returns the smoothed throughput in bytes per millisecond.
func (e *Estimator) AverageSpeed() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.averageSpeed
}

// Status returns the current phase label.
func (e *Estimator) Status() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.status
}

// Label returns the rendered human-readable progress string.
func (e *Estimator) Label() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.label
}
