// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package engine implements the install orchestration controller: it
// walks the registry in order, classifies each unit, and drives the
// asynchronous download-then-install pipeline per unit. Pipelines are
// independent; a failure in one never halts the others.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/Kryndex/developer-platform-install/internal/console"
	"github.com/Kryndex/developer-platform-install/internal/domain"
	"github.com/Kryndex/developer-platform-install/internal/progress"
	"github.com/Kryndex/developer-platform-install/internal/registry"
)

// Controller sequences the install pipelines of all registered units.
// One progress estimator is created per phase and discarded when the
// phase ends; estimators are never reused across download and install.
type Controller struct {
	registry      *registry.Registry
	sink          EventSink
	out           *console.OutputState
	clock         progress.Clock
	flushInterval time.Duration

	mu        sync.Mutex
	notifiers map[string]*progress.Debounced

	wg sync.WaitGroup
}

// Option configures the controller.
type Option func(*Controller)

// WithEventSink directs pipeline events to sink.
func WithEventSink(sink EventSink) Option {
	return func(c *Controller) { c.sink = sink }
}

// WithOutput sets the console used for failure logging.
func WithOutput(out *console.OutputState) Option {
	return func(c *Controller) { c.out = out }
}

// WithFlushInterval sets the UI refresh coalescing quantum.
func WithFlushInterval(interval time.Duration) Option {
	return func(c *Controller) { c.flushInterval = interval }
}

// WithClock injects a clock for deterministic estimator tests.
func WithClock(clock progress.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// New creates a controller bound to the given registry.
func New(reg *registry.Registry, opts ...Option) *Controller {
	controller := &Controller{
		registry:      reg,
		sink:          nopSink{},
		out:           console.DefaultOutput,
		clock:         realClock{},
		flushInterval: progress.DefaultFlushInterval,
		notifiers:     make(map[string]*progress.Debounced),
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Start walks the registry in insertion order. Skipped units are marked
// done immediately; every other unit enters its pipeline. Dispatch order
// matches registry iteration order, but pipelines run concurrently with
// no ordering barrier between units.
func (c *Controller) Start(ctx context.Context) {
	c.registry.Each(func(key string, unit domain.Installable) {
		if unit.IsSkipped() {
			c.registry.SetupDone(key)
			c.sink.Publish(StateEvent{Key: key, State: domain.StateSkipped})

			return
		}

		c.wg.Add(1)
		c.ProcessInstallable(ctx, key, unit)
	})
}

// Wait blocks until every dispatched pipeline has reached a terminal
// state, then publishes the final summary.
func (c *Controller) Wait() {
	c.wg.Wait()
	c.publishSummary()
}

func (c *Controller) publishSummary() {
	installed, failed, skipped, total := c.registry.Summary()
	c.sink.Publish(DoneEvent{Installed: installed, Failed: failed, Skipped: skipped, Total: total})
}

// ProcessInstallable routes a unit into its pipeline: download first when
// the artifact is still needed, straight to install otherwise.
func (c *Controller) ProcessInstallable(ctx context.Context, key string, unit domain.Installable) {
	if unit.IsDownloadRequired() {
		c.TriggerDownload(ctx, key, unit)

		return
	}

	c.TriggerInstall(ctx, key, unit)
}

// TriggerDownload registers the key as in flight and starts the
// asynchronous artifact download. On success the unit advances to
// install; on failure it parks in Failed until the user retries.
func (c *Controller) TriggerDownload(ctx context.Context, key string, unit domain.Installable) {
	c.registry.StartDownload(key)
	c.sink.Publish(StateEvent{Key: key, State: domain.StateDownloading})

	estimator := c.newEstimator(key, progress.StatusDownloading)
	estimator.SetTotalAmount(unit.TotalSize())

	unit.DownloadInstaller(ctx, domain.Callbacks{
		OnProgress: estimator.SetCurrent,
		OnSuccess: func() {
			c.endPhase(key, estimator)
			c.registry.DownloadDone(key)
			c.sink.Publish(StateEvent{Key: key, State: domain.StateDownloaded})
			c.TriggerInstall(ctx, key, unit)
		},
		OnFailure: func(err error) {
			c.endPhase(key, estimator)
			c.registry.DownloadDone(key)
			c.registry.DownloadFailed(key)
			c.failUnit(key, &domain.DownloadError{Key: key, Err: err})
		},
	})
}

// TriggerInstall starts the asynchronous install of a downloaded (or
// install-only) unit with a fresh estimator for the install phase.
func (c *Controller) TriggerInstall(ctx context.Context, key string, unit domain.Installable) {
	c.registry.StartInstall(key)
	c.sink.Publish(StateEvent{Key: key, State: domain.StateInstalling})

	estimator := c.newEstimator(key, progress.StatusInstalling)
	estimator.SetTotalAmount(unit.TotalSize())

	unit.Install(ctx, domain.Callbacks{
		OnProgress: estimator.SetCurrent,
		OnSuccess: func() {
			c.endPhase(key, estimator)
			c.registry.InstallDone(key)
			c.sink.Publish(StateEvent{Key: key, State: domain.StateInstalled})
			c.out.Successf("%s installed", key)
			c.wg.Done()
		},
		OnFailure: func(err error) {
			c.endPhase(key, estimator)
			c.registry.InstallAborted(key)
			c.registry.InstallFailed(key)
			c.failUnit(key, &domain.InstallError{Key: key, Err: err})
		},
	})
}

// DownloadAgain re-enters the download path for a previously failed unit
// and signals the UI to close any error dialog bound to it. Retries are
// user-initiated only; the controller never retries on its own.
func (c *Controller) DownloadAgain(ctx context.Context, key string) error {
	unit, ok := c.registry.Get(key)
	if !ok {
		return domain.ErrUnknownComponent
	}

	if unit.State() != domain.StateFailed {
		return domain.ErrNotFailed
	}

	unit.RestartDownload()
	c.sink.Publish(RetryEvent{Key: key})

	c.wg.Add(1)
	c.TriggerDownload(ctx, key, unit)

	// The initial Wait has usually returned by the time a user retries,
	// so the retry publishes a fresh summary once its pipeline settles.
	go func() {
		c.wg.Wait()
		c.publishSummary()
	}()

	return nil
}

// failUnit emits the structured error record, the user-facing message,
// and the failure event for one unit. Sibling pipelines are unaffected.
func (c *Controller) failUnit(key string, err error) {
	c.out.ErrorRecord(map[string]any{
		"component": key,
		"error":     err.Error(),
	})
	c.out.Errorf("%s", domain.FailureMessage(err))

	c.sink.Publish(StateEvent{Key: key, State: domain.StateFailed})
	c.sink.Publish(FailureEvent{Key: key, Err: err})
	c.wg.Done()
}

// newEstimator builds a phase estimator whose refreshes are debounced
// into coalesced progress events for the UI.
func (c *Controller) newEstimator(key, status string) *progress.Estimator {
	var estimator *progress.Estimator

	notifier := progress.NewDebounced(func() {
		c.publishProgress(key, estimator)
	}, c.flushInterval)

	estimator = progress.NewEstimatorWithClock(status, notifier, c.clock)

	c.mu.Lock()
	if previous, ok := c.notifiers[key]; ok {
		previous.Stop()
	}

	c.notifiers[key] = notifier
	c.mu.Unlock()

	return estimator
}

// endPhase flushes the final progress state for a phase and stops its
// notifier so a discarded estimator can no longer trigger redraws.
func (c *Controller) endPhase(key string, estimator *progress.Estimator) {
	c.mu.Lock()
	if notifier, ok := c.notifiers[key]; ok {
		notifier.Stop()
		delete(c.notifiers, key)
	}
	c.mu.Unlock()

	c.publishProgress(key, estimator)
}

func (c *Controller) publishProgress(key string, estimator *progress.Estimator) {
	c.sink.Publish(ProgressEvent{
		Key:     key,
		Status:  estimator.Status(),
		Label:   estimator.Label(),
		Percent: estimator.Current(),
	})
}
