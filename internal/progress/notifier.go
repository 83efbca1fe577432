// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package progress

import (
	"sync"
	"time"
)

// DefaultFlushInterval is the scheduling quantum used to coalesce bursts
// of progress refreshes into one redraw.
const DefaultFlushInterval = 50 * time.Millisecond

// Debounced coalesces refresh signals: the first Refresh arms a timer,
// further refreshes within the interval are swallowed, and the flush
// function runs once when the timer fires. The flush never runs inline
// with the caller's stack.
type Debounced struct {
	mu       sync.Mutex
	flush    func()
	interval time.Duration
	timer    *time.Timer
	armed    bool
	stopped  bool
}

// NewDebounced creates a debounced notifier invoking flush at most once
// per interval.
func NewDebounced(flush func(), interval time.Duration) *Debounced {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}

	return &Debounced{flush: flush, interval: interval}
}

// Refresh schedules a flush on the next quantum unless one is pending.
func (d *Debounced) Refresh() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.armed || d.stopped {
		return
	}

	d.armed = true
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		d.armed = false
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			d.flush()
		}
	})
}

// Stop cancels any pending flush and rejects further refreshes.
func (d *Debounced) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
