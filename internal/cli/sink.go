// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"github.com/Kryndex/developer-platform-install/internal/console"
	"github.com/Kryndex/developer-platform-install/internal/engine"
)

// consoleSink reports controller events through the console for headless
// runs.
type consoleSink struct {
	out *console.OutputState
}

func newConsoleSink(out *console.OutputState) *consoleSink {
	return &consoleSink{out: out}
}

// Publish implements engine.EventSink.
func (s *consoleSink) Publish(event any) {
	switch event := event.(type) {
	case engine.ProgressEvent:
		s.out.Progressf("%s: %s %s", event.Key, event.Status, event.Label)
	case engine.StateEvent:
		if s.out.Plain {
			s.out.PlainStatus(event.Key, string(event.State))
		} else {
			s.out.Progressf("%s: %s", event.Key, event.State)
		}
	case engine.RetryEvent:
		s.out.Progressf("%s: retrying download", event.Key)
	case engine.FailureEvent:
		// Failure logging is handled by the controller itself.
	case engine.DoneEvent:
	}
}
