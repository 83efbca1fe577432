// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui wires the orchestration engine into a Bubble Tea program.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Kryndex/developer-platform-install/internal/domain"
	"github.com/Kryndex/developer-platform-install/internal/engine"
	"github.com/Kryndex/developer-platform-install/internal/registry"
	"github.com/Kryndex/developer-platform-install/internal/tui/models"
	"github.com/Kryndex/developer-platform-install/internal/tui/styles"
)

// Sink forwards controller events into the Bubble Tea program.
type Sink struct {
	program *tea.Program
}

// Publish implements engine.EventSink.
func (s *Sink) Publish(event any) {
	if s.program != nil {
		s.program.Send(models.EngineEventMsg{Event: event})
	}
}

// Run shows the progress screen and drives the controller until the user
// quits. The controller must have been constructed with the returned
// sink before Run dispatches it.
func Run(ctx context.Context, reg *registry.Registry, sink *Sink, controller *engine.Controller) error {
	units := make([]domain.Installable, 0)

	reg.Each(func(_ string, unit domain.Installable) {
		units = append(units, unit)
	})

	model := models.NewInstall(ctx, styles.New(), units, controller)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	sink.program = program

	go func() {
		controller.Start(ctx)
		controller.Wait()
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("progress screen failed: %w", err)
	}

	return nil
}

// NewSink creates an unbound sink; Run attaches it to the program.
func NewSink() *Sink {
	return &Sink{}
}
