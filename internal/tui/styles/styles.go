// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles defines consistent visual styling for TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the TUI.
type Styles struct {
	// Color palette
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color

	// Component styles
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Footer     lipgloss.Style
	Unselected lipgloss.Style

	// Text styles (cached for performance)
	MutedText   lipgloss.Style
	SuccessText lipgloss.Style
	ErrorText   lipgloss.Style
}

// New creates a new Styles instance with the default Tokyo Night theme.
func New() *Styles {
	primary := lipgloss.Color("#7aa2f7")    // Blue
	secondary := lipgloss.Color("#bb9af7")  // Purple
	success := lipgloss.Color("#9ece6a")    // Green
	warning := lipgloss.Color("#e0af68")    // Yellow
	errorColor := lipgloss.Color("#f7768e") // Red
	muted := lipgloss.Color("#565f89")      // Gray

	foreground := lipgloss.Color("#c0caf5") // Light foreground

	return &Styles{
		Primary: primary,
		Success: success,
		Warning: warning,
		Error:   errorColor,
		Muted:   muted,

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(secondary).
			Italic(true),

		Footer: lipgloss.NewStyle().
			Foreground(foreground).
			MarginTop(1),

		Unselected: lipgloss.NewStyle().
			Foreground(foreground),

		MutedText: lipgloss.NewStyle().
			Foreground(muted),

		SuccessText: lipgloss.NewStyle().
			Foreground(success),

		ErrorText: lipgloss.NewStyle().
			Foreground(errorColor),
	}
}

// StatusIcon returns styled status icons for pipeline states.
func (s *Styles) StatusIcon(status string) string {
	style := s.Unselected

	var icon string

	switch status {
	case "installed", "skipped":
		style = lipgloss.NewStyle().Foreground(s.Success)
		icon = "✓"
	case "failed":
		style = lipgloss.NewStyle().Foreground(s.Error)
		icon = "✗"
	case "downloading", "installing":
		style = lipgloss.NewStyle().Foreground(s.Primary)
		icon = "⚬"
	case "not-downloaded", "downloaded":
		style = lipgloss.NewStyle().Foreground(s.Muted)
		icon = "○"
	default:
		icon = "•"
	}

	return style.Render(icon)
}

// ContextualProgressBar creates a styled progress bar with contextual colors.
func (s *Styles) ContextualProgressBar(current, total, width int, hasErrors, isCompleted bool) string {
	if total == 0 {
		return ""
	}

	percentage := float64(current) / float64(total)
	filled := int(percentage * float64(width))

	bar := ""

	for i := range width {
		if i < filled {
			bar += "█"
		} else {
			bar += "▓"
		}
	}

	var color lipgloss.Color

	switch {
	case hasErrors:
		color = s.Error
	case isCompleted:
		color = s.Success
	default:
		color = s.Warning
	}

	return lipgloss.NewStyle().
		Foreground(color).
		Render(bar)
}

// Keybinding returns styled keybinding text.
func (s *Styles) Keybinding(key, desc string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(s.Primary).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(s.Muted)

	return keyStyle.Render("["+key+"]") + " " + descStyle.Render(desc)
}
