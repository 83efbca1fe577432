// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIcon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status string
		icon   string
	}{
		{name: "installed", status: "installed", icon: "✓"},
		{name: "skipped", status: "skipped", icon: "✓"},
		{name: "failed", status: "failed", icon: "✗"},
		{name: "downloading", status: "downloading", icon: "⚬"},
		{name: "installing", status: "installing", icon: "⚬"},
		{name: "not downloaded", status: "not-downloaded", icon: "○"},
		{name: "downloaded", status: "downloaded", icon: "○"},
		{name: "unknown falls back to bullet", status: "mystery", icon: "•"},
	}

	styleSet := New()

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Contains(t, styleSet.StatusIcon(testCase.status), testCase.icon)
		})
	}
}

func TestContextualProgressBar(t *testing.T) {
	t.Parallel()

	styleSet := New()

	t.Run("zero total renders nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, styleSet.ContextualProgressBar(0, 0, 10, false, false))
	})

	t.Run("fill matches completion ratio", func(t *testing.T) {
		t.Parallel()

		bar := styleSet.ContextualProgressBar(3, 6, 10, false, false)

		assert.Equal(t, 5, strings.Count(bar, "█"))
		assert.Equal(t, 5, strings.Count(bar, "▓"))
	})

	t.Run("complete bar is fully filled", func(t *testing.T) {
		t.Parallel()

		bar := styleSet.ContextualProgressBar(4, 4, 8, false, true)

		assert.Equal(t, 8, strings.Count(bar, "█"))
		assert.Zero(t, strings.Count(bar, "▓"))
	})
}

func TestKeybinding(t *testing.T) {
	t.Parallel()

	styleSet := New()
	rendered := styleSet.Keybinding("r", "retry failed")

	assert.Contains(t, rendered, "[r]")
	assert.Contains(t, rendered, "retry failed")
}
