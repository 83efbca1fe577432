// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandRunner_Execute(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner(false, false)

	require.NoError(t, runner.Execute(t.Context(), "true"))
	require.Error(t, runner.Execute(t.Context(), "false"), "non-zero exit surfaces as an error")
}

func TestCommandRunner_ExecuteMissingBinary(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner(false, false)

	err := runner.Execute(t.Context(), "definitely-not-a-real-binary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely-not-a-real-binary")
}

func TestCommandRunner_DryRunSkipsExecution(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner(false, true)

	// Dry-run must succeed even for a binary that does not exist.
	require.NoError(t, runner.Execute(t.Context(), "definitely-not-a-real-binary", "--flag"))
}

func TestCommandRunner_CommandExists(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner(false, false)

	assert.True(t, runner.CommandExists("sh"))
	assert.False(t, runner.CommandExists("definitely-not-a-real-binary"))
}
