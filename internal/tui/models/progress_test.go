// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kryndex/developer-platform-install/internal/domain"
	"github.com/Kryndex/developer-platform-install/internal/engine"
	"github.com/Kryndex/developer-platform-install/internal/tui/styles"
)

type stubUnit struct {
	key   string
	state domain.State
}

func (u *stubUnit) Key() string                                         { return u.key }
func (u *stubUnit) DisplayName() string                                 { return u.key }
func (u *stubUnit) Version() string                                     { return "1.0" }
func (u *stubUnit) Description() string                                 { return "" }
func (u *stubUnit) State() domain.State                                 { return u.state }
func (u *stubUnit) IsSkipped() bool                                     { return false }
func (u *stubUnit) IsDownloadRequired() bool                            { return true }
func (u *stubUnit) TotalSize() int64                                    { return 0 }
func (u *stubUnit) RestartDownload()                                    {}
func (u *stubUnit) DownloadInstaller(context.Context, domain.Callbacks) {}
func (u *stubUnit) Install(context.Context, domain.Callbacks)           {}

type stubRetrier struct {
	keys []string
	err  error
}

func (r *stubRetrier) DownloadAgain(_ context.Context, key string) error {
	r.keys = append(r.keys, key)

	return r.err
}

func newInstallForTest(t *testing.T, retrier Retrier) *Install {
	t.Helper()

	units := []domain.Installable{
		&stubUnit{key: "jdk", state: domain.StateNotDownloaded},
		&stubUnit{key: "cdk", state: domain.StateNotDownloaded},
	}

	return NewInstall(t.Context(), styles.New(), units, retrier)
}

func apply(model *Install, event any) *Install {
	updated, _ := model.Update(EngineEventMsg{Event: event})

	install, ok := updated.(*Install)
	if !ok {
		panic("model type changed during update")
	}

	return install
}

func TestInstall_ProgressEventUpdatesTask(t *testing.T) {
	t.Parallel()

	model := newInstallForTest(t, nil)

	model = apply(model, engine.ProgressEvent{
		Key:     "jdk",
		Status:  "download",
		Label:   "390 KB / 8,789 KB (4%) 22 secs",
		Percent: 4,
	})

	task := model.Tasks()[0]
	assert.Equal(t, 4, task.Percent)
	assert.Equal(t, "390 KB / 8,789 KB (4%) 22 secs", task.Label)
}

func TestInstall_ProgressEventUnknownKeyIgnored(t *testing.T) {
	t.Parallel()

	model := newInstallForTest(t, nil)
	model = apply(model, engine.ProgressEvent{Key: "emacs", Percent: 50})

	for _, task := range model.Tasks() {
		assert.Zero(t, task.Percent)
	}
}

func TestInstall_StateEventsDriveTaskLifecycle(t *testing.T) {
	t.Parallel()

	model := newInstallForTest(t, nil)

	model = apply(model, engine.StateEvent{Key: "jdk", State: domain.StateDownloading})
	assert.Equal(t, domain.StateDownloading, model.Tasks()[0].State)

	model = apply(model, engine.StateEvent{Key: "jdk", State: domain.StateInstalled})
	task := model.Tasks()[0]
	assert.Equal(t, domain.StateInstalled, task.State)
	assert.Equal(t, 100, task.Percent, "a finished unit always renders full")
}

func TestInstall_FailureOpensDialogRetryCloses(t *testing.T) {
	t.Parallel()

	model := newInstallForTest(t, nil)

	model = apply(model, engine.StateEvent{Key: "cdk", State: domain.StateFailed})
	model = apply(model, engine.FailureEvent{Key: "cdk", Err: errors.New("boom")})

	assert.Equal(t, "cdk", model.dialogKey)
	assert.Equal(t, "boom", model.Tasks()[1].Error)
	assert.Contains(t, model.View(), "cdk failed")

	model = apply(model, engine.RetryEvent{Key: "cdk"})

	assert.Empty(t, model.dialogKey, "retry closes the error dialog")
	assert.Empty(t, model.Tasks()[1].Error)
}

func TestInstall_EscDismissesDialog(t *testing.T) {
	t.Parallel()

	model := newInstallForTest(t, nil)
	model = apply(model, engine.FailureEvent{Key: "jdk", Err: errors.New("boom")})

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEsc})

	install, ok := updated.(*Install)
	require.True(t, ok)
	assert.Empty(t, install.dialogKey)
}

func TestInstall_RetryKeyTargetsSelectedFailedTask(t *testing.T) {
	t.Parallel()

	retrier := &stubRetrier{}
	model := newInstallForTest(t, retrier)

	model = apply(model, engine.StateEvent{Key: "jdk", State: domain.StateFailed})

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd, "a failed selected task yields a retry command")

	cmd()
	assert.Equal(t, []string{"jdk"}, retrier.keys)

	install, ok := updated.(*Install)
	require.True(t, ok)
	assert.Equal(t, 0, install.selected)
}

func TestInstall_RetryKeyIgnoredForHealthyTask(t *testing.T) {
	t.Parallel()

	retrier := &stubRetrier{}
	model := newInstallForTest(t, retrier)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	assert.Nil(t, cmd, "only failed tasks can be retried")
	assert.Empty(t, retrier.keys)
}

func TestInstall_DoneEventMarksCompletion(t *testing.T) {
	t.Parallel()

	model := newInstallForTest(t, nil)

	model = apply(model, engine.StateEvent{Key: "jdk", State: domain.StateInstalled})
	model = apply(model, engine.StateEvent{Key: "cdk", State: domain.StateInstalled})
	model = apply(model, engine.DoneEvent{Installed: 2, Total: 2})

	assert.True(t, model.completed)
	assert.Contains(t, model.View(), "Installation Complete")
	assert.Contains(t, model.View(), strings.Repeat("█", 3), "the header bar fills when every unit is terminal")
}

func TestInstall_DoneWithFailuresRendersWarning(t *testing.T) {
	t.Parallel()

	model := newInstallForTest(t, nil)
	model = apply(model, engine.DoneEvent{Installed: 1, Failed: 1, Total: 2})

	assert.Contains(t, model.View(), "Finished With Failures")
}

func TestInstall_SelectionBounded(t *testing.T) {
	t.Parallel()

	model := newInstallForTest(t, nil)

	for range 5 {
		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
		model = updated.(*Install) //nolint:forcetypeassert
	}

	assert.Equal(t, 1, model.selected, "selection stops at the last task")

	for range 5 {
		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyUp})
		model = updated.(*Install) //nolint:forcetypeassert
	}

	assert.Equal(t, 0, model.selected)
}
