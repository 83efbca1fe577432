// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedOutput() (*OutputState, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	out := &OutputState{Stdout: stdout, Stderr: stderr}

	return out, stdout, stderr
}

func TestOutputState_Progressf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		verbose   bool
		jsonMode  bool
		plain     bool
		wantEmpty bool
	}{
		{name: "silent without verbose", wantEmpty: true},
		{name: "verbose prints", verbose: true},
		{name: "verbose suppressed in JSON mode", verbose: true, jsonMode: true, wantEmpty: true},
		{name: "verbose suppressed in plain mode", verbose: true, plain: true, wantEmpty: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, stdout, stderr := newBufferedOutput()
			out.SetMode(testCase.verbose, testCase.jsonMode, testCase.plain)

			out.Progressf("downloading %s", "jdk")

			assert.Empty(t, stdout.String(), "progress never goes to stdout")

			if testCase.wantEmpty {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), "downloading jdk")
			}
		})
	}
}

func TestOutputState_SuccessfSuppressedForMachineOutput(t *testing.T) {
	t.Parallel()

	out, _, stderr := newBufferedOutput()

	out.Successf("%s installed", "jdk")
	assert.Contains(t, stderr.String(), "✓ jdk installed")

	out.SetMode(false, true, false)
	stderr.Reset()

	out.Successf("%s installed", "jdk")
	assert.Empty(t, stderr.String())
}

func TestOutputState_WarningfAlwaysVisible(t *testing.T) {
	t.Parallel()

	out, _, stderr := newBufferedOutput()

	out.Warningf("unknown component key in --skip: %s", "emacs")
	assert.Contains(t, stderr.String(), "⚠ unknown component key in --skip: emacs")

	out.SetMode(false, false, true)
	stderr.Reset()

	out.Warningf("unknown component key in --skip: %s", "emacs")
	assert.Contains(t, stderr.String(), "warning: unknown component key in --skip: emacs")
}

func TestOutputState_ErrorfPlainPrefix(t *testing.T) {
	t.Parallel()

	out, _, stderr := newBufferedOutput()

	out.Errorf("download of %s failed", "jdk")
	assert.Contains(t, stderr.String(), "download of jdk failed")

	out.SetMode(false, false, true)
	stderr.Reset()

	out.Errorf("download of %s failed", "jdk")
	assert.Contains(t, stderr.String(), "error: download of jdk failed")
}

func TestOutputState_ErrorRecord(t *testing.T) {
	t.Parallel()

	out, stdout, stderr := newBufferedOutput()

	out.ErrorRecord(map[string]any{
		"component": "vagrant",
		"error":     "download of vagrant failed: timeout",
	})

	assert.Empty(t, stdout.String(), "records go to stderr, not the result stream")

	var record map[string]any
	require.NoError(t, json.Unmarshal(stderr.Bytes(), &record))

	assert.Equal(t, "error", record["level"])
	assert.Equal(t, "vagrant", record["component"])
	assert.Equal(t, "download of vagrant failed: timeout", record["error"])
}

func TestOutputState_JSONResult(t *testing.T) {
	t.Parallel()

	out, stdout, _ := newBufferedOutput()

	out.JSONResult("done", map[string]any{"installed": 5, "failed": 1})

	var result map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))

	assert.Equal(t, "done", result["status"])
	assert.InDelta(t, 5, result["installed"], 0)
	assert.InDelta(t, 1, result["failed"], 0)
}

func TestOutputState_PlainStatus(t *testing.T) {
	t.Parallel()

	out, stdout, _ := newBufferedOutput()

	out.PlainStatus("jdk", "installed")

	assert.Equal(t, "jdk:installed\n", stdout.String())
}

func TestOutputState_BoldPassthroughForMachineOutput(t *testing.T) {
	t.Parallel()

	out, _, _ := newBufferedOutput()

	out.SetMode(false, true, false)
	assert.Equal(t, "key", out.Bold("key"), "JSON mode never decorates")

	out.SetMode(false, false, true)
	assert.Equal(t, "key", out.Bold("key"), "plain mode never decorates")
}

func TestOutputState_BoldHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out, _, _ := newBufferedOutput()

	assert.Equal(t, "key", out.Bold("key"))
}
