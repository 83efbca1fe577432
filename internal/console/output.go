// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console provides output formatting for the CLI surface:
// user-facing messages on stderr, machine-readable results on stdout,
// and structured JSON error records.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputState holds global output configuration.
type OutputState struct {
	Verbose bool
	JSON    bool
	Plain   bool

	// Stdout and Stderr default to the process streams; tests redirect.
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultOutput provides output formatting utilities.
var DefaultOutput = New() //nolint:gochecknoglobals

// New creates an output state bound to the process streams.
func New() *OutputState {
	return &OutputState{Stdout: os.Stdout, Stderr: os.Stderr}
}

// SetMode configures output mode.
func (o *OutputState) SetMode(verbose, jsonMode, plain bool) {
	o.Verbose = verbose
	o.JSON = jsonMode
	o.Plain = plain
}

// IsTTY checks if output is going to a terminal (not piped/redirected).
func (o *OutputState) IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Bold formats text with bold when in TTY, uppercase when piped.
func (o *OutputState) Bold(text string) string {
	if o.JSON || o.Plain {
		return text
	}

	// no-color.org standards
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return text
	}

	if o.IsTTY(os.Stdout.Fd()) {
		return "\033[1m" + text + "\033[0m"
	}

	return strings.ToUpper(text)
}

// Progressf writes progress messages to stderr (only if verbose and not JSON/Plain).
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose && !o.JSON && !o.Plain {
		fmt.Fprintf(o.Stderr, format+"\n", args...)
	}
}

// Successf writes success messages to stderr (only if not JSON/Plain).
func (o *OutputState) Successf(format string, args ...any) {
	if !o.JSON && !o.Plain {
		fmt.Fprintf(o.Stderr, "✓ "+format+"\n", args...)
	}
}

// Warningf writes warning messages to stderr (always visible).
func (o *OutputState) Warningf(format string, args ...any) {
	if o.Plain {
		fmt.Fprintf(o.Stderr, "warning: "+format+"\n", args...)
	} else {
		fmt.Fprintf(o.Stderr, "⚠ "+format+"\n", args...)
	}
}

// Errorf writes error messages to stderr (always visible).
func (o *OutputState) Errorf(format string, args ...any) {
	if o.Plain {
		fmt.Fprintf(o.Stderr, "error: "+format+"\n", args...)
	} else {
		fmt.Fprintf(o.Stderr, format+"\n", args...)
	}
}

// ErrorRecord writes a structured JSON error record to stderr. Every
// pipeline failure emits one of these alongside its user-facing message.
func (o *OutputState) ErrorRecord(fields map[string]any) {
	record := map[string]any{"level": "error"}
	maps.Copy(record, fields)

	if err := json.NewEncoder(o.Stderr).Encode(record); err != nil {
		fmt.Fprintf(o.Stderr, "error encoding record: %v\n", err)
	}
}

// Result writes command results to stdout (machine-readable primary output).
func (o *OutputState) Result(data any) {
	_, _ = fmt.Fprintf(o.Stdout, "%v\n", data)
}

// JSONResult writes structured JSON results to stdout.
func (o *OutputState) JSONResult(status string, data map[string]any) {
	result := map[string]any{"status": status}
	maps.Copy(result, data)

	if err := json.NewEncoder(o.Stdout).Encode(result); err != nil {
		fmt.Fprintf(o.Stderr, "error encoding JSON: %v\n", err)
	}
}

// PlainStatus outputs status information in key:status format.
func (o *OutputState) PlainStatus(name, status string) {
	_, _ = fmt.Fprintf(o.Stdout, "%s:%s\n", name, status)
}
