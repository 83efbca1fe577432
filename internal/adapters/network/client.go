// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package network implements the artifact download port over HTTP.
package network

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Kryndex/developer-platform-install/internal/domain"
)

// HTTPClient implements domain.NetworkClient.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new HTTP client with timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
			},
		},
	}
}

// Download fetches url into destPath, streaming through a counting
// writer so onProgress sees the cumulative bytes written. Returns the
// total size written.
func (c *HTTPClient) Download(ctx context.Context, url, destPath string, onProgress func(written int64)) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to download file: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	// #nosec G304 -- destPath is resolved from the component catalog
	out, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create destination file: %w", err)
	}

	defer func() {
		_ = out.Close()
	}()

	counter := &countingWriter{onWrite: onProgress}

	written, err := io.Copy(io.MultiWriter(out, counter), resp.Body)
	if err != nil {
		return written, fmt.Errorf("failed to write file: %w", err)
	}

	return written, nil
}

// VerifySHA256 checks a downloaded file against an expected hex digest.
// An empty expected digest skips verification.
func (c *HTTPClient) VerifySHA256(path, expected string) error {
	if expected == "" {
		return nil
	}

	// #nosec G304 -- path points at the file this client just wrote
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file for verification: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return fmt.Errorf("failed to hash file: %w", err)
	}

	actual := hex.EncodeToString(hash.Sum(nil))
	if !strings.EqualFold(actual, expected) {
		return fmt.Errorf("%w: expected %s, got %s", domain.ErrChecksumMismatch, expected, actual)
	}

	return nil
}

// countingWriter reports the cumulative byte count after every write.
type countingWriter struct {
	total   int64
	onWrite func(written int64)
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.total += int64(len(p))
	if w.onWrite != nil {
		w.onWrite(w.total)
	}

	return len(p), nil
}
