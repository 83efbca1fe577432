// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultDirPerm is the permission used for created directories.
const DefaultDirPerm = 0o755

// copyChunkSize bounds a single copy step so progress callbacks fire at
// a useful granularity on large artifacts.
const copyChunkSize = 256 * 1024

// FileManager implements the file-operation port.
type FileManager struct {
	verbose bool
}

// NewFileManager creates a file manager.
func NewFileManager(verbose bool) *FileManager {
	return &FileManager{verbose: verbose}
}

// FileExists checks if a file exists.
func (f *FileManager) FileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

// EnsureDir creates a directory and all parents if missing.
func (f *FileManager) EnsureDir(path string) error {
	if err := os.MkdirAll(path, DefaultDirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

// CopyFileWithProgress copies src to dest in bounded chunks, reporting
// the cumulative bytes written through onProgress.
func (f *FileManager) CopyFileWithProgress(src, dest string, onProgress func(written int64)) error {
	// #nosec G304 -- src comes from the bundle directory this tool manages
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}

	defer func() {
		_ = in.Close()
	}()

	if err := f.EnsureDir(filepath.Dir(dest)); err != nil {
		return err
	}

	// #nosec G304 -- dest is resolved under the configured install dir
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	defer func() {
		_ = out.Close()
	}()

	var written int64

	for {
		copied, err := io.CopyN(out, in, copyChunkSize)
		written += copied

		if copied > 0 && onProgress != nil {
			onProgress(written)
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to copy file: %w", err)
		}
	}
}

// RemoveFile removes a file.
func (f *FileManager) RemoveFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove file %s: %w", path, err)
	}

	return nil
}
