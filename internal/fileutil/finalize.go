// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// ResolveLink follows symlinks in path so that a rename replaces the file a link points to
// instead of the link itself. A path that does not exist yet, or a dangling link, is returned as is.
func ResolveLink(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return path, nil
	}

	return "", fmt.Errorf("resolving %q: %w", path, err)
}

// TempFile is a temporary file created next to its final destination.
// Content is written to File and moved into place with Commit.
type TempFile struct {
	File *os.File
	Name string
	dest string
}

// NewTempFile creates a temporary file in the directory of dest.
// Caller must defer CleanupOnError.
func NewTempFile(dest string) (*TempFile, error) {
	file, err := os.CreateTemp(filepath.Dir(dest), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &TempFile{
		File: file,
		Name: file.Name(),
		dest: dest,
	}, nil
}

// Commit sets perm on the temporary file, closes it and renames it to the destination.
func (t *TempFile) Commit(perm os.FileMode) error {
	if err := t.File.Chmod(perm); err != nil {
		return fmt.Errorf("setting file permissions: %w", err)
	}

	if err := t.File.Sync(); err != nil {
		return fmt.Errorf("syncing temporary file: %w", err)
	}

	if err := t.File.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(t.Name, t.dest); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}

	return nil
}

// CleanupOnError closes the temp file and removes it if the write failed.
func (t *TempFile) CleanupOnError(errp *error) {
	t.File.Close() //nolint:gosec // best-effort cleanup, may already be closed by Commit

	if *errp != nil {
		os.Remove(t.Name) //nolint:gosec // best-effort cleanup
	}
}

// FinalizeOutput optionally preserves timestamps and returns the output file size.
func FinalizeOutput(outPath string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := os.Chtimes(outPath, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return outInfo.Size(), nil
}
