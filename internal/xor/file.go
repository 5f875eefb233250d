package xor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/idelchi/goxor/internal/fileutil"
)

// ProcessFile reads the file at path, transforms its content with key and writes the result
// to destination, or back to path if destination is empty.
//
// The output is written to a temporary file next to the destination and renamed into place,
// so a failed write never leaves a partial destination behind. This needs write permission on the
// destination's directory: a writable file inside a read-only directory cannot be processed.
// An existing destination is replaced; if it is a symlink, the file it points to is replaced and
// the link is kept. The source permission bits are carried over to the output.
func ProcessFile(path string, key Key, destination string) error {
	if key.IsZero() {
		return fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}

	if destination == "" {
		destination = path
	}

	data, info, err := readFile(path)
	if err != nil {
		return err
	}

	out, err := Transform(data, key.b)
	if err != nil {
		return err
	}

	target, err := fileutil.ResolveLink(destination)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err := writeFile(target, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrIO, destination, err)
	}

	return nil
}

// readFile loads the whole file into memory.
func readFile(path string) ([]byte, os.FileInfo, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening %q: %w", ErrFileNotFound, path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: stat %q: %w", ErrIO, path, err)
	}

	if info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %q is a directory", ErrIO, path)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading %q: %w", ErrIO, path, err)
	}

	return data, info, nil
}

// writeFile writes data atomically to path with the given permissions.
func writeFile(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := fileutil.NewTempFile(path)
	if err != nil {
		return err
	}

	defer tmp.CleanupOnError(&err)

	if _, err = tmp.File.Write(data); err != nil {
		return fmt.Errorf("writing temporary file: %w", err)
	}

	return tmp.Commit(perm)
}
