package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/idelchi/goxor/internal/fileutil"
)

func TestTempFileCommit(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(t.TempDir(), "out.bin")

	tmp, err := fileutil.NewTempFile(dest)
	if err != nil {
		t.Fatalf("NewTempFile: %v", err)
	}

	if _, err := tmp.File.WriteString("payload"); err != nil {
		t.Fatalf("writing: %v", err)
	}

	err = tmp.Commit(0o640)
	tmp.CleanupOnError(&err)

	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading destination: %v", err)
	}

	if string(got) != "payload" {
		t.Errorf("destination = %q, want %q", got, "payload")
	}

	if _, err := os.Stat(tmp.Name); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temporary file %q still present", tmp.Name)
	}
}

func TestTempFileCleanupOnError(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(t.TempDir(), "out.bin")

	tmp, err := fileutil.NewTempFile(dest)
	if err != nil {
		t.Fatalf("NewTempFile: %v", err)
	}

	failed := errors.New("boom")
	tmp.CleanupOnError(&failed)

	if _, err := os.Stat(tmp.Name); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temporary file %q not removed", tmp.Name)
	}

	if _, err := os.Stat(dest); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("destination %q should not exist", dest)
	}
}

func TestNewTempFileMissingDir(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(t.TempDir(), "missing", "out.bin")

	if _, err := fileutil.NewTempFile(dest); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestFinalizeOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("12345"), 0o600); err != nil {
		t.Fatal(err)
	}

	modTime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	size, err := fileutil.FinalizeOutput(path, true, modTime)
	if err != nil {
		t.Fatalf("FinalizeOutput: %v", err)
	}

	if size != 5 {
		t.Errorf("size = %d, want 5", size)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if !info.ModTime().Equal(modTime) {
		t.Errorf("mod time = %v, want %v", info.ModTime(), modTime)
	}
}

func TestResolveLink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	dangling := filepath.Join(dir, "dangling")
	missing := filepath.Join(dir, "missing")

	if err := os.WriteFile(target, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if err := os.Symlink(filepath.Join(dir, "nowhere"), dangling); err != nil {
		t.Fatal(err)
	}

	wantTarget, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "regular file", path: target, want: wantTarget},
		{name: "symlink", path: link, want: wantTarget},
		{name: "missing", path: missing, want: missing},
		{name: "dangling symlink", path: dangling, want: dangling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.ResolveLink(tt.path)
			if err != nil {
				t.Fatalf("ResolveLink(%q): %v", tt.path, err)
			}

			if got != tt.want {
				t.Errorf("ResolveLink(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
