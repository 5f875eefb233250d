package config_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/xor"
)

func validConfig() config.Config {
	return config.Config{
		Key:      config.Key{String: "secret", Encoding: "raw"},
		Suffixes: config.Suffixes{Encrypt: ".enc", Decrypt: ".dec"},
		Parallel: 1,
		Files:    []string{"file.txt"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "key file only", mutate: func(c *config.Config) { c.Key.String, c.Key.File = "", "key.txt" }},
		{name: "no key", mutate: func(c *config.Config) { c.Key.String = "" }, wantErr: "--key"},
		{
			name:    "key and key file",
			mutate:  func(c *config.Config) { c.Key.File = "key.txt" },
			wantErr: "--key is mutually exclusive with --key-file",
		},
		{name: "bad encoding", mutate: func(c *config.Config) { c.Key.Encoding = "b64" }, wantErr: "--key-encoding"},
		{
			name:    "output and in place",
			mutate:  func(c *config.Config) { c.Output, c.InPlace = "out", true },
			wantErr: "--output is mutually exclusive with --in-place",
		},
		{name: "delete with in place", mutate: func(c *config.Config) { c.Delete, c.InPlace = true, true }, wantErr: "--delete"},
		{name: "no files", mutate: func(c *config.Config) { c.Files = nil }, wantErr: "files"},
		{name: "zero workers", mutate: func(c *config.Config) { c.Parallel = 0 }, wantErr: "--parallel"},
		{name: "empty encrypt suffix", mutate: func(c *config.Config) { c.Suffixes.Encrypt = "" }, wantErr: "--encrypt-ext"},
		{name: "bad log level", mutate: func(c *config.Config) { c.LogLevel = "loud" }, wantErr: "--log-level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatalf("Validate() succeeded, want error containing %q", tt.wantErr)
			}

			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadKey(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	rawFile := filepath.Join(dir, "raw.key")
	if err := os.WriteFile(rawFile, []byte("pass word\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	hexFile := filepath.Join(dir, "hex.key")
	if err := os.WriteFile(hexFile, []byte("00ff\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	emptyFile := filepath.Join(dir, "empty.key")
	if err := os.WriteFile(emptyFile, []byte("\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		key     config.Key
		want    []byte
		wantErr error
	}{
		{name: "string", key: config.Key{String: "abc", Encoding: "raw"}, want: []byte("abc")},
		{name: "hex string", key: config.Key{String: "0a0b", Encoding: "hex"}, want: []byte{0x0a, 0x0b}},
		{name: "raw file", key: config.Key{File: rawFile, Encoding: "raw"}, want: []byte("pass word")},
		{name: "hex file", key: config.Key{File: hexFile, Encoding: "hex"}, want: []byte{0x00, 0xff}},
		{name: "empty file", key: config.Key{File: emptyFile, Encoding: "raw"}, wantErr: xor.ErrInvalidKey},
		{name: "none", key: config.Key{Encoding: "raw"}, wantErr: xor.ErrInvalidKey},
		{name: "missing file", key: config.Key{File: filepath.Join(dir, "nope")}, wantErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Config{Key: tt.key}

			key, err := cfg.LoadKey()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadKey() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("LoadKey() error: %v", err)
			}

			if !bytes.Equal(key.Bytes(), tt.want) {
				t.Errorf("LoadKey() = %x, want %x", key.Bytes(), tt.want)
			}
		})
	}
}
