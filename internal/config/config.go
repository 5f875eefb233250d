// Package config holds the runtime configuration for goxor and its validation rules.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/idelchi/goxor/internal/xor"
)

// Key selects where the key comes from and how it is decoded.
type Key struct {
	// String is the key given on the command line or through the environment.
	String string `label:"--key" mapstructure:"key" validate:"required_without=File,exclusive=File"`
	// File is a path to a file holding the key.
	File string `label:"--key-file" mapstructure:"key-file"`
	// Encoding is either "raw" (bytes of the string) or "hex".
	Encoding string `label:"--key-encoding" mapstructure:"key-encoding" validate:"oneof=raw hex"`
}

// Suffixes are appended to output files when neither --output nor --in-place is given.
type Suffixes struct {
	Encrypt string `label:"--encrypt-ext" mapstructure:"encrypt-ext" validate:"required"`
	Decrypt string `label:"--decrypt-ext" mapstructure:"decrypt-ext"`
}

// Config represents the configuration for the application.
type Config struct {
	Key      `mapstructure:",squash"`
	Suffixes `mapstructure:",squash"`

	// Output is an explicit destination, valid for a single input file only.
	Output string `label:"--output" mapstructure:"output" validate:"exclusive=InPlace"`
	// InPlace overwrites each input file with its transformed content.
	InPlace bool `label:"--in-place" mapstructure:"in-place"`
	// Force allows replacing an existing destination.
	Force bool `mapstructure:"force"`

	// Decrypt selects decrypt naming for derived output paths.
	Decrypt bool `mapstructure:"-"`

	Parallel           int  `label:"--parallel" mapstructure:"parallel" validate:"gte=1"`
	Quiet              bool `mapstructure:"quiet"`
	Delete             bool `label:"--delete" mapstructure:"delete" validate:"excluded_with=InPlace"`
	Dry                bool `mapstructure:"dry"`
	Stats              bool `mapstructure:"stats"`
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`
	Show               bool `mapstructure:"show"`

	Include     []string `mapstructure:"include"`
	Exclude     []string `mapstructure:"exclude"`
	IncludeFrom string   `mapstructure:"include-from"`
	ExcludeFrom string   `mapstructure:"exclude-from"`

	LogLevel string `label:"--log-level" mapstructure:"log-level" validate:"omitempty,oneof=trace debug info warn error off"`

	// Files are the positional arguments: files or directories.
	Files []string `label:"files" mapstructure:"-" validate:"min=1"`
}

// Validate validates the configuration against the struct tags.
func (c *Config) Validate() error {
	validate, err := newValidator()
	if err != nil {
		return err
	}

	return validate.Struct(c)
}

// LoadKey resolves the configured key source into a key.
func (c *Config) LoadKey() (xor.Key, error) {
	encoding := xor.Encoding(c.Key.Encoding)

	if c.Key.String != "" {
		return xor.ParseKey(c.Key.String, encoding)
	}

	if c.Key.File == "" {
		return xor.Key{}, fmt.Errorf("%w: no key given", xor.ErrInvalidKey)
	}

	data, err := os.ReadFile(c.Key.File)
	if err != nil {
		return xor.Key{}, fmt.Errorf("reading key file: %w", err)
	}

	// Editors append a newline; it is never part of the key.
	key := strings.TrimRight(string(data), "\r\n")

	if key == "" {
		return xor.Key{}, fmt.Errorf("%w: key file %q is empty", xor.ErrInvalidKey, c.Key.File)
	}

	return xor.ParseKey(key, encoding)
}
