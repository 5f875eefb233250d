// Package commands provides the command-line interface for the goxor tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - an interactive menu session
//   - key generation
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/goxor/internal/config"
)

// EnvPrefix is the prefix for environment variables overriding flags, e.g. GOXOR_KEY.
const EnvPrefix = "GOXOR"

// bind merges flags and environment variables into cfg.
func bind(cmd *cobra.Command, cfg *config.Config) error {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}

// preRun returns a PreRunE handler that binds the configuration, stores the positional args
// into cfg.Files and validates the result.
func preRun(cfg *config.Config, decrypt bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := bind(cmd, cfg); err != nil {
			return err
		}

		cfg.Files = args
		cfg.Decrypt = decrypt

		return cfg.Validate()
	}
}

// show prints the configuration as YAML with the key masked.
func show(w io.Writer, cfg *config.Config) error {
	redacted := *cfg
	if redacted.Key.String != "" {
		redacted.Key.String = "<REDACTED>"
	}

	out, err := yaml.Marshal(redacted)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	_, err = w.Write(out)

	return err
}
