package commands

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewGenerateCommand creates a new cobra command that prints a random hex key.
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a random key for use with --key-encoding hex",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			length, err := cmd.Flags().GetInt("length")
			if err != nil {
				return err
			}

			if length < 1 {
				return errors.New("--length must be at least 1")
			}

			key := make([]byte, length)
			if _, err := rand.Read(key); err != nil {
				return fmt.Errorf("generating key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key))

			return nil
		},
	}

	cmd.Flags().IntP("length", "n", 32, "Key length in bytes")

	return cmd
}
