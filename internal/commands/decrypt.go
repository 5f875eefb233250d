package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/logging"
	"github.com/idelchi/goxor/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] paths...",
		Aliases: []string{"dec"},
		Short:   "Restore obfuscated files",
		Long: `Restore files obfuscated with the same key. The transform is identical to encrypt;
only the default output naming differs: <encrypt-ext> is stripped and <decrypt-ext> appended.
Directories are searched for *<encrypt-ext> files unless include patterns are given.`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, true),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Show {
				return show(cmd.OutOrStdout(), cfg)
			}

			return logic.Run(cfg, logging.New("goxor", cfg.LogLevel, cmd.ErrOrStderr()))
		},
	}
}
