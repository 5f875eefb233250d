package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goxor/internal/interactive"
	"github.com/idelchi/goxor/internal/logging"
)

// NewInteractiveCommand creates a new cobra command for the menu-driven session.
func NewInteractiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Start a menu-driven session",
		Args:    cobra.NoArgs,
		RunE:    runInteractive,
	}
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	level, _ := cmd.Flags().GetString("log-level")

	logger := logging.New("goxor", level, cmd.ErrOrStderr())

	return interactive.New(cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run()
}
