package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goxor/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// Without a subcommand it starts the interactive session.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "goxor [flags] command [flags]",
		Short: "Repeating-key XOR file obfuscation",
		Long: `Obfuscate files with a repeating-key XOR cipher.
Applying the same key twice restores the original content.
This is a learning tool and provides no real security.

Flags can also be set through GOXOR_<FLAG> environment variables, e.g. GOXOR_KEY.`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:              runInteractive,
	}

	flags := root.PersistentFlags()

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.IntP("parallel", "j", 1, "Number of parallel workers")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.String("log-level", "", "Diagnostic log level (trace, debug, info, warn, error, off)")

	flags.StringP("key", "k", "", "Key used to XOR the file content")
	flags.StringP("key-file", "f", "", "Path to a file holding the key")
	flags.String("key-encoding", "raw", "How the key string is turned into bytes: raw or hex")

	flags.StringP("output", "o", "", "Write the result to this path (single input only)")
	flags.BoolP("in-place", "i", false, "Overwrite each input file with its result")
	flags.Bool("force", false, "Replace existing output files")
	flags.BoolP("delete", "d", false, "Delete the original file after successful processing")
	flags.Bool("dry", false, "Show what would be processed without writing anything")
	flags.Bool("stats", false, "Print statistics after processing")
	flags.Bool("preserve-timestamps", false, "Copy the modification time of the input to the output")

	flags.String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	flags.String("decrypt-ext", ".dec", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	flags.StringSlice("include", nil, "Patterns selecting files inside directories")
	flags.StringSlice("exclude", nil, "Patterns skipping files inside directories")
	flags.String("include-from", "", "JSONC file with include patterns")
	flags.String("exclude-from", "", "JSONC file with exclude patterns")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewInteractiveCommand(),
		NewGenerateCommand(),
	)

	return root
}
