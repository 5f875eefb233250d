// Command goxor obfuscates files with a repeating-key XOR cipher.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/goxor/internal/commands"
	"github.com/idelchi/goxor/internal/config"
)

// Global variable for CI stamping.
var version = "unknown - unofficial & generated by unknown"

func main() {
	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
