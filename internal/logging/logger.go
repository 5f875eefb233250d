// Package logging builds the diagnostic logger used by the command-line layer.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// EnvLevel overrides the log level when no flag is given.
	EnvLevel = "GOXOR_LOG_LEVEL"
	// EnvJSON switches to JSON output when set to "1".
	EnvJSON = "GOXOR_LOG_JSON"

	defaultLevel = "warn"
)

// New creates an hclog logger writing to output, or stderr if output is nil.
// An empty level falls back to GOXOR_LOG_LEVEL and then to "warn".
func New(name, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(Level(level)),
		JSONFormat: os.Getenv(EnvJSON) == "1",
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// Level resolves the effective level name.
func Level(level string) string {
	if level != "" {
		return level
	}

	if env := os.Getenv(EnvLevel); env != "" {
		return env
	}

	return defaultLevel
}
