// Package logic implements the batch driver behind the encrypt and decrypt commands.
package logic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/filter"
)

// ErrDestinationExists is returned when an output file already exists and --force was not given.
var ErrDestinationExists = errors.New("destination exists")

// Run is the main logic of the application.
// A nil logger discards diagnostics.
func Run(cfg *config.Config, logger hclog.Logger) error {
	start := time.Now()

	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	// An unusable key fails the run before any file is touched.
	key, err := cfg.LoadKey()
	if err != nil {
		return fmt.Errorf("loading key: %w", err)
	}

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	if cfg.Output != "" && len(cfg.Files) != 1 {
		return fmt.Errorf("--output requires exactly one input file, got %d", len(cfg.Files))
	}

	excluded := scanned - len(cfg.Files)

	logger.Debug("resolved files", "scanned", scanned, "excluded", excluded, "selected", len(cfg.Files))

	proc := NewProcessor(cfg, key, logger)

	if cfg.Dry {
		return dryRun(proc, scanned, excluded, start)
	}

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(proc.Stderr, scanned, excluded, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// resolveFiles expands positional args and applies include/exclude filtering.
// Returns the total number of files scanned before filtering.
func resolveFiles(cfg *config.Config) (int, error) {
	includes := append([]string{}, cfg.Include...)
	excludes := append([]string{}, cfg.Exclude...)

	if cfg.IncludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.IncludeFrom)
		if err != nil {
			return 0, fmt.Errorf("loading include patterns: %w", err)
		}

		includes = append(includes, patterns...)
	}

	if cfg.ExcludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return 0, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, patterns...)
	}

	hasIncludes := len(cfg.Include) > 0 || cfg.IncludeFrom != ""

	// Directory walks during decryption pick only previously encrypted files.
	if cfg.Decrypt && !hasIncludes {
		includes = append(includes, "*"+cfg.Suffixes.Encrypt)
		hasIncludes = true
	}

	flt, err := filter.New(includes, excludes, hasIncludes)
	if err != nil {
		return 0, fmt.Errorf("compiling patterns: %w", err)
	}

	files, scanned, err := flt.Resolve(cfg.Files)
	if err != nil {
		return scanned, fmt.Errorf("filtering files: %w", err)
	}

	cfg.Files = files

	return scanned, nil
}

// dryRun previews what would be processed without touching any file.
// Files the real run would refuse are reported on stderr and make the preview fail.
func dryRun(proc *Processor, scanned, excluded int, start time.Time) error {
	var (
		totalSize int64
		refused   []error
	)

	for _, file := range proc.cfg.Files {
		outPath := proc.outputPath(file)

		if err := proc.checkDestination(file, outPath); err != nil {
			fmt.Fprintf(proc.Stderr, "Error processing %q: %v\n", file, err)

			refused = append(refused, err)

			continue
		}

		if !proc.cfg.Quiet {
			fmt.Fprintf(proc.Stdout, "Processed %q -> %q\n", file, outPath)
		}

		if proc.cfg.Stats {
			if info, err := os.Stat(file); err == nil {
				totalSize += info.Size()
			}
		}
	}

	processed := len(proc.cfg.Files) - len(refused)

	if proc.cfg.Stats {
		printStats(proc.Stderr, scanned, excluded, processed, len(refused), totalSize, time.Since(start))
	}

	if len(refused) > 0 {
		return fmt.Errorf("dry run: %d file(s) would fail: %w", len(refused), errors.Join(refused...))
	}

	return nil
}

func printStats(w io.Writer, scanned, excluded, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(w, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(w, "  Processed: %d\n", processed)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
