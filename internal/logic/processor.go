package logic

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/fileutil"
	"github.com/idelchi/goxor/internal/xor"
)

// Processor applies the XOR transform to every configured file.
type Processor struct {
	// Stdout receives one line per processed file unless quiet.
	Stdout io.Writer
	// Stderr receives per-file errors and stats.
	Stderr io.Writer

	cfg    *config.Config
	key    xor.Key
	logger hclog.Logger
}

// NewProcessor creates a Processor writing to the process's standard streams.
func NewProcessor(cfg *config.Config, key xor.Key, logger hclog.Logger) *Processor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Processor{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		cfg:    cfg,
		key:    key,
		logger: logger,
	}
}

// ProcessFiles processes all configured files with at most cfg.Parallel workers.
// Failures are reported per file and do not stop the remaining files.
// Returns the number of successfully processed files, the number of errors and the total output size.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	results := make(chan Result, len(p.cfg.Files))

	group := errgroup.Group{}
	group.SetLimit(max(1, p.cfg.Parallel))

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(p.Stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++

			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Fprintf(p.Stdout, "Processed %q -> %q\n", result.Input, result.Output)
			}

			if p.cfg.Delete && !samePath(result.Input, result.Output) {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(p.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Fprintf(p.Stdout, "Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := p.outputPath(file)

			size, err := p.processFile(file, outPath)
			if err != nil {
				results <- Result{Input: file, Error: err}

				return err
			}

			results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile transforms a single file into outPath and returns the output size.
func (p *Processor) processFile(filename, outPath string) (int64, error) {
	if err := p.checkDestination(filename, outPath); err != nil {
		return 0, err
	}

	var modTime time.Time

	if info, err := os.Stat(filename); err == nil {
		modTime = info.ModTime()
	}

	p.logger.Debug("transforming", "input", filename, "output", outPath, "key_bytes", p.key.Len())

	if err := xor.ProcessFile(filename, p.key, outPath); err != nil {
		p.logger.Debug("transform failed", "input", filename, "kind", xor.Kind(err))

		return 0, err
	}

	size, err := fileutil.FinalizeOutput(outPath, p.cfg.PreserveTimestamps && !modTime.IsZero(), modTime)
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}

// checkDestination refuses to write over an existing file unless in place or forced.
func (p *Processor) checkDestination(filename, outPath string) error {
	if p.cfg.InPlace {
		return nil
	}

	if samePath(filename, outPath) {
		return fmt.Errorf("output %q is the input file, use --in-place to overwrite it", outPath)
	}

	if p.cfg.Force {
		return nil
	}

	if _, err := os.Lstat(outPath); err == nil {
		return fmt.Errorf("%w: %q, use --force to overwrite it", ErrDestinationExists, outPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: stat %q: %w", xor.ErrIO, outPath, err)
	}

	return nil
}

// outputPath generates the output file path based on the input filename
// and the configured output mode.
func (p *Processor) outputPath(filename string) string {
	switch {
	case p.cfg.InPlace:
		return filename
	case p.cfg.Output != "":
		return p.cfg.Output
	}

	ext := p.cfg.Suffixes.Encrypt

	if p.cfg.Decrypt {
		filename = strings.TrimSuffix(filename, p.cfg.Suffixes.Encrypt)
		ext = p.cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
