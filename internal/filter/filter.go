// Package filter turns positional arguments into the list of files to process.
//
// Explicit files are always taken. Directories are walked recursively and each file is kept
// if it matches an include pattern (or no includes were requested) and no exclude pattern.
// Patterns use path.Match syntax and are tried against both the slash-separated path and the base name.
package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Filter selects files based on include/exclude patterns.
// Excludes always win.
type Filter struct {
	includes    []string
	excludes    []string
	hasIncludes bool
}

// New validates the patterns and returns a reusable filter.
// hasIncludes reports whether include filtering was requested, even if includes is empty.
func New(includes, excludes []string, hasIncludes bool) (*Filter, error) {
	includes = normalize(includes)
	excludes = normalize(excludes)

	for _, p := range append(append([]string{}, includes...), excludes...) {
		if _, err := path.Match(p, ""); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
	}

	return &Filter{includes: includes, excludes: excludes, hasIncludes: hasIncludes}, nil
}

// Match reports whether the slash-separated path should be processed.
func (f *Filter) Match(name string) bool {
	included := !f.hasIncludes || matchAny(f.includes, name)

	return included && !matchAny(f.excludes, name)
}

func matchAny(patterns []string, name string) bool {
	base := path.Base(name)

	for _, p := range patterns {
		if ok, _ := path.Match(p, name); ok {
			return true
		}

		if ok, _ := path.Match(p, base); ok {
			return true
		}
	}

	return false
}

// normalize strips leading "./" from patterns so they match cleaned paths.
func normalize(patterns []string) []string {
	out := make([]string, len(patterns))

	for i, p := range patterns {
		out[i] = strings.TrimPrefix(filepath.ToSlash(p), "./")
	}

	return out
}

// Resolve expands args into files. Files are added directly, bypassing filtering.
// Directories are walked and filtered. Duplicates are dropped.
// Returns the matched files and the total number of candidates scanned.
func (f *Filter) Resolve(args []string) (files []string, scanned int, err error) {
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}

		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}

			scanned++

			if f.Match(filepath.ToSlash(p)) {
				add(p)
			}

			return nil
		})
		if err != nil {
			return nil, 0, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("no files matched the provided arguments: %v", args)
	}

	return files, scanned, nil
}
