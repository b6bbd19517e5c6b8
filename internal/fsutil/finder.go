// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches every plan file format the loaders understand.
const DefaultPattern = "**/*.{hcl,yaml,yml,toml}"

// FindFiles resolves paths into a sorted, de-duplicated list of files. A
// directory is searched recursively for files matching the doublestar
// pattern, relative to that directory; a file path is taken as it is.
// Directories are expanded in the order given, and the files of each are
// sorted lexically, so the result is stable for the same tree.
func FindFiles(pattern string, paths ...string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid file pattern %q", pattern)
	}

	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		p = filepath.Clean(p)
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(path), pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to search %s: %w", path, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(filepath.Join(path, filepath.FromSlash(m)))
		}
	}

	return allFiles, nil
}
