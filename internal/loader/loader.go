// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package loader implements config.Loader on top of the format-specific
// parsers. Files are discovered with fsutil, read in discovery order, handed
// to the parser registered for their extension, and merged into one plan.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/plangraph/internal/config"
	"github.com/specialistvlad/plangraph/internal/ctxlog"
	"github.com/specialistvlad/plangraph/internal/fsutil"
	"github.com/specialistvlad/plangraph/internal/hcl"
	"github.com/specialistvlad/plangraph/internal/tomlconfig"
	"github.com/specialistvlad/plangraph/internal/yamlconfig"
)

// Loader dispatches plan files to parsers by file extension.
type Loader struct {
	pattern string
	parsers map[string]config.Parser
}

var _ config.Loader = (*Loader)(nil)

// New creates a loader that discovers files with the given doublestar
// pattern and decodes them with parsers. An empty pattern selects
// fsutil.DefaultPattern. A later parser wins when two claim one extension.
func New(pattern string, parsers ...config.Parser) *Loader {
	l := &Loader{
		pattern: pattern,
		parsers: make(map[string]config.Parser),
	}
	for _, p := range parsers {
		for _, ext := range p.Extensions() {
			l.parsers[strings.ToLower(ext)] = p
		}
	}
	return l
}

// NewDefault creates a loader for every supported format: HCL, YAML, TOML.
func NewDefault(pattern string) *Loader {
	return New(pattern, hcl.NewParser(), yamlconfig.NewParser(), tomlconfig.NewParser())
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Plan loader started.", "path_count", len(paths))

	if len(paths) == 0 {
		return nil, fmt.Errorf("no plan paths given")
	}

	files, err := fsutil.FindFiles(l.pattern, paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to discover plan files: %w", err)
	}
	logger.Debug("Discovered plan files.", "count", len(files))

	plan := config.NewPlan()
	for _, file := range files {
		parser, ok := l.parsers[strings.ToLower(filepath.Ext(file))]
		if !ok {
			return nil, fmt.Errorf("unsupported plan file %s: no parser for extension %q", file, filepath.Ext(file))
		}

		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read plan file %s: %w", file, err)
		}

		filePlan, err := parser.Parse(ctx, file, src)
		if err != nil {
			return nil, err
		}
		plan.Merge(filePlan)
	}

	logger.Debug("Plan loading complete.", "files", len(files), "tasks", len(plan.Tasks), "phases", len(plan.Phases))
	return plan, nil
}
