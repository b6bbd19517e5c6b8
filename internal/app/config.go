// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/specialistvlad/plangraph/internal/dot"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PlanPath string // plan file or directory; empty selects the built-in plan
	Include  string // doublestar pattern for files inside a directory

	GraphName        string
	RankDir          dot.RankDir
	SingleAssignment bool
	Output           string // file to write the graph to; empty writes to the app's writer

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it with the rank direction
// and log settings normalized.
func NewConfig(cfg Config) (*Config, error) {
	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	format, err := parseLogFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	cfg.LogFormat = format
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if cfg.Include != "" && !doublestar.ValidatePattern(cfg.Include) {
		return nil, fmt.Errorf("invalid include pattern %q", cfg.Include)
	}

	if cfg.RankDir != "" {
		dir, err := dot.ParseRankDir(string(cfg.RankDir))
		if err != nil {
			return nil, err
		}
		cfg.RankDir = dir
	}

	return &cfg, nil
}
