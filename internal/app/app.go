// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/plangraph/internal/config"
	"github.com/specialistvlad/plangraph/internal/loader"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. The rendered graph goes
// to outW unless the config names an output file; logs always go to logW so
// the graph text is never interleaved with them. A nil loader selects the
// default loader for every supported plan format.
func NewApp(outW, logW io.Writer, appConfig *Config, planLoader config.Loader) (*App, error) {
	logger, err := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	logger.Debug("Logger configured successfully.")

	if planLoader == nil {
		planLoader = loader.NewDefault(appConfig.Include)
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: planLoader,
	}, nil
}
