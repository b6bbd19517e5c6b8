// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/plangraph/internal/app"
	"github.com/specialistvlad/plangraph/internal/cli"
)

// main is the entrypoint for the plangraph application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The graph goes to outW; usage text and logs go to errW.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// A nil loader selects every supported plan format.
	plangraphApp, err := app.NewApp(outW, errW, appConfig, nil)
	if err != nil {
		return err
	}
	return plangraphApp.Run(context.Background())
}
