// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/plangraph/internal/app"
	"github.com/specialistvlad/plangraph/internal/dot"
	"github.com/specialistvlad/plangraph/internal/fsutil"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Usage and flag errors are printed to output.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("plangraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
plangraph - Render a plan of tasks and phases as a Graphviz digraph.

Usage:
  plangraph [options] [PLAN_PATH]

Arguments:
  PLAN_PATH
    Path to a plan file (.hcl, .yaml, .yml, .toml) or a directory of plan
    files. Without a path the built-in mortgage plan is rendered.

Options:
`)
		flagSet.PrintDefaults()
	}

	planFlag := flagSet.String("plan", "", "Path to the plan file or directory.")
	pFlag := flagSet.String("p", "", "Path to the plan file or directory (shorthand).")
	includeFlag := flagSet.String("include", fsutil.DefaultPattern, "Glob selecting plan files inside a directory.")
	nameFlag := flagSet.String("name", "", "Graph name. Defaults to 'mortgage' for the built-in plan and 'plan' otherwise.")
	rankDirFlag := flagSet.String("rankdir", string(dot.RankLeftRight), "Layout direction. Options: 'LR', 'RL', 'TB', 'BT'.")
	singlePhaseFlag := flagSet.Bool("single-phase", false, "Reject plans where a task belongs to more than one phase.")
	outputFlag := flagSet.String("o", "", "Write the graph to this file instead of stdout.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("too many arguments: expected at most one PLAN_PATH, got %d", flagSet.NArg())}
	}

	path := ""
	if *planFlag != "" {
		path = *planFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Plan path determined.", "path", path)

	config, err := app.NewConfig(app.Config{
		PlanPath:         path,
		Include:          *includeFlag,
		GraphName:        *nameFlag,
		RankDir:          dot.RankDir(*rankDirFlag),
		SingleAssignment: *singlePhaseFlag,
		Output:           *outputFlag,
		LogFormat:        *logFormatFlag,
		LogLevel:         *logLevelFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
