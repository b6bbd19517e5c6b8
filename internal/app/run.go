// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/plangraph/internal/ctxlog"
	"github.com/specialistvlad/plangraph/internal/dot"
	"github.com/specialistvlad/plangraph/internal/plan"
)

// Run executes the main application logic. Either the whole graph is written
// or, on any error, nothing is.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	p, graphName, err := a.loadPlan(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("Plan loaded.", "tasks", len(p.Tasks), "phases", len(p.Phases))

	reg, err := plan.Build(ctx, p, plan.Options{SingleAssignment: a.config.SingleAssignment})
	if err != nil {
		return fmt.Errorf("failed to build plan graph: %w", err)
	}

	part, err := plan.PartitionOf(reg)
	if err != nil {
		return fmt.Errorf("failed to partition plan graph: %w", err)
	}
	a.logger.Debug("Plan partitioned.", "clusters", len(part.Clusters), "unassigned", len(part.Unassigned))

	opts := dot.Options{Name: graphName, RankDir: a.config.RankDir}
	if err := a.writeGraph(reg, part, opts); err != nil {
		return err
	}

	a.logger.Info("Graph written.", "output", a.outputName())
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) writeGraph(reg *plan.Registry, part *plan.Partition, opts dot.Options) error {
	if a.config.Output == "" {
		return dot.Write(a.outW, reg, part, opts)
	}

	text, err := dot.Serialize(reg, part, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(a.config.Output, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	return nil
}

func (a *App) outputName() string {
	if a.config.Output == "" {
		return "stdout"
	}
	return a.config.Output
}
