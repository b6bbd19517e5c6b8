// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/plangraph/internal/builtin"
	"github.com/specialistvlad/plangraph/internal/config"
	"github.com/specialistvlad/plangraph/internal/ctxlog"
	"github.com/specialistvlad/plangraph/internal/dot"
)

// loadPlan reads the configured plan and returns it with the graph name to
// render it under.
func (a *App) loadPlan(ctx context.Context) (*config.Plan, string, error) {
	logger := ctxlog.FromContext(ctx)

	if a.config.PlanPath == "" {
		logger.Debug("No plan path configured, using the built-in plan.")
		p, err := builtin.Load(ctx)
		if err != nil {
			return nil, "", err
		}
		return p, a.graphName(builtin.GraphName), nil
	}

	logger.Debug("Loading plan...", "plan_path", a.config.PlanPath)
	p, err := a.loader.Load(ctx, a.config.PlanPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load plan: %w", err)
	}
	return p, a.graphName(dot.DefaultGraphName), nil
}

func (a *App) graphName(fallback string) string {
	if a.config.GraphName != "" {
		return a.config.GraphName
	}
	return fallback
}
