// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/plangraph/internal/config"
	"github.com/specialistvlad/plangraph/internal/ctxlog"
)

// Parser is the HCL-specific implementation of the config.Parser interface.
type Parser struct{}

// NewParser creates a new HCL plan parser.
func NewParser() *Parser {
	return &Parser{}
}

// Extensions implements config.Parser.
func (p *Parser) Extensions() []string {
	return []string{".hcl"}
}

// Parse implements config.Parser.
func (p *Parser) Parse(ctx context.Context, filename string, src []byte) (*config.Plan, error) {
	logger := ctxlog.FromContext(ctx)

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	content, diags := file.Body.Content(planFileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	plan := config.NewPlan()
	var allDiags hcl.Diagnostics

	// Blocks come back in source order, which is the order definitions keep.
	for _, block := range content.Blocks {
		switch block.Type {
		case "task":
			task, taskDiags := decodeTask(filename, block)
			allDiags = append(allDiags, taskDiags...)
			if task != nil {
				plan.Tasks = append(plan.Tasks, task)
			}
		case "phase":
			phase, phaseDiags := decodePhase(filename, block)
			allDiags = append(allDiags, phaseDiags...)
			if phase != nil {
				plan.Phases = append(plan.Phases, phase)
			}
		}
	}

	if allDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, allDiags)
	}

	logger.Debug("Parsed HCL plan file.", "file", filename, "tasks", len(plan.Tasks), "phases", len(plan.Phases))
	return plan, nil
}

// decodeTask converts a single `task` block into a definition.
func decodeTask(filename string, block *hcl.Block) (*config.TaskDefinition, hcl.Diagnostics) {
	bodyContent, diags := block.Body.Content(taskBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	task := &config.TaskDefinition{
		// The schema guarantees us one label for the task name.
		Name:   block.Labels[0],
		Source: config.NewSource(filename, block.DefRange.Start.Line),
	}

	if attr, exists := bodyContent.Attributes["description"]; exists {
		var descDiags hcl.Diagnostics
		task.Description, descDiags = decodeString(attr)
		diags = append(diags, descDiags...)
	}

	if attr, exists := bodyContent.Attributes["depends_on"]; exists {
		var depDiags hcl.Diagnostics
		task.DependsOn, depDiags = decodeTaskNames(attr)
		diags = append(diags, depDiags...)
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return task, diags
}

// decodePhase converts a single `phase` block into a definition.
func decodePhase(filename string, block *hcl.Block) (*config.PhaseDefinition, hcl.Diagnostics) {
	bodyContent, diags := block.Body.Content(phaseBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	phase := &config.PhaseDefinition{
		Name:   block.Labels[0],
		Source: config.NewSource(filename, block.DefRange.Start.Line),
	}

	if attr, exists := bodyContent.Attributes["description"]; exists {
		var descDiags hcl.Diagnostics
		phase.Description, descDiags = decodeString(attr)
		diags = append(diags, descDiags...)
	}

	if attr, exists := bodyContent.Attributes["tasks"]; exists {
		var memberDiags hcl.Diagnostics
		phase.Tasks, memberDiags = decodeTaskNames(attr)
		diags = append(diags, memberDiags...)
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return phase, diags
}
