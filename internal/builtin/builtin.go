// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package builtin holds the plan that ships inside the binary: the steps of
// buying a home with a mortgage, grouped into five phases.
package builtin

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/specialistvlad/plangraph/internal/config"
	"github.com/specialistvlad/plangraph/internal/hcl"
)

// GraphName is the DOT graph name used when rendering the built-in plan.
const GraphName = "mortgage"

// FileName is the name the built-in plan reports in source references.
const FileName = "builtin/mortgage.hcl"

//go:embed mortgage.hcl
var mortgageHCL []byte

// Load parses the built-in plan.
func Load(ctx context.Context) (*config.Plan, error) {
	p, err := hcl.NewParser().Parse(ctx, FileName, mortgageHCL)
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in plan: %w", err)
	}
	return p, nil
}
