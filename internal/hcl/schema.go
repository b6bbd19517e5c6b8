// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import "github.com/hashicorp/hcl/v2"

// planFileSchema is the top-level structure of a plan file.
var planFileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "task", LabelNames: []string{"name"}},
		{Type: "phase", LabelNames: []string{"name"}},
	},
}

// taskBodySchema is the HCL schema for the body of a `task` block.
var taskBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "depends_on"},
	},
}

// phaseBodySchema is the HCL schema for the body of a `phase` block.
var phaseBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "tasks"},
	},
}
