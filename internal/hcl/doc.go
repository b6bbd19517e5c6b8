// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package hcl provides the HCL implementation of config.Parser. It decodes
// `task` and `phase` blocks into the format-agnostic config.Plan, keeping the
// source order of the blocks and of every name list.
//
// A plan file looks like this:
//
//	task "decide_budget" {
//	  description = "Establish a rough budget"
//	}
//
//	task "start_aquiring_deposit" {
//	  description = "Begin aquiring your deposit"
//	  depends_on  = [task.decide_budget]
//	}
//
//	phase "planning" {
//	  description = "Planning what to buy"
//	  tasks       = [task.decide_budget, "start_aquiring_deposit"]
//	}
//
// The `depends_on` and `tasks` attributes must be list literals. Each element
// is either a string or a `task.<name>` reference; both spellings name the
// same task. Whether the named task exists is decided later, across all
// loaded files, by the plan package.
package hcl
