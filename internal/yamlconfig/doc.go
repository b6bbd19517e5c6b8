// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package yamlconfig provides the YAML implementation of config.Parser.
//
//	tasks:
//	  - name: decide_budget
//	    description: Establish a rough budget
//	  - name: start_aquiring_deposit
//	    description: Begin aquiring your deposit
//	    depends_on: [decide_budget]
//	phases:
//	  - name: planning
//	    description: Planning what to buy
//	    tasks: [decide_budget, start_aquiring_deposit]
package yamlconfig
