// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package tomlconfig provides the TOML implementation of config.Parser.
//
//	[[tasks]]
//	name        = "decide_budget"
//	description = "Establish a rough budget"
//
//	[[tasks]]
//	name        = "start_aquiring_deposit"
//	description = "Begin aquiring your deposit"
//	depends_on  = ["decide_budget"]
//
//	[[phases]]
//	name        = "planning"
//	description = "Planning what to buy"
//	tasks       = ["decide_budget", "start_aquiring_deposit"]
//
// TOML carries no positions for decoded values, so definitions read from a
// TOML file reference only the file path.
package tomlconfig
