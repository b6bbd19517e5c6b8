// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

import "github.com/specialistvlad/plangraph/internal/config"

func task(name, description string, deps ...string) *config.TaskDefinition {
	return &config.TaskDefinition{Name: name, Description: description, DependsOn: deps}
}

func phase(name, description string, members ...string) *config.PhaseDefinition {
	return &config.PhaseDefinition{Name: name, Description: description, Tasks: members}
}

func planOf(tasks []*config.TaskDefinition, phases ...*config.PhaseDefinition) *config.Plan {
	return &config.Plan{Tasks: tasks, Phases: phases}
}

func names(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name())
	}
	return out
}
