// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "fmt"

// Plan is the unified, format-agnostic representation of every task and phase
// definition loaded from one or more plan files.
type Plan struct {
	Tasks  []*TaskDefinition
	Phases []*PhaseDefinition
}

// NewPlan creates and returns an initialized, empty Plan.
func NewPlan() *Plan {
	return &Plan{
		Tasks:  []*TaskDefinition{},
		Phases: []*PhaseDefinition{},
	}
}

// Merge appends the definitions of other after those already in p.
func (p *Plan) Merge(other *Plan) {
	if other == nil {
		return
	}
	p.Tasks = append(p.Tasks, other.Tasks...)
	p.Phases = append(p.Phases, other.Phases...)
}

// TaskDefinition is the format-agnostic representation of a `task` block.
type TaskDefinition struct {
	Name        string
	Description string
	// DependsOn names the tasks that must precede this one, in declaration order.
	DependsOn []string
	Source    *Source
}

// PhaseDefinition is the format-agnostic representation of a `phase` block.
type PhaseDefinition struct {
	Name        string
	Description string
	// Tasks names the member tasks, in declaration order.
	Tasks  []string
	Source *Source
}

// Source links a definition back to the file it was read from.
type Source struct {
	FilePath string
	Line     int
}

// NewSource creates a Source. A line of 0 means the position is unknown.
func NewSource(filePath string, line int) *Source {
	return &Source{FilePath: filePath, Line: line}
}

// String renders the source as "path:line", or just the path when the line
// is unknown.
func (s *Source) String() string {
	if s == nil {
		return ""
	}
	if s.Line > 0 {
		return fmt.Sprintf("%s:%d", s.FilePath, s.Line)
	}
	return s.FilePath
}
