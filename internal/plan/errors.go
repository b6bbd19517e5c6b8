// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/plangraph/internal/config"
)

// ErrInvalidPlan is wrapped by every error Build returns for bad input.
var ErrInvalidPlan = errors.New("invalid plan")

func at(src *config.Source) string {
	if s := src.String(); s != "" {
		return " (" + s + ")"
	}
	return ""
}

// ReferentialIntegrityError reports a dependency or membership reference to a
// task that does not exist.
type ReferentialIntegrityError struct {
	// Referrer is the name of the node holding the reference.
	Referrer string
	Entity   Entity
	Kind     LinkKind
	// Name is the missing task name.
	Name   string
	Source *config.Source
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s %q %s references unknown task %q%s", e.Entity, e.Referrer, e.Kind, e.Name, at(e.Source))
}

func (e *ReferentialIntegrityError) Unwrap() error { return ErrInvalidPlan }

// DuplicateNameError reports two definitions of the same entity kind sharing a name.
type DuplicateNameError struct {
	Entity Entity
	Name   string
	First  *config.Source
	Second *config.Source
}

func (e *DuplicateNameError) Error() string {
	msg := fmt.Sprintf("duplicate %s name %q%s", e.Entity, e.Name, at(e.Second))
	if s := e.First.String(); s != "" {
		msg += ", first defined at " + s
	}
	return msg
}

func (e *DuplicateNameError) Unwrap() error { return ErrInvalidPlan }

// EmptyInputError reports a plan without a single task definition.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string { return "plan defines no tasks" }

func (e *EmptyInputError) Unwrap() error { return ErrInvalidPlan }

// InvalidNameError reports a definition with an empty name.
type InvalidNameError struct {
	Entity Entity
	// Index is the position of the definition among those of its kind.
	Index  int
	Source *config.Source
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s definition #%d has an empty name%s", e.Entity, e.Index+1, at(e.Source))
}

func (e *InvalidNameError) Unwrap() error { return ErrInvalidPlan }

// CycleError reports a cycle in the dependency relation. Path starts and ends
// with the same task and runs from prerequisite to dependent.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "dependency cycle: " + strings.Join(e.Path, " -> ")
}

func (e *CycleError) Unwrap() error { return ErrInvalidPlan }

// MultiPhaseError reports a task claimed by more than one phase when
// single assignment is enforced.
type MultiPhaseError struct {
	Task   string
	Phases []string
}

func (e *MultiPhaseError) Error() string {
	return fmt.Sprintf("task %q is a member of more than one phase: %s", e.Task, strings.Join(e.Phases, ", "))
}

func (e *MultiPhaseError) Unwrap() error { return ErrInvalidPlan }
