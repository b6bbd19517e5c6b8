// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

import (
	"context"
	"errors"

	"github.com/specialistvlad/plangraph/internal/config"
	"github.com/specialistvlad/plangraph/internal/ctxlog"
	"github.com/specialistvlad/plangraph/internal/dag"
)

// Options tunes registry construction.
type Options struct {
	// SingleAssignment rejects plans where a task belongs to more than one phase.
	SingleAssignment bool
}

// Registry is the immutable set of task and phase nodes of one plan.
type Registry struct {
	tasks       []*Node
	phases      []*Node
	taskByName  map[string]*Node
	phaseByName map[string]*Node
}

// Build constructs a complete, validated registry from a plan. Definitions are
// taken in the order they appear in p, and that order is kept by every
// accessor.
func Build(ctx context.Context, p *config.Plan, opts Options) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting registry construction.")

	if p == nil || len(p.Tasks) == 0 {
		return nil, &EmptyInputError{}
	}

	reg := &Registry{
		tasks:       make([]*Node, 0, len(p.Tasks)),
		phases:      make([]*Node, 0, len(p.Phases)),
		taskByName:  make(map[string]*Node, len(p.Tasks)),
		phaseByName: make(map[string]*Node, len(p.Phases)),
	}

	// First pass: create all nodes and their ordered link sets.
	if err := reg.createNodes(ctx, p); err != nil {
		return nil, err
	}
	logger.Debug("Build: Node creation complete.", "tasks", len(reg.tasks), "phases", len(reg.phases))

	// Second pass: every link must resolve to a task.
	if err := reg.resolveLinks(); err != nil {
		return nil, err
	}
	logger.Debug("Build: Link resolution complete.")

	if opts.SingleAssignment {
		if err := reg.checkSingleAssignment(); err != nil {
			return nil, err
		}
		logger.Debug("Build: Single phase assignment check passed.")
	}

	if err := reg.detectCycles(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Build: Cycle detection passed.")

	logger.Debug("Build: Registry construction successful.")
	return reg, nil
}

func (r *Registry) createNodes(ctx context.Context, p *config.Plan) error {
	logger := ctxlog.FromContext(ctx)

	for i, def := range p.Tasks {
		if def.Name == "" {
			return &InvalidNameError{Entity: EntityTask, Index: i, Source: def.Source}
		}
		if first, exists := r.taskByName[def.Name]; exists {
			return &DuplicateNameError{Entity: EntityTask, Name: def.Name, First: first.source, Second: def.Source}
		}
		n := newNode(EntityTask, def.Name, def.Description, def.Source)
		if repeats := n.setLinks(LinkDependency, def.DependsOn); len(repeats) > 0 {
			logger.Debug("Collapsed repeated dependencies.", "task", def.Name, "repeats", repeats)
		}
		r.taskByName[def.Name] = n
		r.tasks = append(r.tasks, n)
	}

	for i, def := range p.Phases {
		if def.Name == "" {
			return &InvalidNameError{Entity: EntityPhase, Index: i, Source: def.Source}
		}
		if first, exists := r.phaseByName[def.Name]; exists {
			return &DuplicateNameError{Entity: EntityPhase, Name: def.Name, First: first.source, Second: def.Source}
		}
		n := newNode(EntityPhase, def.Name, def.Description, def.Source)
		if repeats := n.setLinks(LinkMembership, def.Tasks); len(repeats) > 0 {
			logger.Debug("Collapsed repeated phase members.", "phase", def.Name, "repeats", repeats)
		}
		r.phaseByName[def.Name] = n
		r.phases = append(r.phases, n)
	}
	return nil
}

// resolveLinks checks that every dependency and membership name is a task.
func (r *Registry) resolveLinks() error {
	for _, group := range [][]*Node{r.tasks, r.phases} {
		for _, n := range group {
			kind := linkKindOf(n.Entity())
			for _, name := range n.links[kind] {
				if _, ok := r.taskByName[name]; !ok {
					return &ReferentialIntegrityError{
						Referrer: n.name,
						Entity:   n.Entity(),
						Kind:     kind,
						Name:     name,
						Source:   n.Source(),
					}
				}
			}
		}
	}
	return nil
}

func (r *Registry) checkSingleAssignment() error {
	part, err := PartitionOf(r)
	if err != nil {
		return err
	}
	for _, task := range r.tasks {
		if phases := part.PhasesOf(task.name); len(phases) > 1 {
			return &MultiPhaseError{Task: task.name, Phases: phases}
		}
	}
	return nil
}

func (r *Registry) detectCycles(ctx context.Context) error {
	edges, err := r.Edges()
	if err != nil {
		return err
	}

	g := dag.New()
	for _, task := range r.tasks {
		g.AddNode(task.name)
	}
	for _, e := range edges {
		if err := g.AddEdge(e.From.name, e.To.name); err != nil {
			return cycleError(err)
		}
	}
	ctxlog.FromContext(ctx).Debug("Build: Dependency graph assembled.", "nodes", g.Len(), "edges", len(edges))
	return cycleError(g.DetectCycles())
}

// cycleError converts a dag error into the plan taxonomy.
func cycleError(err error) error {
	if err == nil {
		return nil
	}
	var dagCycle *dag.CycleError
	if errors.As(err, &dagCycle) {
		return &CycleError{Path: dagCycle.Path}
	}
	return err
}

// Tasks returns all task nodes in declaration order.
func (r *Registry) Tasks() []*Node {
	return append([]*Node(nil), r.tasks...)
}

// Phases returns all phase nodes in declaration order.
func (r *Registry) Phases() []*Node {
	return append([]*Node(nil), r.phases...)
}

// Task looks up a task node by name.
func (r *Registry) Task(name string) (*Node, bool) {
	n, ok := r.taskByName[name]
	return n, ok
}

// Phase looks up a phase node by name.
func (r *Registry) Phase(name string) (*Node, bool) {
	n, ok := r.phaseByName[name]
	return n, ok
}

// Edge is one dependency, drawn from a prerequisite to the task needing it.
type Edge struct {
	From *Node
	To   *Node
}

// Edges lists every dependency edge: tasks in declaration order, and the
// prerequisites of each task in declaration order. A prerequisite missing
// from the registry is reported as a ReferentialIntegrityError.
func (r *Registry) Edges() ([]Edge, error) {
	var edges []Edge
	for _, task := range r.tasks {
		for _, dep := range task.Dependencies() {
			from, ok := r.taskByName[dep]
			if !ok {
				return nil, &ReferentialIntegrityError{
					Referrer: task.name,
					Entity:   EntityTask,
					Kind:     LinkDependency,
					Name:     dep,
					Source:   task.Source(),
				}
			}
			edges = append(edges, Edge{From: from, To: task})
		}
	}
	return edges, nil
}
