// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

import "github.com/specialistvlad/plangraph/internal/config"

// Entity tags what a node represents.
type Entity uint8

const (
	EntityTask Entity = iota + 1
	EntityPhase
)

func (e Entity) String() string {
	switch e {
	case EntityTask:
		return "task"
	case EntityPhase:
		return "phase"
	default:
		return "unknown"
	}
}

// LinkKind is the type of a named relation between nodes.
type LinkKind uint8

const (
	// LinkDependency links a task to the tasks that must precede it.
	LinkDependency LinkKind = iota
	// LinkMembership links a phase to the tasks assigned to it.
	LinkMembership

	linkKindCount
)

func (k LinkKind) String() string {
	switch k {
	case LinkDependency:
		return "dependency"
	case LinkMembership:
		return "membership"
	default:
		return "unknown"
	}
}

// linkKindOf returns the only link kind an entity may carry.
func linkKindOf(e Entity) LinkKind {
	if e == EntityPhase {
		return LinkMembership
	}
	return LinkDependency
}

// Node is a task or a phase. Nodes are created by Build and are read-only.
type Node struct {
	name        string
	entity      Entity
	description string
	links       [linkKindCount][]string
	source      *config.Source
}

func newNode(entity Entity, name, description string, source *config.Source) *Node {
	return &Node{
		name:        name,
		entity:      entity,
		description: description,
		source:      source,
	}
}

// Name returns the node's unique name, which is also its graph identifier.
func (n *Node) Name() string { return n.name }

// Entity returns whether the node is a task or a phase.
func (n *Node) Entity() Entity { return n.entity }

// Description returns the display string given at definition time.
func (n *Node) Description() string { return n.description }

// Source returns where the node was defined, or nil when unknown.
func (n *Node) Source() *config.Source { return n.source }

// Links returns a copy of the node's link set of the given kind, in
// declaration order. A kind the node does not carry yields an empty slice.
func (n *Node) Links(kind LinkKind) []string {
	if kind >= linkKindCount {
		return []string{}
	}
	out := make([]string, len(n.links[kind]))
	copy(out, n.links[kind])
	return out
}

// Dependencies returns the names of the tasks that must precede this task.
func (n *Node) Dependencies() []string { return n.Links(LinkDependency) }

// Members returns the names of the tasks assigned to this phase.
func (n *Node) Members() []string { return n.Links(LinkMembership) }

// setLinks stores names as an ordered set: the first occurrence of a name
// wins. It returns the names that were dropped as repeats.
func (n *Node) setLinks(kind LinkKind, names []string) []string {
	seen := make(map[string]struct{}, len(names))
	set := make([]string, 0, len(names))
	var repeats []string
	for _, name := range names {
		if _, ok := seen[name]; ok {
			repeats = append(repeats, name)
			continue
		}
		seen[name] = struct{}{}
		set = append(set, name)
	}
	n.links[kind] = set
	return repeats
}
