// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dag

import (
	"fmt"
	"strings"
)

// CycleError reports a dependency cycle. Path starts and ends with the same
// node and follows edges from prerequisite to dependent.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected: %s", strings.Join(e.Path, " -> "))
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}

	n := &node{id: id}
	g.nodes[id] = n
	g.order = append(g.order, n)
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// AddEdge creates a directed edge from the `fromID` node to the `toID` node.
// This signifies that `toID` has a dependency on `fromID`. Adding an existing
// edge again is a no-op. A self-referential edge is reported as a CycleError.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == toID {
		return &CycleError{Path: []string{fromID, fromID}}
	}

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	if toNode.hasDep(fromID) {
		return nil
	}
	toNode.deps = append(toNode.deps, fromNode)
	fromNode.dependents = append(fromNode.dependents, toNode)

	return nil
}

// DetectCycles checks the graph for cycles. It returns a *CycleError carrying
// the first cycle met by a depth-first walk in insertion order, or nil.
func (g *Graph) DetectCycles() error {
	// permanent: nodes that have been fully visited and are not part of a cycle.
	// onStack: position of each node in the current traversal stack.
	permanent := make(map[string]bool)
	onStack := make(map[string]int)
	var stack []string

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.id] {
			return nil
		}
		if pos, ok := onStack[n.id]; ok {
			path := append([]string{}, stack[pos:]...)
			return &CycleError{Path: append(path, n.id)}
		}

		onStack[n.id] = len(stack)
		stack = append(stack, n.id)

		for _, dependent := range n.dependents {
			if err := visit(dependent); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, n.id)
		permanent[n.id] = true
		return nil
	}

	for _, n := range g.order {
		if err := visit(n); err != nil {
			return err
		}
	}
	return nil
}
