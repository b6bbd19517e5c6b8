// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dag

// Graph is a collection of nodes and their dependencies. It is built once and
// then queried; it is not safe for concurrent mutation.
type Graph struct {
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order holds the nodes in insertion order.
	order []*node
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	id string
	// deps holds the nodes that this node depends on (predecessors), in the
	// order the edges were added.
	deps []*node
	// dependents holds the nodes that depend on this node (successors).
	dependents []*node
}

// hasDep reports whether id is already a predecessor of n.
func (n *node) hasDep(id string) bool {
	for _, d := range n.deps {
		if d.id == id {
			return true
		}
	}
	return false
}
