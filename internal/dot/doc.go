// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package dot renders a plan registry as Graphviz DOT source.
//
// The output is a single digraph: one labelled `subgraph cluster_<phase>`
// per phase holding its member tasks, the unassigned tasks outside any
// cluster, then one `prerequisite -> task;` edge per dependency. Labels are
// attached only where a node is declared; edges reference nodes by name.
//
// Serialize is a pure function of its inputs. Two calls over identically
// ordered inputs produce byte-identical text.
package dot
