// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package dag provides a small, insertion-ordered directed graph used to prove
// that a plan's dependency relation is acyclic.
//
// Every query walks nodes and edges in the order they were added, so a cycle
// witness reported for a given input is always the same one.
package dag
