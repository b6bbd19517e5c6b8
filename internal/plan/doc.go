// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package plan holds the in-memory model of a planning graph: the node
// registry, the typed link model and the partitioner.
//
// # Core Concepts
//
//   - Node: a uniquely named task or phase with a description and typed link
//     sets. Tasks carry a dependency set (the tasks that must precede them);
//     phases carry a membership set (the tasks assigned to them).
//
//   - LinkKind: the closed set of relation kinds a node can carry. Link sets
//     are ordered: they keep declaration order and collapse repeats, so every
//     walk over them is reproducible.
//
//   - Registry: the immutable lookup structure built once by Build from a
//     config.Plan. Construction is fail-fast: a duplicate name, a dangling
//     reference, an empty plan or a dependency cycle aborts it and no
//     registry is returned.
//
//   - Partition: the split of all tasks into one group per phase (in each
//     phase's declared membership order) and a residual list of tasks no
//     phase claims (in task declaration order).
//
// A Registry is never mutated after Build returns, so it can be shared freely
// between goroutines. Build and PartitionOf keep no state between calls.
package plan
