// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/plangraph/internal/plan"
)

// Serialize renders reg as DOT source. When part is nil the partition is
// computed from reg. The returned text ends with a newline.
func Serialize(reg *plan.Registry, part *plan.Partition, opts Options) (string, error) {
	if part == nil {
		var err error
		if part, err = plan.PartitionOf(reg); err != nil {
			return "", err
		}
	}
	edges, err := reg.Edges()
	if err != nil {
		return "", err
	}
	opts = opts.withDefaults()

	var sb strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&sb, format, args...)
		sb.WriteByte('\n')
	}

	line("digraph %s {", ID(opts.Name))
	line("rankdir=%s;", quote(string(opts.RankDir)))

	for _, c := range part.Clusters {
		line("subgraph %s {", ID("cluster_"+c.Phase.Name()))
		line("label = %s;", quote(c.Phase.Description()))
		for _, task := range c.Members {
			line("%s", nodeStatement(task))
		}
		line("}")
	}

	for _, task := range part.Unassigned {
		line("%s", nodeStatement(task))
	}

	for _, e := range edges {
		line("%s -> %s;", ID(e.From.Name()), ID(e.To.Name()))
	}

	line("}")
	return sb.String(), nil
}

// Write serializes reg and writes the complete text to w in a single call.
// Nothing is written when serialization fails.
func Write(w io.Writer, reg *plan.Registry, part *plan.Partition, opts Options) error {
	text, err := Serialize(reg, part, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	return nil
}

func nodeStatement(task *plan.Node) string {
	return fmt.Sprintf("node [label=%s] %s;", quote(task.Description()), ID(task.Name()))
}
