// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

import (
	"context"
	"testing"

	"github.com/specialistvlad/plangraph/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPartition(t *testing.T, p *config.Plan) *Partition {
	t.Helper()
	reg, err := Build(context.Background(), p, Options{})
	require.NoError(t, err)
	part, err := PartitionOf(reg)
	require.NoError(t, err)
	return part
}

func TestPartitionOf_AllTasksClaimed(t *testing.T) {
	part := buildPartition(t, planOf(
		[]*config.TaskDefinition{task("A", "Do A"), task("B", "Do B", "A")},
		phase("P", "Phase P", "A", "B"),
	))

	require.Len(t, part.Clusters, 1)
	assert.Equal(t, "P", part.Clusters[0].Phase.Name())
	assert.Equal(t, []string{"A", "B"}, names(part.Clusters[0].Members))
	assert.Empty(t, part.Unassigned)
}

func TestPartitionOf_KeepsDeclaredOrders(t *testing.T) {
	part := buildPartition(t, planOf(
		[]*config.TaskDefinition{
			task("t1", "1"),
			task("t2", "2"),
			task("t3", "3"),
			task("t4", "4"),
			task("t5", "5"),
		},
		phase("late", "Late", "t4", "t2"),
		phase("early", "Early", "t1"),
		phase("empty", "Empty"),
	))

	require.Len(t, part.Clusters, 3)
	assert.Equal(t, "late", part.Clusters[0].Phase.Name())
	assert.Equal(t, []string{"t4", "t2"}, names(part.Clusters[0].Members))
	assert.Equal(t, "early", part.Clusters[1].Phase.Name())
	assert.Equal(t, []string{"t1"}, names(part.Clusters[1].Members))
	assert.Equal(t, "empty", part.Clusters[2].Phase.Name())
	assert.Empty(t, part.Clusters[2].Members)
	assert.Equal(t, []string{"t3", "t5"}, names(part.Unassigned))
}

func TestPartitionOf_NoPhases(t *testing.T) {
	part := buildPartition(t, planOf(
		[]*config.TaskDefinition{task("b", "B"), task("a", "A")},
	))

	assert.Empty(t, part.Clusters)
	assert.Equal(t, []string{"b", "a"}, names(part.Unassigned))
}

func TestPartitionOf_Completeness(t *testing.T) {
	part := buildPartition(t, planOf(
		[]*config.TaskDefinition{
			task("a", "A"),
			task("b", "B"),
			task("c", "C"),
			task("d", "D"),
		},
		phase("p", "P", "a", "c"),
		phase("q", "Q", "c"),
	))

	seen := make(map[string]int)
	for _, c := range part.Clusters {
		for _, m := range c.Members {
			seen[m.Name()]++
		}
	}
	for _, u := range part.Unassigned {
		assert.Zero(t, seen[u.Name()], "an unassigned task must not be in any cluster")
		seen[u.Name()]++
	}

	for _, name := range []string{"a", "b", "c", "d"} {
		phases := part.PhasesOf(name)
		if len(phases) == 0 {
			assert.Equal(t, 1, seen[name], "task %s must be rendered once as unassigned", name)
			continue
		}
		assert.Equal(t, len(phases), seen[name], "task %s must be rendered once per phase", name)
	}
	assert.Equal(t, []string{"p", "q"}, part.PhasesOf("c"))
	assert.Nil(t, part.PhasesOf("b"))
}
