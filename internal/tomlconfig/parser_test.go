// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package tomlconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Extensions(t *testing.T) {
	assert.Equal(t, []string{".toml"}, NewParser().Extensions())
}

func TestParser_Parse(t *testing.T) {
	src := `
[[tasks]]
name        = "decide_budget"
description = "Establish a rough budget"

[[tasks]]
name        = "start_aquiring_deposit"
description = "Begin aquiring your deposit"
depends_on  = ["decide_budget"]

[[phases]]
name        = "planning"
description = "Planning what to buy"
tasks       = ["decide_budget", "start_aquiring_deposit"]
`
	plan, err := NewParser().Parse(context.Background(), "plan.toml", []byte(src))
	require.NoError(t, err)

	require.Len(t, plan.Tasks, 2)
	assert.Equal(t, "decide_budget", plan.Tasks[0].Name)
	assert.Equal(t, "Establish a rough budget", plan.Tasks[0].Description)
	assert.Empty(t, plan.Tasks[0].DependsOn)
	assert.Equal(t, "plan.toml", plan.Tasks[0].Source.String())
	assert.Equal(t, []string{"decide_budget"}, plan.Tasks[1].DependsOn)

	require.Len(t, plan.Phases, 1)
	assert.Equal(t, "planning", plan.Phases[0].Name)
	assert.Equal(t, []string{"decide_budget", "start_aquiring_deposit"}, plan.Phases[0].Tasks)
}

func TestParser_Parse_EmptyDocument(t *testing.T) {
	plan, err := NewParser().Parse(context.Background(), "empty.toml", nil)
	require.NoError(t, err)
	assert.Empty(t, plan.Tasks)
	assert.Empty(t, plan.Phases)
}

func TestParser_Parse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "malformed toml", src: "[[tasks]\nname = \"a\"\n", wantErr: "failed to parse TOML file plan.toml"},
		{name: "wrong value type", src: "[[tasks]]\nname = 1\n", wantErr: "failed to parse TOML file plan.toml"},
		{name: "unknown task key", src: "[[tasks]]\nname = \"a\"\ntimeout = \"1s\"\n", wantErr: "unknown keys: tasks.timeout"},
		{name: "unknown table", src: "[runner]\nname = \"a\"\n", wantErr: "unknown keys: runner"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := NewParser().Parse(context.Background(), "plan.toml", []byte(tc.src))
			require.Error(t, err)
			assert.Nil(t, plan)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
