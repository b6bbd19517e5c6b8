// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/plangraph/internal/app"
	"github.com/specialistvlad/plangraph/internal/dot"
	"github.com/specialistvlad/plangraph/internal/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want app.Config
	}{
		{
			name: "defaults select the built-in plan",
			args: nil,
			want: app.Config{Include: fsutil.DefaultPattern, RankDir: dot.RankLeftRight, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "positional path",
			args: []string{"plans/"},
			want: app.Config{PlanPath: "plans/", Include: fsutil.DefaultPattern, RankDir: dot.RankLeftRight, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "plan flag wins over shorthand and positional",
			args: []string{"-plan", "a.hcl", "-p", "b.hcl", "c.hcl"},
			want: app.Config{PlanPath: "a.hcl", Include: fsutil.DefaultPattern, RankDir: dot.RankLeftRight, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "shorthand wins over positional",
			args: []string{"-p", "b.hcl", "c.hcl"},
			want: app.Config{PlanPath: "b.hcl", Include: fsutil.DefaultPattern, RankDir: dot.RankLeftRight, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "every option",
			args: []string{
				"-include", "**/*.yaml", "-name", "house", "-rankdir", "bt", "-single-phase",
				"-o", "out.dot", "-log-format", "JSON", "-log-level", "Debug", "dir",
			},
			want: app.Config{
				PlanPath:         "dir",
				Include:          "**/*.yaml",
				GraphName:        "house",
				RankDir:          dot.RankBottomTop,
				SingleAssignment: true,
				Output:           "out.dot",
				LogFormat:        "json",
				LogLevel:         "debug",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)
			require.NoError(t, err)
			assert.False(t, shouldExit)
			require.NotNil(t, cfg)
			assert.Equal(t, tc.want, *cfg)
		})
	}
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-single-phase")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown flag", args: []string{"-workers", "4"}, wantErr: "flag provided but not defined: -workers"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, wantErr: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "trace"}, wantErr: "invalid log-level"},
		{name: "bad rank direction", args: []string{"-rankdir", "up"}, wantErr: "invalid rank direction"},
		{name: "bad include pattern", args: []string{"-include", "[a-"}, wantErr: "invalid include pattern"},
		{name: "two positional paths", args: []string{"a", "b"}, wantErr: "too many arguments"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)
			require.Error(t, err)
			assert.False(t, shouldExit)
			assert.Nil(t, cfg)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantErr)
		})
	}
}
