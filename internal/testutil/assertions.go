// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertGraphLines checks that a run succeeded and produced exactly the given
// lines of DOT text.
func AssertGraphLines(t *testing.T, result *HarnessResult, lines ...string) {
	t.Helper()

	require.NoError(t, result.Err)
	require.Equal(t, strings.Join(lines, "\n")+"\n", result.Output)
}

// AssertFailedWithoutOutput checks that a run failed and wrote nothing.
func AssertFailedWithoutOutput(t *testing.T, result *HarnessResult) {
	t.Helper()

	require.Error(t, result.Err)
	require.Empty(t, result.Output, "a failed run must not write any graph text")
}
