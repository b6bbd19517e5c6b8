// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, name := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("# test"), 0644))
	}
}

func TestFindFiles_Directory(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"b.hcl",
		"a.yaml",
		"nested/deeper/c.toml",
		"nested/d.yml",
		"notes.txt",
	)

	files, err := FindFiles("", root)
	require.NoError(t, err)

	expected := []string{
		filepath.Join(root, "a.yaml"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "d.yml"),
		filepath.Join(root, "nested", "deeper", "c.toml"),
	}
	assert.Equal(t, expected, files)
}

func TestFindFiles_CustomPattern(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "main.hcl", "plans/extra.hcl", "plans/extra.yaml")

	files, err := FindFiles("plans/*.hcl", root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "plans", "extra.hcl")}, files)
}

func TestFindFiles_ExplicitFileAndDedupe(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "one.hcl", "two.hcl", "README.md")
	readme := filepath.Join(root, "README.md")
	one := filepath.Join(root, "one.hcl")

	files, err := FindFiles("", readme, root, one)
	require.NoError(t, err)
	assert.Equal(t, []string{readme, one, filepath.Join(root, "two.hcl")}, files)
}

func TestFindFiles_Errors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := FindFiles("", filepath.Join(t.TempDir(), "absent"))
		assert.ErrorContains(t, err, "error accessing path")
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := FindFiles("[", t.TempDir())
		assert.ErrorContains(t, err, "invalid file pattern")
	})
}

func TestFindFiles_EmptyDirectory(t *testing.T) {
	files, err := FindFiles("", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}
