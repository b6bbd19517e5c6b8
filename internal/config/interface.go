// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "context"

// Loader is the interface for discovering and reading plan definitions.
type Loader interface {
	// Load reads every plan file reachable from paths and merges the result,
	// in discovery order, into a single Plan.
	Load(ctx context.Context, paths ...string) (*Plan, error)
}

// Parser is the interface for a format-specific plan file decoder.
type Parser interface {
	// Parse decodes the contents of a single plan file. The filename is used
	// for source references in the returned definitions and in errors.
	Parse(ctx context.Context, filename string, src []byte) (*Plan, error)

	// Extensions lists the file extensions, including the leading dot, that
	// the parser handles.
	Extensions() []string
}
