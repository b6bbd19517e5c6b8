// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package tomlconfig

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/plangraph/internal/config"
	"github.com/specialistvlad/plangraph/internal/ctxlog"
)

// document is the top-level shape of a TOML plan file.
type document struct {
	Tasks  []taskEntry  `toml:"tasks"`
	Phases []phaseEntry `toml:"phases"`
}

type taskEntry struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	DependsOn   []string `toml:"depends_on"`
}

type phaseEntry struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Tasks       []string `toml:"tasks"`
}

// Parser is the TOML-specific implementation of the config.Parser interface.
type Parser struct{}

// NewParser creates a new TOML plan parser.
func NewParser() *Parser {
	return &Parser{}
}

// Extensions implements config.Parser.
func (p *Parser) Extensions() []string {
	return []string{".toml"}
}

// Parse implements config.Parser.
func (p *Parser) Parse(ctx context.Context, filename string, src []byte) (*config.Plan, error) {
	logger := ctxlog.FromContext(ctx)

	var doc document
	md, err := toml.Decode(string(src), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML file %s: %w", filename, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("failed to decode TOML file %s: unknown keys: %s", filename, strings.Join(keys, ", "))
	}

	plan := config.NewPlan()
	for _, e := range doc.Tasks {
		plan.Tasks = append(plan.Tasks, &config.TaskDefinition{
			Name:        e.Name,
			Description: e.Description,
			DependsOn:   e.DependsOn,
			Source:      config.NewSource(filename, 0),
		})
	}
	for _, e := range doc.Phases {
		plan.Phases = append(plan.Phases, &config.PhaseDefinition{
			Name:        e.Name,
			Description: e.Description,
			Tasks:       e.Tasks,
			Source:      config.NewSource(filename, 0),
		})
	}

	logger.Debug("Parsed TOML plan file.", "file", filename, "tasks", len(plan.Tasks), "phases", len(plan.Phases))
	return plan, nil
}
