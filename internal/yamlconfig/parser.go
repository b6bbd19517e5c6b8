// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/plangraph/internal/config"
	"github.com/specialistvlad/plangraph/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// document is the top-level shape of a YAML plan file.
type document struct {
	Tasks  []taskEntry  `yaml:"tasks"`
	Phases []phaseEntry `yaml:"phases"`
}

type taskEntry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	DependsOn   []string `yaml:"depends_on"`
	line        int
}

// UnmarshalYAML records the entry's line and rejects unknown keys.
func (e *taskEntry) UnmarshalYAML(value *yaml.Node) error {
	if err := checkKeys(value, "task", "name", "description", "depends_on"); err != nil {
		return err
	}
	type plain taskEntry
	if err := value.Decode((*plain)(e)); err != nil {
		return err
	}
	e.line = value.Line
	return nil
}

type phaseEntry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tasks       []string `yaml:"tasks"`
	line        int
}

// UnmarshalYAML records the entry's line and rejects unknown keys.
func (e *phaseEntry) UnmarshalYAML(value *yaml.Node) error {
	if err := checkKeys(value, "phase", "name", "description", "tasks"); err != nil {
		return err
	}
	type plain phaseEntry
	if err := value.Decode((*plain)(e)); err != nil {
		return err
	}
	e.line = value.Line
	return nil
}

// checkKeys fails when value is not a mapping or holds a key outside allowed.
func checkKeys(value *yaml.Node, kind string, allowed ...string) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %s entry must be a mapping", value.Line, kind)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		known := false
		for _, a := range allowed {
			if key.Value == a {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("line %d: field %s not found in %s entry", key.Line, key.Value, kind)
		}
	}
	return nil
}

func (d *document) toPlan(filename string) *config.Plan {
	plan := config.NewPlan()
	for _, e := range d.Tasks {
		plan.Tasks = append(plan.Tasks, &config.TaskDefinition{
			Name:        e.Name,
			Description: e.Description,
			DependsOn:   e.DependsOn,
			Source:      config.NewSource(filename, e.line),
		})
	}
	for _, e := range d.Phases {
		plan.Phases = append(plan.Phases, &config.PhaseDefinition{
			Name:        e.Name,
			Description: e.Description,
			Tasks:       e.Tasks,
			Source:      config.NewSource(filename, e.line),
		})
	}
	return plan
}

// Parser is the YAML-specific implementation of the config.Parser interface.
type Parser struct{}

// NewParser creates a new YAML plan parser.
func NewParser() *Parser {
	return &Parser{}
}

// Extensions implements config.Parser.
func (p *Parser) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Parse implements config.Parser.
func (p *Parser) Parse(ctx context.Context, filename string, src []byte) (*config.Plan, error) {
	logger := ctxlog.FromContext(ctx)

	plan := config.NewPlan()
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	// A file may hold several documents separated by `---`; each one adds
	// its definitions in order.
	docs := 0
	for {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to parse YAML file %s (document %d): %w", filename, docs+1, err)
		}
		docs++
		plan.Merge(doc.toPlan(filename))
	}

	logger.Debug("Parsed YAML plan file.", "file", filename, "documents", docs, "tasks", len(plan.Tasks), "phases", len(plan.Phases))
	return plan, nil
}
