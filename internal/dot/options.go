// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dot

import (
	"fmt"
	"strings"
)

// RankDir is the Graphviz layout direction.
type RankDir string

const (
	RankLeftRight RankDir = "LR"
	RankRightLeft RankDir = "RL"
	RankTopBottom RankDir = "TB"
	RankBottomTop RankDir = "BT"
)

// DefaultGraphName is used when Options.Name is empty.
const DefaultGraphName = "plan"

// ParseRankDir accepts a layout direction in any letter case.
func ParseRankDir(s string) (RankDir, error) {
	switch d := RankDir(strings.ToUpper(s)); d {
	case RankLeftRight, RankRightLeft, RankTopBottom, RankBottomTop:
		return d, nil
	default:
		return "", fmt.Errorf("invalid rank direction %q: must be one of LR, RL, TB, BT", s)
	}
}

// Options controls the digraph header.
type Options struct {
	// Name is the digraph name. Empty means DefaultGraphName.
	Name string
	// RankDir is the layout direction. Empty means left to right.
	RankDir RankDir
}

func (o Options) withDefaults() Options {
	if o.Name == "" {
		o.Name = DefaultGraphName
	}
	if o.RankDir == "" {
		o.RankDir = RankLeftRight
	}
	return o
}
