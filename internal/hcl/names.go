// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// A task list may mix string literals with `task.<name>` references, and a
// reference cannot be evaluated without an evaluation context. Lists are
// therefore read element by element: references from their traversal, the
// rest as constants converted to strings.

package hcl

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// taskRoot is the root name of a task reference, as in `task.decide_budget`.
const taskRoot = "task"

// decodeString evaluates a constant attribute as a string.
func decodeString(attr *hcl.Attribute) (string, hcl.Diagnostics) {
	var str string
	diags := gohcl.DecodeExpression(attr.Expr, nil, &str)
	return str, diags
}

// decodeTaskNames reads a list literal of task names in source order.
func decodeTaskNames(attr *hcl.Attribute) ([]string, hcl.Diagnostics) {
	// The expression must be a tuple constructor, i.e., a list literal like `[...]`.
	tuple, ok := attr.Expr.(*hclsyntax.TupleConsExpr)
	if !ok {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid " + attr.Name + " value",
			Detail:   fmt.Sprintf("The '%s' attribute must be a list of task names or task references.", attr.Name),
			Subject:  attr.Expr.Range().Ptr(),
		}}
	}

	var diags hcl.Diagnostics
	names := make([]string, 0, len(tuple.Exprs))
	for _, elem := range tuple.Exprs {
		name, elemDiags := decodeTaskName(attr.Name, elem)
		diags = append(diags, elemDiags...)
		if !elemDiags.HasErrors() {
			names = append(names, name)
		}
	}
	return names, diags
}

func decodeTaskName(attrName string, expr hclsyntax.Expression) (string, hcl.Diagnostics) {
	if ref, ok := expr.(*hclsyntax.ScopeTraversalExpr); ok {
		return taskNameFromTraversal(attrName, ref.Traversal, expr.Range())
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil || str.IsNull() || !str.IsKnown() {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid task name",
			Detail:   fmt.Sprintf("Each element of '%s' must be a string or a task reference.", attrName),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return str.AsString(), nil
}

func taskNameFromTraversal(attrName string, traversal hcl.Traversal, rng hcl.Range) (string, hcl.Diagnostics) {
	if len(traversal) == 2 && traversal.RootName() == taskRoot {
		if attr, ok := traversal[1].(hcl.TraverseAttr); ok {
			return attr.Name, nil
		}
	}
	return "", hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Invalid task reference",
		Detail:   fmt.Sprintf("'%s' in '%s' is not a task reference; use task.<name> or a string.", formatTraversal(traversal), attrName),
		Subject:  rng.Ptr(),
	}}
}

// formatTraversal converts an hcl.Traversal to a human-readable string for
// error messages.
func formatTraversal(t hcl.Traversal) string {
	var sb strings.Builder
	for i, part := range t {
		switch p := part.(type) {
		case hcl.TraverseRoot:
			sb.WriteString(p.Name)
		case hcl.TraverseAttr:
			sb.WriteRune('.')
			sb.WriteString(p.Name)
		case hcl.TraverseIndex:
			sb.WriteRune('[')
			switch {
			case p.Key.Type() == cty.String:
				sb.WriteString(fmt.Sprintf("%q", p.Key.AsString()))
			case p.Key.Type() == cty.Number:
				sb.WriteString(p.Key.AsBigFloat().Text('f', -1))
			default:
				sb.WriteString("...")
			}
			sb.WriteRune(']')
		default:
			if i > 0 {
				sb.WriteRune('.')
			}
			sb.WriteString("?")
		}
	}
	return sb.String()
}
