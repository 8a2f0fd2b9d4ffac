// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

// Package plot turns a dataset table and the current control selections
// into a renderable scatter-plot description. Building a description is a
// pure function of its inputs; the table is never mutated and identical
// inputs always produce identical output.
package plot

import (
	"github.com/crashappsec/plotdeck/pkg/dataset"
)

// Op is a comparison operator for the numeric range filter.
type Op string

const (
	OpGreater      Op = "gt"
	OpGreaterEqual Op = "ge"
	OpLess         Op = "lt"
	OpLessEqual    Op = "le"
	OpEqual        Op = "eq"
)

// ValueFilter keeps only rows whose value in Column is one of Values.
// An empty Values list keeps every row.
type ValueFilter struct {
	Column string   `json:"column"           yaml:"column"`
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// RangeFilter keeps only rows whose numeric value in Column satisfies
// "value Op Value". Rows missing the column value are kept out.
type RangeFilter struct {
	Column string  `json:"column" yaml:"column"`
	Op     Op      `json:"op"     yaml:"op"`
	Value  float64 `json:"value"  yaml:"value"`
}

// Selection is the current mapping of plot roles to column names, plus the
// optional filters and hover columns. An empty role means "no mapping":
// points render with one uniform appearance for that channel. Selections
// live only for the process lifetime and are never persisted.
type Selection struct {
	X     string `json:"x"               yaml:"x"`
	Y     string `json:"y"               yaml:"y"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Size  string `json:"size,omitempty"  yaml:"size,omitempty"`

	// Hover lists extra columns shown when hovering a point. Columns that
	// do not exist are ignored rather than rejected, matching the dropdowns
	// which only ever offer existing columns.
	Hover []string `json:"hover,omitempty" yaml:"hover,omitempty"`

	ValueFilter *ValueFilter `json:"valueFilter,omitempty" yaml:"valueFilter,omitempty"`
	RangeFilter *RangeFilter `json:"rangeFilter,omitempty" yaml:"rangeFilter,omitempty"`
}

// Columns returns the full set of selectable column names, in the table's
// column order, for populating the UI dropdowns.
func Columns(t *dataset.Table) []string {
	return t.ColumnNames()
}

// DefaultSelection picks the first numeric column for x and the second for
// y. Color and size are left unset. With fewer than two numeric columns
// the missing roles stay unset and the built plot is the "select X and Y"
// placeholder.
func DefaultSelection(t *dataset.Table) Selection {
	var sel Selection
	numeric := t.NumericColumnNames()
	if len(numeric) > 0 {
		sel.X = numeric[0]
	}
	if len(numeric) > 1 {
		sel.Y = numeric[1]
	}
	return sel
}
