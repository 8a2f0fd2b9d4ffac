// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

// Package dataset loads a delimited text file into an immutable in-memory
// table. The table is read once at startup and shared read-only by every
// consumer for the lifetime of the process.
package dataset

import (
	"strconv"
)

// Kind is the inferred type of a column.
type Kind string

const (
	// KindNumeric means every non-missing value in the column parses as a float.
	KindNumeric Kind = "numeric"
	// KindCategorical means the column is non-numeric with a small set of
	// distinct values, suitable for a discrete color palette.
	KindCategorical Kind = "categorical"
	// KindText means the column is non-numeric free text.
	KindText Kind = "text"
)

// Column is a single named column of uniform inferred kind.
// Raw cell text is kept for every row; for numeric columns the parsed
// values are kept alongside. Missing cells are marked in Missing and hold
// a zero Float.
type Column struct {
	Name    string
	Kind    Kind
	Raw     []string
	Floats  []float64
	Missing []bool

	summary    *Summary
	categories []string
}

// Len returns the number of rows in the column.
func (c *Column) Len() int { return len(c.Raw) }

// Float returns the numeric value at row i and whether it is present.
// It is only meaningful for numeric columns.
func (c *Column) Float(i int) (float64, bool) {
	if c.Kind != KindNumeric || c.Missing[i] {
		return 0, false
	}
	return c.Floats[i], true
}

// Value returns the raw cell text at row i and whether it is present.
func (c *Column) Value(i int) (string, bool) {
	if c.Missing[i] {
		return "", false
	}
	return c.Raw[i], true
}

// Summary returns the numeric summary for the column, or nil for
// non-numeric columns.
func (c *Column) Summary() *Summary { return c.summary }

// Categories returns the sorted distinct values of a categorical column,
// or nil for other kinds. They populate the value-filter control.
func (c *Column) Categories() []string { return c.categories }

// RowFault records a data row that could not be kept, with its 1-based
// line number in the source file.
type RowFault struct {
	Line int
	Err  error
}

// Table is an ordered collection of named columns loaded from a single
// source file. It is immutable after Load returns.
type Table struct {
	// Source is the path the table was loaded from.
	Source string

	columns []*Column
	byName  map[string]*Column
	rows    int
	faults  []RowFault
}

// NumRows returns the number of data rows kept in the table.
func (t *Table) NumRows() int { return t.rows }

// ColumnNames returns the column names in source order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in source order.
func (t *Table) Columns() []*Column { return t.columns }

// Column returns the named column, if it exists.
func (t *Table) Column(name string) (*Column, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// NumericColumnNames returns the names of numeric columns in source order.
func (t *Table) NumericColumnNames() []string {
	var names []string
	for _, c := range t.columns {
		if c.Kind == KindNumeric {
			names = append(names, c.Name)
		}
	}
	return names
}

// Faults returns the malformed data rows that were excluded during load.
// They are reported, never silently dropped.
func (t *Table) Faults() []RowFault { return t.faults }

// missing values follow the usual CSV conventions.
var missingTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
}

func isMissing(cell string) bool {
	_, ok := missingTokens[cell]
	return ok
}

func parseFloat(cell string) (float64, bool) {
	f, err := strconv.ParseFloat(cell, 64)
	return f, err == nil
}
