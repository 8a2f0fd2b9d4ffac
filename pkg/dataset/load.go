// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	errs "github.com/crashappsec/plotdeck/pkg/errors"
	"github.com/hashicorp/go-multierror"
)

// Options controls how a file is parsed into a Table.
type Options struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// CategoricalMaxDistinct is the largest number of distinct values a
	// non-numeric column may have and still be inferred as categorical.
	// Zero means 50.
	CategoricalMaxDistinct int
}

const defaultCategoricalMaxDistinct = 50

// Load reads the delimited file at path into a Table.
//
// The first record is the header; duplicate or blank header names are a
// load failure rather than guessing a disambiguation rule. Data rows with
// the wrong field count are excluded from the table and recorded as
// [RowFault]s on it; a file whose rows are all malformed (or that has no
// data rows at all) fails the load. Any load failure is fatal to the
// caller: no plot can be produced without data.
func Load(path string, opts Options) (*Table, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, errs.New(errs.TypeLoad, err, "unable to open dataset %q", path)
	}
	defer f.Close() // #nosec G307 -- read-only file

	t, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	t.Source = path
	return t, nil
}

// Read parses delimited text from r into a Table. See [Load].
func Read(r io.Reader, opts Options) (*Table, error) {
	if opts.CategoricalMaxDistinct == 0 {
		opts.CategoricalMaxDistinct = defaultCategoricalMaxDistinct
	}

	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	// field-count mismatches are handled per row below.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errs.New(errs.TypeLoad, nil, "dataset is empty")
	}
	if err != nil {
		return nil, errs.New(errs.TypeLoad, err, "unable to read header row")
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	var (
		cells  = make([][]string, len(header))
		faults []RowFault
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			faults = append(faults, RowFault{Line: faultLine(err), Err: err})
			continue
		}
		// FieldPos tracks the real file position, so blank lines and
		// multi-line quoted fields do not shift the reported line numbers.
		line, _ := cr.FieldPos(0)
		if len(record) != len(header) {
			faults = append(faults, RowFault{
				Line: line,
				Err: fmt.Errorf(
					"row has %d fields, header has %d", len(record), len(header)),
			})
			continue
		}
		for i, cell := range record {
			cells[i] = append(cells[i], strings.TrimSpace(cell))
		}
	}

	rows := 0
	if len(cells) > 0 {
		rows = len(cells[0])
	}
	if rows == 0 {
		err := errs.New(errs.TypeLoad, FaultError(faults), "dataset has no usable data rows")
		return nil, err
	}

	t := &Table{
		columns: make([]*Column, len(header)),
		byName:  make(map[string]*Column, len(header)),
		rows:    rows,
		faults:  faults,
	}
	for i, name := range header {
		col := buildColumn(name, cells[i], opts.CategoricalMaxDistinct)
		t.columns[i] = col
		t.byName[name] = col
	}
	return t, nil
}

// faultLine extracts the line a record starts on from a csv read error.
func faultLine(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.StartLine
	}
	return 0
}

// FaultError joins row faults into a single error, or nil if there are none.
func FaultError(faults []RowFault) error {
	var merr *multierror.Error
	for _, f := range faults {
		merr = multierror.Append(merr, fmt.Errorf("line %d: %w", f.Line, f.Err))
	}
	return merr.ErrorOrNil()
}

func validateHeader(header []string) error {
	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if strings.TrimSpace(name) == "" {
			return errs.New(errs.TypeLoad, nil, "header contains a blank column name")
		}
		if _, dup := seen[name]; dup {
			return errs.New(errs.TypeLoad, nil, "duplicate column name %q in header", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// buildColumn infers the column kind and materializes its values.
// A column is numeric if every non-missing cell parses as a float;
// otherwise it is categorical when the distinct-value count stays at or
// below maxDistinct, else free text.
func buildColumn(name string, raw []string, maxDistinct int) *Column {
	col := &Column{
		Name:    name,
		Raw:     raw,
		Missing: make([]bool, len(raw)),
	}

	numeric := true
	floats := make([]float64, len(raw))
	distinct := make(map[string]struct{})
	allMissing := true

	for i, cell := range raw {
		if isMissing(cell) {
			col.Missing[i] = true
			continue
		}
		allMissing = false
		distinct[cell] = struct{}{}
		if numeric {
			f, ok := parseFloat(cell)
			if !ok {
				numeric = false
			} else {
				floats[i] = f
			}
		}
	}

	switch {
	case numeric && !allMissing:
		col.Kind = KindNumeric
		col.Floats = floats
		col.summary = summarize(col)
	case len(distinct) <= maxDistinct:
		col.Kind = KindCategorical
		col.categories = make([]string, 0, len(distinct))
		for v := range distinct {
			col.categories = append(col.categories, v)
		}
		sort.Strings(col.categories)
	default:
		col.Kind = KindText
	}
	return col
}
