// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package plot

import (
	"github.com/crashappsec/plotdeck/pkg/dataset"
	errs "github.com/crashappsec/plotdeck/pkg/errors"
)

// Point sizes in pixels after min-max scaling of the size column.
const (
	sizeMinPx = 6.0
	sizeMaxPx = 28.0
)

// PlaceholderTitle is the title of the description built while x or y is
// still unset.
const PlaceholderTitle = "Select X and Y columns"

// ColorChannel carries the per-point color values. Numeric columns map to
// a continuous scale via Values; categorical and text columns map to a
// discrete palette via Labels. Missing cells are nil / empty.
type ColorChannel struct {
	Column  string     `json:"column"           yaml:"column"`
	Numeric bool       `json:"numeric"          yaml:"numeric"`
	Values  []*float64 `json:"values,omitempty" yaml:"values,omitempty"`
	Labels  []string   `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// SizeChannel carries the per-point marker sizes in pixels. Raw holds the
// unscaled column values for hover display. Rows missing the size value
// render at the minimum size.
type SizeChannel struct {
	Column string    `json:"column" yaml:"column"`
	Sizes  []float64 `json:"sizes"  yaml:"sizes"`
	Raw    []float64 `json:"raw"    yaml:"raw"`
}

// HoverColumn is one extra column of per-point labels shown on hover.
type HoverColumn struct {
	Column string   `json:"column" yaml:"column"`
	Values []string `json:"values" yaml:"values"`
}

// Description is the renderable scatter plot derived from a table and a
// selection. It is ephemeral: recomputed on every control change and owned
// solely by the rendering step that consumes it.
type Description struct {
	Title  string `json:"title"  yaml:"title"`
	XLabel string `json:"xLabel" yaml:"xLabel"`
	YLabel string `json:"yLabel" yaml:"yLabel"`

	X []float64 `json:"x" yaml:"x"`
	Y []float64 `json:"y" yaml:"y"`

	Color *ColorChannel `json:"color,omitempty" yaml:"color,omitempty"`
	Size  *SizeChannel  `json:"size,omitempty"  yaml:"size,omitempty"`

	Hover []HoverColumn `json:"hover,omitempty" yaml:"hover,omitempty"`

	// Points is the number of points emitted: table rows, minus rows
	// removed by filters, minus rows missing an x or y value.
	Points int `json:"points" yaml:"points"`
}

// Build derives a Description from the table and selection.
//
// Rows filtered out or missing an x or y value are skipped; skipping is
// policy, not an error. A selection that references a column that does not
// exist fails with a bad-request error. A non-numeric size column is a
// recoverable fault: Build still returns a full description without the
// size channel, alongside an unprocessable error for the UI to surface
// next to the control.
func Build(t *dataset.Table, sel Selection) (*Description, error) {
	if sel.X == "" || sel.Y == "" {
		return &Description{Title: PlaceholderTitle}, nil
	}

	xCol, err := requireNumericColumn(t, sel.X)
	if err != nil {
		return nil, err
	}
	yCol, err := requireNumericColumn(t, sel.Y)
	if err != nil {
		return nil, err
	}

	var colorCol *dataset.Column
	if sel.Color != "" {
		if colorCol, err = requireColumn(t, sel.Color); err != nil {
			return nil, err
		}
	}

	var (
		sizeCol *dataset.Column
		sizeErr error
	)
	if sel.Size != "" {
		sizeCol, err = requireColumn(t, sel.Size)
		if err != nil {
			return nil, err
		}
		if sizeCol.Kind != dataset.KindNumeric {
			// recoverable: report and render without the size mapping.
			sizeErr = errs.New(errs.TypeUnprocessable, nil,
				"size column %q is not numeric", sel.Size)
			sizeCol = nil
		}
	}

	keep, err := filterRows(t, sel)
	if err != nil {
		return nil, err
	}

	desc := &Description{
		Title:  sel.X + " vs " + sel.Y,
		XLabel: sel.X,
		YLabel: sel.Y,
	}

	hoverCols := hoverColumns(t, sel.Hover)
	hoverVals := make([][]string, len(hoverCols))

	var colorValues []*float64
	var colorLabels []string
	var sizes, sizeRaw []float64

	for _, i := range keep {
		x, xOK := xCol.Float(i)
		y, yOK := yCol.Float(i)
		if !xOK || !yOK {
			continue
		}
		desc.X = append(desc.X, x)
		desc.Y = append(desc.Y, y)

		if colorCol != nil {
			if colorCol.Kind == dataset.KindNumeric {
				if v, ok := colorCol.Float(i); ok {
					f := v
					colorValues = append(colorValues, &f)
				} else {
					colorValues = append(colorValues, nil)
				}
			} else {
				v, _ := colorCol.Value(i)
				colorLabels = append(colorLabels, v)
			}
		}

		if sizeCol != nil {
			v, ok := sizeCol.Float(i)
			if !ok {
				v = sizeCol.Summary().Min
			}
			sizeRaw = append(sizeRaw, v)
			sizes = append(sizes, scaleSize(v, sizeCol.Summary()))
		}

		for h, hc := range hoverCols {
			v, _ := hc.Value(i)
			hoverVals[h] = append(hoverVals[h], v)
		}
	}
	desc.Points = len(desc.X)

	if colorCol != nil {
		desc.Color = &ColorChannel{
			Column:  sel.Color,
			Numeric: colorCol.Kind == dataset.KindNumeric,
			Values:  colorValues,
			Labels:  colorLabels,
		}
	}
	if sizeCol != nil {
		desc.Size = &SizeChannel{Column: sel.Size, Sizes: sizes, Raw: sizeRaw}
	}
	for h, hc := range hoverCols {
		desc.Hover = append(desc.Hover, HoverColumn{Column: hc.Name, Values: hoverVals[h]})
	}

	return desc, sizeErr
}

// scaleSize maps a raw value into the [sizeMinPx, sizeMaxPx] pixel range
// using the column's dataset-wide min/max, so sizes stay comparable across
// filter changes.
func scaleSize(v float64, s *dataset.Summary) float64 {
	if s == nil || s.Max == s.Min {
		return (sizeMinPx + sizeMaxPx) / 2
	}
	return sizeMinPx + (v-s.Min)/(s.Max-s.Min)*(sizeMaxPx-sizeMinPx)
}

// hoverColumns resolves the hover selection to existing columns, always
// leading with the "Name" column when the table has one.
func hoverColumns(t *dataset.Table, requested []string) []*dataset.Column {
	var cols []*dataset.Column
	if name, ok := t.Column("Name"); ok {
		cols = append(cols, name)
	}
	for _, r := range requested {
		if r == "Name" {
			continue
		}
		if c, ok := t.Column(r); ok {
			cols = append(cols, c)
		}
	}
	return cols
}

// filterRows returns the indexes of rows surviving the selection's
// filters, in row order.
func filterRows(t *dataset.Table, sel Selection) ([]int, error) {
	var (
		valueCol *dataset.Column
		valueSet map[string]struct{}
		rangeCol *dataset.Column
	)

	if sel.ValueFilter != nil && len(sel.ValueFilter.Values) > 0 {
		c, err := requireColumn(t, sel.ValueFilter.Column)
		if err != nil {
			return nil, err
		}
		valueCol = c
		valueSet = make(map[string]struct{}, len(sel.ValueFilter.Values))
		for _, v := range sel.ValueFilter.Values {
			valueSet[v] = struct{}{}
		}
	}

	if sel.RangeFilter != nil {
		c, err := requireColumn(t, sel.RangeFilter.Column)
		if err != nil {
			return nil, err
		}
		if c.Kind != dataset.KindNumeric {
			return nil, errs.New(errs.TypeBadRequest, nil,
				"filter column %q is not numeric", sel.RangeFilter.Column)
		}
		if !validOp(sel.RangeFilter.Op) {
			return nil, errs.New(errs.TypeBadRequest, nil,
				"unknown filter operator %q", sel.RangeFilter.Op)
		}
		rangeCol = c
	}

	keep := make([]int, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		if valueCol != nil {
			v, ok := valueCol.Value(i)
			if !ok {
				continue
			}
			if _, in := valueSet[v]; !in {
				continue
			}
		}
		if rangeCol != nil {
			v, ok := rangeCol.Float(i)
			if !ok || !compare(v, sel.RangeFilter.Op, sel.RangeFilter.Value) {
				continue
			}
		}
		keep = append(keep, i)
	}
	return keep, nil
}

func validOp(op Op) bool {
	switch op {
	case OpGreater, OpGreaterEqual, OpLess, OpLessEqual, OpEqual:
		return true
	}
	return false
}

func compare(v float64, op Op, target float64) bool {
	switch op {
	case OpGreater:
		return v > target
	case OpGreaterEqual:
		return v >= target
	case OpLess:
		return v < target
	case OpLessEqual:
		return v <= target
	case OpEqual:
		return v == target
	}
	return false
}

func requireColumn(t *dataset.Table, name string) (*dataset.Column, error) {
	c, ok := t.Column(name)
	if !ok {
		return nil, errs.New(errs.TypeBadRequest, nil, "column %q does not exist", name)
	}
	return c, nil
}

// requireNumericColumn is requireColumn plus the axis policy: x and y must
// be numeric columns. The dropdowns only offer numeric columns for the
// axes, so hitting this through the UI is not possible.
func requireNumericColumn(t *dataset.Table, name string) (*dataset.Column, error) {
	c, err := requireColumn(t, name)
	if err != nil {
		return nil, err
	}
	if c.Kind != dataset.KindNumeric {
		return nil, errs.New(errs.TypeBadRequest, nil, "axis column %q is not numeric", name)
	}
	return c, nil
}
