// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package plot

import (
	"errors"
	"strings"
	"testing"

	"github.com/crashappsec/plotdeck/pkg/dataset"
	errs "github.com/crashappsec/plotdeck/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, csv string) *dataset.Table {
	t.Helper()
	table, err := dataset.Read(strings.NewReader(csv), dataset.Options{})
	require.NoError(t, err)
	return table
}

const battingCSV = "name,avg,obp,slg\n" +
	"A,0.300,0.400,0.500\n" +
	"B,,0.350,0.450\n"

const pitchingCSV = "Name,Team,ERA,WHIP,IP\n" +
	"Alpha,IronPigs,3.21,1.10,62.1\n" +
	"Bravo,Bisons,4.05,1.32,48.0\n" +
	"Charlie,IronPigs,2.87,0.98,71.2\n" +
	"Delta,Chihuahuas,5.40,1.51,20.1\n"

func TestColumns(t *testing.T) {
	table := mustTable(t, battingCSV)
	assert.Equal(t, []string{"name", "avg", "obp", "slg"}, Columns(table))
}

func TestDefaultSelection(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want Selection
	}{
		{
			name: "first two numeric columns",
			csv:  battingCSV,
			want: Selection{X: "avg", Y: "obp"},
		},
		{
			name: "single numeric column leaves y unset",
			csv:  "name,avg\nA,0.300\n",
			want: Selection{X: "avg"},
		},
		{
			name: "no numeric columns leaves both unset",
			csv:  "name,team\nA,IronPigs\n",
			want: Selection{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := mustTable(t, tt.csv)
			assert.Equal(t, tt.want, DefaultSelection(table))
		})
	}
}

func TestBuild_DropsRowsMissingXOrY(t *testing.T) {
	table := mustTable(t, battingCSV)

	desc, err := Build(table, Selection{X: "avg", Y: "obp"})
	require.NoError(t, err)

	// row "B" has no avg value and cannot be positioned.
	assert.Equal(t, 1, desc.Points)
	assert.Equal(t, []float64{0.300}, desc.X)
	assert.Equal(t, []float64{0.400}, desc.Y)
	assert.Equal(t, "avg vs obp", desc.Title)
}

func TestBuild_Idempotent(t *testing.T) {
	table := mustTable(t, pitchingCSV)
	sel := Selection{X: "ERA", Y: "WHIP", Color: "Team", Size: "IP"}

	first, err1 := Build(table, sel)
	second, err2 := Build(table, sel)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestBuild_ColorChangeKeepsPositions(t *testing.T) {
	table := mustTable(t, pitchingCSV)

	plain, err := Build(table, Selection{X: "ERA", Y: "WHIP"})
	require.NoError(t, err)
	colored, err := Build(table, Selection{X: "ERA", Y: "WHIP", Color: "Team"})
	require.NoError(t, err)

	assert.Equal(t, plain.X, colored.X)
	assert.Equal(t, plain.Y, colored.Y)
	require.NotNil(t, colored.Color)
	assert.False(t, colored.Color.Numeric)
	assert.Equal(t, []string{"IronPigs", "Bisons", "IronPigs", "Chihuahuas"}, colored.Color.Labels)
}

func TestBuild_NumericColorIsContinuous(t *testing.T) {
	table := mustTable(t, pitchingCSV)

	desc, err := Build(table, Selection{X: "ERA", Y: "WHIP", Color: "IP"})
	require.NoError(t, err)
	require.NotNil(t, desc.Color)
	assert.True(t, desc.Color.Numeric)
	require.Len(t, desc.Color.Values, 4)
	assert.Equal(t, 62.1, *desc.Color.Values[0])
}

func TestBuild_NonNumericSizeIsRecoverable(t *testing.T) {
	table := mustTable(t, battingCSV)

	plain, err := Build(table, Selection{X: "avg", Y: "obp"})
	require.NoError(t, err)

	desc, err := Build(table, Selection{X: "avg", Y: "obp", Size: "name"})
	require.Error(t, err)
	var se *errs.Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, errs.TypeUnprocessable, se.Type)

	// the plot is still produced, with the same positions and no size mapping.
	require.NotNil(t, desc)
	assert.Nil(t, desc.Size)
	assert.Equal(t, plain.X, desc.X)
	assert.Equal(t, plain.Y, desc.Y)
}

func TestBuild_SizeScaling(t *testing.T) {
	table := mustTable(t, pitchingCSV)

	desc, err := Build(table, Selection{X: "ERA", Y: "WHIP", Size: "IP"})
	require.NoError(t, err)
	require.NotNil(t, desc.Size)
	require.Len(t, desc.Size.Sizes, 4)

	// IP spans 20.1..71.2: the extremes land on the pixel bounds.
	assert.InDelta(t, sizeMaxPx, desc.Size.Sizes[2], 1e-9)
	assert.InDelta(t, sizeMinPx, desc.Size.Sizes[3], 1e-9)
	for _, s := range desc.Size.Sizes {
		assert.GreaterOrEqual(t, s, sizeMinPx)
		assert.LessOrEqual(t, s, sizeMaxPx)
	}
}

func TestBuild_Placeholder(t *testing.T) {
	table := mustTable(t, battingCSV)

	desc, err := Build(table, Selection{})
	require.NoError(t, err)
	assert.Equal(t, PlaceholderTitle, desc.Title)
	assert.Zero(t, desc.Points)
}

func TestBuild_UnknownColumns(t *testing.T) {
	table := mustTable(t, battingCSV)

	tests := []struct {
		name string
		sel  Selection
	}{
		{name: "unknown x", sel: Selection{X: "nope", Y: "obp"}},
		{name: "unknown y", sel: Selection{X: "avg", Y: "nope"}},
		{name: "unknown color", sel: Selection{X: "avg", Y: "obp", Color: "nope"}},
		{name: "unknown size", sel: Selection{X: "avg", Y: "obp", Size: "nope"}},
		{name: "non-numeric x", sel: Selection{X: "name", Y: "obp"}},
		{
			name: "unknown filter column",
			sel: Selection{
				X: "avg", Y: "obp",
				ValueFilter: &ValueFilter{Column: "nope", Values: []string{"x"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := Build(table, tt.sel)
			require.Error(t, err)
			var e *errs.Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, errs.TypeBadRequest, e.Type)
			assert.Nil(t, desc)
		})
	}
}

func TestBuild_ValueFilter(t *testing.T) {
	table := mustTable(t, pitchingCSV)

	desc, err := Build(table, Selection{
		X: "ERA", Y: "WHIP",
		ValueFilter: &ValueFilter{Column: "Team", Values: []string{"IronPigs"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, desc.Points)
	assert.Equal(t, []float64{3.21, 2.87}, desc.X)
}

func TestBuild_RangeFilter(t *testing.T) {
	table := mustTable(t, pitchingCSV)

	tests := []struct {
		name   string
		op     Op
		value  float64
		points int
	}{
		{name: "greater", op: OpGreater, value: 4.0, points: 2},
		{name: "greater equal", op: OpGreaterEqual, value: 4.05, points: 2},
		{name: "less", op: OpLess, value: 3.0, points: 1},
		{name: "less equal", op: OpLessEqual, value: 3.21, points: 2},
		{name: "equal", op: OpEqual, value: 5.40, points: 1},
		{name: "equal no match leaves empty plot", op: OpEqual, value: 9.99, points: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := Build(table, Selection{
				X: "ERA", Y: "WHIP",
				RangeFilter: &RangeFilter{Column: "ERA", Op: tt.op, Value: tt.value},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.points, desc.Points)
		})
	}
}

func TestBuild_RangeFilterRejectsNonNumericColumn(t *testing.T) {
	table := mustTable(t, pitchingCSV)

	_, err := Build(table, Selection{
		X: "ERA", Y: "WHIP",
		RangeFilter: &RangeFilter{Column: "Team", Op: OpGreater, Value: 1},
	})
	var e *errs.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errs.TypeBadRequest, e.Type)
}

func TestBuild_FiltersCompose(t *testing.T) {
	table := mustTable(t, pitchingCSV)

	desc, err := Build(table, Selection{
		X: "ERA", Y: "WHIP",
		ValueFilter: &ValueFilter{Column: "Team", Values: []string{"IronPigs"}},
		RangeFilter: &RangeFilter{Column: "ERA", Op: OpLess, Value: 3.0},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, desc.Points)
	assert.Equal(t, []float64{2.87}, desc.X)
}

func TestBuild_Hover(t *testing.T) {
	table := mustTable(t, pitchingCSV)

	desc, err := Build(table, Selection{X: "ERA", Y: "WHIP", Hover: []string{"Team", "missing", "Name"}})
	require.NoError(t, err)

	// "Name" leads when present, requested duplicates and unknown columns
	// are ignored.
	require.Len(t, desc.Hover, 2)
	assert.Equal(t, "Name", desc.Hover[0].Column)
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie", "Delta"}, desc.Hover[0].Values)
	assert.Equal(t, "Team", desc.Hover[1].Column)
}
