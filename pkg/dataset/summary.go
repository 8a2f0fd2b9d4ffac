// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package dataset

import (
	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics for a numeric column, computed once
// at load time. The plot layer uses Min/Max to scale the size channel and
// the columns endpoint exposes the full summary to the UI.
type Summary struct {
	Min    float64 `json:"min"    yaml:"min"`
	Max    float64 `json:"max"    yaml:"max"`
	Mean   float64 `json:"mean"   yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
	Count  int     `json:"count"  yaml:"count"`
}

func summarize(col *Column) *Summary {
	var values stats.Float64Data
	for i := range col.Floats {
		if !col.Missing[i] {
			values = append(values, col.Floats[i])
		}
	}
	if len(values) == 0 {
		return nil
	}

	// these only error on empty input, which is excluded above.
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	mean, _ := stats.Mean(values)
	sd, _ := stats.StandardDeviation(values)

	return &Summary{
		Min:    min,
		Max:    max,
		Mean:   mean,
		StdDev: sd,
		Count:  len(values),
	}
}
