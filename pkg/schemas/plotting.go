// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

// Package schemas holds the payload types exchanged between the UI page
// and the JSON API.
package schemas

import (
	"github.com/crashappsec/plotdeck/pkg/plot"
)

// ColumnInfo describes one selectable column for the UI dropdowns.
// Summary is present for numeric columns only; Categories for categorical
// columns only (they populate the value-filter control).
type ColumnInfo struct {
	Name       string   `json:"name"                 yaml:"name"`
	Kind       string   `json:"kind"                 yaml:"kind"`
	Summary    any      `json:"summary,omitempty"    yaml:"summary,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// DatasetInfo describes the loaded dataset: its source, shape and the
// number of malformed rows that were excluded (and reported) at load time.
type DatasetInfo struct {
	Source        string       `json:"source"        yaml:"source"`
	Rows          int          `json:"rows"          yaml:"rows"`
	MalformedRows int          `json:"malformedRows" yaml:"malformedRows"`
	Columns       []ColumnInfo `json:"columns"       yaml:"columns"`
}

// PlotRequest is the body of a plot build request. Revision is an opaque
// client-chosen value echoed back in the response: the page tags every
// request with an increasing revision and discards responses that are not
// the latest, so a superseded selection is never rendered.
type PlotRequest struct {
	Revision  int64          `json:"revision,omitempty" yaml:"revision,omitempty"`
	Selection plot.Selection `json:"selection"          yaml:"selection"`
}

// PlotResponse carries the built description back to the page. Warning is
// set when a recoverable selection fault occurred (the description is
// still complete apart from the affected channel).
type PlotResponse struct {
	Revision    int64             `json:"revision,omitempty" yaml:"revision,omitempty"`
	Warning     string            `json:"warning,omitempty"  yaml:"warning,omitempty"`
	Description *plot.Description `json:"description"        yaml:"description"`
}
