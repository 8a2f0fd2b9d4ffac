// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package v1

import (
	"github.com/crashappsec/plotdeck/pkg/api/routes"
	"github.com/crashappsec/plotdeck/pkg/dataset"
	"github.com/crashappsec/plotdeck/pkg/schemas"
	"github.com/gin-gonic/gin"
)

// GetDataset describes the loaded dataset: source, shape, column kinds and
// summaries, and how many malformed rows were excluded at load time.
func GetDataset(table *dataset.Table) gin.HandlerFunc {
	info := schemas.DatasetInfo{
		Source:        table.Source,
		Rows:          table.NumRows(),
		MalformedRows: len(table.Faults()),
		Columns:       columnInfos(table),
	}
	return func(c *gin.Context) {
		routes.WriteSuccessResponse(c, info)
	}
}

// GetColumns returns the selectable columns, in the table's column order,
// for populating the UI dropdowns.
func GetColumns(table *dataset.Table) gin.HandlerFunc {
	infos := columnInfos(table)
	return func(c *gin.Context) {
		routes.WriteSuccessResponse(c, infos)
	}
}

func columnInfos(table *dataset.Table) []schemas.ColumnInfo {
	infos := make([]schemas.ColumnInfo, 0, len(table.Columns()))
	for _, col := range table.Columns() {
		info := schemas.ColumnInfo{Name: col.Name, Kind: string(col.Kind)}
		if s := col.Summary(); s != nil {
			info.Summary = s
		}
		info.Categories = col.Categories()
		infos = append(infos, info)
	}
	return infos
}
