// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/crashappsec/plotdeck/internal/config"
	"github.com/crashappsec/plotdeck/pkg/dataset"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var columnsCmd = &cobra.Command{
	Use:   "columns [path]",
	Short: "print the dataset schema without starting the server",
	Long: "columns loads the dataset (from the given path, or the configured\n" +
		"dataset.path) and prints each column's name, inferred kind and numeric\n" +
		"summary.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := config.State.Dataset.Path
		if len(args) == 1 {
			path = args[0]
		}

		table, err := dataset.Load(path, dataset.Options{
			CategoricalMaxDistinct: config.State.Dataset.CategoricalMaxDistinct,
		})
		if err != nil {
			zap.L().With(zap.Error(err)).Fatal("unable to load dataset")
		}

		w := tablewriter.NewWriter(os.Stdout)
		w.SetHeader([]string{"Column", "Kind", "Min", "Max", "Mean", "StdDev", "Values"})
		for _, col := range table.Columns() {
			row := []string{col.Name, string(col.Kind), "", "", "", "", ""}
			if s := col.Summary(); s != nil {
				row[2] = formatFloat(s.Min)
				row[3] = formatFloat(s.Max)
				row[4] = formatFloat(s.Mean)
				row[5] = formatFloat(s.StdDev)
				row[6] = strconv.Itoa(s.Count)
			} else if cats := col.Categories(); cats != nil {
				row[6] = strconv.Itoa(len(cats)) + " distinct"
			}
			w.Append(row)
		}
		w.SetCaption(true, fmt.Sprintf("%s: %d rows, %d malformed rows excluded",
			path, table.NumRows(), len(table.Faults())))
		w.Render()
	},
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}
