// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package cmd

import (
	"github.com/crashappsec/plotdeck/internal/config"
	"github.com/crashappsec/plotdeck/pkg/api"
	"github.com/crashappsec/plotdeck/pkg/dataset"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "load the dataset and start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		l := zap.L()
		l.Info("starting plotdeck")

		l.Debug("config file loaded", zap.Any("config_file", config.State))

		table, err := dataset.Load(config.State.Dataset.Path, dataset.Options{
			CategoricalMaxDistinct: config.State.Dataset.CategoricalMaxDistinct,
		})
		if err != nil {
			// fatal: no plot can be produced without data.
			l.With(zap.Error(err)).Fatal("unable to load dataset")
		}
		l.Info("dataset loaded",
			zap.String("source", table.Source),
			zap.Int("rows", table.NumRows()),
			zap.Int("columns", len(table.Columns())),
		)
		for _, fault := range table.Faults() {
			l.Warn("malformed row excluded from dataset",
				zap.Int("line", fault.Line),
				zap.Error(fault.Err),
			)
		}

		l.Debug("initializing server")
		engine, err := api.InitializeEngine(table)
		if err != nil {
			l.With(zap.Error(err)).Fatal("unable to initialize router")
		}

		if err := api.RunEngine(engine); err != nil {
			l.With(zap.Error(err)).Fatal("http server exited with error")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
