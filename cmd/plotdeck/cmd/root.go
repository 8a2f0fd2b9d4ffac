// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package cmd

import (
	"os"

	"github.com/crashappsec/plotdeck/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "plotdeck",
	Short: "interactive scatter plots from minor league pitching data",
	Long: "plotdeck loads a CSV of minor league pitching statistics and serves\n" +
		"an interactive scatter-plot page over HTTP. Dropdowns map columns to\n" +
		"the X axis, Y axis, color and size channels; filters and hover\n" +
		"columns refine the view.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Init()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
