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

	"github.com/crashappsec/plotdeck/internal/config"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print build version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("plotdeck %s (built %s, commit %s)\n",
			config.Version, config.BuildTime, config.Commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
