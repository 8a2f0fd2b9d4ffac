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
	"go.uber.org/zap"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "print the effective configuration as YAML",
	Long: "config prints the configuration the server would run with: file\n" +
		"values merged with environment overrides and built-in defaults.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.WriteConfig(os.Stdout); err != nil {
			zap.L().With(zap.Error(err)).Fatal("unable to write config")
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
