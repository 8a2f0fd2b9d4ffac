// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger configures the global zap logger from the given level and format.
// Format is either "json" or "console"; unknown values fall back to "json".
// Any fields passed are attached to every log entry.
func InitLogger(level, format string, fields ...zap.Field) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	switch format {
	case "console":
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		cfg.Encoding = "json"
	}

	logger, err := cfg.Build(zap.Fields(fields...))
	if err != nil {
		// zap can only fail to build on a bad encoding name, which the
		// switch above prevents; keep the nop logger rather than panic.
		return
	}
	zap.ReplaceGlobals(logger)
}
