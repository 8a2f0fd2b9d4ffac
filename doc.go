// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

// Package plotdeck is a package to provide the plotdeck application,
// an interactive scatter-plot viewer for minor league pitching statistics.
// It loads a CSV dataset once at startup and serves a browser UI whose
// dropdowns map columns to the x axis, y axis, color and size channels,
// with optional filters and hover columns.
package plotdeck
