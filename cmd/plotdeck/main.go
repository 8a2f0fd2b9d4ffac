// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

// Entrypoint for plotdeck.
// plotdeck loads a CSV of minor-league pitching statistics at startup and
// serves an interactive scatter-plot page over HTTP, with dropdowns mapping
// columns to the x axis, y axis, color and size channels.
package main

import (
	"github.com/crashappsec/plotdeck/cmd/plotdeck/cmd"
)

func main() {
	cmd.Execute()
}
