// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

// Package static embeds the UI page served at "/".
package static

import _ "embed"

// IndexHTML is the single-page UI: dropdowns bound to the plot roles plus
// the filter controls, rendering via Plotly. Control changes POST the
// selection to /api/v1/plot tagged with an increasing revision; responses
// for superseded revisions are discarded, so only the latest selection's
// plot is ever drawn.
//
//go:embed index.html
var IndexHTML []byte
