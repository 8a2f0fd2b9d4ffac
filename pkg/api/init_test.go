// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crashappsec/plotdeck/internal/unittest"
	"github.com/crashappsec/plotdeck/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeEngine_Routes(t *testing.T) {
	unittest.CaptureLogs(t)
	table, err := dataset.Read(
		strings.NewReader("Name,ERA,WHIP\nAlpha,3.21,1.10\n"), dataset.Options{})
	require.NoError(t, err)

	engine, err := InitializeEngine(table)
	require.NoError(t, err)

	tests := []struct {
		name        string
		method      string
		target      string
		body        string
		wantStatus  int
		wantInBody  string
		contentType string
	}{
		{
			name:       "health",
			method:     http.MethodGet,
			target:     "/health",
			wantStatus: http.StatusOK,
			wantInBody: "ok",
		},
		{
			name:       "ui page",
			method:     http.MethodGet,
			target:     "/",
			wantStatus: http.StatusOK,
			wantInBody: "<html",
		},
		{
			name:       "columns",
			method:     http.MethodGet,
			target:     "/api/v1/columns",
			wantStatus: http.StatusOK,
			wantInBody: `"name":"ERA"`,
		},
		{
			name:       "dataset",
			method:     http.MethodGet,
			target:     "/api/v1/dataset",
			wantStatus: http.StatusOK,
			wantInBody: `"rows":1`,
		},
		{
			name:        "plot",
			method:      http.MethodPost,
			target:      "/api/v1/plot",
			body:        `{"revision":1,"selection":{"x":"ERA","y":"WHIP"}}`,
			wantStatus:  http.StatusOK,
			wantInBody:  `"points":1`,
			contentType: "application/json",
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			target:     "/api/v1/nope",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.target, body)
			req.Header.Set("Accept", "application/json")
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantInBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantInBody)
			}
		})
	}
}
