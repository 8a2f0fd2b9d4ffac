// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package v1

import (
	"errors"
	"net/http"

	"github.com/crashappsec/plotdeck/pkg/api/routes"
	"github.com/crashappsec/plotdeck/pkg/dataset"
	errs "github.com/crashappsec/plotdeck/pkg/errors"
	"github.com/crashappsec/plotdeck/pkg/plot"
	"github.com/crashappsec/plotdeck/pkg/schemas"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildPlot rebuilds the scatter-plot description for the selection in the
// request body. The request's revision is echoed back so the page can
// discard responses for superseded selections; only the most recent one is
// ever rendered.
//
// A recoverable selection fault (non-numeric size column) is reported in
// the response's warning field next to the still-built description, so
// the x, y and color channels render regardless.
func BuildPlot(table *dataset.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := zap.L().With(zap.String("endpoint", "BuildPlot"))

		var req schemas.PlotRequest
		if err := c.ShouldBind(&req); err != nil {
			routes.WriteErrorResponse(
				c,
				http.StatusBadRequest,
				schemas.ErrInvalidPayload,
				err.Error(),
			)
			return
		}

		desc, err := plot.Build(table, req.Selection)
		resp := schemas.PlotResponse{Revision: req.Revision, Description: desc}
		if err != nil {
			var target *errs.Error
			if errors.As(err, &target) && target.Type == errs.TypeUnprocessable && desc != nil {
				l.Debug("recoverable selection fault", zap.Error(err))
				resp.Warning = target.Message
				routes.WriteSuccessResponse(c, resp)
				return
			}
			l.Warn("unable to build plot", zap.Error(err))
			routes.WriteErr(c, err)
			return
		}

		routes.WriteSuccessResponse(c, resp)
	}
}
