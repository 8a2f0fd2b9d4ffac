// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package api

import (
	"github.com/crashappsec/plotdeck/internal/config"
	"github.com/crashappsec/plotdeck/pkg/api/routes"
	routesV1 "github.com/crashappsec/plotdeck/pkg/api/routes/v1"
	"github.com/crashappsec/plotdeck/pkg/api/static"
	"github.com/crashappsec/plotdeck/pkg/dataset"
	"github.com/gin-gonic/gin"
)

// InitializeEngine initializes the gin engine and sets up the routes.
// The table is the dataset loaded at startup; it is shared read-only by
// every handler, so no locking is needed.
func InitializeEngine(table *dataset.Table) (*gin.Engine, error) {
	if config.IsEnvironmentIn(config.EnvProduction, config.EnvStaging) {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/health", routes.Health())
	router.GET("/version", routes.Version(config.Version, config.BuildTime, config.Commit))
	router.GET("/", routes.ServeStatic(static.IndexHTML, "text/html"))

	api := router.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.GET("/dataset", routesV1.GetDataset(table))
		v1.GET("/columns", routesV1.GetColumns(table))
		v1.POST("/plot", routesV1.BuildPlot(table))
		v1.GET("/plot.png", routesV1.RenderPNG(table))
	}

	return router, nil
}
