// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package v1

import (
	"net/http"

	"github.com/crashappsec/plotdeck/pkg/api/routes"
	"github.com/crashappsec/plotdeck/pkg/dataset"
	errs "github.com/crashappsec/plotdeck/pkg/errors"
	"github.com/crashappsec/plotdeck/pkg/plot"
	"github.com/gin-gonic/gin"
	chart "github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"
)

// RenderPNG renders the selection given in query parameters (x, y, color,
// size) to a static PNG, for exporting a snapshot of the current plot.
// Server-side rendering is reduced to what go-chart supports: a
// categorical color column becomes one series per category, a numeric
// color column is ignored, and the size channel sets a per-series average
// dot width.
func RenderPNG(table *dataset.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := zap.L().With(zap.String("endpoint", "RenderPNG"))

		sel := plot.Selection{
			X:     c.Query("x"),
			Y:     c.Query("y"),
			Color: c.Query("color"),
			Size:  c.Query("size"),
		}

		desc, err := plot.Build(table, sel)
		if err != nil && desc == nil {
			routes.WriteErr(c, err)
			return
		}
		if desc.Points == 0 {
			// go-chart cannot render an empty series set.
			routes.WriteErr(c, errs.New(errs.TypeBadRequest, nil,
				"selection yields no points to render"))
			return
		}

		graph := chart.Chart{
			Title:  desc.Title,
			Width:  1024,
			Height: 640,
			XAxis:  chart.XAxis{Name: desc.XLabel},
			YAxis:  chart.YAxis{Name: desc.YLabel},
			Series: buildSeries(desc),
		}
		if desc.Color != nil && !desc.Color.Numeric {
			graph.Elements = []chart.Renderable{chart.Legend(&graph)}
		}

		c.Header("Content-Type", "image/png")
		c.Status(http.StatusOK)
		if err := graph.Render(chart.PNG, c.Writer); err != nil {
			l.Error("unable to render chart", zap.Error(err))
		}
	}
}

func buildSeries(desc *plot.Description) []chart.Series {
	dotWidth := 5.0
	if desc.Size != nil && len(desc.Size.Sizes) > 0 {
		var sum float64
		for _, s := range desc.Size.Sizes {
			sum += s
		}
		dotWidth = sum / float64(len(desc.Size.Sizes))
	}

	scatterStyle := func(i int) chart.Style {
		return chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    dotWidth,
			DotColor:    chart.GetDefaultColor(i),
		}
	}

	if desc.Color == nil || desc.Color.Numeric {
		return []chart.Series{chart.ContinuousSeries{
			Style:   scatterStyle(0),
			XValues: desc.X,
			YValues: desc.Y,
		}}
	}

	// one series per category, in first-seen order so colors are stable.
	var order []string
	grouped := map[string]*chart.ContinuousSeries{}
	for i, label := range desc.Color.Labels {
		s, ok := grouped[label]
		if !ok {
			s = &chart.ContinuousSeries{Name: label}
			grouped[label] = s
			order = append(order, label)
		}
		s.XValues = append(s.XValues, desc.X[i])
		s.YValues = append(s.YValues, desc.Y[i])
	}

	series := make([]chart.Series, 0, len(order))
	for i, label := range order {
		s := grouped[label]
		s.Style = scatterStyle(i)
		series = append(series, *s)
	}
	return series
}
