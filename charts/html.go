/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package charts

import (
	"fmt"
	"math"
	"slices"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// catPlotPage renders the grouped bar chart as one echarts bar chart per
// cardio value.
func catPlotPage(layout catLayout) *components.Page {
	page := components.NewPage()

	for _, cardio := range layout.cardio {
		bar := echarts.NewBar()
		bar.SetGlobalOptions(
			echarts.WithInitializationOpts(opts.Initialization{
				Width:  "600px",
				Height: "480px",
			}),
			echarts.WithTitleOpts(opts.Title{
				Title:    fmt.Sprintf("cardio = %g", cardio),
				Subtitle: "legend: " + hueTitle,
			}),
			echarts.WithTooltipOpts(opts.Tooltip{
				Show: opts.Bool(true),
			}),
			echarts.WithLegendOpts(opts.Legend{
				Show: opts.Bool(true),
				Top:  "bottom",
			}),
			echarts.WithXAxisOpts(opts.XAxis{
				Name: "variable",
			}),
			echarts.WithYAxisOpts(opts.YAxis{
				Name: "total",
			}),
		)

		bar.SetXAxis(layout.variables)
		for _, value := range layout.values {
			totals := layout.totals(cardio, value)
			data := make([]opts.BarData, 0, len(totals))
			for _, total := range totals {
				data = append(data, opts.BarData{Value: total})
			}
			bar.AddSeries(hueLabel(value), data)
		}

		page.AddCharts(bar)
	}

	return page
}

// heatMapPage renders the masked correlation matrix as an echarts heatmap.
// Values are rounded to one decimal place so the cell labels match the
// static renderer.
func heatMapPage(grid maskedGrid, limit float64) *components.Page {
	names := grid.corr.Names
	reversed := slices.Clone(names)
	slices.Reverse(reversed)

	var data []opts.HeatMapData
	c, r := grid.Dims()
	for x := 0; x < c; x++ {
		for y := 0; y < r; y++ {
			v := grid.Z(x, y)
			if math.IsNaN(v) {
				continue
			}
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{x, y, math.Round(v*10) / 10},
			})
		}
	}

	hm := echarts.NewHeatMap()
	hm.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{
			Width:  "900px",
			Height: "900px",
		}),
		echarts.WithTitleOpts(opts.Title{
			Title: "Correlation of examination features",
		}),
		echarts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		echarts.WithXAxisOpts(opts.XAxis{
			Type: "category",
			Data: names,
			AxisLabel: &opts.AxisLabel{
				Rotate: 90,
			},
		}),
		echarts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			Data: reversed,
		}),
		echarts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(-limit),
			Max:        float32(limit),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#3b4cc0", "#f2f2f2", "#b40426"},
			},
		}),
	)

	hm.AddSeries("correlation", data,
		echarts.WithLabelOpts(opts.Label{
			Show: opts.Bool(true),
		}),
	)

	page := components.NewPage()
	page.AddCharts(hm)
	return page
}
