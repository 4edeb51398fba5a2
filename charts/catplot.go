/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package charts

import (
	"fmt"
	"image/color"

	"github.com/go-echarts/go-echarts/v2/components"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/humaidq/cardioviz/analysis"
)

// Per-panel size of the categorical plot.
const (
	catPanelWidth  = 5 * vg.Inch
	catPanelHeight = 5 * vg.Inch
	catBarWidth    = vg.Length(12)
)

// hueColors are assigned to factor values in ascending order.
var hueColors = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},
	color.RGBA{R: 255, G: 127, B: 14, A: 255},
	color.RGBA{R: 44, G: 160, B: 44, A: 255},
	color.RGBA{R: 214, G: 39, B: 40, A: 255},
}

// hueTitle heads the legend; entries are the bare factor values.
const hueTitle = "value"

func hueLabel(value float64) string {
	return fmt.Sprintf("%g", value)
}

func hueColor(i int) color.Color {
	return hueColors[i%len(hueColors)]
}

// catLayout is the shape of the grouped bar chart: one panel per disease
// status, one bar group per factor, one bar per factor value.
type catLayout struct {
	cardio    []float64
	variables []string
	values    []float64
	counts    []analysis.FactorCount
}

func newCatLayout(counts []analysis.FactorCount) (catLayout, error) {
	if len(counts) == 0 {
		return catLayout{}, errEmptyCounts
	}
	return catLayout{
		cardio:    analysis.Levels(counts, func(c analysis.FactorCount) float64 { return c.Cardio }),
		variables: analysis.Variables(counts),
		values:    analysis.Levels(counts, func(c analysis.FactorCount) float64 { return c.Value }),
		counts:    counts,
	}, nil
}

// totals returns the bar heights for one panel and one hue, in variable
// order. Missing combinations are zero.
func (l catLayout) totals(cardio, value float64) []float64 {
	out := make([]float64, len(l.variables))
	for i, v := range l.variables {
		out[i] = float64(analysis.Lookup(l.counts, cardio, v, value))
	}
	return out
}

func (l catLayout) maxTotal() float64 {
	totals := make([]float64, len(l.counts))
	for i, c := range l.counts {
		totals[i] = float64(c.Total)
	}
	return floats.Max(totals)
}

// CatPlot draws the risk factor counts as grouped bars, one panel per
// cardio value, with bars coloured by factor value.
func CatPlot(counts []analysis.FactorCount) (*Figure, error) {
	layout, err := newCatLayout(counts)
	if err != nil {
		return nil, err
	}

	panels := make([]*plot.Plot, 0, len(layout.cardio))
	yMax := layout.maxTotal() * 1.05

	for _, cardio := range layout.cardio {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("cardio = %g", cardio)
		p.X.Label.Text = "variable"
		p.Y.Label.Text = "total"
		p.Y.Min = 0
		p.Y.Max = yMax
		p.Legend.Top = true
		p.Legend.Add(hueTitle)

		n := float64(len(layout.values))
		for k, value := range layout.values {
			bars, err := plotter.NewBarChart(plotter.Values(layout.totals(cardio, value)), catBarWidth)
			if err != nil {
				return nil, fmt.Errorf("failed to build bars for cardio=%g value=%g: %w", cardio, value, err)
			}
			bars.Color = hueColor(k)
			bars.LineStyle.Width = vg.Length(0)
			bars.Offset = vg.Length(float64(k)-(n-1)/2) * catBarWidth

			p.Add(bars)
			p.Legend.Add(hueLabel(value), bars)
		}

		p.Add(plotter.NewGrid())
		p.NominalX(layout.variables...)
		panels = append(panels, p)
	}

	logger.Debug("built categorical plot", "panels", len(panels), "factors", len(layout.variables))

	return &Figure{
		Name:   "catplot",
		Width:  catPanelWidth * vg.Length(len(panels)),
		Height: catPanelHeight,
		draw: func(dc draw.Canvas) {
			tiles := draw.Tiles{
				Rows:      1,
				Cols:      len(panels),
				PadX:      vg.Millimeter * 6,
				PadTop:    vg.Millimeter * 4,
				PadBottom: vg.Millimeter * 4,
				PadLeft:   vg.Millimeter * 4,
				PadRight:  vg.Millimeter * 4,
			}
			canvases := plot.Align([][]*plot.Plot{panels}, tiles, dc)
			for i, p := range panels {
				p.Draw(canvases[0][i])
			}
		},
		page: func() *components.Page {
			return catPlotPage(layout)
		},
	}, nil
}
