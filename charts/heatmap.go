/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package charts

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/go-echarts/go-echarts/v2/components"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/humaidq/cardioviz/analysis"
)

const (
	heatSize        = 12 * vg.Inch
	heatColorBarW   = 1.2 * vg.Inch
	heatPaletteSize = 255
	heatAxisPadding = vg.Length(6)
)

// maskedGrid exposes the lower triangle of a correlation matrix as a
// plotter.GridXYZ. Row 0 of the grid is the bottom of the plot, so the grid
// is flipped to put the first variable on top.
type maskedGrid struct {
	corr analysis.CorrelationMatrix
	mask [][]bool
}

func (g maskedGrid) Dims() (c, r int) {
	n := g.corr.Size()
	return n, n
}

func (g maskedGrid) Z(c, r int) float64 {
	i := g.variable(r)
	if g.mask[i][c] {
		return math.NaN()
	}
	return g.corr.At(i, c)
}

func (g maskedGrid) X(c int) float64 { return float64(c) }

func (g maskedGrid) Y(r int) float64 { return float64(r) }

// variable maps a grid row to a matrix row.
func (g maskedGrid) variable(r int) int {
	return g.corr.Size() - 1 - r
}

// colorLimit is the largest absolute visible correlation, so the diverging
// palette stays centred on zero.
func (g maskedGrid) colorLimit() float64 {
	limit := 0.0
	c, r := g.Dims()
	for x := 0; x < c; x++ {
		for y := 0; y < r; y++ {
			if v := g.Z(x, y); !math.IsNaN(v) {
				limit = math.Max(limit, math.Abs(v))
			}
		}
	}
	if limit == 0 {
		return 1
	}
	return limit
}

// annotations returns one label per visible cell at one decimal place.
func (g maskedGrid) annotations() plotter.XYLabels {
	var labels plotter.XYLabels
	c, r := g.Dims()
	for x := 0; x < c; x++ {
		for y := 0; y < r; y++ {
			v := g.Z(x, y)
			if math.IsNaN(v) {
				continue
			}
			labels.XYs = append(labels.XYs, plotter.XY{X: g.X(x), Y: g.Y(y)})
			labels.Labels = append(labels.Labels, analysis.FormatValue(v))
		}
	}
	return labels
}

// styleHeatMapAxes labels both axes with the variable names, first variable
// top left. Bottom labels are rotated to read upwards and end at their tick;
// the axis padding keeps the cells from painting over them.
func styleHeatMapAxes(p *plot.Plot, names []string) {
	p.NominalX(names...)
	reversed := slices.Clone(names)
	slices.Reverse(reversed)
	p.NominalY(reversed...)

	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Padding = heatAxisPadding
	p.Y.Padding = heatAxisPadding
}

// HeatMap draws the lower triangle of a correlation matrix, excluding the
// diagonal, with each cell annotated.
func HeatMap(corr analysis.CorrelationMatrix) (*Figure, error) {
	n := corr.Size()
	if n == 0 {
		return nil, errEmptyMatrix
	}

	grid := maskedGrid{corr: corr, mask: analysis.UpperTriangleMask(n)}
	limit := grid.colorLimit()

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(-limit)
	cmap.SetMax(limit)

	heat := plotter.NewHeatMap(grid, cmap.Palette(heatPaletteSize))
	heat.Min = -limit
	heat.Max = limit
	heat.NaN = color.Transparent

	labels, err := plotter.NewLabels(grid.annotations())
	if err != nil {
		return nil, fmt.Errorf("failed to build annotations: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
		labels.TextStyle[i].Font.Size = vg.Points(9)
	}

	p := plot.New()
	p.Title.Text = "Correlation of examination features"
	p.Add(heat, labels)
	styleHeatMapAxes(p, corr.Names)

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true, Colors: heatPaletteSize})
	bar.HideX()
	bar.X.Padding = 0
	bar.Y.Padding = 0

	logger.Debug("built heatmap", "variables", n, "limit", limit)

	return &Figure{
		Name:   "heatmap",
		Width:  heatSize,
		Height: heatSize,
		draw: func(dc draw.Canvas) {
			w := dc.Max.X - dc.Min.X
			h := dc.Max.Y - dc.Min.Y

			p.Draw(draw.Crop(dc, 0, -heatColorBarW, 0, 0))

			// Colour bar at half the figure height.
			bar.Draw(draw.Crop(dc, w-heatColorBarW+vg.Millimeter*4, 0, h/4, -h/4))
		},
		page: func() *components.Page {
			return heatMapPage(grid, limit)
		},
	}, nil
}
