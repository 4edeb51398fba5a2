/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/cardioviz/charts"
)

// Defaults match the file names the tool has always used.
const (
	DefaultInput   = "medical_examination.csv"
	DefaultCatPlot = "catplot.png"
	DefaultHeatMap = "heatmap.png"
)

// RenderFlags returns the flags accepted by render. The root command uses
// them too so that running without a sub-command renders with defaults.
func RenderFlags() []cli.Flag {
	return []cli.Flag{
		inputFlag(),
		&cli.StringFlag{
			Name:    "catplot",
			Value:   DefaultCatPlot,
			Sources: cli.EnvVars("CARDIOVIZ_CATPLOT"),
			Usage:   "output path of the risk factor bar chart (.png, .svg, .pdf or .html)",
		},
		&cli.StringFlag{
			Name:    "heatmap",
			Value:   DefaultHeatMap,
			Sources: cli.EnvVars("CARDIOVIZ_HEATMAP"),
			Usage:   "output path of the correlation heatmap (.png, .svg, .pdf or .html)",
		},
	}
}

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Value:   DefaultInput,
		Sources: cli.EnvVars("CARDIOVIZ_INPUT"),
		Usage:   "examination dataset in CSV format",
	}
}

var CmdRender = &cli.Command{
	Name:   "render",
	Usage:  "Render the risk factor bar chart and the correlation heatmap",
	Flags:  RenderFlags(),
	Action: Render,
}

// Render is the action behind the render command.
func Render(ctx context.Context, cmd *cli.Command) error {
	input := cmd.String("input")
	if input == "" {
		return errInputRequired
	}

	catPlotPath := cmd.String("catplot")
	heatMapPath := cmd.String("heatmap")
	if catPlotPath == "" || heatMapPath == "" {
		return errOutputRequired
	}
	if filepath.Clean(catPlotPath) == filepath.Clean(heatMapPath) {
		return errSameOutputPath
	}

	logger := appLogger.With("run", uuid.New().String())
	logger.Info("rendering", "input", input, "catplot", catPlotPath, "heatmap", heatMapPath)

	res, err := runPipeline(ctx, logger, input)
	if err != nil {
		return err
	}

	catFig, err := charts.CatPlot(res.counts)
	if err != nil {
		return fmt.Errorf("failed to build categorical plot: %w", err)
	}
	if err := catFig.Save(catPlotPath); err != nil {
		return err
	}

	heatFig, err := charts.HeatMap(res.correlation)
	if err != nil {
		return fmt.Errorf("failed to build heatmap: %w", err)
	}
	if err := heatFig.Save(heatMapPath); err != nil {
		return err
	}

	logger.Info("render complete")
	return nil
}
