/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/humaidq/cardioviz/analysis"
	"github.com/humaidq/cardioviz/exam"
)

// results holds every intermediate product of one pass over the dataset.
type results struct {
	table       *exam.Table
	counts      []analysis.FactorCount
	filtered    *exam.Table
	filter      analysis.HeatmapFilter
	correlation analysis.CorrelationMatrix
}

// runPipeline loads the dataset, derives the indicator columns, and computes
// both the factor counts and the filtered correlation matrix.
func runPipeline(ctx context.Context, logger *log.Logger, input string) (*results, error) {
	table, err := exam.LoadFile(input)
	if err != nil {
		return nil, err
	}

	if err := exam.Derive(table); err != nil {
		return nil, fmt.Errorf("failed to derive columns: %w", err)
	}
	logger.Debug("derived columns", "columns", table.Names())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counts, err := analysis.CountFactors(table)
	if err != nil {
		return nil, fmt.Errorf("failed to count risk factors: %w", err)
	}
	logger.Info("counted risk factors", "groups", len(counts))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filtered, filter, err := analysis.FilterForHeatmap(table)
	if err != nil {
		return nil, fmt.Errorf("failed to filter outliers: %w", err)
	}
	logger.Info("filtered outliers",
		"kept", filter.Kept,
		"total", filter.Total,
		"height_min", filter.Height.Min,
		"height_max", filter.Height.Max,
		"weight_min", filter.Weight.Min,
		"weight_max", filter.Weight.Max,
	)

	corr, err := analysis.Correlate(filtered)
	if err != nil {
		return nil, fmt.Errorf("failed to correlate: %w", err)
	}

	return &results{
		table:       table,
		counts:      counts,
		filtered:    filtered,
		filter:      filter,
		correlation: corr,
	}, nil
}
