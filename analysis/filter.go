/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"fmt"
	"math"
	"slices"

	"github.com/humaidq/cardioviz/exam"
)

// Central interval kept for height and weight before correlating.
const (
	LowerPercentile = 0.025
	UpperPercentile = 0.975
)

// Quantile returns the q-th quantile of xs by linear interpolation between
// the closest ranks, with position h = (n-1)q. xs is not modified.
func Quantile(xs []float64, q float64) (float64, error) {
	if len(xs) == 0 {
		return 0, errEmptySample
	}
	if q < 0 || q > 1 || math.IsNaN(q) {
		return 0, fmt.Errorf("%w: %v", errQuantileRange, q)
	}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	h := float64(len(sorted)-1) * q
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1], nil
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i]), nil
}

// Range is a closed interval.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies within the closed interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// CentralRange returns the [LowerPercentile, UpperPercentile] interval of xs.
func CentralRange(xs []float64) (Range, error) {
	lo, err := Quantile(xs, LowerPercentile)
	if err != nil {
		return Range{}, err
	}
	hi, err := Quantile(xs, UpperPercentile)
	if err != nil {
		return Range{}, err
	}
	return Range{Min: lo, Max: hi}, nil
}

// HeatmapFilter records the bounds used to clean the table and how many rows
// survived.
type HeatmapFilter struct {
	Height Range
	Weight Range
	Kept   int
	Total  int
}

// FilterForHeatmap drops rows where diastolic pressure exceeds systolic
// pressure, and rows whose height or weight lies outside the central 95% of
// the unfiltered table.
func FilterForHeatmap(t *exam.Table) (*exam.Table, HeatmapFilter, error) {
	var stats HeatmapFilter

	cols := make(map[string][]float64, 4)
	for _, name := range []string{exam.ColSystolic, exam.ColDiastolic, exam.ColHeight, exam.ColWeight} {
		col, err := t.Column(name)
		if err != nil {
			return nil, stats, fmt.Errorf("failed to filter outliers: %w", err)
		}
		cols[name] = col
	}

	var err error
	if stats.Height, err = CentralRange(cols[exam.ColHeight]); err != nil {
		return nil, stats, fmt.Errorf("failed to bound %s: %w", exam.ColHeight, err)
	}
	if stats.Weight, err = CentralRange(cols[exam.ColWeight]); err != nil {
		return nil, stats, fmt.Errorf("failed to bound %s: %w", exam.ColWeight, err)
	}

	keep := make([]bool, t.Len())
	for i := range keep {
		keep[i] = cols[exam.ColDiastolic][i] <= cols[exam.ColSystolic][i] &&
			stats.Height.Contains(cols[exam.ColHeight][i]) &&
			stats.Weight.Contains(cols[exam.ColWeight][i])
	}

	out := t.Filter(keep)
	stats.Kept = out.Len()
	stats.Total = t.Len()
	if out.Len() == 0 {
		return nil, stats, errNoRemainingRows
	}

	return out, stats, nil
}
