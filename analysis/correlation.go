/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/humaidq/cardioviz/exam"
)

// CorrelationMatrix is a Pearson correlation matrix labelled by column name.
type CorrelationMatrix struct {
	Names  []string
	Values *mat.SymDense
}

// At returns the correlation between columns i and j.
func (c CorrelationMatrix) At(i, j int) float64 {
	return c.Values.At(i, j)
}

// Size returns the number of variables.
func (c CorrelationMatrix) Size() int {
	return len(c.Names)
}

// Correlate computes pairwise Pearson correlations over every column of t.
// Constant columns yield NaN entries, including on the diagonal.
func Correlate(t *exam.Table) (CorrelationMatrix, error) {
	if t.Len() < 2 {
		return CorrelationMatrix{}, errTooFewRows
	}

	names := t.Names()
	data := mat.NewDense(t.Len(), len(names), nil)
	cols := make([][]float64, len(names))
	for j, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return CorrelationMatrix{}, err
		}
		data.SetCol(j, col)
		cols[j] = col
	}

	corr := mat.NewSymDense(len(names), nil)
	stat.CorrelationMatrix(corr, data, nil)

	// Constant columns have no defined correlation, not even with
	// themselves.
	for i, col := range cols {
		if floats.Min(col) == floats.Max(col) {
			corr.SetSym(i, i, math.NaN())
			continue
		}
		corr.SetSym(i, i, 1)
	}

	return CorrelationMatrix{Names: names, Values: corr}, nil
}

// FormatValue renders a correlation at one decimal place, keeping the sign
// of small negative values ("-0.0").
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// UpperTriangleMask returns an n by n mask that is true on and above the
// diagonal. Masked cells are hidden in the heatmap.
func UpperTriangleMask(n int) [][]bool {
	mask := make([][]bool, n)
	for i := range mask {
		mask[i] = make([]bool, n)
		for j := i; j < n; j++ {
			mask[i][j] = true
		}
	}
	return mask
}
