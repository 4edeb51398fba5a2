// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/humaidq/cardioviz/exam"
)

func TestCorrelateSymmetricUnitDiagonal(t *testing.T) {
	t.Parallel()

	tbl := loadSample(t)
	corr, err := Correlate(tbl)
	require.NoError(t, err)

	require.Equal(t, tbl.Names(), corr.Names)
	n := corr.Size()
	for i := 0; i < n; i++ {
		assert.Equalf(t, 1.0, corr.At(i, i), "diagonal %s", corr.Names[i])
		for j := 0; j < n; j++ {
			assert.Equal(t, corr.At(i, j), corr.At(j, i))
			assert.LessOrEqual(t, math.Abs(corr.At(i, j)), 1+1e-12)
		}
	}
}

func TestCorrelateMatchesPairwisePearson(t *testing.T) {
	t.Parallel()

	tbl := loadSample(t)
	corr, err := Correlate(tbl)
	require.NoError(t, err)

	height, _ := tbl.Column(exam.ColHeight)
	weight, _ := tbl.Column(exam.ColWeight)
	want := stat.Correlation(height, weight, nil)

	i := indexOf(corr.Names, exam.ColHeight)
	j := indexOf(corr.Names, exam.ColWeight)
	assert.InDelta(t, want, corr.At(i, j), 1e-12)
}

func TestCorrelateConstantColumnIsNaN(t *testing.T) {
	t.Parallel()

	tbl := tableFromColumns(t, []string{"a", "b"},
		[]float64{1, 2, 3},
		[]float64{5, 5, 5},
	)

	corr, err := Correlate(tbl)
	require.NoError(t, err)
	assert.Equal(t, 1.0, corr.At(0, 0))
	assert.True(t, math.IsNaN(corr.At(0, 1)))
	assert.True(t, math.IsNaN(corr.At(1, 1)))
}

func TestCorrelateConstantFractionalColumn(t *testing.T) {
	t.Parallel()

	tbl := tableFromColumns(t, []string{"a", "b", "c"},
		[]float64{1, 2, 3, 4},
		[]float64{0.1, 0.1, 0.1, 0.1},
		[]float64{4, 1, 3, 2},
	)

	corr, err := Correlate(tbl)
	require.NoError(t, err)
	assert.Equal(t, 1.0, corr.At(0, 0))
	assert.Equal(t, 1.0, corr.At(2, 2))
	assert.True(t, math.IsNaN(corr.At(1, 1)))
}

func TestCorrelateTooFewRows(t *testing.T) {
	t.Parallel()

	tbl := tableFromColumns(t, []string{"a"}, []float64{1})
	if _, err := Correlate(tbl); !errors.Is(err, errTooFewRows) {
		t.Fatalf("expected too few rows error, got %v", err)
	}
}

func TestUpperTriangleMask(t *testing.T) {
	t.Parallel()

	mask := UpperTriangleMask(3)
	assert.Equal(t, [][]bool{
		{true, true, true},
		{false, true, true},
		{false, false, true},
	}, mask)
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-0.0", FormatValue(-0.04))
	assert.Equal(t, "0.0", FormatValue(0.04))
	assert.Equal(t, "-0.1", FormatValue(-0.06))
	assert.Equal(t, "0.5", FormatValue(0.5))
	assert.Equal(t, "NaN", FormatValue(math.NaN()))
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
