// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package analysis

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humaidq/cardioviz/exam"
)

func TestMeltLongForm(t *testing.T) {
	t.Parallel()

	tbl := tableFromColumns(t,
		[]string{"cardio", "smoke", "alco"},
		[]float64{0, 1, 1},
		[]float64{1, 0, 0},
		[]float64{0, 0, 1},
	)

	rows, err := Melt(tbl, "cardio", []string{"smoke", "alco"})
	require.NoError(t, err)

	assert.Equal(t, []LongRow{
		{ID: 0, Variable: "smoke", Value: 1},
		{ID: 1, Variable: "smoke", Value: 0},
		{ID: 1, Variable: "smoke", Value: 0},
		{ID: 0, Variable: "alco", Value: 0},
		{ID: 1, Variable: "alco", Value: 0},
		{ID: 1, Variable: "alco", Value: 1},
	}, rows)
}

func TestMeltMissingColumn(t *testing.T) {
	t.Parallel()

	tbl := tableFromColumns(t, []string{"cardio"}, []float64{0})
	if _, err := Melt(tbl, "cardio", []string{"smoke"}); err == nil {
		t.Fatal("expected error for missing value column")
	}
	if _, err := Melt(tbl, "status", nil); err == nil {
		t.Fatal("expected error for missing id column")
	}
}

func TestCountLongSortedAndSparse(t *testing.T) {
	t.Parallel()

	rows := []LongRow{
		{ID: 1, Variable: "smoke", Value: 1},
		{ID: 0, Variable: "smoke", Value: 0},
		{ID: 0, Variable: "alco", Value: 0},
		{ID: 0, Variable: "smoke", Value: 0},
	}

	assert.Equal(t, []FactorCount{
		{Cardio: 0, Variable: "alco", Value: 0, Total: 1},
		{Cardio: 0, Variable: "smoke", Value: 0, Total: 2},
		{Cardio: 1, Variable: "smoke", Value: 1, Total: 1},
	}, CountLong(rows))
}

func TestCountFactorsSumToRowCount(t *testing.T) {
	t.Parallel()

	tbl := loadSample(t)
	counts, err := CountFactors(tbl)
	require.NoError(t, err)

	totals := make(map[string]int)
	for _, c := range counts {
		totals[c.Variable] += c.Total
	}

	require.Len(t, totals, len(exam.RiskFactors))
	for _, factor := range exam.RiskFactors {
		assert.Equalf(t, tbl.Len(), totals[factor], "factor %s", factor)
	}
}

func TestCountFactorsSample(t *testing.T) {
	t.Parallel()

	counts, err := CountFactors(loadSample(t))
	require.NoError(t, err)

	assert.True(t, slices.IsSortedFunc(counts, func(a, b FactorCount) int {
		if a.Cardio != b.Cardio {
			return int(a.Cardio - b.Cardio)
		}
		if a.Variable != b.Variable {
			if a.Variable < b.Variable {
				return -1
			}
			return 1
		}
		return int(a.Value - b.Value)
	}))

	// Ids 23 and 29 smoke without disease; id 32 smokes with disease.
	assert.Equal(t, 2, Lookup(counts, 0, exam.ColSmoke, 1))
	assert.Equal(t, 1, Lookup(counts, 1, exam.ColSmoke, 1))
	assert.Equal(t, 0, Lookup(counts, 2, exam.ColSmoke, 1))

	assert.Equal(t, []float64{0, 1}, Levels(counts, func(c FactorCount) float64 { return c.Cardio }))
	assert.Equal(t, []string{"active", "alco", "cholesterol", "gluc", "overweight", "smoke"}, Variables(counts))
}
