/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/humaidq/cardioviz/exam"
)

// LongRow is one observation of a melted table.
type LongRow struct {
	ID       float64
	Variable string
	Value    float64
}

// FactorCount is the number of records sharing a disease status, a risk
// factor and a factor value.
type FactorCount struct {
	Cardio   float64
	Variable string
	Value    float64
	Total    int
}

// Melt unpivots valueVars into long form, keeping idVar on every row. Rows
// are ordered by variable first, then by source row.
func Melt(t *exam.Table, idVar string, valueVars []string) ([]LongRow, error) {
	ids, err := t.Column(idVar)
	if err != nil {
		return nil, fmt.Errorf("failed to melt: %w", err)
	}

	out := make([]LongRow, 0, len(ids)*len(valueVars))
	for _, name := range valueVars {
		col, err := t.Column(name)
		if err != nil {
			return nil, fmt.Errorf("failed to melt: %w", err)
		}
		for i, v := range col {
			out = append(out, LongRow{ID: ids[i], Variable: name, Value: v})
		}
	}
	return out, nil
}

// CountLong groups long rows by (id, variable, value) and counts them.
// Groups with no rows are not reported.
func CountLong(rows []LongRow) []FactorCount {
	type key struct {
		cardio   float64
		variable string
		value    float64
	}

	counts := make(map[key]int)
	for _, r := range rows {
		counts[key{r.ID, r.Variable, r.Value}]++
	}

	out := make([]FactorCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, FactorCount{Cardio: k.cardio, Variable: k.variable, Value: k.value, Total: n})
	}

	slices.SortFunc(out, func(a, b FactorCount) int {
		return cmp.Or(
			cmp.Compare(a.Cardio, b.Cardio),
			cmp.Compare(a.Variable, b.Variable),
			cmp.Compare(a.Value, b.Value),
		)
	})
	return out
}

// CountFactors melts the risk factor columns against cardio and counts each
// (cardio, factor, value) combination.
func CountFactors(t *exam.Table) ([]FactorCount, error) {
	rows, err := Melt(t, exam.ColCardio, exam.RiskFactors)
	if err != nil {
		return nil, err
	}
	return CountLong(rows), nil
}

// Levels returns the sorted distinct values of a field across counts.
func Levels(counts []FactorCount, field func(FactorCount) float64) []float64 {
	var out []float64
	for _, c := range counts {
		v := field(c)
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

// Variables returns the sorted distinct factor names across counts.
func Variables(counts []FactorCount) []string {
	var out []string
	for _, c := range counts {
		if !slices.Contains(out, c.Variable) {
			out = append(out, c.Variable)
		}
	}
	slices.Sort(out)
	return out
}

// Lookup returns the total for a combination, or zero if it never occurs.
func Lookup(counts []FactorCount, cardio float64, variable string, value float64) int {
	for _, c := range counts {
		if c.Cardio == cardio && c.Variable == variable && c.Value == value {
			return c.Total
		}
	}
	return 0
}
