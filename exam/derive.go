/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package exam

import "fmt"

// OverweightBMI is the body-mass index above which a patient counts as
// overweight.
const OverweightBMI = 25

// BMI returns the body-mass index for a weight in kilograms and a height in
// centimetres.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// IsOverweight reports whether a BMI is strictly above OverweightBMI.
func IsOverweight(bmi float64) bool {
	return bmi > OverweightBMI
}

// NormalizeLevel collapses an ordinal 1-3 reading to 0 (normal) or
// 1 (above normal).
func NormalizeLevel(v float64) float64 {
	if v > 1 {
		return 1
	}
	return 0
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Derive appends the overweight column and normalizes the cholesterol and
// glucose columns in place.
func Derive(t *Table) error {
	if err := AddOverweight(t); err != nil {
		return err
	}
	for _, name := range []string{ColCholesterol, ColGlucose} {
		if err := normalizeColumn(t, name); err != nil {
			return err
		}
	}
	return nil
}

// AddOverweight appends the overweight column computed from height and
// weight. The BMI itself is not kept.
func AddOverweight(t *Table) error {
	height, err := t.Column(ColHeight)
	if err != nil {
		return fmt.Errorf("failed to derive %s: %w", ColOverweight, err)
	}
	weight, err := t.Column(ColWeight)
	if err != nil {
		return fmt.Errorf("failed to derive %s: %w", ColOverweight, err)
	}

	overweight := make([]float64, t.Len())
	for i := range overweight {
		overweight[i] = boolValue(IsOverweight(BMI(weight[i], height[i])))
	}

	return t.AddColumn(ColOverweight, overweight)
}

func normalizeColumn(t *Table, name string) error {
	col, err := t.Column(name)
	if err != nil {
		return fmt.Errorf("failed to normalize %s: %w", name, err)
	}
	for i, v := range col {
		col[i] = NormalizeLevel(v)
	}
	return nil
}
