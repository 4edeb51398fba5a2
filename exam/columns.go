/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package exam

// Column names of the examination dataset.
const (
	ColID          = "id"
	ColAge         = "age"
	ColSex         = "sex"
	ColHeight      = "height"
	ColWeight      = "weight"
	ColSystolic    = "ap_hi"
	ColDiastolic   = "ap_lo"
	ColCholesterol = "cholesterol"
	ColGlucose     = "gluc"
	ColSmoke       = "smoke"
	ColAlcohol     = "alco"
	ColActive      = "active"
	ColCardio      = "cardio"
	ColOverweight  = "overweight"
)

// RiskFactors lists the binary columns shown in the categorical plot, in
// the order they are melted.
var RiskFactors = []string{
	ColCholesterol,
	ColGlucose,
	ColSmoke,
	ColAlcohol,
	ColActive,
	ColOverweight,
}
