/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errInputRequired  = errors.New("input is required (set via --input or CARDIOVIZ_INPUT env var)")
	errOutputRequired = errors.New("output paths are required (set via --catplot/--heatmap or CARDIOVIZ_CATPLOT/CARDIOVIZ_HEATMAP)")
	errSameOutputPath = errors.New("catplot and heatmap must be written to different paths")
)
