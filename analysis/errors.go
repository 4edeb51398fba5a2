/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import "errors"

var (
	errEmptySample     = errors.New("quantile of an empty sample")
	errQuantileRange   = errors.New("quantile must be within [0, 1]")
	errTooFewRows      = errors.New("correlation needs at least two rows")
	errNoRemainingRows = errors.New("no rows left after filtering")
)
