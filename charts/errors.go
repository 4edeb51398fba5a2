/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package charts

import "errors"

var (
	errUnknownFormat   = errors.New("unknown figure format")
	errEmptyCounts     = errors.New("no factor counts to plot")
	errEmptyMatrix     = errors.New("correlation matrix is empty")
	errNoHTMLRenderer  = errors.New("figure has no html renderer")
	errNoImageRenderer = errors.New("figure has no image renderer")
)
