/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package exam

import "errors"

var (
	errEmptyHeader     = errors.New("csv header is empty")
	errDuplicateColumn = errors.New("duplicate column")
	errMissingColumn   = errors.New("missing column")
	errRaggedRow       = errors.New("row has wrong number of fields")
	errLengthMismatch  = errors.New("column length does not match table length")
)

