// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/humaidq/cardioviz/exam"
)

const sampleDataset = "../exam/testdata/medical_examination.csv"

func loadSample(t *testing.T) *exam.Table {
	t.Helper()

	tbl, err := exam.LoadFile(sampleDataset)
	require.NoError(t, err)
	require.NoError(t, exam.Derive(tbl))

	return tbl
}

func tableFromColumns(t *testing.T, names []string, cols ...[]float64) *exam.Table {
	t.Helper()

	tbl, err := exam.NewTable()
	require.NoError(t, err)
	for i, name := range names {
		require.NoError(t, tbl.AddColumn(name, cols[i]))
	}

	return tbl
}
