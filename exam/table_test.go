// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package exam

import (
	"errors"
	"testing"
)

func TestTableAddColumnLengthMismatch(t *testing.T) {
	t.Parallel()

	tbl, err := NewTable()
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if err := tbl.AddColumn("a", []float64{1, 2, 3}); err != nil {
		t.Fatalf("AddColumn failed: %v", err)
	}
	if err := tbl.AddColumn("b", []float64{1}); !errors.Is(err, errLengthMismatch) {
		t.Fatalf("expected length mismatch, got %v", err)
	}
	if err := tbl.AddColumn("a", []float64{4, 5, 6}); !errors.Is(err, errDuplicateColumn) {
		t.Fatalf("expected duplicate column, got %v", err)
	}
}

func TestTableColumnMissing(t *testing.T) {
	t.Parallel()

	tbl, err := NewTable("a")
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if _, err := tbl.Column("b"); !errors.Is(err, errMissingColumn) {
		t.Fatalf("expected missing column, got %v", err)
	}
}

func TestTableFilterKeepsOrder(t *testing.T) {
	t.Parallel()

	tbl, err := NewTable("x", "y")
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := tbl.AppendRow([]float64{float64(i), float64(i * 10)}); err != nil {
			t.Fatalf("AppendRow failed: %v", err)
		}
	}

	out := tbl.Filter([]bool{true, false, true, false, true})
	if out.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", out.Len())
	}

	y, err := out.Column("y")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	want := []float64{0, 20, 40}
	for i := range want {
		if y[i] != want[i] {
			t.Fatalf("row %d: expected %v, got %v", i, want[i], y[i])
		}
	}

	// The source table is untouched.
	if tbl.Len() != 5 {
		t.Fatalf("expected source to keep 5 rows, got %d", tbl.Len())
	}
}

func TestTableAppendRowRagged(t *testing.T) {
	t.Parallel()

	tbl, err := NewTable("x", "y")
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if err := tbl.AppendRow([]float64{1}); !errors.Is(err, errRaggedRow) {
		t.Fatalf("expected ragged row error, got %v", err)
	}
}
