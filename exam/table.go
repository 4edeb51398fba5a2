/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package exam

import (
	"fmt"
	"slices"
)

// Table is a column oriented, all numeric table. Column order follows the
// order in which columns were added.
type Table struct {
	names []string
	cols  map[string][]float64
	rows  int
}

// NewTable returns an empty table with the given columns.
func NewTable(names ...string) (*Table, error) {
	t := &Table{cols: make(map[string][]float64, len(names))}
	for _, name := range names {
		if err := t.AddColumn(name, nil); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// Has reports whether the table has a column.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the backing slice of a column. Callers that mutate the
// returned slice mutate the table.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errMissingColumn, name)
	}
	return col, nil
}

// AddColumn appends a column. The first column added to an empty table sets
// the row count.
func (t *Table) AddColumn(name string, values []float64) error {
	if _, ok := t.cols[name]; ok {
		return fmt.Errorf("%w: %s", errDuplicateColumn, name)
	}
	if len(t.names) > 0 && len(values) != t.rows {
		return fmt.Errorf("%w: %s has %d values, table has %d rows", errLengthMismatch, name, len(values), t.rows)
	}
	if len(t.names) == 0 {
		t.rows = len(values)
	}
	t.names = append(t.names, name)
	t.cols[name] = values
	return nil
}

// AppendRow adds one row. Values are given in column order.
func (t *Table) AppendRow(values []float64) error {
	if len(values) != len(t.names) {
		return fmt.Errorf("%w: got %d, want %d", errRaggedRow, len(values), len(t.names))
	}
	for i, name := range t.names {
		t.cols[name] = append(t.cols[name], values[i])
	}
	t.rows++
	return nil
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) []float64 {
	row := make([]float64, len(t.names))
	for j, name := range t.names {
		row[j] = t.cols[name][i]
	}
	return row
}

// Filter returns a new table holding only the rows where keep is true.
func (t *Table) Filter(keep []bool) *Table {
	n := 0
	for _, k := range keep {
		if k {
			n++
		}
	}

	out := &Table{
		names: slices.Clone(t.names),
		cols:  make(map[string][]float64, len(t.names)),
		rows:  n,
	}
	for _, name := range t.names {
		src := t.cols[name]
		dst := make([]float64, 0, n)
		for i, k := range keep {
			if k {
				dst = append(dst, src[i])
			}
		}
		out.cols[name] = dst
	}
	return out
}
