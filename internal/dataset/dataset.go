// Copyright 2025 The bio2parquet Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dataset materializes reader rows into an in-memory table with a
// uniform all-string schema and persists it as parquet.
package dataset

import (
	"slices"

	"github.com/mathysgrapotte/bio2parquet/internal/filereader"
)

// Dataset is a fully materialized, ordered table. All columns are string
// typed. A Dataset is built once and never mutated afterwards.
type Dataset struct {
	columns []string
	rows    []map[string]string
}

// New builds a Dataset from already-materialized rows. Rows are assumed to
// match the column set; it exists mainly for tests and for ReadParquet.
func New(columns []string, rows []map[string]string) *Dataset {
	return &Dataset{columns: slices.Clone(columns), rows: rows}
}

// FromReader drains r into a Dataset, preserving record order. The first
// reader error aborts materialization and is returned as-is, so parser
// failures keep their taxonomy.
func FromReader(r filereader.Reader) (*Dataset, error) {
	d := &Dataset{columns: slices.Clone(r.Columns())}
	for {
		row, done, err := r.GetRow()
		if err != nil {
			return nil, err
		}
		if done {
			return d, nil
		}
		d.rows = append(d.rows, row)
	}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Columns returns the column names in schema order.
func (d *Dataset) Columns() []string {
	return slices.Clone(d.columns)
}

// Row returns the i-th row. The returned map must not be modified.
func (d *Dataset) Row(i int) map[string]string {
	return d.rows[i]
}

// Rows returns all rows in order. The returned slice must not be modified.
func (d *Dataset) Rows() []map[string]string {
	return d.rows
}
