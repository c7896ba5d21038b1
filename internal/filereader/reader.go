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

// Package filereader turns FASTA and CSV files into a lazy sequence of
// uniform string-valued rows.
package filereader

// Reader produces rows from an input file, one record at a time.
type Reader interface {
	// GetRow returns the next row. It returns (nil, true, nil) when there are
	// no more rows. row and done are only valid if err is nil.
	GetRow() (row map[string]string, done bool, err error)

	// Columns returns the column names in schema order. The result is stable
	// for the lifetime of the reader.
	Columns() []string

	Close() error
}
