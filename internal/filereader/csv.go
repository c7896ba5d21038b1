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

package filereader

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mathysgrapotte/bio2parquet/internal/converr"
)

// RequiredCSVColumns must be present in the header row of sequence-oriented
// CSV input.
var RequiredCSVColumns = []string{"header", "sequence"}

// CSVReader streams rows from a comma-delimited file. All values are kept as
// text; no type coercion happens at this layer. Header validation and the
// at-least-one-data-row check run at construction, so a CSVReader that exists
// is known to produce at least one row.
type CSVReader struct {
	path    string
	in      *input
	reader  *csv.Reader
	columns []string

	pending  []string // first data row, read during validation
	rowIndex int      // 1-based data row counter
	done     bool
	err      error
}

var _ Reader = (*CSVReader)(nil)

// NewCSVReader opens path and validates its header row: it must be
// comma-delimited (at least two fields), contain the required columns, and be
// followed by at least one data row. The delimiter policy is comma only,
// matching encoding/csv defaults.
func NewCSVReader(path string) (*CSVReader, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(in)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // width checked per row for precise errors

	header, err := reader.Read()
	if err != nil {
		_ = in.Close()
		if err == io.EOF {
			return nil, converr.Structural(path, "empty file")
		}
		if in.gzReader != nil && !isParseError(err) {
			return nil, converr.CorruptArchive(path, err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(header) < 2 {
		_ = in.Close()
		return nil, converr.Structural(path, "not delimited text")
	}

	var missing []string
	for _, want := range RequiredCSVColumns {
		if !slices.Contains(header, want) {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		_ = in.Close()
		return nil, converr.Structuralf(path, "missing required columns: %s", strings.Join(missing, ", "))
	}

	r := &CSVReader{
		path:    path,
		in:      in,
		reader:  reader,
		columns: header,
	}

	first, err := reader.Read()
	if err != nil {
		_ = in.Close()
		if err == io.EOF {
			return nil, converr.Structural(path, "no data rows")
		}
		if in.gzReader != nil && !isParseError(err) {
			return nil, converr.CorruptArchive(path, err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(first) != len(header) {
		_ = in.Close()
		return nil, r.widthMismatch(1, len(first))
	}
	r.pending = first
	return r, nil
}

func (r *CSVReader) Columns() []string {
	return r.columns
}

func (r *CSVReader) Close() error {
	return r.in.Close()
}

func (r *CSVReader) GetRow() (map[string]string, bool, error) {
	if r.err != nil {
		return nil, false, r.err
	}
	if r.done {
		return nil, true, nil
	}

	if r.pending != nil {
		record := r.pending
		r.pending = nil
		r.rowIndex = 1
		return r.toRow(record), false, nil
	}

	record, err := r.reader.Read()
	if err != nil {
		if err == io.EOF {
			r.done = true
			return nil, true, nil
		}
		if r.in.gzReader != nil && !isParseError(err) {
			return nil, false, r.fail(converr.CorruptArchive(r.path, err))
		}
		return nil, false, r.fail(fmt.Errorf("read %s: %w", r.path, err))
	}
	r.rowIndex++
	if len(record) != len(r.columns) {
		return nil, false, r.fail(r.widthMismatch(r.rowIndex, len(record)))
	}
	return r.toRow(record), false, nil
}

func (r *CSVReader) toRow(record []string) map[string]string {
	row := make(map[string]string, len(r.columns))
	for i, name := range r.columns {
		row[name] = record[i]
	}
	return row
}

func (r *CSVReader) widthMismatch(rowNum, got int) error {
	return converr.Structuralf(r.path, "row width mismatch at data row %d: got %d columns, expected %d", rowNum, got, len(r.columns))
}

func (r *CSVReader) fail(err error) error {
	r.err = err
	return err
}

func isParseError(err error) bool {
	_, ok := err.(*csv.ParseError)
	return ok
}
