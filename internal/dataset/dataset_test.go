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

package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader feeds canned rows (or a canned error) to FromReader.
type fakeReader struct {
	columns []string
	rows    []map[string]string
	err     error
	pos     int
	closed  bool
}

func (f *fakeReader) GetRow() (map[string]string, bool, error) {
	if f.pos >= len(f.rows) {
		if f.err != nil {
			return nil, false, f.err
		}
		return nil, true, nil
	}
	row := f.rows[f.pos]
	f.pos++
	return row, false, nil
}

func (f *fakeReader) Columns() []string { return f.columns }
func (f *fakeReader) Close() error      { f.closed = true; return nil }

func TestFromReader_PreservesOrder(t *testing.T) {
	rows := []map[string]string{
		{"header": "A", "sequence": "XXYY"},
		{"header": "B", "sequence": "ZZ"},
		{"header": "C", "sequence": "AC"},
	}
	r := &fakeReader{columns: []string{"header", "sequence"}, rows: rows}

	ds, err := FromReader(r)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"header", "sequence"}, ds.Columns())
	for i, want := range rows {
		assert.Equal(t, want, ds.Row(i))
	}
}

func TestFromReader_PropagatesReaderError(t *testing.T) {
	wantErr := errors.New("boom")
	r := &fakeReader{
		columns: []string{"header", "sequence"},
		rows:    []map[string]string{{"header": "A", "sequence": "X"}},
		err:     wantErr,
	}

	_, err := FromReader(r)
	assert.Equal(t, wantErr, err)
}

func TestFromReader_EmptyReader(t *testing.T) {
	r := &fakeReader{columns: []string{"header", "sequence"}}

	ds, err := FromReader(r)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}
