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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathysgrapotte/bio2parquet/internal/converr"
)

func TestCSVReader_WellFormed(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantColumns []string
		wantRows    []map[string]string
	}{
		{
			name:        "single data row",
			input:       "header,sequence\ns1,AAA\n",
			wantColumns: []string{"header", "sequence"},
			wantRows: []map[string]string{
				{"header": "s1", "sequence": "AAA"},
			},
		},
		{
			name:        "extra columns are kept as text",
			input:       "header,sequence,count\ns1,AAA,42\ns2,CCC,0\n",
			wantColumns: []string{"header", "sequence", "count"},
			wantRows: []map[string]string{
				{"header": "s1", "sequence": "AAA", "count": "42"},
				{"header": "s2", "sequence": "CCC", "count": "0"},
			},
		},
		{
			name:        "column order beyond the required set",
			input:       "description,header,sequence\nfirst,s1,AT\n",
			wantColumns: []string{"description", "header", "sequence"},
			wantRows: []map[string]string{
				{"description": "first", "header": "s1", "sequence": "AT"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "input.csv", tt.input)
			r, err := NewCSVReader(path)
			require.NoError(t, err)
			defer func() { _ = r.Close() }()

			assert.Equal(t, tt.wantColumns, r.Columns())
			rows, err := drain(t, r)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestCSVReader_StructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "empty file",
			input:   "",
			wantMsg: "empty file",
		},
		{
			name:    "not delimited text",
			input:   "just a plain line\nanother line\n",
			wantMsg: "not delimited text",
		},
		{
			name:    "missing sequence column",
			input:   "header,description\ns1,first\n",
			wantMsg: "missing required columns: sequence",
		},
		{
			name:    "missing header column",
			input:   "id,sequence\ns1,AAA\n",
			wantMsg: "missing required columns: header",
		},
		{
			name:    "missing both required columns",
			input:   "id,description\ns1,first\n",
			wantMsg: "missing required columns: header, sequence",
		},
		{
			name:    "no data rows",
			input:   "header,sequence\n",
			wantMsg: "no data rows",
		},
		{
			name:    "first row width mismatch",
			input:   "header,sequence\ns1,AAA,extra\n",
			wantMsg: "row width mismatch at data row 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "input.csv", tt.input)
			_, err := NewCSVReader(path)
			require.Error(t, err)
			assert.True(t, converr.Is(err, converr.KindStructural), "want structural error, got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestCSVReader_MissingColumnMessageNamesOnlyMissing(t *testing.T) {
	path := writeFile(t, "input.csv", "header,description\ns1,first\n")
	_, err := NewCSVReader(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sequence")
	assert.NotContains(t, err.Error(), "missing required columns: header")
}

func TestCSVReader_LateRowWidthMismatch(t *testing.T) {
	path := writeFile(t, "input.csv", "header,sequence\ns1,AAA\ns2\n")
	r, err := NewCSVReader(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	row, done, err := r.GetRow()
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, "s1", row["header"])

	_, _, err = r.GetRow()
	require.Error(t, err)
	assert.True(t, converr.Is(err, converr.KindStructural))
	assert.Contains(t, err.Error(), "row width mismatch at data row 2")
}

func TestCSVReader_Gzip(t *testing.T) {
	content := "header,sequence\ns1,AAA\ns2,CCC\n"
	plain := writeFile(t, "input.csv", content)
	gzipped := writeGzipFile(t, "input.csv.gz", content)

	pr, err := NewCSVReader(plain)
	require.NoError(t, err)
	defer func() { _ = pr.Close() }()
	gr, err := NewCSVReader(gzipped)
	require.NoError(t, err)
	defer func() { _ = gr.Close() }()

	plainRows, err := drain(t, pr)
	require.NoError(t, err)
	gzipRows, err := drain(t, gr)
	require.NoError(t, err)
	assert.Equal(t, plainRows, gzipRows)
}

func TestCSVReader_CorruptGzip(t *testing.T) {
	path := writeFile(t, "input.csv.gz", "header,sequence\ns1,AAA\n")
	_, err := NewCSVReader(path)
	require.Error(t, err)
	assert.True(t, converr.Is(err, converr.KindCorruptArchive), "want corrupt archive, got %v", err)
}

func TestCSVReader_FileMissing(t *testing.T) {
	_, err := NewCSVReader(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, converr.Is(err, converr.KindFileMissing), "want file missing, got %v", err)
}

func TestCSVReader_NotAFile(t *testing.T) {
	_, err := NewCSVReader(t.TempDir())
	require.Error(t, err)
	assert.True(t, converr.Is(err, converr.KindNotAFile), "want not-a-file, got %v", err)
}

// FASTA and CSV readers report a missing path with the same error shape.
func TestReaders_FileMissingSameShape(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, fastaErr := NewFASTAReader(missing + ".fasta")
	_, csvErr := NewCSVReader(missing + ".csv")
	require.Error(t, fastaErr)
	require.Error(t, csvErr)
	assert.Equal(t, converr.KindOf(fastaErr), converr.KindOf(csvErr))
}
