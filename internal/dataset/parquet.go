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
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/parquet-go/parquet-go"
)

const schemaName = "bio2parquet"

// parquetSchema builds the all-string schema: every column is an optional,
// dictionary-encoded string leaf.
func (d *Dataset) parquetSchema() *parquet.Schema {
	nodes := make(map[string]parquet.Node, len(d.columns))
	for _, name := range d.columns {
		nodes[name] = parquet.Optional(parquet.Encoded(parquet.String(), &parquet.RLEDictionary))
	}
	return parquet.NewSchema(schemaName, parquet.Group(nodes))
}

func writerOptions(schema *parquet.Schema) []parquet.WriterOption {
	return []parquet.WriterOption{
		schema,
		parquet.Compression(&parquet.Zstd),
	}
}

// WriteParquet writes the dataset to a single parquet file at path,
// preserving row order.
func (d *Dataset) WriteParquet(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	config, err := parquet.NewWriterConfig(writerOptions(d.parquetSchema())...)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("parquet writer config: %w", err)
	}
	writer := parquet.NewGenericWriter[map[string]any](f, config)

	buf := make([]map[string]any, 1)
	for i, row := range d.rows {
		generic := make(map[string]any, len(row))
		for k, v := range row {
			generic[k] = v
		}
		buf[0] = generic
		if _, err := writer.Write(buf); err != nil {
			_ = f.Close()
			return fmt.Errorf("write row %d to parquet: %w", i, err)
		}
	}

	if err := writer.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Close()
}

// ReadParquet loads a parquet file written by WriteParquet back into a
// Dataset. Column order follows the file schema.
func ReadParquet(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet file %s: %w", path, err)
	}

	columns := make([]string, 0, len(pf.Schema().Fields()))
	for _, field := range pf.Schema().Fields() {
		columns = append(columns, field.Name())
	}
	sort.Strings(columns)

	reader := parquet.NewGenericReader[map[string]any](pf, pf.Schema())
	defer func() { _ = reader.Close() }()

	var rows []map[string]string
	buf := make([]map[string]any, 64)
	for i := range buf {
		buf[i] = make(map[string]any)
	}
	for {
		for i := range buf {
			for k := range buf[i] {
				delete(buf[i], k)
			}
		}
		n, err := reader.Read(buf)
		for i := 0; i < n; i++ {
			row := make(map[string]string, len(columns))
			for k, v := range buf[i] {
				if v == nil {
					row[k] = ""
					continue
				}
				row[k] = fmt.Sprint(v)
			}
			rows = append(rows, row)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read parquet rows from %s: %w", path, err)
		}
		if n == 0 {
			break
		}
	}

	return &Dataset{columns: columns, rows: rows}, nil
}
