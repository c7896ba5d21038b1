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
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/mathysgrapotte/bio2parquet/internal/converr"
)

// input is an open, possibly decompressed, source stream. Close releases the
// gzip reader (when present) and the underlying file on every exit path.
type input struct {
	io.Reader
	file     *os.File
	gzReader *gzip.Reader
}

func (in *input) Close() error {
	var err error
	if in.gzReader != nil {
		err = in.gzReader.Close()
	}
	if in.file != nil {
		if cerr := in.file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openInput validates that path exists and is a regular file, then opens it,
// decompressing transparently when the name carries a .gz suffix. A corrupt
// gzip header surfaces as KindCorruptArchive before any record is produced.
func openInput(path string) (*input, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, converr.FileMissing(path)
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, converr.NotAFile(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, ".gz") {
		return &input{Reader: file, file: file}, nil
	}

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, converr.CorruptArchive(path, err)
	}
	return &input{Reader: gzReader, file: file, gzReader: gzReader}, nil
}
