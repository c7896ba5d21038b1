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
	"bufio"
	"fmt"
	"strings"

	"github.com/mathysgrapotte/bio2parquet/internal/converr"
)

// FASTA sequences wrap across lines with no record terminator, so the reader
// tracks whether it is inside a record and emits only when the next header or
// EOF closes the current one. Each edge case (empty file, leading sequence
// data, header with no sequence) is a distinct transition.
type fastaState int

const (
	stateAwaitingFirstHeader fastaState = iota
	stateInRecord
	stateDone
)

// FASTAColumns is the fixed schema of FASTA rows.
var FASTAColumns = []string{"header", "sequence"}

// FASTAReader streams {header, sequence} rows from a FASTA file, enforcing
// structural rules as it goes. Lines are classified as header (leading '>'),
// blank (ignored), or sequence data; wrapped sequence lines are concatenated
// with no separator.
type FASTAReader struct {
	path    string
	in      *input
	scanner *bufio.Scanner

	state  fastaState
	header string
	seq    strings.Builder
	err    error
}

var _ Reader = (*FASTAReader)(nil)

// NewFASTAReader opens path for reading. Existence, file-type and gzip
// preconditions are checked here; structural validation happens lazily as
// rows are pulled.
func NewFASTAReader(path string) (*FASTAReader, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(in)
	// Unwrapped sequences can put an entire chromosome on one line.
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	return &FASTAReader{
		path:    path,
		in:      in,
		scanner: scanner,
		state:   stateAwaitingFirstHeader,
	}, nil
}

func (r *FASTAReader) Columns() []string {
	return FASTAColumns
}

func (r *FASTAReader) Close() error {
	return r.in.Close()
}

// GetRow advances the state machine until a record completes. Errors are
// sticky: once a structural violation is reported, every later call reports
// it again rather than resuming mid-file.
func (r *FASTAReader) GetRow() (map[string]string, bool, error) {
	if r.err != nil {
		return nil, false, r.err
	}
	if r.state == stateDone {
		return nil, true, nil
	}

	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			// Header text is everything after '>', verbatim. Downstream code
			// must not assume any structure within it.
			header := line[1:]
			switch r.state {
			case stateAwaitingFirstHeader:
				r.state = stateInRecord
				r.header = header
			case stateInRecord:
				if r.seq.Len() == 0 {
					return nil, false, r.fail(converr.Structuralf(r.path, "sequence missing for header %q", r.header))
				}
				row := r.emit()
				r.header = header
				return row, false, nil
			}
			continue
		}

		if r.state == stateAwaitingFirstHeader {
			return nil, false, r.fail(converr.Structural(r.path, "sequence before header"))
		}
		r.seq.WriteString(line)
	}

	if err := r.scanner.Err(); err != nil {
		if r.in.gzReader != nil {
			return nil, false, r.fail(converr.CorruptArchive(r.path, err))
		}
		return nil, false, r.fail(fmt.Errorf("read %s: %w", r.path, err))
	}

	switch r.state {
	case stateAwaitingFirstHeader:
		return nil, false, r.fail(converr.Structural(r.path, "empty file"))
	case stateInRecord:
		if r.seq.Len() == 0 {
			return nil, false, r.fail(converr.Structuralf(r.path, "sequence missing for last header %q", r.header))
		}
		row := r.emit()
		r.state = stateDone
		return row, false, nil
	default:
		return nil, true, nil
	}
}

// emit closes out the current record and resets the accumulator.
func (r *FASTAReader) emit() map[string]string {
	row := map[string]string{
		"header":   r.header,
		"sequence": r.seq.String(),
	}
	r.seq.Reset()
	return row
}

func (r *FASTAReader) fail(err error) error {
	r.err = err
	return err
}
