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

package converr

import (
	"errors"
	"strings"
)

// FormatChain renders err and its causal chain, one cause per line. It is a
// pure function; the caller decides where the text goes.
//
//	error: invalid format in file "x.fasta": empty file
//	  caused by: unexpected EOF
func FormatChain(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("error: ")
	b.WriteString(err.Error())
	prev := err.Error()
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		// Skip causes whose text is already embedded in the parent message.
		if strings.Contains(prev, cause.Error()) {
			continue
		}
		b.WriteString("\n  caused by: ")
		b.WriteString(cause.Error())
		prev = cause.Error()
	}
	return b.String()
}
