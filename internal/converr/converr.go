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

// Package converr defines the error taxonomy shared by the readers, the
// dataset sink and the publishers. Every failure a user can hit is one of the
// kinds below, carrying the offending path and an optional wrapped cause.
package converr

import (
	"errors"
	"fmt"
)

// Kind classifies a conversion failure.
type Kind int

const (
	// KindFileMissing means the input path does not exist.
	KindFileMissing Kind = iota + 1
	// KindNotAFile means the input path exists but is not a regular file.
	KindNotAFile
	// KindCorruptArchive means transparent decompression failed.
	KindCorruptArchive
	// KindStructural means the file content violates format rules.
	KindStructural
	// KindEmptyResult means parsing succeeded but produced zero records.
	KindEmptyResult
	// KindPublish means the remote upload failed or a credential was missing.
	KindPublish
)

func (k Kind) String() string {
	switch k {
	case KindFileMissing:
		return "file missing"
	case KindNotAFile:
		return "not a file"
	case KindCorruptArchive:
		return "corrupt archive"
	case KindStructural:
		return "structural error"
	case KindEmptyResult:
		return "empty result"
	case KindPublish:
		return "publish error"
	default:
		return "unknown"
	}
}

// Error is a classified conversion failure.
type Error struct {
	Kind    Kind
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStructural:
		return fmt.Sprintf("invalid format in file %q: %s", e.Path, e.Message)
	case KindPublish:
		if e.Path != "" {
			return fmt.Sprintf("publish failed for %q: %s", e.Path, e.Message)
		}
		return "publish failed: " + e.Message
	default:
		return fmt.Sprintf("error processing file %q: %s", e.Path, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on Kind so callers can classify with errors.Is against a bare
// &Error{Kind: k}.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// FileMissing reports a path that does not exist.
func FileMissing(path string) *Error {
	return &Error{Kind: KindFileMissing, Path: path, Message: "input file does not exist"}
}

// NotAFile reports a path that exists but is not a regular file.
func NotAFile(path string) *Error {
	return &Error{Kind: KindNotAFile, Path: path, Message: "input path is not a file"}
}

// CorruptArchive reports a failed decompression of path.
func CorruptArchive(path string, cause error) *Error {
	return &Error{Kind: KindCorruptArchive, Path: path, Message: "not a valid gzip file", Cause: cause}
}

// Structural reports a format-rule violation in path.
func Structural(path, message string) *Error {
	return &Error{Kind: KindStructural, Path: path, Message: message}
}

// Structuralf is Structural with a formatted message.
func Structuralf(path, format string, args ...any) *Error {
	return &Error{Kind: KindStructural, Path: path, Message: fmt.Sprintf(format, args...)}
}

// EmptyResult reports a syntactically valid input that yielded no records.
func EmptyResult(path string) *Error {
	return &Error{Kind: KindEmptyResult, Path: path, Message: "no records were produced from the input"}
}

// Publish reports a failed or impossible remote upload.
func Publish(message string, cause error) *Error {
	return &Error{Kind: KindPublish, Message: message, Cause: cause}
}

// Is reports whether err is (or wraps) a taxonomy error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// KindOf returns the kind of err, or zero if err is not a taxonomy error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
