// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reporter

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrInvalidDocument is a sentinel error that is returned when one or more
// documents could not be parsed, but the configured ErrorReporter always
// returned nil, so the remaining documents were still analyzed.
var ErrInvalidDocument = errors.New("check failed: invalid LaTeX source")

// SourcePos identifies a line within a LaTeX document.
type SourcePos struct {
	Filename string
	Line     int
}

// String returns "filename:line", or just the filename if the line is unknown.
func (p SourcePos) String() string {
	if p.Line <= 0 {
		return p.Filename
	}
	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}

// ErrorWithPos is an error about a LaTeX document that includes information
// about the location in the document that caused the error.
//
// The value of Error() will contain both the SourcePos and Underlying error.
// The value of Unwrap() will only be the Underlying error.
type ErrorWithPos interface {
	error
	GetPosition() SourcePos
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source position.
func Error(pos SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments.
func Errorf(pos SourcePos, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: errors.Newf(format, args...)}
}

type errorWithSourcePos struct {
	underlying error
	pos        SourcePos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface, supplying the location
// in the document that caused the error.
func (e errorWithSourcePos) GetPosition() SourcePos {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error. This error will not include location information.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
