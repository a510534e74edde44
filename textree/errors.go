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

package textree

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/bufbuild/stylechecker/reporter"
)

// ErrUnbalanced is the mark carried by every [ParseError]; test for it with
// errors.Is.
var ErrUnbalanced = errors.New("unbalanced delimiters")

// ParseError is returned when a document's braces or brackets do not pair up.
// A document that fails this way should not be analyzed.
type ParseError struct {
	Pos reporter.SourcePos
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

// GetPosition implements [reporter.ErrorWithPos].
func (e *ParseError) GetPosition() reporter.SourcePos {
	return e.Pos
}

// Unwrap implements [reporter.ErrorWithPos].
func (e *ParseError) Unwrap() error {
	return e.Err
}

var _ reporter.ErrorWithPos = (*ParseError)(nil)

func newParseError(filename string, line int, format string, args ...any) *ParseError {
	return &ParseError{
		Pos: reporter.SourcePos{Filename: filename, Line: line},
		Err: errors.Mark(errors.Newf(format, args...), ErrUnbalanced),
	}
}
