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

// Package reporter contains the types used for reporting errors and warnings
// produced while parsing and checking LaTeX documents.
package reporter

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, checking will abort with that error. If the
// reporter returns nil, the offending document is skipped and the remaining
// documents are still checked.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. Style
// findings (inconsistent hyphenation, undefined acronyms, mixed spellings)
// are delivered this way; they never cause a check to fail.
type WarningReporter func(ErrorWithPos)

// Reporter is a pair of error and warning callbacks.
type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

// NewReporter creates a new reporter that invokes the given functions on
// error or warning. Either may be nil: a nil ErrorReporter fails on the first
// error and a nil WarningReporter ignores warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler is used by the checker to serialize calls to a Reporter from
// concurrent parse tasks and to remember the first fatal error.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler that reports to rep. If rep is nil, a
// default reporter is used.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleError reports err. If err carries a position, it goes through the
// reporter, which decides whether checking may continue; any other error is
// always fatal. The returned error is non-nil if checking must abort.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	var ewp ErrorWithPos
	if errors.As(err, &ewp) {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarning reports a warning at the given position.
func (h *Handler) HandleWarning(pos SourcePos, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.reporter.Warning(errorWithSourcePos{pos: pos, underlying: err})
}

// Error returns the first fatal error, or [ErrInvalidDocument] if errors were
// reported but all of them were tolerated.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidDocument
	}
	return h.err
}

// ReporterError returns the first fatal error without the
// [ErrInvalidDocument] substitution.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
