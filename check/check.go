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

// Package check implements the style checks run over parsed LaTeX documents:
// inconsistent hyphenation of compound words, undefined acronyms, and mixed
// US/UK spelling.
//
// Each check is an [Analyzer] that consumes the text nodes of one or more
// [textree.Tree] values and produces a [Result]: a human-readable list
// report, an optional warnings digest, and the individual findings behind
// the warnings. The list and warnings texts are consumed verbatim by LaTeX
// build tooling, so their wording is fixed.
package check

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/bufbuild/stylechecker/internal/ext/osx"
	"github.com/bufbuild/stylechecker/reporter"
	"github.com/bufbuild/stylechecker/textree"
)

// Analyzer is a single style check.
//
// Analyze must not mutate the trees it is given; several analyzers may run
// over the same trees concurrently.
type Analyzer interface {
	// Name is the base name of the check's output files.
	Name() string
	Analyze(docs []*textree.Tree) *Result
}

// Finding is one occurrence of a style problem.
type Finding struct {
	Pos     reporter.SourcePos
	Message string
}

// Result is the outcome of running an [Analyzer].
type Result struct {
	Name string
	// List is the informational report, written to <Name>.list.
	List string
	// Warnings is the warnings digest, written to <Name>.warnings. Empty
	// if the check found nothing to warn about.
	Warnings string
	Findings []Finding
}

// HasWarnings reports whether a warnings file will be written.
func (r *Result) HasWarnings() bool {
	return r.Warnings != ""
}

// WriteFiles writes <Name>.list into dir, and <Name>.warnings if there are
// warnings. A warnings file left over from an earlier run is removed when
// there are none, so its presence always reflects this result.
func (r *Result) WriteFiles(dir string) error {
	listPath := filepath.Join(dir, r.Name+".list")
	if err := os.WriteFile(listPath, []byte(r.List), osx.PermAR|osx.PermUW); err != nil {
		return errors.Wrapf(err, "writing %s", listPath)
	}

	warnPath := filepath.Join(dir, r.Name+".warnings")
	if !r.HasWarnings() {
		if err := osx.RemoveIfExists(warnPath); err != nil {
			return errors.Wrapf(err, "removing stale %s", warnPath)
		}
		return nil
	}
	if err := os.WriteFile(warnPath, []byte(r.Warnings), osx.PermAR|osx.PermUW); err != nil {
		return errors.Wrapf(err, "writing %s", warnPath)
	}
	return nil
}

// All returns every available check, in the order their outputs are
// conventionally produced.
func All() []Analyzer {
	return []Analyzer{Hyphenation{}, Acronyms{}, Localization{}}
}

// Names returns the names of all checks.
func Names() []string {
	var names []string
	for _, a := range All() {
		names = append(names, a.Name())
	}
	return names
}

// Lookup returns the check with the given name.
func Lookup(name string) (Analyzer, bool) {
	i := slices.IndexFunc(All(), func(a Analyzer) bool { return a.Name() == name })
	if i < 0 {
		return nil, false
	}
	return All()[i], true
}
