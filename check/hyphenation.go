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

package check

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bufbuild/stylechecker/reporter"
	"github.com/bufbuild/stylechecker/textree"
)

// compoundPattern matches a hyphen-joined word such as "fox-in-socks".
var compoundPattern = regexp.MustCompile(`\b(?:\S+-\S+)\b`)

// Hyphenation finds compound words that are hyphenated in one place and
// spaced, joined or tied with ~ in another.
//
// It runs in two phases: [CollectCompounds] gathers every hyphenated word
// across all documents, and only then [FindMismatches] searches all
// documents again for other spellings of those words.
type Hyphenation struct{}

var _ Analyzer = Hyphenation{}

// Name implements [Analyzer].
func (Hyphenation) Name() string {
	return "hyphenations"
}

// Analyze implements [Analyzer].
func (h Hyphenation) Analyze(docs []*textree.Tree) *Result {
	compounds := CollectCompounds(docs)
	mismatches := FindMismatches(compounds, docs)

	var list strings.Builder
	list.WriteString("Hyphenated words appearing in this document:")
	for word, positions := range compounds.words.all() {
		fmt.Fprintf(&list, "\n%s appears %d time%s", word, len(*positions), plural(len(*positions)))
	}

	res := &Result{Name: h.Name(), List: list.String()}
	var warnings []string
	for word, occurrences := range mismatches.words.all() {
		locations := make([]string, len(*occurrences))
		for i, o := range *occurrences {
			locations[i] = fmt.Sprintf(`"%s" in %s on line %d`, o.Text, o.Pos.Filename, o.Pos.Line)
			res.Findings = append(res.Findings, Finding{
				Pos:     o.Pos,
				Message: fmt.Sprintf(`"%s" also appears as "%s"`, word, o.Text),
			})
		}
		warnings = append(warnings, fmt.Sprintf(`"%s" also appears as %s`, word, strings.Join(locations, ", ")))
	}
	res.Warnings = strings.Join(warnings, "\n")
	return res
}

// Compounds is the set of hyphenated words found in a corpus, in order of
// first appearance.
type Compounds struct {
	words orderedMap[[]reporter.SourcePos]
}

// Words returns the compound words in order of first appearance.
func (c *Compounds) Words() []string {
	return c.words.keys
}

// Positions returns where word appears hyphenated.
func (c *Compounds) Positions(word string) []reporter.SourcePos {
	if p, ok := c.words.lookup(word); ok {
		return *p
	}
	return nil
}

// CollectCompounds is the first phase of the hyphenation check.
func CollectCompounds(docs []*textree.Tree) *Compounds {
	c := new(Compounds)
	for _, doc := range docs {
		for n := range doc.Text() {
			for _, word := range compoundPattern.FindAllString(n.Content(), -1) {
				p := c.words.get(word)
				*p = append(*p, n.Pos())
			}
		}
	}
	return c
}

// Occurrence is a spelling of a compound word found in a document.
type Occurrence struct {
	Pos  reporter.SourcePos
	Text string
}

// Mismatches maps compound words to their alternate spellings, in order of
// discovery.
type Mismatches struct {
	words orderedMap[[]Occurrence]
}

// Len returns the number of compound words with alternate spellings.
func (m *Mismatches) Len() int {
	return m.words.len()
}

// Occurrences returns the alternate spellings found for word.
func (m *Mismatches) Occurrences(word string) []Occurrence {
	if o, ok := m.words.lookup(word); ok {
		return *o
	}
	return nil
}

// FindMismatches is the second phase of the hyphenation check. It depends
// only on its arguments.
//
// Each word's hyphens are replaced by an optional non-hyphen character, so
// "fox-in-socks" also matches "fox in socks", "fox~in~socks" and
// "foxinsocks". Such a pattern may match inside a longer compound's spaced
// form, so "fox-in" also matches the start of "fox in socks".
func FindMismatches(c *Compounds, docs []*textree.Tree) *Mismatches {
	patterns := make([]*regexp.Regexp, len(c.Words()))
	for i, word := range c.Words() {
		patterns[i] = alternatePattern(word)
	}

	m := new(Mismatches)
	for _, doc := range docs {
		for n := range doc.Text() {
			for i, word := range c.Words() {
				for _, text := range patterns[i].FindAllString(n.Content(), -1) {
					o := m.words.get(word)
					*o = append(*o, Occurrence{Pos: n.Pos(), Text: text})
				}
			}
		}
	}
	return m
}

func alternatePattern(word string) *regexp.Regexp {
	parts := strings.Split(word, "-")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return regexp.MustCompile(`\b` + strings.Join(parts, `[^-]?`) + `\b`)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
