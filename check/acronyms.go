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
	"slices"
	"strings"
	"unicode"

	"github.com/bufbuild/stylechecker/reporter"
	"github.com/bufbuild/stylechecker/textree"
)

// acronymPattern matches two or more consecutive capital letters.
var acronymPattern = regexp.MustCompile(`\b([A-Z]{2,})\b`)

// Acronyms lists every acronym in the text and flags those that are never
// defined.
//
// An acronym is defined by a phrase in the same text node, in either of the
// forms "Central Processing Unit (CPU)" or "CPU (central processing unit)",
// where the initials of the words spell the acronym in any case.
type Acronyms struct{}

var _ Analyzer = Acronyms{}

// Name implements [Analyzer].
func (Acronyms) Name() string {
	return "acronyms"
}

type acronym struct {
	first       reporter.SourcePos
	definitions []string
}

// Analyze implements [Analyzer].
func (a Acronyms) Analyze(docs []*textree.Tree) *Result {
	var (
		found    orderedMap[acronym]
		patterns = make(map[string][2]*regexp.Regexp)
	)
	for _, doc := range docs {
		for n := range doc.Text() {
			text := n.Content()
			for _, m := range acronymPattern.FindAllStringSubmatch(text, -1) {
				name := m[1]
				entry, seen := found.lookup(name)
				if !seen {
					entry = found.get(name)
					entry.first = n.Pos()
				}

				pair, ok := patterns[name]
				if !ok {
					pair = definitionPatterns(name)
					patterns[name] = pair
				}
				for _, p := range pair {
					for _, def := range p.FindAllStringSubmatch(text, -1) {
						if !slices.Contains(entry.definitions, def[1]) {
							entry.definitions = append(entry.definitions, def[1])
						}
					}
				}
			}
		}
	}

	var list strings.Builder
	list.WriteString("Acronyms appearing in this document:")
	res := &Result{Name: a.Name()}
	var warnings []string
	for name, entry := range found.all() {
		fmt.Fprintf(&list, "\n%s: %s", name, strings.Join(entry.definitions, ", "))
		if len(entry.definitions) == 0 {
			warnings = append(warnings, fmt.Sprintf("The acronym %s is possibly undefined.", name))
			res.Findings = append(res.Findings, Finding{
				Pos:     entry.first,
				Message: fmt.Sprintf("acronym %s is used without a definition", name),
			})
		}
	}
	res.List = list.String()
	res.Warnings = strings.Join(warnings, "\n")
	return res
}

// definitionPatterns returns the patterns for "Full Words (ACRONYM)" and
// "ACRONYM (full words)". The first submatch of each is the full words.
func definitionPatterns(name string) [2]*regexp.Regexp {
	words := make([]string, 0, len(name))
	for _, r := range name {
		words = append(words, fmt.Sprintf(`[%c%c]\w+`, r, unicode.ToLower(r)))
	}
	phrase := strings.Join(words, `\s+`)
	return [2]*regexp.Regexp{
		regexp.MustCompile(`\b(` + phrase + `)\s+\(` + name + `\)`),
		regexp.MustCompile(`\b` + name + `\s\((` + phrase + `)\)`),
	}
}
