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

	"github.com/bufbuild/stylechecker/internal/ext/iterx"
	"github.com/bufbuild/stylechecker/reporter"
	"github.com/bufbuild/stylechecker/textree"
)

// The two spelling families deliberately share the -our and -re endings, so
// words such as "colour" or "store" count as both.
var (
	usPattern = regexp.MustCompile(`(\w+zation|\w+yze|\w+yzing|\w+our|\w+our\w+|\w+re)\b`)
	ukPattern = regexp.MustCompile(`(\w+sation|\w+yse|\w+ysing|\w+our|\w+our\w+|\w+re)\b`)
)

// MixedSpellingWarning is the whole warnings digest of the localization check.
const MixedSpellingWarning = "Both US and UK spellings are used in the same document, " +
	"please check the full build logs for details."

// Localization reports US and UK spellings and warns if a document set uses
// both.
type Localization struct{}

var _ Analyzer = Localization{}

// Name implements [Analyzer].
func (Localization) Name() string {
	return "localization"
}

// spellings is every match of one pattern in one text node.
type spellings struct {
	pos   reporter.SourcePos
	words []string
}

// Analyze implements [Analyzer].
func (l Localization) Analyze(docs []*textree.Tree) *Result {
	var us, uk []spellings
	for _, doc := range docs {
		for n := range doc.Text() {
			if words := usPattern.FindAllString(n.Content(), -1); len(words) > 0 {
				us = append(us, spellings{pos: n.Pos(), words: words})
			}
			if words := ukPattern.FindAllString(n.Content(), -1); len(words) > 0 {
				uk = append(uk, spellings{pos: n.Pos(), words: words})
			}
		}
	}

	var list strings.Builder
	writeSpellings(&list, "US", us)
	list.WriteByte('\n')
	writeSpellings(&list, "UK", uk)

	res := &Result{Name: l.Name(), List: list.String()}
	if len(us) > 0 && len(uk) > 0 {
		res.Warnings = MixedSpellingWarning
		for _, family := range []struct {
			name  string
			found []spellings
		}{{"US", us}, {"UK", uk}} {
			for _, s := range family.found {
				res.Findings = append(res.Findings, Finding{
					Pos:     s.pos,
					Message: fmt.Sprintf("%s spellings: %s", family.name, quoteAll(s.words)),
				})
			}
		}
	}
	return res
}

func writeSpellings(b *strings.Builder, family string, found []spellings) {
	fmt.Fprintf(b, "%s spellings used in this document:", family)
	if len(found) == 0 {
		b.WriteString(" None")
		return
	}
	for _, s := range found {
		fmt.Fprintf(b, "\nIn %s, line %d the spellings: %s appear", s.pos.Filename, s.pos.Line, quoteAll(s.words))
	}
}

func quoteAll(words []string) string {
	return iterx.Join(iterx.Map(slices.Values(words), func(w string) string {
		return `"` + w + `"`
	}), ", ")
}
