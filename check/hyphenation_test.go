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

package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/stylechecker/check"
	"github.com/bufbuild/stylechecker/reporter"
	"github.com/bufbuild/stylechecker/textree"
)

func TestHyphenation(t *testing.T) {
	t.Parallel()

	doc := parse(t, "fox.tex", "fox-in-socks and fox-in\nfox~in socks, fox in socks and fox-in-socks\n")
	res := check.Hyphenation{}.Analyze([]*textree.Tree{doc})

	assert.Equal(t, "hyphenations", res.Name)
	assert.Equal(t, "Hyphenated words appearing in this document:\n"+
		"fox-in-socks appears 2 times\n"+
		"fox-in appears 1 time", res.List)
	assert.Equal(t, `"fox-in-socks" also appears as "fox~in socks" in fox.tex on line 2, "fox in socks" in fox.tex on line 2`+"\n"+
		`"fox-in" also appears as "fox~in" in fox.tex on line 2, "fox in" in fox.tex on line 2`, res.Warnings)

	require.Len(t, res.Findings, 4)
	assert.Equal(t, check.Finding{
		Pos:     reporter.SourcePos{Filename: "fox.tex", Line: 2},
		Message: `"fox-in-socks" also appears as "fox~in socks"`,
	}, res.Findings[0])
}

func TestHyphenationNoMismatches(t *testing.T) {
	t.Parallel()

	doc := parse(t, "ok.tex", "A well-known and well-known fact.\n\\emph{state-of-the-art}\n")
	res := check.Hyphenation{}.Analyze([]*textree.Tree{doc})

	assert.Equal(t, "Hyphenated words appearing in this document:\n"+
		"well-known appears 2 times\n"+
		"state-of-the-art appears 1 time", res.List)
	assert.False(t, res.HasWarnings())
	assert.Empty(t, res.Findings)
}

func TestHyphenationMultipleDocuments(t *testing.T) {
	t.Parallel()

	docs := []*textree.Tree{
		parse(t, "mf1.tex", "\\section{Intro}\n\nSome text.\nbricks with blocks\n"),
		parse(t, "mf2.tex", "We build bricks-with-blocks.\n"),
	}
	compounds := check.CollectCompounds(docs)
	assert.Equal(t, []string{"bricks-with-blocks"}, compounds.Words())
	assert.Equal(t, []reporter.SourcePos{{Filename: "mf2.tex", Line: 1}}, compounds.Positions("bricks-with-blocks"))

	mismatches := check.FindMismatches(compounds, docs)
	assert.Equal(t, 1, mismatches.Len())
	assert.Equal(t, []check.Occurrence{
		{Pos: reporter.SourcePos{Filename: "mf1.tex", Line: 4}, Text: "bricks with blocks"},
	}, mismatches.Occurrences("bricks-with-blocks"))

	res := check.Hyphenation{}.Analyze(docs)
	assert.Equal(t, "Hyphenated words appearing in this document:\nbricks-with-blocks appears 1 time", res.List)
	assert.Equal(t, `"bricks-with-blocks" also appears as "bricks with blocks" in mf1.tex on line 4`, res.Warnings)
}

func TestHyphenationIgnoresCommentsAndCommands(t *testing.T) {
	t.Parallel()

	doc := parse(t, "c.tex", "% a-b in a comment\n\\label{fig-one} a b\n")
	res := check.Hyphenation{}.Analyze([]*textree.Tree{doc})
	// The label argument is a text node; the comment is not.
	assert.Equal(t, "Hyphenated words appearing in this document:\nfig-one appears 1 time", res.List)
	assert.Empty(t, res.Warnings)
}

func TestHyphenationQuotesWords(t *testing.T) {
	t.Parallel()

	doc := parse(t, "q.tex", "x+y-z and x+y z and xxy z\n")
	mismatches := check.FindMismatches(check.CollectCompounds([]*textree.Tree{doc}), []*textree.Tree{doc})
	assert.Equal(t, []check.Occurrence{
		{Pos: reporter.SourcePos{Filename: "q.tex", Line: 1}, Text: "x+y z"},
	}, mismatches.Occurrences("x+y-z"))
}

func TestHyphenationSkipsDroppedGroups(t *testing.T) {
	t.Parallel()

	doc := parse(t, "link.tex", "A fox-in-socks tale.\n\\href{http://x}{fox in socks}\n")
	res := check.Hyphenation{}.Analyze([]*textree.Tree{doc})
	assert.Equal(t, "Hyphenated words appearing in this document:\nfox-in-socks appears 1 time", res.List)
	assert.False(t, res.HasWarnings())
}
