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

	"github.com/bufbuild/stylechecker/check"
	"github.com/bufbuild/stylechecker/reporter"
	"github.com/bufbuild/stylechecker/textree"
)

func TestAcronyms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		list     string
		warnings string
	}{
		{
			name: "defined before",
			text: "The Central Processing Unit (CPU) is fast. The CPU runs.",
			list: "Acronyms appearing in this document:\nCPU: Central Processing Unit",
		},
		{
			name: "defined after",
			text: "The CPU (central processing unit) is fast.",
			list: "Acronyms appearing in this document:\nCPU: central processing unit",
		},
		{
			name: "both forms",
			text: "A Central Processing Unit (CPU) or CPU (central processing unit).",
			list: "Acronyms appearing in this document:\nCPU: Central Processing Unit, central processing unit",
		},
		{
			name: "defined in an earlier group",
			text: "\\emph{Random Access Memory (RAM)}\nRAM is used.",
			list: "Acronyms appearing in this document:\nRAM: Random Access Memory",
		},
		{
			name:     "undefined",
			text:     "Use the GPU.\nAsk NASA.",
			list:     "Acronyms appearing in this document:\nGPU: \nNASA: ",
			warnings: "The acronym GPU is possibly undefined.\nThe acronym NASA is possibly undefined.",
		},
		{
			name: "comments and plurals",
			text: "% ABC is ignored here\nCPUs are not acronyms.",
			list: "Acronyms appearing in this document:",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			doc := parse(t, "doc.tex", test.text)
			res := check.Acronyms{}.Analyze([]*textree.Tree{doc})
			assert.Equal(t, "acronyms", res.Name)
			assert.Equal(t, test.list, res.List)
			assert.Equal(t, test.warnings, res.Warnings)
		})
	}
}

func TestAcronymFindings(t *testing.T) {
	t.Parallel()

	docs := []*textree.Tree{
		parse(t, "a.tex", "Nothing yet.\nThe GPU is here."),
		parse(t, "b.tex", "The GPU again, and the Central Processing Unit (CPU)."),
	}
	res := check.Acronyms{}.Analyze(docs)
	assert.Equal(t, []check.Finding{{
		Pos:     reporter.SourcePos{Filename: "a.tex", Line: 2},
		Message: "acronym GPU is used without a definition",
	}}, res.Findings)
	assert.Equal(t, "Acronyms appearing in this document:\nGPU: \nCPU: Central Processing Unit", res.List)
}
