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

package textree_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"

	"github.com/bufbuild/stylechecker/textree"
)

// TestDataDriven runs the scripts in testdata. Supported directives:
//
//	parse: print the pruned tree, or the parse error
//	walk:  print the nodes in document order, one per line
//	tokens: print the tokens, one per line
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "tokens":
				var b strings.Builder
				for _, tok := range textree.Tokenize(d.Input) {
					fmt.Fprintln(&b, tok)
				}
				return b.String()
			case "parse", "walk":
				tree, err := textree.Parse("doc.tex", d.Input)
				if err != nil {
					return fmt.Sprintf("error: %v\n", err)
				}
				if d.Cmd == "parse" {
					return tree.String()
				}
				var b strings.Builder
				for n := range tree.Walk() {
					fmt.Fprintln(&b, n)
				}
				return b.String()
			default:
				t.Fatalf("unknown directive %q", d.Cmd)
				return ""
			}
		})
	})
}
