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
	"strings"
)

// String renders the tree the way the Unix tree command renders directories:
//
//	├── Command (1): \documentclass
//	│   └── Text (1): article
//	└── Command (2): \begin
//	    └── Text (2): document
//
// Option groups are rendered as "Option" entries before the brace group.
func (t *Tree) String() string {
	var b strings.Builder
	t.printChain(&b, t.at(t.root).child, "", false)
	return b.String()
}

// printChain writes the chain starting at p with the given indentation. more
// is set if further entries follow the chain at the same depth.
func (t *Tree) printChain(b *strings.Builder, p ptr, indent string, more bool) {
	for !p.Nil() {
		n := t.at(p)
		last := n.next.Nil() && !more
		label := fmt.Sprintf("%s (%d): %s", n.kind, n.line, strings.ReplaceAll(n.content, "\n", ""))
		inner := printEntry(b, indent, last, label)

		for i, opt := range n.options {
			optLast := i == len(n.options)-1 && n.child.Nil()
			t.printChain(b, opt, printEntry(b, inner, optLast, "Option"), false)
		}
		t.printChain(b, n.child, inner, false)
		p = n.next
	}
}

// printEntry writes one line and returns the indentation for its children.
func printEntry(b *strings.Builder, indent string, last bool, label string) string {
	b.WriteString(indent)
	if last {
		b.WriteString("└── ")
	} else {
		b.WriteString("├── ")
	}
	b.WriteString(label)
	b.WriteByte('\n')

	if last {
		return indent + "    "
	}
	return indent + "│   "
}
