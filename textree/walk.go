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
	"iter"
	"slices"

	"github.com/bufbuild/stylechecker/internal/ext/iterx"
	"github.com/bufbuild/stylechecker/internal/ext/slicesx"
)

// Walk returns the nodes of the tree in document order: each node, then its
// option groups, then its brace group, then its following siblings. The root
// itself is not yielded.
//
// Walk does not mutate the tree and uses an explicit stack, so it may be
// called repeatedly, concurrently, and on arbitrarily deep documents.
func (t *Tree) Walk() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var stack []ptr
		if head := t.at(t.root).child; !head.Nil() {
			stack = append(stack, head)
		}
		for {
			p, ok := slicesx.Pop(&stack)
			if !ok {
				return
			}
			if !yield(Node{tree: t, ptr: p}) {
				return
			}

			n := t.at(p)
			if !n.next.Nil() {
				stack = append(stack, n.next)
			}
			if !n.child.Nil() {
				stack = append(stack, n.child)
			}
			for _, opt := range slices.Backward(n.options) {
				stack = append(stack, opt)
			}
		}
	}
}

// Nodes returns the result of [Tree.Walk] as a slice.
func (t *Tree) Nodes() []Node {
	return slices.Collect(t.Walk())
}

// Text returns only the [KindText] nodes of [Tree.Walk].
func (t *Tree) Text() iter.Seq[Node] {
	return iterx.Filter(t.Walk(), func(n Node) bool {
		return n.Kind() == KindText
	})
}

// Len returns the number of nodes reachable from the root, excluding the
// root.
func (t *Tree) Len() int {
	return iterx.Count(t.Walk())
}
