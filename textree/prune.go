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

// Prune removes every node whose content is empty, together with everything
// nested under it. A bare group such as the second argument of
// "\href{url}{text}" hangs off an empty node and is removed with it.
// Pruning a pruned tree does nothing.
func (t *Tree) Prune() {
	root := t.at(t.root)
	root.child = t.pruneChain(root.child, t.root)
}

// pruneChain prunes the chain starting at head, whose nodes belong to parent,
// and returns the new head.
func (t *Tree) pruneChain(head, parent ptr) ptr {
	var newHead, last ptr
	link := func(p ptr) {
		n := t.at(p)
		n.parent = parent
		n.prev = last
		if last.Nil() {
			newHead = p
		} else {
			t.at(last).next = p
		}
		last = p
	}

	for p := head; !p.Nil(); {
		n := t.at(p)
		next := n.next
		if n.content != "" {
			n.child = t.pruneChain(n.child, p)
			opts := n.options[:0]
			for _, opt := range n.options {
				if opt = t.pruneChain(opt, p); !opt.Nil() {
					opts = append(opts, opt)
				}
			}
			n.options = opts
			link(p)
		}
		p = next
	}
	if !last.Nil() {
		t.at(last).next = 0
	}
	return newHead
}
