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

	"github.com/bufbuild/stylechecker/internal/arena"
	"github.com/bufbuild/stylechecker/reporter"
)

// Kind is the kind of a [Node].
type Kind int8

const (
	KindRoot Kind = iota
	KindComment
	KindCommand
	KindText
)

var kindNames = [...]string{
	KindRoot:    "Root",
	KindComment: "Comment",
	KindCommand: "Command",
	KindText:    "Text",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type ptr = arena.Pointer[rawNode]

// rawNode is the arena representation of a node. All links are arena
// pointers; the zero pointer means "none".
type rawNode struct {
	content string
	kind    Kind
	line    int

	// parent is the node whose child (or option) chain contains this one.
	parent ptr
	// prev and next link the siblings of one chain.
	prev, next ptr
	// child is the head of the chain nested in this node's braces.
	child ptr
	// options are the heads of the chains in this command's [...] groups.
	options []ptr
}

// Tree is a parsed LaTeX document.
//
// The tree always has a node of kind [KindRoot] whose child chain holds the
// top-level content of the document. Trees returned by [Parse] are pruned and
// are safe for concurrent use.
type Tree struct {
	filename string
	nodes    arena.Arena[rawNode]
	root     ptr
}

// Filename returns the name the tree was parsed under.
func (t *Tree) Filename() string {
	return t.filename
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return Node{tree: t, ptr: t.root}
}

func (t *Tree) at(p ptr) *rawNode {
	return p.In(&t.nodes)
}

func (t *Tree) node(p ptr) Node {
	if p.Nil() {
		return Node{}
	}
	return Node{tree: t, ptr: p}
}

// Node is a reference to a node in a [Tree].
//
// The zero Node is not part of any tree; every accessor on it returns a zero
// value.
type Node struct {
	tree *Tree
	ptr  ptr
}

// IsZero reports whether this is the zero Node.
func (n Node) IsZero() bool {
	return n.tree == nil || n.ptr.Nil()
}

func (n Node) raw() *rawNode {
	if n.IsZero() {
		return &rawNode{}
	}
	return n.tree.at(n.ptr)
}

// Kind returns the kind of this node.
func (n Node) Kind() Kind {
	return n.raw().kind
}

// Content returns the node's text with surrounding whitespace removed.
// Command nodes include their leading backslash.
func (n Node) Content() string {
	return n.raw().content
}

// Line returns the line of the token that ended this node.
func (n Node) Line() int {
	return n.raw().line
}

// Pos returns the node's position for reporting.
func (n Node) Pos() reporter.SourcePos {
	if n.IsZero() {
		return reporter.SourcePos{}
	}
	return reporter.SourcePos{Filename: n.tree.filename, Line: n.Line()}
}

// Parent returns the node this node is nested in. Top-level nodes return the
// root; the root returns the zero Node.
func (n Node) Parent() Node {
	return n.tree.nodeOrZero(n.raw().parent)
}

// Prev returns the previous sibling, if any.
func (n Node) Prev() Node {
	return n.tree.nodeOrZero(n.raw().prev)
}

// Next returns the next sibling, if any.
func (n Node) Next() Node {
	return n.tree.nodeOrZero(n.raw().next)
}

// Child returns the first node of the brace group following this node, if any.
func (n Node) Child() Node {
	return n.tree.nodeOrZero(n.raw().child)
}

// Options returns the first node of each bracketed option group of a command.
func (n Node) Options() []Node {
	opts := n.raw().options
	if len(opts) == 0 {
		return nil
	}
	out := make([]Node, len(opts))
	for i, p := range opts {
		out[i] = n.tree.node(p)
	}
	return out
}

// String implements [fmt.Stringer].
func (n Node) String() string {
	if n.IsZero() {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%d): %s", n.Kind(), n.Line(), n.Content())
}

func (t *Tree) nodeOrZero(p ptr) Node {
	if t == nil {
		return Node{}
	}
	return t.node(p)
}
