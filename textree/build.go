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
	"strings"

	"github.com/bufbuild/stylechecker/internal/ext/mapsx"
	"github.com/bufbuild/stylechecker/internal/ext/slicesx"
	"github.com/bufbuild/stylechecker/internal/ext/stringsx"
)

// Parse tokenizes, builds and prunes a document.
//
// If the document's delimiters are unbalanced, Parse returns a [*ParseError]
// and no tree.
func Parse(filename, text string) (*Tree, error) {
	tree, err := Build(filename, Tokenize(text))
	if err != nil {
		return nil, err
	}
	tree.Prune()
	return tree, nil
}

// Build constructs an unpruned tree from tokens produced by [Tokenize].
//
// On a [*ParseError], Build still returns the partial tree built up to the
// offending token, for diagnostics.
func Build(filename string, tokens []Token) (*Tree, error) {
	t := &Tree{filename: filename}
	t.root = t.nodes.New(rawNode{kind: KindRoot})

	b := &builder{tree: t, tokens: tokens}
	head, err := b.chain(t.root, Token{})
	t.at(t.root).child = head
	if err != nil {
		return t, err
	}
	return t, nil
}

type builder struct {
	tree   *Tree
	tokens []Token
	pos    int
}

// closer returns the token that ends a group opened by open.
func closer(open Token) string {
	switch open.Text {
	case "{":
		return "}"
	case "[":
		return "]"
	default:
		return ""
	}
}

// chain builds the sibling chain enclosed by open, which is the zero Token at
// the top level, and returns its head. It returns after consuming the token
// that closes open.
func (b *builder) chain(parent ptr, open Token) (ptr, error) {
	var (
		head, tail ptr
		kind       = KindText
		content    strings.Builder
		options    []ptr
	)
	emit := func(line int) ptr {
		p := b.tree.nodes.New(rawNode{
			content: strings.TrimSpace(content.String()),
			kind:    kind,
			line:    line,
			parent:  parent,
			prev:    tail,
			options: options,
		})
		for _, opt := range options {
			b.adopt(p, opt)
		}
		if tail.Nil() {
			head = p
		} else {
			b.tree.at(tail).next = p
		}
		tail = p
		content.Reset()
		options = nil
		return p
	}

	for b.pos < len(b.tokens) {
		tok := b.tokens[b.pos]
		b.pos++

		// Delimiters have no meaning inside a comment.
		if kind == KindComment && tok.Text != "\n" {
			content.WriteString(tok.Text)
			continue
		}

		switch tok.Text {
		case "\n":
			emit(tok.Line)
			kind = KindText
		case "%":
			emit(tok.Line)
			kind = KindComment
		case `\`:
			emit(tok.Line)
			kind = KindCommand
			content.WriteString(tok.Text)
		case "{":
			p := emit(tok.Line)
			child, err := b.chain(p, tok)
			b.tree.at(p).child = child
			if err != nil {
				return head, err
			}
			kind = KindText
		case "[":
			if kind != KindCommand || !takesOptions(content.String()) {
				content.WriteString(tok.Text)
				continue
			}
			// The option group belongs to the command still being
			// accumulated; emit adopts it once the command node exists.
			opt, err := b.chain(0, tok)
			if !opt.Nil() {
				options = append(options, opt)
			}
			if err != nil {
				return head, err
			}
		case "}", "]":
			if tok.Text == closer(open) {
				emit(tok.Line)
				return head, nil
			}
			if tok.Text == "]" {
				content.WriteString(tok.Text)
				continue
			}
			emit(tok.Line)
			if open.Text == "[" {
				return head, newParseError(b.tree.filename, tok.Line,
					"unexpected '}' inside '[' opened on line %d", open.Line)
			}
			return head, newParseError(b.tree.filename, tok.Line,
				"unexpected '}' with no matching '{'")
		default:
			content.WriteString(tok.Text)
		}
	}

	emit(b.lastLine())
	if open.Text != "" {
		return head, newParseError(b.tree.filename, open.Line,
			"'%s' opened on line %d is never closed", open.Text, open.Line)
	}
	return head, nil
}

// adopt sets the parent of every node in the chain starting at head.
func (b *builder) adopt(parent, head ptr) {
	for p := head; !p.Nil(); p = b.tree.at(p).next {
		b.tree.at(p).parent = parent
	}
}

func (b *builder) lastLine() int {
	if tok, ok := slicesx.Last(b.tokens); ok {
		return tok.Line
	}
	return 1
}

// sizedDelimiters are the commands whose "[" is a delimiter to be sized, as
// in "\left[ 0, 1 \right)", never an optional argument.
var sizedDelimiters = mapsx.Set(
	"left", "right", "middle",
	"big", "Big", "bigg", "Bigg",
	"bigl", "Bigl", "biggl", "Biggl",
	"bigr", "Bigr", "biggr", "Biggr",
	"bigm", "Bigm", "biggm", "Biggm",
)

// takesOptions reports whether a "[" after the command s opens an option
// group.
func takesOptions(s string) bool {
	if !isControlSequence(s) {
		return false
	}
	_, sized := sizedDelimiters[strings.TrimPrefix(s, `\`)]
	return !sized
}

// isControlSequence reports whether s is a backslash followed by a command
// name, optionally starred, with nothing after it.
func isControlSequence(s string) bool {
	name, ok := strings.CutPrefix(s, `\`)
	if !ok {
		return false
	}
	name = strings.TrimSuffix(name, "*")
	if name == "" {
		return false
	}
	return stringsx.EveryFunc(name, func(r rune) bool {
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '@'
	})
}
