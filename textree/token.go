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

// Token is a single lexeme of a LaTeX document.
type Token struct {
	Text string
	// Line is the 1-based line on which the lexeme starts.
	Line int
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("%q@%d", t.Text, t.Line)
}

// isDelimiter reports whether c is emitted as a single-character token.
func isDelimiter(c byte) bool {
	switch c {
	case '{', '}', '[', ']', '%', '\\':
		return true
	default:
		return false
	}
}

// Tokenize splits text into tokens.
//
// Newlines and delimiters are emitted as one-character tokens; every other run
// of characters is emitted as one token. A backslash immediately followed by
// a delimiter is an escape: the pair is kept as literal text (for example
// `\%` or `\{`) rather than split.
//
// Text is scanned byte by byte. Every delimiter is ASCII, so multi-byte UTF-8
// sequences are never split, and bytes that are not valid UTF-8 are copied
// into tokens unchanged.
func Tokenize(text string) []Token {
	var (
		tokens  []Token
		pending strings.Builder
		// Set when pending holds exactly one backslash that may still
		// escape the next character.
		held bool
		line = 1
	)
	flush := func() {
		if held {
			tokens = append(tokens, Token{Text: `\`, Line: line})
			held = false
			pending.Reset()
			return
		}
		if pending.Len() > 0 {
			tokens = append(tokens, Token{Text: pending.String(), Line: line})
			pending.Reset()
		}
	}

	for i := range len(text) {
		c := text[i]
		switch {
		case c == '\n':
			flush()
			tokens = append(tokens, Token{Text: "\n", Line: line})
			line++
		case held && isDelimiter(c):
			pending.WriteByte(c)
			held = false
		case c == '\\':
			flush()
			pending.WriteByte(c)
			held = true
		case isDelimiter(c):
			flush()
			tokens = append(tokens, Token{Text: text[i : i+1], Line: line})
		default:
			if held {
				flush()
			}
			pending.WriteByte(c)
		}
	}
	flush()
	return tokens
}
