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

// Package textree parses LaTeX source into a tree of nodes that reflects the
// nesting of brace groups and command arguments.
//
// Parsing happens in three stages:
//
//  1. [Tokenize] splits raw text into lexemes, each tagged with the line on
//     which it starts. Newlines and the delimiters { } [ ] % \ become their
//     own tokens, unless escaped with a backslash.
//  2. [Build] consumes the tokens and constructs a [Tree]. Every "{" opens a
//     nested scope that becomes the child of the node preceding it, and a "["
//     directly after a command opens an option group attached to that command.
//     Delimiter-sizing commands such as \left and \bigl are the exception:
//     their "[" is text.
//  3. [Tree.Prune] removes nodes without content, and the groups nested
//     under them.
//
// [Parse] runs all three stages. The resulting tree is never mutated
// afterwards, so it may be walked by any number of goroutines at once.
//
// This is not a LaTeX implementation: there is no macro expansion, no
// catcode handling and no verification that the document compiles. Malformed
// input either yields a best-effort tree or, if delimiters are unbalanced, a
// [*ParseError].
package textree
