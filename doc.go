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

// Package stylechecker runs editorial style checks over LaTeX documents.
//
// Checking is a two step process:
//  1. Parse: each document is read and turned into a tree of structural
//     nodes. Also see: textree.Parse
//  2. Analyze: each check walks the text nodes of every tree and produces an
//     informational list and, possibly, a set of warnings.
//     Also see: check.Analyzer
//
// The checks that ship with this package are:
//   - hyphenations: compound words such as "fox-in-socks" that also appear
//     spelled with spaces or without separators.
//   - acronyms: runs of capital letters and whether the document defines
//     them with a parenthesized expansion.
//   - localization: US and UK spelling variants used side by side.
//
// # Resolvers
//
// A Resolver is how the checker locates documents. It can supply LaTeX
// source, which the checker parses, or an already-parsed tree.
//
// # Checker
//
// A Checker accepts a list of file names and a list of checks and produces
// one result per check. Documents are parsed in parallel and every tree is
// parsed once and shared by all checks, which also run in parallel. Trees
// are never mutated after parsing, so this requires no locking. A minimal
// Checker, that resolves files by loading them from the file system based on
// the current working directory, can be had with the following simple
// snippet:
//
//	checker := stylechecker.Checker{
//	    Resolver: &stylechecker.SourceResolver{},
//	}
//
// This minimal Checker will use default parallelism, equal to the number of
// CPU cores detected, and it will fail fast at the first malformed document.
// Both aspects can be customized by setting other fields.
package stylechecker
