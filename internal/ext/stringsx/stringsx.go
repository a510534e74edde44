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

// Package stringsx contains extensions to Go's package strings.
package stringsx

import (
	"iter"
	"strings"

	"github.com/bufbuild/stylechecker/internal/ext/iterx"
)

// EveryFunc verifies that all runes in the string satisfy the given predicate.
func EveryFunc(s string, p func(rune) bool) bool {
	return iterx.All(Runes(s), p)
}

// Runes returns an iterator over the runes in a string.
//
// Each non-UTF-8 byte in the string is yielded as a replacement character (U+FFFD).
func Runes(s string) iter.Seq[rune] {
	return func(yield func(r rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// TrimBOM removes a leading UTF-8 byte order mark.
func TrimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
