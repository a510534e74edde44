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

// Package slicesx contains extensions to Go's package slices.
package slicesx

// Last returns the last element of the slice, unless it is empty, in which
// case it returns the zero value and false.
func Last[S ~[]E, E any](s S) (element E, ok bool) {
	if len(s) == 0 {
		return element, false
	}
	return s[len(s)-1], true
}

// Pop removes the last element of *s and returns it, treating the slice as a
// stack. Returns the zero value and false if *s is empty.
func Pop[S ~[]E, E any](s *S) (element E, ok bool) {
	element, ok = Last(*s)
	if ok {
		*s = (*s)[:len(*s)-1]
	}
	return element, ok
}
