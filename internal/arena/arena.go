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

// Package arena defines an [Arena] type addressed by compact, stable
// pointers.
//
// Document trees are pointer-heavy graphs (parent, sibling and child links).
// Storing nodes in an arena and linking them with [Pointer] values instead of
// *T keeps the graph free of aliasing hazards: a Pointer is a plain integer,
// so a tree can be copied, compared and spliced without touching the GC's
// view of the heap.
package arena

import "fmt"

// chunkShift is the log2 of the number of values in each chunk.
const (
	chunkShift = 6
	chunkLen   = 1 << chunkShift
)

// A Pointer into an [Arena].
//
// The value of a pointer is one plus the number of values allocated before
// it, so the zero value is nil.
type Pointer[T any] uint32

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return p == 0
}

// In looks up this pointer in the given arena.
//
// arena must be the arena that allocated this pointer. If p is nil, this
// panics.
func (p Pointer[T]) In(arena *Arena[T]) *T {
	return arena.At(p)
}

// Arena stores values of type T in fixed-size chunks, which guarantees that
// the address of an allocated value never changes.
//
// A zero Arena[T] is empty and ready to use.
type Arena[T any] struct {
	// Invariant: every chunk except the last is full.
	chunks [][]T
}

// New allocates a new value on the arena and returns a pointer to it.
func (a *Arena[T]) New(value T) Pointer[T] {
	if n := len(a.chunks); n == 0 || len(a.chunks[n-1]) == chunkLen {
		a.chunks = append(a.chunks, make([]T, 0, chunkLen))
	}
	last := &a.chunks[len(a.chunks)-1]
	*last = append(*last, value)
	return Pointer[T](a.Len())
}

// At dereferences a pointer allocated by this arena.
func (a *Arena[T]) At(p Pointer[T]) *T {
	idx := int(p) - 1
	if p.Nil() || idx >= a.Len() {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", uint32(p)))
	}
	return &a.chunks[idx>>chunkShift][idx&(chunkLen-1)]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	if len(a.chunks) == 0 {
		return 0
	}
	return (len(a.chunks)-1)*chunkLen + len(a.chunks[len(a.chunks)-1])
}
