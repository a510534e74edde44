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

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/stylechecker/internal/arena"
)

func TestPointers(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var a arena.Arena[int]
	assert.Equal(0, a.Len())

	p1 := a.New(5)
	p2 := p1.In(&a)
	assert.Equal(5, *a.At(p1))
	assert.False(p1.Nil())

	for i := range 64 {
		a.New(i + 6)
	}
	assert.Equal(65, a.Len())
	assert.Equal(69, *a.At(arena.Pointer[int](65)))
	// Growing the arena never moves an existing value.
	assert.Same(a.At(p1), p2)

	*p2 = 42
	assert.Equal(42, *a.At(p1))
}

func TestNilPointer(t *testing.T) {
	t.Parallel()

	var a arena.Arena[string]
	var p arena.Pointer[string]
	assert.True(t, p.Nil())
	assert.Panics(t, func() { a.At(p) })
	assert.Panics(t, func() { a.At(arena.Pointer[string](3)) })
}
