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

package iterx_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/stylechecker/internal/ext/iterx"
)

func TestFilterMap(t *testing.T) {
	t.Parallel()

	seq := slices.Values([]int{1, 2, 3, 4, 5})
	even := iterx.Filter(seq, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, slices.Collect(even))

	doubled := iterx.Map(even, func(v int) int { return v * 2 })
	assert.Equal(t, "4, 8", iterx.Join(doubled, ", "))
	assert.Equal(t, 5, iterx.Count(seq))
}

func TestFirst(t *testing.T) {
	t.Parallel()

	v, ok := iterx.First(slices.Values([]string{"a", "b"}))
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = iterx.First(slices.Values([]string(nil)))
	assert.False(t, ok)
}
