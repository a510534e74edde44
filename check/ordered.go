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

package check

import "iter"

// orderedMap is a string-keyed map that remembers insertion order. Reports
// list entries in the order they were first seen in the documents.
type orderedMap[V any] struct {
	keys   []string
	values map[string]*V
}

// get returns the value for key, inserting a zero value if it is missing.
func (m *orderedMap[V]) get(key string) *V {
	if m.values == nil {
		m.values = make(map[string]*V)
	}
	v, ok := m.values[key]
	if !ok {
		v = new(V)
		m.values[key] = v
		m.keys = append(m.keys, key)
	}
	return v
}

func (m *orderedMap[V]) lookup(key string) (*V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *orderedMap[V]) len() int {
	return len(m.keys)
}

func (m *orderedMap[V]) all() iter.Seq2[string, *V] {
	return func(yield func(string, *V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
