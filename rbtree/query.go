// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rbtree

// FindAll returns the values stored under key in in-order sequence, which for
// a single key is the order they were inserted. A missing key yields an empty,
// non-nil slice.
func (t *Tree) FindAll(key string) []string {
	t.mustBeOpen()

	values := []string{}
	n := t.firstOfRun(key)
	for n != t.nilNode && n.key == key {
		values = append(values, n.value)
		n = t.successor(n)
	}
	return values
}

