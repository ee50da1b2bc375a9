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

import "iter"

// All yields every (key, value) pair in key order. The tree must not be
// modified while the sequence is being consumed.
func (t *Tree) All() iter.Seq2[string, string] {
	t.mustBeOpen()
	return func(yield func(string, string) bool) {
		stack := []*Node{}
		current := t.root
		for current != t.nilNode || len(stack) > 0 {
			for current != t.nilNode {
				stack = append(stack, current)
				current = current.left
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current.key, current.value) {
				return
			}

			current = current.right
		}
	}
}
