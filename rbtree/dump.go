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

import (
	"fmt"
	"io"
)

// Walk visits every node in reverse key order (right subtree, node, left
// subtree) together with its depth, the root being at depth 0.
func (t *Tree) Walk(fn func(depth int, n *Node)) {
	t.mustBeOpen()
	t.reverseInOrder(t.root, 0, fn)
}

func (t *Tree) reverseInOrder(n *Node, depth int, fn func(int, *Node)) {
	if n == t.nilNode {
		return
	}
	t.reverseInOrder(n.right, depth+1, fn)
	fn(depth, n)
	t.reverseInOrder(n.left, depth+1, fn)
}

// Indent returns the column width the dump right-aligns a node's colour
// letter into at the given depth.
func Indent(depth int) int {
	return depth*4 + 4
}

// Print writes the tree sideways, largest key first, one node per line:
// the colour letter right-aligned to Indent(depth), then key and value.
func (t *Tree) Print(w io.Writer) error {
	var err error
	t.Walk(func(depth int, n *Node) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%*s %s %s\n", Indent(depth), n.color, n.key, n.value)
	})
	if err != nil {
		return fmt.Errorf("failed to print tree: %w", err)
	}
	return nil
}
