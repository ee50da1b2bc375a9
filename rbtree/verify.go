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
	"errors"
	"fmt"
)

// Verify validates the red-black and ordering invariants:
//  1. root and sentinel are black
//  2. red nodes have black children
//  3. all paths from a node to its leaves hold the same number of black nodes
//  4. keys are non-decreasing in order and parent links match child links
//  5. the node count matches Len
//
// It returns nil when every invariant holds, otherwise an error describing
// the first violation found.
func (t *Tree) Verify() error {
	t.mustBeOpen()

	if t.nilNode.color != Black {
		return errors.New("sentinel is not black")
	}
	if t.root.color != Black {
		return fmt.Errorf("root %q is not black", t.root.key)
	}
	if t.root != t.nilNode && t.root.parent != t.nilNode {
		return fmt.Errorf("root %q has a parent", t.root.key)
	}

	count := 0
	if _, err := t.checkSubtree(t.root, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("tree holds %d nodes but Len is %d", count, t.size)
	}

	first := true
	var prev string
	for key := range t.All() {
		if !first && key < prev {
			return fmt.Errorf("key %q follows %q in order", key, prev)
		}
		prev, first = key, false
	}
	return nil
}

// checkSubtree returns the black height of the subtree rooted at n.
func (t *Tree) checkSubtree(n *Node, count *int) (int, error) {
	if n == t.nilNode {
		return 1, nil
	}
	*count++

	if n.color == Red && (n.left.color == Red || n.right.color == Red) {
		return 0, fmt.Errorf("red node %q has a red child", n.key)
	}
	if n.left != t.nilNode && n.left.parent != n {
		return 0, fmt.Errorf("left child %q of %q has a stale parent link", n.left.key, n.key)
	}
	if n.right != t.nilNode && n.right.parent != n {
		return 0, fmt.Errorf("right child %q of %q has a stale parent link", n.right.key, n.key)
	}
	if n.left != t.nilNode && n.left.key > n.key {
		return 0, fmt.Errorf("left child %q is greater than %q", n.left.key, n.key)
	}
	if n.right != t.nilNode && n.right.key < n.key {
		return 0, fmt.Errorf("right child %q is less than %q", n.right.key, n.key)
	}

	leftHeight, err := t.checkSubtree(n.left, count)
	if err != nil {
		return 0, err
	}
	rightHeight, err := t.checkSubtree(n.right, count)
	if err != nil {
		return 0, err
	}
	if leftHeight != rightHeight {
		return 0, fmt.Errorf("black height differs under %q: %d left, %d right", n.key, leftHeight, rightHeight)
	}

	if n.color == Black {
		leftHeight++
	}
	return leftHeight, nil
}
