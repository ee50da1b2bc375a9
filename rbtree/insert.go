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

// Insert adds (key, value) to the tree. Existing entries with the same key,
// or the same key and value, are kept; the new entry is placed after them in
// the in-order sequence.
func (t *Tree) Insert(key, value string) {
	t.mustBeOpen()

	z := t.newNode(key, value)
	parent := t.nilNode
	current := t.root
	for current != t.nilNode {
		parent = current
		if z.key < current.key {
			current = current.left
		} else {
			current = current.right
		}
	}

	z.parent = parent
	switch {
	case parent == t.nilNode:
		t.root = z
	case z.key < parent.key:
		parent.left = z
	default:
		parent.right = z
	}
	t.size++

	t.insertFixup(z)
}

// insertFixup repairs a red node with a red parent, walking up the tree.
func (t *Tree) insertFixup(z *Node) {
	for z.parent.color == Red {
		grandparent := z.parent.parent
		if z.parent == grandparent.left {
			uncle := grandparent.right
			if uncle.color == Red {
				z.parent.color = Black
				uncle.color = Black
				grandparent.color = Red
				z = grandparent
				continue
			}
			if z == z.parent.right {
				z = z.parent
				t.rotateLeft(z)
			}
			z.parent.color = Black
			z.parent.parent.color = Red
			t.rotateRight(z.parent.parent)
		} else {
			uncle := grandparent.left
			if uncle.color == Red {
				z.parent.color = Black
				uncle.color = Black
				grandparent.color = Red
				z = grandparent
				continue
			}
			if z == z.parent.left {
				z = z.parent
				t.rotateRight(z)
			}
			z.parent.color = Black
			z.parent.parent.color = Red
			t.rotateLeft(z.parent.parent)
		}
	}
	t.root.color = Black
}
