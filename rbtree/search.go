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

// search returns some node holding key, or the sentinel on a miss.
func (t *Tree) search(key string) *Node {
	current := t.root
	for current != t.nilNode {
		switch {
		case key == current.key:
			return current
		case key < current.key:
			current = current.left
		default:
			current = current.right
		}
	}
	return t.nilNode
}

func (t *Tree) minimum(x *Node) *Node {
	for x.left != t.nilNode {
		x = x.left
	}
	return x
}

func (t *Tree) maximum(x *Node) *Node {
	for x.right != t.nilNode {
		x = x.right
	}
	return x
}

// successor returns the node after x in key order, or the sentinel.
func (t *Tree) successor(x *Node) *Node {
	if x.right != t.nilNode {
		return t.minimum(x.right)
	}
	y := x.parent
	for y != t.nilNode && x == y.right {
		x = y
		y = y.parent
	}
	return y
}

// predecessor returns the node before x in key order, or the sentinel.
func (t *Tree) predecessor(x *Node) *Node {
	if x.left != t.nilNode {
		return t.maximum(x.left)
	}
	y := x.parent
	for y != t.nilNode && x == y.left {
		x = y
		y = y.parent
	}
	return y
}

// firstOfRun returns the leftmost node of the run holding key, or the
// sentinel when key is absent.
func (t *Tree) firstOfRun(key string) *Node {
	n := t.search(key)
	if n == t.nilNode {
		return n
	}
	for {
		prev := t.predecessor(n)
		if prev == t.nilNode || prev.key != key {
			return n
		}
		n = prev
	}
}

// Contains reports whether at least one entry has the given key.
func (t *Tree) Contains(key string) bool {
	t.mustBeOpen()
	return t.search(key) != t.nilNode
}

// Min returns the entry with the smallest key. ok is false on an empty tree.
func (t *Tree) Min() (key, value string, ok bool) {
	t.mustBeOpen()
	if t.root == t.nilNode {
		return "", "", false
	}
	n := t.minimum(t.root)
	return n.key, n.value, true
}

// Max returns the last entry in key order. ok is false on an empty tree.
func (t *Tree) Max() (key, value string, ok bool) {
	t.mustBeOpen()
	if t.root == t.nilNode {
		return "", "", false
	}
	n := t.maximum(t.root)
	return n.key, n.value, true
}
