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

// rotateLeft promotes x's right child into x's position.
//
//	    P              P
//	    |              |
//	    x              y
//	   / \            / \
//	  A   y    ->    x   C
//	     / \        / \
//	    B   C      A   B
//
// Colours are left to the caller.
func (t *Tree) rotateLeft(x *Node) {
	y := x.right
	x.right = y.left
	if y.left != t.nilNode {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.nilNode:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rotateRight is the mirror of rotateLeft.
//
//	      P            P
//	      |            |
//	      x            y
//	     / \          / \
//	    y   C  ->    A   x
//	   / \              / \
//	  A   B            B   C
func (t *Tree) rotateRight(x *Node) {
	y := x.left
	x.left = y.right
	if y.right != t.nilNode {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.nilNode:
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}
