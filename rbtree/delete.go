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

// Remove deletes every entry whose key and value both equal the arguments and
// returns how many were deleted. It is a no-op when nothing matches.
func (t *Tree) Remove(key, value string) int {
	t.mustBeOpen()

	n := t.firstOfRun(key)
	removed := 0
	for n != t.nilNode && n.key == key {
		// removeNode relinks nodes and never moves payload between them, so
		// next stays a live node of the same run after n is spliced out.
		next := t.successor(n)
		if n.value == value {
			t.removeNode(n)
			removed++
		}
		n = next
	}
	return removed
}

// removeNode splices z out of the tree and repairs the colouring.
func (t *Tree) removeNode(z *Node) {
	var x *Node
	y := z
	yOriginalColor := y.color

	switch {
	case z.left == t.nilNode:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.nilNode:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.minimum(z.right)
		yOriginalColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	t.size--

	if yOriginalColor == Black {
		t.deleteFixup(x)
	}

	// The sentinel's parent is scratch space for deleteFixup only.
	t.nilNode.parent = t.nilNode
	z.left, z.right, z.parent = nil, nil, nil
}

// transplant puts v in u's slot under u's parent. v may be the sentinel, in
// which case its parent link is set for the benefit of deleteFixup.
func (t *Tree) transplant(u, v *Node) {
	switch {
	case u.parent == t.nilNode:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

// deleteFixup removes the extra black carried by x after a black node left
// its slot.
func (t *Tree) deleteFixup(x *Node) {
	for x != t.root && x.color == Black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == Red {
				w.color = Black
				x.parent.color = Red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == Black && w.right.color == Black {
				w.color = Red
				x = x.parent
				continue
			}
			if w.right.color == Black {
				w.left.color = Black
				w.color = Red
				t.rotateRight(w)
				w = x.parent.right
			}
			w.color = x.parent.color
			x.parent.color = Black
			w.right.color = Black
			t.rotateLeft(x.parent)
			x = t.root
		} else {
			w := x.parent.left
			if w.color == Red {
				w.color = Black
				x.parent.color = Red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == Black && w.left.color == Black {
				w.color = Red
				x = x.parent
				continue
			}
			if w.left.color == Black {
				w.right.color = Black
				w.color = Red
				t.rotateLeft(w)
				w = x.parent.left
			}
			w.color = x.parent.color
			x.parent.color = Black
			w.left.color = Black
			t.rotateRight(x.parent)
			x = t.root
		}
	}
	x.color = Black
}
