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

// Package rbtree implements a red-black tree of string keys and values that
// keeps duplicate keys (and duplicate key+value pairs) as ordinary nodes.
//
// Nodes sharing a key form a contiguous run in the in-order sequence, in the
// order they were inserted. Lookups and deletions locate one node of the run
// by binary search and then walk its predecessor/successor chain.
//
// A Tree is not safe for concurrent use.
package rbtree

import "errors"

// Color is the balancing colour of a node.
type Color bool

const (
	Red   Color = true
	Black Color = false
)

// String renders the colour as the single letter used by the tree dump.
func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// ErrTornDown is the panic value raised when a tree is used after Teardown.
var ErrTornDown = errors.New("rbtree: use of tree after teardown")

// Node is one stored (key, value) pair.
type Node struct {
	key                 string
	value               string
	color               Color
	left, right, parent *Node
}

func (n *Node) Key() string   { return n.key }
func (n *Node) Value() string { return n.value }
func (n *Node) Color() Color  { return n.color }

// Tree is a red-black tree with duplicate keys. Use New to create one.
type Tree struct {
	root    *Node
	nilNode *Node // sentinel: every absent child and the root's parent
	size    int
	closed  bool
}

func newSentinel() *Node {
	return &Node{color: Black}
}

// New creates and returns a new empty tree.
func New() *Tree {
	nilNode := newSentinel()
	nilNode.left, nilNode.right, nilNode.parent = nilNode, nilNode, nilNode
	return &Tree{
		root:    nilNode,
		nilNode: nilNode,
	}
}

func (t *Tree) newNode(key, value string) *Node {
	return &Node{
		key:    key,
		value:  value,
		color:  Red,
		left:   t.nilNode,
		right:  t.nilNode,
		parent: t.nilNode,
	}
}

func (t *Tree) mustBeOpen() {
	if t.closed {
		panic(ErrTornDown)
	}
}

// Len returns the number of stored entries.
func (t *Tree) Len() int {
	t.mustBeOpen()
	return t.size
}

// Empty reports whether the tree holds no entries.
func (t *Tree) Empty() bool {
	t.mustBeOpen()
	return t.root == t.nilNode
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	t.mustBeOpen()
	return t.height(t.root)
}

func (t *Tree) height(n *Node) int {
	if n == t.nilNode {
		return 0
	}
	return max(t.height(n.left), t.height(n.right)) + 1
}

// Teardown unlinks every node and leaves the tree empty. The tree must not be
// used afterwards; any further call panics with ErrTornDown.
func (t *Tree) Teardown() {
	if t.closed {
		return
	}
	t.release(t.root)
	t.root = t.nilNode
	t.size = 0
	t.closed = true
}

func (t *Tree) release(n *Node) {
	if n == t.nilNode {
		return
	}
	t.release(n.left)
	t.release(n.right)
	n.left, n.right, n.parent = nil, nil, nil
}
