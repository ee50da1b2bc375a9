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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// link builds an unbalanced shape by hand: x with children a and y, y with
// children b and c. Colours are irrelevant to rotations.
func link(t *Tree) (x, y, a, b, c *Node) {
	x = t.newNode("x", "")
	y = t.newNode("y", "")
	a = t.newNode("a", "")
	b = t.newNode("xb", "")
	c = t.newNode("z", "")

	t.root = x
	x.left, a.parent = a, x
	x.right, y.parent = y, x
	y.left, b.parent = b, y
	y.right, c.parent = c, y
	t.size = 5
	return
}

func inOrder(t *Tree) []string {
	var out []string
	for k := range t.All() {
		out = append(out, k)
	}
	return out
}

func TestRotateLeftAndBack(t *testing.T) {
	tree := New()
	x, y, a, b, c := link(tree)
	before := inOrder(tree)

	tree.rotateLeft(x)
	assert.Same(t, y, tree.root)
	assert.Same(t, tree.nilNode, y.parent)
	assert.Same(t, x, y.left)
	assert.Same(t, c, y.right)
	assert.Same(t, a, x.left)
	assert.Same(t, b, x.right)
	assert.Same(t, x, b.parent)
	assert.Same(t, y, x.parent)
	assert.Equal(t, before, inOrder(tree))

	tree.rotateRight(y)
	assert.Same(t, x, tree.root)
	assert.Same(t, y, x.right)
	assert.Same(t, b, y.left)
	assert.Same(t, y, b.parent)
	assert.Equal(t, before, inOrder(tree))
}

func TestRotateKeepsColours(t *testing.T) {
	tree := New()
	x, y, _, _, _ := link(tree)
	x.color, y.color = Black, Red

	tree.rotateLeft(x)
	assert.Equal(t, Black, x.color)
	assert.Equal(t, Red, y.color)
	assert.Equal(t, Black, tree.nilNode.color)
}

func TestSuccessorPredecessor(t *testing.T) {
	tree := New()
	for _, k := range []string{"d", "b", "f", "a", "c", "e", "g"} {
		tree.Insert(k, "")
	}
	require.NoError(t, tree.Verify())

	n := tree.minimum(tree.root)
	var forward []string
	for ; n != tree.nilNode; n = tree.successor(n) {
		forward = append(forward, n.key)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, forward)

	n = tree.maximum(tree.root)
	var backward []string
	for ; n != tree.nilNode; n = tree.predecessor(n) {
		backward = append(backward, n.key)
	}
	assert.Equal(t, []string{"g", "f", "e", "d", "c", "b", "a"}, backward)
}

func TestSearchMissReturnsSentinel(t *testing.T) {
	tree := New()
	assert.Same(t, tree.nilNode, tree.search("nope"))
	assert.Same(t, tree.nilNode, tree.firstOfRun("nope"))

	tree.Insert("k", "1")
	tree.Insert("k", "2")
	tree.Insert("k", "3")
	first := tree.firstOfRun("k")
	assert.Equal(t, "1", first.value)
}

func TestRemoveRestoresSentinel(t *testing.T) {
	tree := New()
	for _, k := range []string{"b", "a", "c", "d"} {
		tree.Insert(k, "")
	}
	tree.Remove("a", "")
	assert.Same(t, tree.nilNode, tree.nilNode.parent)
	assert.Equal(t, Black, tree.nilNode.color)
	assert.Empty(t, tree.nilNode.key)
	assert.Empty(t, tree.nilNode.value)
}

func TestVerifyDetectsViolations(t *testing.T) {
	tree := New()
	for _, k := range []string{"b", "a", "c"} {
		tree.Insert(k, "")
	}
	require.NoError(t, tree.Verify())

	tree.root.color = Red
	assert.Error(t, tree.Verify())
	tree.root.color = Black

	tree.root.left.key = "z"
	assert.Error(t, tree.Verify())
	tree.root.left.key = "a"

	tree.root.left.color = Black
	assert.Error(t, tree.Verify())
	tree.root.left.color = Red

	tree.size++
	assert.Error(t, tree.Verify())
	tree.size--
	require.NoError(t, tree.Verify())
}
