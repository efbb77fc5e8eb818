// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	NodeBase
	Value  int
	Tags   []string
	inited bool
}

func (t *testNode) Init() { t.inited = true }

func newTestRoot() *testNode {
	return NewRoot(&testNode{}, "root")
}

func TestNodeAddChild(t *testing.T) {
	parent := newTestRoot()
	child := &testNode{}
	parent.AddChild(child)
	assert.True(t, child.inited)
	assert.Equal(t, 1, parent.NumChildren())
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, "testnode-0", child.Name)
	assert.Equal(t, "/root/testnode-0", child.Path())
	assert.Equal(t, 0, child.IndexInParent())
	assert.Equal(t, -1, parent.IndexInParent())
}

func TestNodePath(t *testing.T) {
	parent := newTestRoot()
	for _, nm := range []string{"child1", "child2", "child1/child1"} {
		parent.AddChild(&testNode{NodeBase: NodeBase{Name: nm}})
	}
	assert.Equal(t, "/root/child2", parent.Child(1).AsTree().Path())
	assert.Equal(t, `/root/child1\\child1`, parent.Child(2).AsTree().Path())

	sub := &testNode{NodeBase: NodeBase{Name: "sub"}}
	parent.Child(1).AsTree().AddChild(sub)
	assert.Equal(t, Node(sub), parent.FindPath("child2/sub"))
	assert.Equal(t, parent.Child(2), parent.FindPath(`child1\\child1`))
	assert.Equal(t, parent.Child(0), parent.FindPath("[0]"))
	assert.Equal(t, parent.Child(2), parent.FindPath("[-1]"))
	assert.Nil(t, parent.FindPath("nothere"))
	assert.Nil(t, parent.FindPath("[7]"))
	assert.Equal(t, parent.Child(1), parent.ChildByName("child2"))
	assert.Equal(t, Node(parent), Root(sub))
	assert.True(t, IsRoot(parent))
	assert.False(t, IsRoot(sub))
}

func TestNodeDelete(t *testing.T) {
	parent := newTestRoot()
	a, b := &testNode{}, &testNode{}
	parent.AddChild(a)
	parent.InsertChild(b, 0)
	assert.Equal(t, Node(b), parent.Child(0))
	assert.True(t, parent.DeleteChildAt(0))
	assert.Nil(t, b.This)
	assert.False(t, parent.DeleteChildAt(3))
	parent.DeleteChildren()
	assert.False(t, parent.HasChildren())
	assert.Nil(t, a.This)
}

func TestWalk(t *testing.T) {
	parent := newTestRoot()
	for i := range 3 {
		k := &testNode{Value: i}
		parent.AddChild(k)
		k.AddChild(&testNode{Value: 10 + i})
	}
	var order []int
	parent.WalkDown(func(n Node) bool {
		order = append(order, n.(*testNode).Value)
		return Continue
	})
	assert.Equal(t, []int{0, 0, 10, 1, 11, 2, 12}, order)

	order = nil
	parent.WalkDown(func(n Node) bool {
		v := n.(*testNode).Value
		order = append(order, v)
		return v != 1 // don't descend into 1
	})
	assert.Equal(t, []int{0, 0, 10, 1, 2, 12}, order)

	leaf := parent.FindPath("[2]/[0]")
	require.NotNil(t, leaf)
	depth := 0
	leaf.AsTree().WalkUp(func(n Node) bool {
		depth++
		return Continue
	})
	assert.Equal(t, 3, depth)
}

func TestClone(t *testing.T) {
	parent := newTestRoot()
	parent.Value = 5
	parent.Tags = []string{"a", "b"}
	parent.AddChild(&testNode{NodeBase: NodeBase{Name: "kid"}, Value: 7})

	cl := parent.Clone().(*testNode)
	assert.Equal(t, "root", cl.Name)
	assert.Equal(t, 5, cl.Value)
	assert.Equal(t, []string{"a", "b"}, cl.Tags)
	require.Equal(t, 1, cl.NumChildren())
	kid := cl.Child(0).(*testNode)
	assert.Equal(t, "kid", kid.Name)
	assert.Equal(t, 7, kid.Value)
	assert.Equal(t, Node(cl), kid.Parent)

	cl.Tags[0] = "z"
	kid.Value = 9
	assert.Equal(t, "a", parent.Tags[0])
	assert.Equal(t, 7, parent.Child(0).(*testNode).Value)
}
