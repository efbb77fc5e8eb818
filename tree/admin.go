// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"reflect"
	"strconv"
	"strings"
	"sync/atomic"
)

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the node. It sets [NodeBase.This] and calls
// [Node.Init] if the node has not already been initialized.
// Root nodes must be initialized with InitNode or [NewRoot];
// [NodeBase.AddChild] does it for children.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != n {
		nb.This = n
		nb.This.Init()
	}
}

// NewRoot initializes the given node as the root of a new tree
// with the given name, and returns it.
func NewRoot[T Node](n T, name string) T {
	InitNode(n)
	n.AsTree().Name = name
	return n
}

// SetParent sets the parent of the given node to the given parent node.
// This is only for nodes with no existing parent. It does not add the
// node to the parent's list of children; see [NodeBase.AddChild] for a
// version that does.
func SetParent(child Node, parent Node) {
	n := child.AsTree()
	n.Parent = parent
	if parent != nil {
		pn := parent.AsTree()
		c := atomic.AddUint64(&pn.numLifetimeChildren, 1)
		if n.Name == "" {
			n.Name = TypeIDName(child) + "-" + strconv.FormatUint(c-1, 10) // must subtract 1 so we start at 0
		}
	}
	child.AsTree().This.OnAdd()
}

// TypeIDName returns the lowercase name of the underlying type of the
// given node, which is used for automatic naming.
func TypeIDName(n Node) string {
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.ToLower(t.Name())
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	nb := n.AsTree()
	return nb.This == nil || nb.Parent == nil || nb.Parent.AsTree().This == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	if IsRoot(n) {
		return n.AsTree().This
	}
	return Root(n.AsTree().Parent)
}
