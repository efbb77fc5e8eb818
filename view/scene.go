// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cogentcore.org/viewshot/tree"
)

// Scene is the root of a view tree, which views are looked up in by id.
// The id of a view is its [tree.NodeBase.Name].
type Scene struct {

	// Root is the root view of the tree.
	Root View

	// Source is the file the scene was loaded from, if any.
	Source string
}

// NewScene returns a new scene with the given root view, which is
// initialized as a tree root and laid out.
func NewScene(root View) *Scene {
	tree.InitNode(root)
	LayoutTree(root)
	return &Scene{Root: root}
}

// ViewByID returns the view with the given id, or nil if there is none.
// Ids can also be paths from the root as produced by [tree.NodeBase.Path].
func (sc *Scene) ViewByID(id string) View {
	if sc == nil || sc.Root == nil || id == "" {
		return nil
	}
	var found View
	sc.Root.AsTree().WalkDown(func(n tree.Node) bool {
		if found != nil {
			return tree.Break
		}
		if n.AsTree().Name == id {
			found, _ = n.(View)
			return tree.Break
		}
		return tree.Continue
	})
	if found != nil {
		return found
	}
	if id[0] == '/' {
		rb := sc.Root.AsTree()
		rel, ok := trimPathRoot(id, rb.Path())
		if ok {
			found, _ = rb.FindPath(rel).(View)
		}
	}
	return found
}

func trimPathRoot(path, root string) (string, bool) {
	if path == root {
		return "", true
	}
	if len(path) > len(root) && path[:len(root)] == root && path[len(root)] == '/' {
		return path[len(root)+1:], true
	}
	return "", false
}

// Layout lays out the whole scene again.
func (sc *Scene) Layout() {
	LayoutTree(sc.Root)
}

// Clone returns a deep copy of the scene, which shares nothing
// with the original.
func (sc *Scene) Clone() *Scene {
	root := sc.Root.AsTree().Clone().(View)
	return &Scene{Root: root, Source: sc.Source}
}
