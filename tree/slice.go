// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument
// allows for optimized bidirectional searching if you have a guess
// at where the node might be.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	return findFunc(slice, func(e Node) bool { return e == child }, startIndex...)
}

// IndexByName returns the index of an element in the given slice that
// has the given name, or -1 if none is found. See [IndexOf] for info on startIndex.
func IndexByName(slice []Node, name string, startIndex ...int) int {
	return findFunc(slice, func(ch Node) bool { return ch.AsTree().Name == name }, startIndex...)
}

// findFunc searches outward from the start index in both directions,
// which is fast when the start index is a good guess.
func findFunc(slice []Node, match func(e Node) bool, startIndex ...int) int {
	n := len(slice)
	if n == 0 {
		return -1
	}
	start := n / 2
	if len(startIndex) > 0 {
		start = min(max(startIndex[0], 0), n-1)
	}
	for up, dn := start, start-1; up < n || dn >= 0; up, dn = up+1, dn-1 {
		if up < n && match(slice[up]) {
			return up
		}
		if dn >= 0 && match(slice[dn]) {
			return dn
		}
	}
	return -1
}
