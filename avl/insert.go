// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new value into the tree
//
// always adds a node, a value equal to one already present is stored
// again
func (tree *Tree[T]) Insert(value T) {
	tree.insert(value, &tree.root)
}

// internal routine for insert
func (tree *Tree[T]) insert(value T, pp **node[T]) {
	p := *pp
	if nil == p { // insert new node
		*pp = tree.alloc.newNode(value)
		tree.count += 1
		return
	}

	if tree.compare(value, p.data) > 0 {
		// larger values go to right of tree
		tree.insert(value, &p.right)
	} else {
		// smaller or equal values go to the left
		tree.insert(value, &p.left)
	}

	p.updateHeight()

	// balance every node along the traversed path
	tree.balance(pp)
}
