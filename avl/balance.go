// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// classification of the height difference of a node's sub-trees
type weight int

const (
	balanced    weight = iota
	leftHeavy   weight = iota
	rightHeavy  weight = iota
	weightError weight = iota // only for a nil node
)

// height of a sub-tree, an absent sub-tree is -1
func heightOf[T any](p *node[T]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the height from the children
func (p *node[T]) updateHeight() {
	if nil == p {
		return
	}
	p.height = 1 + max(heightOf(p.left), heightOf(p.right))
}

// heavy only when the difference exceeds bound
func (p *node[T]) weigh(bound int) weight {
	if nil == p {
		return weightError
	}
	diff := heightOf(p.left) - heightOf(p.right)
	if diff > bound {
		return leftHeavy
	}
	if diff < -bound {
		return rightHeavy
	}
	return balanced
}

// violates the AVL bound on one side
func (p *node[T]) weight() weight {
	return p.weigh(1)
}

// leans to one side at all, used to pick single or double rotation
func (p *node[T]) lean() weight {
	return p.weigh(0)
}

// restore the AVL bound at *pp after one of its sub-trees changed
// height by one
func (tree *Tree[T]) balance(pp **node[T]) {
	p := *pp
	if nil == p {
		return
	}
	switch p.weight() {
	case leftHeavy:
		if rightHeavy == p.left.lean() {
			// left-right heavy
			tree.rotateLeft(&p.left)
		}
		tree.rotateRight(pp)

	case rightHeavy:
		if leftHeavy == p.right.lean() {
			// right-left heavy
			tree.rotateRight(&p.right)
		}
		tree.rotateLeft(pp)
	}
}

// promote the right child of *pp
//
//	  p                p1
//	 / \              /  \
//	a   p1    →      p    c
//	   /  \         / \
//	  b    c       a   b
func (tree *Tree[T]) rotateLeft(pp **node[T]) {
	p := *pp
	if nil == p || nil == p.right {
		return
	}
	p1 := p.right
	p.right = p1.left
	p1.left = p

	p.updateHeight()
	p1.updateHeight()

	*pp = p1
	tree.stats.LeftRotations += 1
}

// promote the left child of *pp, mirror of rotateLeft
func (tree *Tree[T]) rotateRight(pp **node[T]) {
	p := *pp
	if nil == p || nil == p.left {
		return
	}
	p1 := p.left
	p.left = p1.right
	p1.right = p

	p.updateHeight()
	p1.updateHeight()

	*pp = p1
	tree.stats.RightRotations += 1
}
