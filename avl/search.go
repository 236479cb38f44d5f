// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/balancedtree/fault"
)

// Find - search for a value and remember the node for FoundData
//
// an unsuccessful search forgets any previous match
func (tree *Tree[T]) Find(target T) bool {
	tree.found = tree.search(target, tree.root)
	return nil != tree.found
}

// FoundData - the stored value matched by the last successful Find
//
// Remove and Clear forget the match as the node may no longer exist
func (tree *Tree[T]) FoundData() (T, error) {
	if nil == tree.found {
		var zero T
		return zero, fault.ErrNoPriorMatch
	}
	return tree.found.data, nil
}

// Lookup - find the stored value equal to target without touching
// the FoundData state
func (tree *Tree[T]) Lookup(target T) (T, bool) {
	p := tree.search(target, tree.root)
	if nil == p {
		var zero T
		return zero, false
	}
	return p.data, true
}

// Get - iterator over the sub-tree whose root matches target, the
// iterator is already exhausted if there is no match
func (tree *Tree[T]) Get(target T) *Iterator[T] {
	return newIterator(tree.search(target, tree.root))
}

func (tree *Tree[T]) search(target T, p *node[T]) *node[T] {
	if nil == p {
		return nil
	}

	switch c := tree.compare(target, p.data); {
	case c < 0: // target < p.data
		return tree.search(target, p.left)
	case c > 0: // target > p.data
		return tree.search(target, p.right)
	default:
		return p
	}
}

// Min - the lowest value in the tree
func (tree *Tree[T]) Min() (T, error) {
	p := tree.root.first()
	if nil == p {
		var zero T
		return zero, fault.ErrEmptyContainer
	}
	return p.data, nil
}

// Max - the highest value in the tree
func (tree *Tree[T]) Max() (T, error) {
	p := tree.root.last()
	if nil == p {
		var zero T
		return zero, fault.ErrEmptyContainer
	}
	return p.data, nil
}

// internal: lowest node in a sub-tree
func (p *node[T]) first() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[T]) last() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
