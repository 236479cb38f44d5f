// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes one occurrence of a value from the tree
//
// returns false, with the tree unchanged, if the value is not present
func (tree *Tree[T]) Remove(target T) bool {
	removed := tree.remove(target, &tree.root)
	if removed {
		tree.count -= 1
		tree.found = nil // the found node may have been reused
	}
	return removed
}

// internal delete routine
func (tree *Tree[T]) remove(target T, pp **node[T]) bool {
	p := *pp
	if nil == p { // value not in tree
		return false
	}

	removed := false
	switch c := tree.compare(target, p.data); {
	case c > 0:
		removed = tree.remove(target, &p.right)
	case c < 0:
		removed = tree.remove(target, &p.left)
	default: // found: delete p
		removed = true
		if nil != p.left && nil != p.right {
			// full node: refill from one side, p stays in place
			switch tree.policy.Choose() {
			case Predecessor:
				p.data = tree.removeLast(&p.left)
			default:
				p.data = tree.removeFirst(&p.right)
			}
		} else {
			tree.splice(pp)
		}
	}

	if removed {
		(*pp).updateHeight()
		tree.balance(pp)
	}
	return removed
}

// delete: detach the highest node of a sub-tree and return its value
func (tree *Tree[T]) removeLast(pp **node[T]) T {
	p := *pp
	if nil == p.right {
		data := p.data
		tree.splice(pp)
		return data
	}
	data := tree.removeLast(&p.right)
	p.updateHeight()
	tree.balance(pp)
	return data
}

// delete: detach the lowest node of a sub-tree and return its value
func (tree *Tree[T]) removeFirst(pp **node[T]) T {
	p := *pp
	if nil == p.left {
		data := p.data
		tree.splice(pp)
		return data
	}
	data := tree.removeFirst(&p.left)
	p.updateHeight()
	tree.balance(pp)
	return data
}

// delete: replace a node having at most one child by that child
func (tree *Tree[T]) splice(pp **node[T]) {
	p := *pp
	if nil != p.left {
		*pp = p.left
	} else {
		*pp = p.right // possibly nil for a leaf
	}
	tree.alloc.freeNode(p) // return deleted node to pool
}
