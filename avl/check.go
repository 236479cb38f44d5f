// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/balancedtree/fault"
)

// Check - run all the consistency checkers, returns the first failure
func (tree *Tree[T]) Check() error {
	if !tree.CheckHeights() {
		return fault.ErrHeightMismatch
	}
	if !tree.CheckBalance() {
		return fault.ErrBalanceViolation
	}
	if !tree.CheckOrder() {
		return fault.ErrOrderViolation
	}
	if !tree.CheckCount() {
		return fault.ErrCountMismatch
	}
	return nil
}

// CheckHeights - every stored height is one more than the higher child
func (tree *Tree[T]) CheckHeights() bool {
	return checkHeights(tree.root)
}

// internal: consistency checker
func checkHeights[T any](p *node[T]) bool {
	if nil == p {
		return true
	}
	if p.height != 1+max(heightOf(p.left), heightOf(p.right)) {
		return false
	}
	return checkHeights(p.left) && checkHeights(p.right)
}

// CheckBalance - sub-tree heights differ by at most one at every node
func (tree *Tree[T]) CheckBalance() bool {
	return checkBalance(tree.root)
}

// internal: consistency checker
func checkBalance[T any](p *node[T]) bool {
	if nil == p {
		return true
	}
	if balanced != p.weight() {
		return false
	}
	return checkBalance(p.left) && checkBalance(p.right)
}

// CheckOrder - the in-order sequence never decreases
func (tree *Tree[T]) CheckOrder() bool {
	ok := true
	first := true
	var previous T
	_ = inOrder(tree.root, func(data T) error {
		if !first && tree.compare(previous, data) > 0 {
			ok = false
			return fault.ErrOrderViolation
		}
		first = false
		previous = data
		return nil
	})
	return ok
}

// CheckCount - the count matches the number of reachable nodes
func (tree *Tree[T]) CheckCount() bool {
	return tree.count == countNodes(tree.root)
}

// internal: number of nodes in a sub-tree
func countNodes[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
