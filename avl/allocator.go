// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// reclaimed nodes beyond this are left to the garbage collector
const poolLimit = 4096

// per tree node allocator
//
// no locking: a tree is only used from one go routine at a time
type allocator[T any] struct {
	pool       *node[T] // linked list of reclaimed nodes
	totalNodes int      // total nodes created
	freeNodes  int      // number of nodes in the pool
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (a *allocator[T]) newNode(data T) *node[T] {
	if nil == a.pool {
		if 0 != a.freeNodes {
			panic("pool corrupt")
		}
		a.totalNodes += 1
		return &node[T]{
			data:   data,
			height: 0,
		}
	}
	p := a.pool
	a.pool = p.right
	p.data = data
	p.height = 0
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	a.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (a *allocator[T]) freeNode(p *node[T]) {
	var zero T
	p.left = nil
	p.data = zero // do not keep the value alive
	p.height = 0
	if a.freeNodes >= poolLimit {
		p.right = nil
		return
	}
	p.right = a.pool // use as free list pointer
	a.pool = p
	a.freeNodes += 1
}
