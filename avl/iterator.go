// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/balancedtree/fault"
)

// Iterator - forward in-order cursor over a tree or sub-tree
//
// the tree must not be modified while an iterator is in use
type Iterator[T any] struct {
	parents []*node[T] // ancestors still to be visited
	current *node[T]   // root of the sub-tree not yet descended
}

func newIterator[T any](begin *node[T]) *Iterator[T] {
	return &Iterator[T]{
		current: begin,
	}
}

// Begin - iterator positioned before the lowest value
func (tree *Tree[T]) Begin() *Iterator[T] {
	return newIterator(tree.root)
}

// End - the exhausted iterator
func (tree *Tree[T]) End() *Iterator[T] {
	return newIterator[T](nil)
}

// HasNext - true if Next can be called
func (it *Iterator[T]) HasNext() bool {
	return nil != it.current || 0 != len(it.parents)
}

// Next - advance and return the next value in ascending order
//
// panics if the iterator is exhausted
func (it *Iterator[T]) Next() T {

	// go all the way to the left - current is nil after the loop
	for nil != it.current {
		it.parents = append(it.parents, it.current)
		it.current = it.current.left
	}

	n := len(it.parents)
	if 0 == n {
		panic(fault.ErrIteratorExhausted)
	}
	p := it.parents[n-1]
	it.parents[n-1] = nil
	it.parents = it.parents[:n-1]

	// continue with the right sub-tree
	it.current = p.right
	return p.data
}

// Value - the value at the root of the sub-tree the cursor points to,
// for an iterator from Get this is the matched value until Next is
// called
func (it *Iterator[T]) Value() (T, error) {
	if nil == it.current {
		var zero T
		return zero, fault.ErrIteratorExhausted
	}
	return it.current.data, nil
}

// Clone - an independent copy that yields the same remaining values
func (it *Iterator[T]) Clone() *Iterator[T] {
	parents := make([]*node[T], len(it.parents))
	copy(parents, it.parents)
	return &Iterator[T]{
		parents: parents,
		current: it.current,
	}
}

// Equal - true if both cursors point to the same node
//
// a nil iterator is only equal to another nil iterator
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	if nil == it || nil == other {
		return it == other
	}
	return it.current == other.current
}

// All - range over the values in ascending order
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := tree.Begin(); it.HasNext(); {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
