// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"math/rand"
	"time"

	"github.com/bitmark-inc/balancedtree/fault"
)

// a node in the tree
type node[T any] struct {
	left   *node[T] // left sub-tree
	right  *node[T] // right sub-tree
	data   T        // the stored value
	height int      // height of this sub-tree, leaf = 0
}

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *node[T]
	count   int
	found   *node[T] // node of the last successful Find
	compare func(a, b T) int
	policy  SidePolicy
	alloc   allocator[T]
	stats   Stats
}

// Stats - counters describing the work done by a tree
type Stats struct {
	LeftRotations  int // rotations that promoted a right child
	RightRotations int // rotations that promoted a left child
	TotalNodes     int // nodes obtained from the heap
	FreeNodes      int // reclaimed nodes waiting for reuse
}

// to collect the construction options
type settings struct {
	policy SidePolicy
}

// Option - a construction option for New and NewWithCompare
type Option func(*settings)

// WithPolicy - select the side used to refill a removed node that has
// two children
func WithPolicy(policy SidePolicy) Option {
	return func(s *settings) {
		s.policy = policy
	}
}

// WithSeed - use the default random side policy with a fixed seed so
// the shape after removals is reproducible
func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.policy = RandomPolicy(rand.NewSource(seed))
	}
}

// New - create an initially empty tree of naturally ordered values
func New[T cmp.Ordered](options ...Option) *Tree[T] {
	return NewWithCompare(cmp.Compare[T], options...)
}

// NewWithCompare - create an initially empty tree ordered by compare,
// which must return a negative number when a < b, zero when a == b
// and a positive number when a > b
func NewWithCompare[T any](compare func(a, b T) int, options ...Option) *Tree[T] {
	s := settings{}
	for _, option := range options {
		option(&s)
	}
	if nil == s.policy {
		s.policy = RandomPolicy(rand.NewSource(time.Now().UnixNano()))
	}
	return &Tree[T]{
		root:    nil,
		count:   0,
		compare: compare,
		policy:  s.policy,
	}
}

// Clone - copy the values into a new independent tree
//
// the values are read in order and inserted one by one, so the new
// tree shares no nodes with the source; it keeps the same comparison
// and takes a copy of the side policy if the policy is a Copier,
// otherwise the policy value is shared
func (tree *Tree[T]) Clone() *Tree[T] {
	c := &Tree[T]{
		compare: tree.compare,
		policy:  copyPolicy(tree.policy),
	}
	for it := tree.Begin(); it.HasNext(); {
		c.Insert(it.Next())
	}
	return c
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of values currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Height - height of the whole tree, -1 for an empty tree
func (tree *Tree[T]) Height() int {
	return heightOf(tree.root)
}

// RootValue - the value held by the root node
func (tree *Tree[T]) RootValue() (T, error) {
	if nil == tree.root {
		var zero T
		return zero, fault.ErrEmptyContainer
	}
	return tree.root.data, nil
}

// Clear - remove all values, the tree can be reused afterwards
func (tree *Tree[T]) Clear() {
	tree.clear(&tree.root)
	tree.count = 0
	tree.found = nil
}

// internal: release children before their parent
func (tree *Tree[T]) clear(pp **node[T]) {
	p := *pp
	if nil == p {
		return
	}
	tree.clear(&p.right)
	tree.clear(&p.left)
	*pp = nil
	tree.alloc.freeNode(p)
}

// Stats - return a copy of the tree counters
func (tree *Tree[T]) Stats() Stats {
	s := tree.stats
	s.TotalNodes = tree.alloc.totalNodes
	s.FreeNodes = tree.alloc.freeNodes
	return s
}
