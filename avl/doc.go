// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a generic AVL balanced tree holding values ordered by
// a three-way comparison
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node records the height of its sub-tree (a leaf is 0 and an
// absent child counts as -1).  Insert and Remove descend recursively
// and on the way back up recompute the height of each visited node
// and rotate it if the two sub-tree heights differ by more than one.
//
// Values that compare equal may be inserted more than once, only a
// strictly greater value descends to the right so ties are placed on
// the left.  Remove deletes one occurrence.
//
// When a node with two children is removed its value is replaced by
// either the largest value of the left sub-tree or the smallest value
// of the right sub-tree, the choice is made by a SidePolicy given at
// construction time.
//
// Nodes carry no parent pointers, iteration keeps an explicit stack of
// ancestors instead.
package avl
