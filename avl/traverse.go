// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/balancedtree/fault"
	"github.com/bitmark-inc/balancedtree/queue"
)

// Order - the sequence in which a traversal visits the nodes
type Order int

// traversal orders
const (
	OrderIn    Order = iota // left, parent, right: ascending values
	OrderPre                // parent, left, right
	OrderPost               // left, right, parent
	OrderLevel              // breadth first, root level first
)

// String - conversion for fmt package
func (o Order) String() string {
	switch o {
	case OrderIn:
		return "in"
	case OrderPre:
		return "pre"
	case OrderPost:
		return "post"
	case OrderLevel:
		return "level"
	default:
		return "unknown"
	}
}

// ParseOrder - convert a name like "in", "pre-order" or "level" to an
// Order
func ParseOrder(s string) (Order, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "order")
	s = strings.TrimRight(s, "-_ ")
	switch s {
	case "", "in":
		return OrderIn, nil
	case "pre":
		return OrderPre, nil
	case "post":
		return OrderPost, nil
	case "level", "breadth":
		return OrderLevel, nil
	default:
		return OrderIn, fault.ErrInvalidOrder
	}
}

// called once for each node, a non-nil error stops the traversal
type visitor[T any] func(data T) error

// Walk - call visit for every value in the given order, stopping at
// the first error
func (tree *Tree[T]) Walk(order Order, visit func(data T) error) error {
	switch order {
	case OrderIn:
		return inOrder(tree.root, visit)
	case OrderPre:
		return preOrder(tree.root, visit)
	case OrderPost:
		return postOrder(tree.root, visit)
	case OrderLevel:
		return levelOrder(tree.root, visit)
	default:
		return fault.ErrInvalidOrder
	}
}

// Values - all values in the given order, an unknown order is an
// error
func (tree *Tree[T]) Values(order Order) ([]T, error) {
	values := make([]T, 0, tree.count)
	err := tree.Walk(order, func(data T) error {
		values = append(values, data)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return values, nil
}

// the fixed orders below cannot fail
func (tree *Tree[T]) orderedValues(order Order) []T {
	values, _ := tree.Values(order)
	return values
}

// InOrder - all values in ascending order
func (tree *Tree[T]) InOrder() []T {
	return tree.orderedValues(OrderIn)
}

// PreOrder - all values, each parent before its sub-trees
func (tree *Tree[T]) PreOrder() []T {
	return tree.orderedValues(OrderPre)
}

// PostOrder - all values, each parent after its sub-trees
func (tree *Tree[T]) PostOrder() []T {
	return tree.orderedValues(OrderPost)
}

// LevelOrder - all values level by level from the root
func (tree *Tree[T]) LevelOrder() []T {
	return tree.orderedValues(OrderLevel)
}

// DisplayOrder - write one value per line in the given order
func (tree *Tree[T]) DisplayOrder(w io.Writer, order Order) error {
	return tree.Walk(order, func(data T) error {
		_, err := fmt.Fprintln(w, data)
		return err
	})
}

// Display - write the values in ascending order
func (tree *Tree[T]) Display(w io.Writer) error {
	return tree.DisplayOrder(w, OrderIn)
}

// DisplayInOrder - left-parent-right
func (tree *Tree[T]) DisplayInOrder(w io.Writer) error {
	return tree.DisplayOrder(w, OrderIn)
}

// DisplayPreOrder - parent-left-right
func (tree *Tree[T]) DisplayPreOrder(w io.Writer) error {
	return tree.DisplayOrder(w, OrderPre)
}

// DisplayPostOrder - left-right-parent
func (tree *Tree[T]) DisplayPostOrder(w io.Writer) error {
	return tree.DisplayOrder(w, OrderPost)
}

// DisplayLevelOrder - breadth first
func (tree *Tree[T]) DisplayLevelOrder(w io.Writer) error {
	return tree.DisplayOrder(w, OrderLevel)
}

func inOrder[T any](p *node[T], visit visitor[T]) error {
	if nil == p {
		return nil
	}
	if err := inOrder(p.left, visit); nil != err {
		return err
	}
	if err := visit(p.data); nil != err {
		return err
	}
	return inOrder(p.right, visit)
}

func preOrder[T any](p *node[T], visit visitor[T]) error {
	if nil == p {
		return nil
	}
	if err := visit(p.data); nil != err {
		return err
	}
	if err := preOrder(p.left, visit); nil != err {
		return err
	}
	return preOrder(p.right, visit)
}

func postOrder[T any](p *node[T], visit visitor[T]) error {
	if nil == p {
		return nil
	}
	if err := postOrder(p.left, visit); nil != err {
		return err
	}
	if err := postOrder(p.right, visit); nil != err {
		return err
	}
	return visit(p.data)
}

// absent children are never queued
func levelOrder[T any](root *node[T], visit visitor[T]) error {
	if nil == root {
		return nil
	}
	q := queue.New[*node[T]]()
	q.Enqueue(root)
	for !q.IsEmpty() {
		p, _ := q.Dequeue()
		if err := visit(p.data); nil != err {
			return err
		}
		if nil != p.left {
			q.Enqueue(p.left)
		}
		if nil != p.right {
			q.Enqueue(p.right)
		}
	}
	return nil
}
