// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package queue

// a linked list cell
type element[T any] struct {
	item T
	next *element[T]
}

// Queue - items leave in the order they arrived
type Queue[T any] struct {
	head *element[T] // next to dequeue
	tail *element[T] // last enqueued
}

// New - create an empty queue
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue - add an item at the back
func (q *Queue[T]) Enqueue(item T) {
	e := &element[T]{
		item: item,
	}
	if nil == q.tail {
		q.head = e
	} else {
		q.tail.next = e
	}
	q.tail = e
}

// Dequeue - remove the item at the front, false if the queue is empty
func (q *Queue[T]) Dequeue() (T, bool) {
	e := q.head
	if nil == e {
		var zero T
		return zero, false
	}
	q.head = e.next
	if nil == q.head {
		q.tail = nil
	}
	return e.item, true
}

// IsEmpty - true if nothing is queued
func (q *Queue[T]) IsEmpty() bool {
	return nil == q.head
}
