// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/balancedtree/avl"
	"github.com/bitmark-inc/balancedtree/fault"
)

func TestOrders(t *testing.T) {
	tree := sevenTree()

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.InOrder(), "wrong in order")
	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, tree.PreOrder(), "wrong pre order")
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, tree.PostOrder(), "wrong post order")
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, tree.LevelOrder(), "wrong level order")

	// incomplete last level
	tree = build(2, 1, 3, 4)
	assert.Equal(t, []int{2, 1, 3, 4}, tree.LevelOrder(), "wrong level order")
}

func TestValues(t *testing.T) {
	tree := sevenTree()

	values, err := tree.Values(avl.OrderLevel)
	assert.Nil(t, err, "level order error")
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, values, "wrong level order")

	values, err = tree.Values(avl.Order(9))
	assert.Equal(t, fault.ErrInvalidOrder, err, "wrong error for bad order")
	assert.Nil(t, values, "values returned for bad order")

	values, err = avl.New[int]().Values(avl.OrderIn)
	assert.Nil(t, err, "empty tree error")
	assert.Empty(t, values, "values from empty tree")
}

func TestParseOrder(t *testing.T) {
	items := []struct {
		name  string
		order avl.Order
	}{
		{"", avl.OrderIn},
		{"in", avl.OrderIn},
		{"InOrder", avl.OrderIn},
		{"pre", avl.OrderPre},
		{"pre-order", avl.OrderPre},
		{"post", avl.OrderPost},
		{"post_order", avl.OrderPost},
		{"level", avl.OrderLevel},
		{"levelorder", avl.OrderLevel},
		{"breadth", avl.OrderLevel},
	}
	for _, item := range items {
		order, err := avl.ParseOrder(item.name)
		assert.Nil(t, err, "error for: %q", item.name)
		assert.Equal(t, item.order, order, "wrong order for: %q", item.name)
	}

	_, err := avl.ParseOrder("sideways")
	assert.Equal(t, fault.ErrInvalidOrder, err, "wrong error")
	assert.Equal(t, "level", avl.OrderLevel.String(), "wrong name")
	assert.Equal(t, "unknown", avl.Order(9).String(), "wrong name")
}

func TestDisplay(t *testing.T) {
	tree := sevenTree()

	items := []struct {
		display  func(*bytes.Buffer) error
		expected string
	}{
		{func(b *bytes.Buffer) error { return tree.Display(b) }, "1\n2\n3\n4\n5\n6\n7\n"},
		{func(b *bytes.Buffer) error { return tree.DisplayInOrder(b) }, "1\n2\n3\n4\n5\n6\n7\n"},
		{func(b *bytes.Buffer) error { return tree.DisplayPreOrder(b) }, "4\n2\n1\n3\n6\n5\n7\n"},
		{func(b *bytes.Buffer) error { return tree.DisplayPostOrder(b) }, "1\n3\n2\n5\n7\n6\n4\n"},
		{func(b *bytes.Buffer) error { return tree.DisplayLevelOrder(b) }, "4\n2\n6\n1\n3\n5\n7\n"},
	}
	for i, item := range items {
		b := &bytes.Buffer{}
		err := item.display(b)
		assert.Nil(t, err, "display error: %d", i)
		assert.Equal(t, item.expected, b.String(), "wrong display: %d", i)
	}

	b := &bytes.Buffer{}
	assert.Nil(t, avl.New[int]().Display(b), "empty display error")
	assert.Equal(t, "", b.String(), "empty display output")
}

var errWrite = errors.New("write failed")

// accepts a fixed number of writes
type limitedWriter struct {
	remaining int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if 0 == w.remaining {
		return 0, errWrite
	}
	w.remaining -= 1
	return len(p), nil
}

func TestDisplayWriteError(t *testing.T) {
	tree := sevenTree()

	for _, order := range []avl.Order{avl.OrderIn, avl.OrderPre, avl.OrderPost, avl.OrderLevel} {
		w := &limitedWriter{remaining: 3}
		err := tree.DisplayOrder(w, order)
		assert.Equal(t, errWrite, err, "wrong error for: %s", order)
	}
}

func TestWalkStops(t *testing.T) {
	tree := sevenTree()

	visited := 0
	err := tree.Walk(avl.OrderIn, func(v int) error {
		visited += 1
		if 4 == v {
			return fault.ErrValueNotFound
		}
		return nil
	})
	assert.Equal(t, fault.ErrValueNotFound, err, "wrong error")
	assert.Equal(t, 4, visited, "wrong visit count")

	err = tree.Walk(avl.Order(9), func(int) error { return nil })
	assert.Equal(t, fault.ErrInvalidOrder, err, "wrong error for bad order")
}

func TestPrint(t *testing.T) {
	tree := build(2, 1, 3)

	b := &bytes.Buffer{}
	depth := tree.Print(b, false)
	assert.Equal(t, 2, depth, "wrong depth")

	expected := "       /------+ 3\n" +
		"|------+ 2\n" +
		"       \\------+ 1\n"
	assert.Equal(t, expected, b.String(), "wrong picture")

	b.Reset()
	tree.Print(b, true)
	assert.True(t, strings.Contains(b.String(), "2 h:1 +0"), "missing root detail: %s", b.String())
	assert.True(t, strings.Contains(b.String(), "1 h:0 +0"), "missing leaf detail: %s", b.String())

	b.Reset()
	assert.Equal(t, 0, avl.New[int]().Print(b, true), "wrong empty depth")
	assert.Equal(t, "", b.String(), "empty picture")
}
