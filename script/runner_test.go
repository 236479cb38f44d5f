// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/balancedtree/avl"
	"github.com/bitmark-inc/balancedtree/fault"
	"github.com/bitmark-inc/balancedtree/script"
)

func TestInsertAndDisplay(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, tree, out := newIntRunner()

	require.Nil(t, r.Run("insert 5 3 8 2 4 7 9"), "insert error")
	assert.Equal(t, 7, tree.Count(), "wrong count")
	assert.Equal(t, "", out.String(), "insert wrote output")

	items := []struct {
		line     string
		expected string
	}{
		{"display", "2\n3\n4\n5\n7\n8\n9\n"},
		{"display pre", "5\n3\n2\n4\n8\n7\n9\n"},
		{"display post", "2\n4\n3\n7\n9\n8\n5\n"},
		{"display level", "5\n3\n8\n2\n4\n7\n9\n"},
		{"min", "2\n"},
		{"max", "9\n"},
		{"root", "5\n"},
		{"height", "2\n"},
		{"size", "7\n"},
		{"empty", "false\n"},
		{"check", "ok\n"},
		{"iterate", "2 3 4 5 7 8 9\n"},
		{"iterate 8", "7 8 9\n"},
		{"lookup 4", "found: 4\n"},
		{"lookup 6", "not found: 6\n"},
	}
	for _, item := range items {
		out.Reset()
		err := r.Run(item.line)
		assert.Nil(t, err, "error for: %q", item.line)
		assert.Equal(t, item.expected, out.String(), "wrong output for: %q", item.line)
	}
	assert.Equal(t, uint64(1+len(items)), r.Executed(), "wrong executed count")
	assert.Equal(t, uint64(0), r.Failed(), "wrong failed count")
}

func TestRemove(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, tree, out := newIntRunner()
	require.Nil(t, r.Run("insert 5 3 8 2 4 7 9"), "insert error")

	assert.Nil(t, r.Run("remove 5 6"), "remove error")
	assert.Equal(t, "removed: 5\nnot found: 6\n", out.String(), "wrong output")
	assert.Equal(t, []int{4, 3, 2, 8, 7, 9}, tree.PreOrder(), "wrong shape")
}

func TestFindAndFound(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, _, out := newIntRunner()
	require.Nil(t, r.Run("insert 2 4 6"), "insert error")

	assert.Nil(t, r.Run("find 4"), "find error")
	assert.Nil(t, r.Run("found"), "found error")
	assert.Equal(t, "found: 4\n4\n", out.String(), "wrong output")

	out.Reset()
	assert.Nil(t, r.Run("find 5"), "find error")
	assert.Equal(t, "not found: 5\n", out.String(), "wrong output")
	assert.Equal(t, fault.ErrNoPriorMatch, r.Run("found"), "wrong found error")
}

func TestEmptyTreeCommands(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, _, out := newIntRunner()

	assert.Equal(t, fault.ErrEmptyContainer, r.Run("min"), "wrong min error")
	assert.Equal(t, fault.ErrEmptyContainer, r.Run("max"), "wrong max error")
	assert.Equal(t, fault.ErrEmptyContainer, r.Run("root"), "wrong root error")
	assert.Nil(t, r.Run("height"), "height error")
	assert.Nil(t, r.Run("empty"), "empty error")
	assert.Equal(t, "-1\ntrue\n", out.String(), "wrong output")
	assert.Equal(t, uint64(3), r.Failed(), "wrong failed count")
}

func TestCommandErrors(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, _, _ := newIntRunner()

	items := []struct {
		line string
		err  error
	}{
		{"insert", fault.ErrMissingArgument},
		{"insert 1 two 3", fault.ErrInvalidValue},
		{"remove", fault.ErrMissingArgument},
		{"find", fault.ErrMissingArgument},
		{"find 1 2", fault.ErrInvalidCount},
		{"display sideways", fault.ErrInvalidOrder},
		{"rotate", fault.ErrUnknownCommand},
	}
	for _, item := range items {
		assert.Equal(t, item.err, r.Run(item.line), "wrong error for: %q", item.line)
	}
	assert.Equal(t, uint64(len(items)), r.Failed(), "wrong failed count")
	assert.Equal(t, uint64(len(items)), r.Executed(), "wrong executed count")
}

func TestClearAndStats(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, tree, out := newIntRunner()
	require.Nil(t, r.Run("insert 1 2 3"), "insert error")
	require.Nil(t, r.Run("clear"), "clear error")
	assert.True(t, tree.IsEmpty(), "not cleared")

	require.Nil(t, r.Run("stats"), "stats error")
	expected := "count: 0  height: -1\n" +
		"rotations left: 1  right: 0\n" +
		"nodes total: 3  free: 3\n"
	assert.Equal(t, expected, out.String(), "wrong stats")
}

func TestPrintAndHelp(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, _, out := newIntRunner()
	require.Nil(t, r.Run("insert 2 1 3"), "insert error")

	require.Nil(t, r.Run("print"), "print error")
	assert.True(t, strings.Contains(out.String(), "|------+ 2 h:1 +0\n"), "missing root: %s", out.String())

	out.Reset()
	require.Nil(t, r.Run("help"), "help error")
	for _, command := range []string{"insert", "remove", "display", "iterate", "quit"} {
		assert.True(t, strings.Contains(out.String(), command), "help missing: %s", command)
	}
}

func TestRunAll(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, tree, out := newIntRunner()

	input := `
# build a small tree
insert 3 1 2

bogus
display level
quit
insert 99
`
	err := r.RunAll(strings.NewReader(input))
	assert.Nil(t, err, "run all error")
	assert.Equal(t, "error: unknown command\n2\n1\n3\n", out.String(), "wrong output")
	assert.Equal(t, 3, tree.Count(), "commands after quit were run")
	assert.Equal(t, uint64(3), r.Executed(), "wrong executed count")
	assert.Equal(t, uint64(1), r.Failed(), "wrong failed count")
}

func TestRunAllPromptAndOrder(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, _, out := newIntRunner()
	r.SetPrompt("> ")
	r.SetOrder(avl.OrderPre)

	err := r.RunAll(strings.NewReader("insert 1 2 3\ndisplay\n"))
	assert.Nil(t, err, "run all error")
	assert.Equal(t, "> > 2\n1\n3\n> ", out.String(), "wrong output")
}

func TestNewInterpreter(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	items := []struct {
		valueType string
		input     string
		expected  string
	}{
		{"int", "insert 10 0x2 -3\ndisplay\n", "-3\n2\n10\n"},
		{"", "insert 3 2 1\ndisplay\n", "1\n2\n3\n"},
		{"float", "insert 2.5 -1e3 0.125\ndisplay\n", "-1000\n0.125\n2.5\n"},
		{"String", "insert pear apple fig\ndisplay\n", "apple\nfig\npear\n"},
	}
	for _, item := range items {
		out := &bytes.Buffer{}
		i, err := script.NewInterpreter(item.valueType, out, logger.New("script"), avl.WithSeed(1))
		require.Nil(t, err, "error for: %q", item.valueType)

		err = i.RunAll(strings.NewReader(item.input))
		assert.Nil(t, err, "run error for: %q", item.valueType)
		assert.Equal(t, item.expected, out.String(), "wrong output for: %q", item.valueType)
	}

	_, err := script.NewInterpreter("complex", &bytes.Buffer{}, logger.New("script"))
	assert.Equal(t, fault.ErrInvalidValueType, err, "wrong error")
}

func TestParsers(t *testing.T) {
	n, err := script.ParseInt("-42")
	assert.Nil(t, err, "int error")
	assert.Equal(t, -42, n, "wrong int")

	_, err = script.ParseInt("4.2")
	assert.Equal(t, fault.ErrInvalidValue, err, "wrong int error")

	f, err := script.ParseFloat("0.5")
	assert.Nil(t, err, "float error")
	assert.Equal(t, 0.5, f, "wrong float")

	_, err = script.ParseFloat("NaN")
	assert.Equal(t, fault.ErrInvalidValue, err, "NaN accepted")

	s, err := script.ParseString("word")
	assert.Nil(t, err, "string error")
	assert.Equal(t, "word", s, "wrong string")
}
