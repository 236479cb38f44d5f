// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"cmp"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/balancedtree/avl"
	"github.com/bitmark-inc/balancedtree/fault"
	"github.com/bitmark-inc/balancedtree/script"
)

// the parts of a tree the commands use, independent of value type
type tree interface {
	DisplayOrder(w io.Writer, order avl.Order) error
	Print(w io.Writer, printData bool) int
	Check() error
	Stats() avl.Stats
	Count() int
	Height() int
}

// values from the command line, otherwise words from the reader
func getWords(c *cli.Context, m *metadata) ([]string, error) {
	if c.NArg() > 0 {
		return []string(c.Args()), nil
	}
	words := []string{}
	scanner := bufio.NewScanner(m.r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	return words, scanner.Err()
}

// create a tree of the configured type from the words, optionally
// checking it after every insertion, then remove some values
func makeTree(c *cli.Context, m *metadata, checkEach bool) (tree, error) {
	words, err := getWords(c, m)
	if nil != err {
		return nil, err
	}
	if 0 == len(words) {
		return nil, fault.ErrMissingArgument
	}
	removals := c.StringSlice("remove")

	if m.verbose {
		fmt.Fprintf(m.e, "type: %s  policy: %s  values: %d  removals: %d\n", m.valueType, m.policy, len(words), len(removals))
	}

	switch m.valueType {
	case script.TypeFloat:
		return build(words, removals, script.ParseFloat, m.options, checkEach)
	case script.TypeString:
		return build(words, removals, script.ParseString, m.options, checkEach)
	default:
		return build(words, removals, script.ParseInt, m.options, checkEach)
	}
}

func build[T cmp.Ordered](words []string, removals []string, parse func(string) (T, error), options []avl.Option, checkEach bool) (tree, error) {
	t := avl.New[T](options...)
	for _, w := range words {
		v, err := parse(w)
		if nil != err {
			return nil, fmt.Errorf("value: %q error: %s", w, err)
		}
		t.Insert(v)
		if checkEach {
			if err := t.Check(); nil != err {
				return nil, fmt.Errorf("after insert: %v error: %s", v, err)
			}
		}
	}
	for _, w := range removals {
		v, err := parse(w)
		if nil != err {
			return nil, fmt.Errorf("value: %q error: %s", w, err)
		}
		if !t.Remove(v) {
			return nil, fmt.Errorf("remove: %v error: %s", v, fault.ErrValueNotFound)
		}
	}
	return t, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
