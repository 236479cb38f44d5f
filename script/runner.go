// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/balancedtree/avl"
	"github.com/bitmark-inc/balancedtree/counter"
	"github.com/bitmark-inc/balancedtree/fault"
)

// returned by Run for quit and exit
var errQuit = fault.ProcessError("quit")

// Runner - executes commands against one tree
type Runner[T any] struct {
	tree     *avl.Tree[T]
	parse    func(string) (T, error)
	w        io.Writer
	log      *logger.L
	prompt   string
	order    avl.Order // default for display
	executed counter.Counter
	failed   counter.Counter
}

// New - create a runner for an existing tree, values in commands are
// converted by parse and all output goes to w
func New[T any](tree *avl.Tree[T], parse func(string) (T, error), w io.Writer, log *logger.L) *Runner[T] {
	return &Runner[T]{
		tree:  tree,
		parse: parse,
		w:     w,
		log:   log,
		order: avl.OrderIn,
	}
}

// SetPrompt - written before each line read by RunAll, empty for none
func (r *Runner[T]) SetPrompt(prompt string) {
	r.prompt = prompt
}

// SetOrder - the order used by display without an argument
func (r *Runner[T]) SetOrder(order avl.Order) {
	r.order = order
}

// Executed - number of commands run so far
func (r *Runner[T]) Executed() uint64 {
	return r.executed.Uint64()
}

// Failed - number of commands that returned an error
func (r *Runner[T]) Failed() uint64 {
	return r.failed.Uint64()
}

// RunAll - execute every line from the reader, errors from individual
// commands are reported to the output and do not stop the run
func (r *Runner[T]) RunAll(rd io.Reader) error {
	scanner := bufio.NewScanner(rd)
	for {
		if "" != r.prompt {
			fmt.Fprint(r.w, r.prompt)
		}
		if !scanner.Scan() {
			break
		}
		err := r.Run(scanner.Text())
		if errQuit == err {
			break
		}
		if nil != err {
			fmt.Fprintf(r.w, "error: %s\n", err)
		}
	}
	r.log.Infof("executed: %d  failed: %d", r.executed.Uint64(), r.failed.Uint64())
	return scanner.Err()
}

// Run - execute a single command line
func (r *Runner[T]) Run(line string) error {
	words := strings.Fields(line)
	if 0 == len(words) || strings.HasPrefix(words[0], "#") {
		return nil
	}

	command := strings.ToLower(words[0])
	arguments := words[1:]

	if "quit" == command || "exit" == command {
		return errQuit
	}

	r.log.Debugf("command: %s  arguments: %q", command, arguments)
	r.executed.Increment()

	err := r.dispatch(command, arguments)
	if nil != err {
		r.failed.Increment()
		if fault.IsErrProcess(err) {
			r.log.Errorf("command: %s  error: %s", command, err)
		} else {
			r.log.Warnf("command: %s  error: %s", command, err)
		}
	}
	return err
}

func (r *Runner[T]) dispatch(command string, arguments []string) error {
	switch command {

	case "insert", "add":
		values, err := r.values(arguments, 1)
		if nil != err {
			return err
		}
		for _, v := range values {
			r.tree.Insert(v)
		}

	case "remove", "delete":
		values, err := r.values(arguments, 1)
		if nil != err {
			return err
		}
		for _, v := range values {
			if r.tree.Remove(v) {
				fmt.Fprintf(r.w, "removed: %v\n", v)
			} else {
				fmt.Fprintf(r.w, "not found: %v\n", v)
			}
		}

	case "find":
		v, err := r.value(arguments)
		if nil != err {
			return err
		}
		r.report(v, r.tree.Find(v))

	case "found":
		v, err := r.tree.FoundData()
		if nil != err {
			return err
		}
		fmt.Fprintf(r.w, "%v\n", v)

	case "lookup":
		v, err := r.value(arguments)
		if nil != err {
			return err
		}
		_, ok := r.tree.Lookup(v)
		r.report(v, ok)

	case "min":
		return r.show(r.tree.Min())

	case "max":
		return r.show(r.tree.Max())

	case "root":
		return r.show(r.tree.RootValue())

	case "height":
		fmt.Fprintf(r.w, "%d\n", r.tree.Height())

	case "size", "count":
		fmt.Fprintf(r.w, "%d\n", r.tree.Count())

	case "empty":
		fmt.Fprintf(r.w, "%t\n", r.tree.IsEmpty())

	case "clear":
		r.tree.Clear()

	case "display":
		order := r.order
		if len(arguments) > 0 {
			o, err := avl.ParseOrder(arguments[0])
			if nil != err {
				return err
			}
			order = o
		}
		return r.tree.DisplayOrder(r.w, order)

	case "print":
		r.tree.Print(r.w, true)

	case "check":
		if err := r.tree.Check(); nil != err {
			return err
		}
		fmt.Fprintln(r.w, "ok")

	case "iterate":
		it := r.tree.Begin()
		if len(arguments) > 0 {
			v, err := r.value(arguments)
			if nil != err {
				return err
			}
			it = r.tree.Get(v)
		}
		s := make([]string, 0, r.tree.Count())
		for it.HasNext() {
			s = append(s, fmt.Sprint(it.Next()))
		}
		fmt.Fprintln(r.w, strings.Join(s, " "))

	case "stats":
		s := r.tree.Stats()
		fmt.Fprintf(r.w, "count: %d  height: %d\n", r.tree.Count(), r.tree.Height())
		fmt.Fprintf(r.w, "rotations left: %d  right: %d\n", s.LeftRotations, s.RightRotations)
		fmt.Fprintf(r.w, "nodes total: %d  free: %d\n", s.TotalNodes, s.FreeNodes)

	case "help", "?":
		r.help()

	default:
		return fault.ErrUnknownCommand
	}
	return nil
}

// parse at least minimum values
func (r *Runner[T]) values(arguments []string, minimum int) ([]T, error) {
	if len(arguments) < minimum {
		return nil, fault.ErrMissingArgument
	}
	values := make([]T, 0, len(arguments))
	for _, a := range arguments {
		v, err := r.parse(a)
		if nil != err {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// exactly one value
func (r *Runner[T]) value(arguments []string) (T, error) {
	if 1 != len(arguments) {
		var zero T
		if 0 == len(arguments) {
			return zero, fault.ErrMissingArgument
		}
		return zero, fault.ErrInvalidCount
	}
	return r.parse(arguments[0])
}

func (r *Runner[T]) report(v T, ok bool) {
	if ok {
		fmt.Fprintf(r.w, "found: %v\n", v)
	} else {
		fmt.Fprintf(r.w, "not found: %v\n", v)
	}
}

func (r *Runner[T]) show(v T, err error) error {
	if nil != err {
		return err
	}
	fmt.Fprintf(r.w, "%v\n", v)
	return nil
}
