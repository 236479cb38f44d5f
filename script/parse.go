// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/balancedtree/avl"
	"github.com/bitmark-inc/balancedtree/fault"
)

// supported value types
const (
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeString = "string"
)

// Interpreter - a Runner with its value type erased
type Interpreter interface {
	Run(line string) error
	RunAll(r io.Reader) error
	SetPrompt(prompt string)
	SetOrder(order avl.Order)
	Executed() uint64
	Failed() uint64
}

// ParseInt - decimal, hex (0x) or octal (0o) integers
func ParseInt(s string) (int, error) {
	n, err := strconv.ParseInt(s, 0, 0)
	if nil != err {
		return 0, fault.ErrInvalidValue
	}
	return int(n), nil
}

// ParseFloat - any number strconv accepts, except NaN which has no
// order
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if nil != err || math.IsNaN(f) {
		return 0, fault.ErrInvalidValue
	}
	return f, nil
}

// ParseString - the word itself
func ParseString(s string) (string, error) {
	return s, nil
}

// NewInterpreter - create a tree of the named value type together
// with a Runner for it
func NewInterpreter(valueType string, w io.Writer, log *logger.L, options ...avl.Option) (Interpreter, error) {
	switch strings.ToLower(strings.TrimSpace(valueType)) {
	case "", TypeInt:
		return New(avl.New[int](options...), ParseInt, w, log), nil
	case TypeFloat:
		return New(avl.New[float64](options...), ParseFloat, w, log), nil
	case TypeString:
		return New(avl.New[string](options...), ParseString, w, log), nil
	default:
		return nil, fault.ErrInvalidValueType
	}
}
