// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - event counters that can be read from a different
// go routine than the one updating them
package counter

import (
	"strconv"
	"sync/atomic"
)

// Counter - number of events, the zero value is ready to use
type Counter struct {
	n atomic.Uint64
}

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	return c.n.Add(1)
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return c.n.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.n.Load()
}

// String - conversion for fmt package
func (c *Counter) String() string {
	return strconv.FormatUint(c.n.Load(), 10)
}
