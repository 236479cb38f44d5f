// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - a line oriented command interpreter that drives a
// balanced tree
//
// each line is a command followed by its arguments, e.g.
//
//   insert 5 3 8
//   remove 5
//   display level
//
// blank lines and lines starting with '#' are ignored, "quit" or
// "exit" stop RunAll
package script
