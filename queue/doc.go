// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package queue - an unbounded first-in first-out queue
//
// Not thread safe, the queue belongs to a single go routine.
package queue
