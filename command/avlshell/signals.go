// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/balancedtree/script"
)

// exit status after an interrupt
const interruptedStatus = 130

// flushes the log and exits if interrupted while reading commands
type signalWatcher struct {
	log         *logger.L
	interpreter script.Interpreter
	quiet       bool
	exit        func(code int) // must flush the log
}

func (w *signalWatcher) Run(args interface{}, shutdown <-chan struct{}) {

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	select {
	case <-shutdown:
		return
	case sig := <-ch:
		w.log.Infof("received signal: %v", sig)
		w.log.Infof("executed: %d  failed: %d", w.interpreter.Executed(), w.interpreter.Failed())
		if !w.quiet {
			fmt.Printf("\nreceived signal: %v\n", sig)
		}
		w.exit(interruptedStatus)
	}
}
