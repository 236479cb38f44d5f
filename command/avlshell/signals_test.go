// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/balancedtree/background"
	"github.com/bitmark-inc/balancedtree/script"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func newWatcher(t *testing.T, exited chan int) *signalWatcher {
	interpreter, err := script.NewInterpreter("int", &bytes.Buffer{}, logger.New("script"))
	require.Nil(t, err, "interpreter error")
	return &signalWatcher{
		log:         logger.New("main"),
		interpreter: interpreter,
		quiet:       true,
		exit: func(code int) {
			exited <- code
		},
	}
}

func TestSignalWatcherShutdown(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	exited := make(chan int, 1)
	bg := background.Start(background.Processes{newWatcher(t, exited)}, nil)
	bg.Stop()

	select {
	case code := <-exited:
		t.Fatalf("unexpected exit: %d", code)
	default:
	}
}

func TestSignalWatcherInterrupt(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	exited := make(chan int, 1)
	bg := background.Start(background.Processes{newWatcher(t, exited)}, nil)
	defer bg.Stop()

	// allow the watcher to register for signals
	time.Sleep(50 * time.Millisecond)
	require.Nil(t, syscall.Kill(os.Getpid(), syscall.SIGINT), "kill error")

	select {
	case code := <-exited:
		assert.Equal(t, interruptedStatus, code, "wrong exit status")
	case <-time.After(5 * time.Second):
		t.Fatal("signal not handled")
	}
}
