// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/balancedtree/avl"
	"github.com/bitmark-inc/balancedtree/background"
	"github.com/bitmark-inc/balancedtree/fault"
	"github.com/bitmark-inc/balancedtree/script"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0
	if verbose {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// values were checked by getConfiguration
	policy, err := avl.PolicyByName(theConfiguration.Policy, theConfiguration.Seed)
	fault.PanicIfError("side policy", err)
	order, err := avl.ParseOrder(theConfiguration.DisplayOrder)
	fault.PanicIfError("display order", err)

	log.Infof("value type: %s  policy: %s  display: %s", theConfiguration.ValueType, theConfiguration.Policy, order)

	interpreter, err := script.NewInterpreter(theConfiguration.ValueType, os.Stdout, logger.New("script"), avl.WithPolicy(policy))
	if nil != err {
		log.Criticalf("interpreter initialise error: %s", err)
		exitwithstatus.Message("interpreter initialise error: %s", err)
	}
	interpreter.SetOrder(order)

	// flush the log if interrupted while reading commands
	processes := background.Processes{
		&signalWatcher{
			log:         log,
			interpreter: interpreter,
			quiet:       quiet,
			exit: func(code int) {
				logger.Finalise()
				os.Exit(code)
			},
		},
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// skip the "run" command word
	files := arguments
	if len(files) > 0 {
		files = files[1:]
	}

	if 0 == len(files) && !quiet && isTerminal(os.Stdin) {
		interpreter.SetPrompt(theConfiguration.Prompt)
	}

	if err := runScripts(log, interpreter, os.Stdin, files); nil != err {
		log.Errorf("run error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}
}

// runScripts - run each script file in turn, or the reader when no
// files are given
//
// any failed command gives an error after all input has been read
func runScripts(log *logger.L, interpreter script.Interpreter, stdin io.Reader, files []string) error {
	if 0 == len(files) {
		if err := interpreter.RunAll(stdin); nil != err {
			return fmt.Errorf("read standard input error: %s", err)
		}
	}

	for _, fileName := range files {
		log.Infof("run script: %q", fileName)
		if err := runFile(interpreter, fileName); nil != err {
			return fmt.Errorf("script: %q  error: %s", fileName, err)
		}
	}

	if 0 != interpreter.Failed() {
		return fmt.Errorf("%d of %d commands failed", interpreter.Failed(), interpreter.Executed())
	}
	return nil
}

func runFile(interpreter script.Interpreter, fileName string) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()
	return interpreter.RunAll(f)
}

// only prompt for interactive input
func isTerminal(f *os.File) bool {
	fileInfo, err := f.Stat()
	if nil != err {
		return false
	}
	return 0 != fileInfo.Mode()&os.ModeCharDevice
}
