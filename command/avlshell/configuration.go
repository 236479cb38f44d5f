// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/balancedtree/avl"
	"github.com/bitmark-inc/balancedtree/configuration"
	"github.com/bitmark-inc/balancedtree/script"
	"github.com/bitmark-inc/balancedtree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultValueType    = script.TypeInt
	defaultPolicy       = "random"
	defaultDisplayOrder = "in"
	defaultPrompt       = "avl> "

	defaultLogDirectory = "log"
	defaultLogFile      = "avlshell.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - the avlshell configuration file contents
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	ValueType     string               `gluamapper:"value_type" json:"value_type"`
	Policy        string               `gluamapper:"policy" json:"policy"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	DisplayOrder  string               `gluamapper:"display_order" json:"display_order"`
	Prompt        string               `gluamapper:"prompt" json:"prompt"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		ValueType:     defaultValueType,
		Policy:        defaultPolicy,
		Seed:          0, // seed from the clock
		DisplayOrder:  defaultDisplayOrder,
		Prompt:        defaultPrompt,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// names are case insensitive; reject unknown ones before
	// anything is started
	options.ValueType = strings.ToLower(strings.TrimSpace(options.ValueType))
	switch options.ValueType {
	case script.TypeInt, script.TypeFloat, script.TypeString:
	default:
		return nil, fmt.Errorf("value_type: %q is not supported", options.ValueType)
	}

	options.Policy = strings.ToLower(strings.TrimSpace(options.Policy))
	if _, err := avl.PolicyByName(options.Policy, options.Seed); nil != err {
		return nil, fmt.Errorf("policy: %q error: %s", options.Policy, err)
	}

	if _, err := avl.ParseOrder(options.DisplayOrder); nil != err {
		return nil, fmt.Errorf("display_order: %q error: %s", options.DisplayOrder, err)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return nil, fmt.Errorf("Path: %q error: %s", options.DataDirectory, err)
	}

	if err := util.EnsurePlainFileName(options.Logging.File); nil != err {
		return nil, fmt.Errorf("Files: %q error: %s", options.Logging.File, err)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
