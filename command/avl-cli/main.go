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
	"github.com/urfave/cli"

	"github.com/bitmark-inc/balancedtree/avl"
	"github.com/bitmark-inc/balancedtree/script"
)

type metadata struct {
	valueType string
	policy    string
	options   []avl.Option
	verbose   bool
	e         io.Writer
	w         io.Writer
	r         io.Reader
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func newApp(r io.Reader, w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build a balanced tree from values and report on it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "type, t",
			Value: script.TypeInt,
			Usage: " value `TYPE` [int|float|string]",
		},
		cli.StringFlag{
			Name:  "policy, p",
			Value: "random",
			Usage: " removal side `POLICY` [random|predecessor|successor|alternate]",
		},
		cli.Int64Flag{
			Name:  "seed, s",
			Value: 0,
			Usage: " random policy `SEED`, 0 uses the clock",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sort",
			Usage:     "print the values in a traversal order",
			ArgsUsage: "[VALUE…]\n   (values are read from standard input when none are given)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "in",
					Usage: " traversal `ORDER` [in|pre|post|level]",
				},
				cli.StringSliceFlag{
					Name:  "remove, r",
					Usage: " remove `VALUE` after inserting, may be repeated",
				},
			},
			Action: runSort,
		},
		{
			Name:      "shape",
			Usage:     "draw the tree",
			ArgsUsage: "[VALUE…]",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "detail, d",
					Usage: " show height and balance of each node",
				},
				cli.StringSliceFlag{
					Name:  "remove, r",
					Usage: " remove `VALUE` after inserting, may be repeated",
				},
			},
			Action: runShape,
		},
		{
			Name:      "check",
			Usage:     "verify the tree invariants after every insertion",
			ArgsUsage: "[VALUE…]",
			Flags:     []cli.Flag{},
			Action:    runCheck,
		},
		{
			Name:      "stats",
			Usage:     "counters as JSON",
			ArgsUsage: "[VALUE…]",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "remove, r",
					Usage: " remove `VALUE` after inserting, may be repeated",
				},
			},
			Action: runStats,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// validate the global options
	app.Before = func(c *cli.Context) error {

		if "version" == c.Args().Get(0) {
			return nil
		}

		policyName := c.GlobalString("policy")
		policy, err := avl.PolicyByName(policyName, c.GlobalInt64("seed"))
		if nil != err {
			return fmt.Errorf("policy: %q error: %s", policyName, err)
		}

		valueType := c.GlobalString("type")
		switch valueType {
		case script.TypeInt, script.TypeFloat, script.TypeString:
		default:
			return fmt.Errorf("type: %q can only be int/float/string", valueType)
		}

		c.App.Metadata["config"] = &metadata{
			valueType: valueType,
			policy:    policyName,
			options:   []avl.Option{avl.WithPolicy(policy)},
			verbose:   c.GlobalBool("verbose"),
			e:         c.App.ErrWriter,
			w:         c.App.Writer,
			r:         r,
		}
		return nil
	}

	return app
}
