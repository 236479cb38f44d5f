// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runShape(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	t, err := makeTree(c, m, false)
	if nil != err {
		return err
	}

	depth := t.Print(m.w, c.Bool("detail"))
	if m.verbose {
		fmt.Fprintf(m.e, "levels: %d\n", depth)
	}
	return nil
}
