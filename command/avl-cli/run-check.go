// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	t, err := makeTree(c, m, true)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "ok: %d values  height: %d\n", t.Count(), t.Height())
	return nil
}
