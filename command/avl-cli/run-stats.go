// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type statsReply struct {
	Count          int `json:"count"`
	Height         int `json:"height"`
	LeftRotations  int `json:"leftRotations"`
	RightRotations int `json:"rightRotations"`
	TotalNodes     int `json:"totalNodes"`
	FreeNodes      int `json:"freeNodes"`
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	t, err := makeTree(c, m, false)
	if nil != err {
		return err
	}

	s := t.Stats()
	reply := statsReply{
		Count:          t.Count(),
		Height:         t.Height(),
		LeftRotations:  s.LeftRotations,
		RightRotations: s.RightRotations,
		TotalNodes:     s.TotalNodes,
		FreeNodes:      s.FreeNodes,
	}
	return printJson(m.w, reply)
}
