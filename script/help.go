// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
)

type helpEntry struct {
	command  string
	synonyms []string
	args     string
	text     string
}

var helpText = []helpEntry{
	{"insert", []string{"add"}, "VALUE…", "add values, duplicates are kept"},
	{"remove", []string{"delete"}, "VALUE…", "remove one occurrence of each value"},
	{"find", nil, "VALUE", "search and remember the match"},
	{"found", nil, "", "value of the last successful find"},
	{"lookup", nil, "VALUE", "search without changing the remembered match"},
	{"min", nil, "", "lowest value"},
	{"max", nil, "", "highest value"},
	{"root", nil, "", "value at the root"},
	{"height", nil, "", "tree height, -1 when empty"},
	{"size", []string{"count"}, "", "number of values"},
	{"empty", nil, "", "true if there are no values"},
	{"clear", nil, "", "remove all values"},
	{"display", nil, "[in|pre|post|level]", "one value per line"},
	{"print", nil, "", "draw the tree with heights and balance"},
	{"check", nil, "", "verify order, heights, balance and count"},
	{"iterate", nil, "[VALUE]", "values in order, from the sub-tree of VALUE if given"},
	{"stats", nil, "", "rotation and node counters"},
	{"help", []string{"?"}, "", "this message"},
	{"quit", []string{"exit"}, "", "stop reading commands"},
}

func (r *Runner[T]) help() {
	fmt.Fprintln(r.w, "commands:")
	for _, h := range helpText {
		fmt.Fprintf(r.w, "  %-8s %-22s %s\n", h.command, h.args, h.text)
		for _, s := range h.synonyms {
			fmt.Fprintf(r.w, "  %-8s (same as %s)\n", s, h.command)
		}
	}
}
