// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math/rand"
	"strings"
	"time"

	"github.com/bitmark-inc/balancedtree/fault"
)

// Side - the sub-tree that supplies the replacement value when a
// node with two children is removed
type Side int

// possible sides
const (
	Predecessor Side = iota // largest value of the left sub-tree
	Successor               // smallest value of the right sub-tree
)

// String - conversion for fmt package
func (s Side) String() string {
	switch s {
	case Predecessor:
		return "predecessor"
	case Successor:
		return "successor"
	default:
		return "unknown"
	}
}

//go:generate mockgen -source=policy.go -destination=mocks/policy.go -package=mocks

// SidePolicy - decides the replacement side for each removal of a
// node with two children
type SidePolicy interface {
	Choose() Side
}

// Copier - a policy that holds state implements this so that a cloned
// tree gets its own copy; any other policy is shared with the clone
type Copier interface {
	Copy() SidePolicy
}

// the policy for a new tree cloned from one using p
func copyPolicy(p SidePolicy) SidePolicy {
	if c, ok := p.(Copier); ok {
		return c.Copy()
	}
	return p
}

// coin flip for each removal
type randomPolicy struct {
	r *rand.Rand
}

// RandomPolicy - pick either side with equal probability
func RandomPolicy(src rand.Source) SidePolicy {
	return &randomPolicy{
		r: rand.New(src),
	}
}

// Copy - a new generator seeded from this one, which advances this
// generator by one draw
func (p *randomPolicy) Copy() SidePolicy {
	return RandomPolicy(rand.NewSource(p.r.Int63()))
}

func (p *randomPolicy) Choose() Side {
	if 0 == p.r.Intn(2) {
		return Predecessor
	}
	return Successor
}

// always the same side
type fixedPolicy Side

// FixedPolicy - always use the given side
func FixedPolicy(side Side) SidePolicy {
	return fixedPolicy(side)
}

func (p fixedPolicy) Choose() Side {
	return Side(p)
}

// predecessor, successor, predecessor, …
type alternatePolicy struct {
	next Side
}

// AlternatePolicy - switch side on every removal, starting with the
// predecessor
func AlternatePolicy() SidePolicy {
	return &alternatePolicy{
		next: Predecessor,
	}
}

// Copy - continue from the same side
func (p *alternatePolicy) Copy() SidePolicy {
	return &alternatePolicy{
		next: p.next,
	}
}

func (p *alternatePolicy) Choose() Side {
	s := p.next
	if Predecessor == s {
		p.next = Successor
	} else {
		p.next = Predecessor
	}
	return s
}

// PolicyByName - create a policy from its configuration name
//
// a zero seed for "random" means seed from the current time
func PolicyByName(name string, seed int64) (SidePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "random":
		if 0 == seed {
			seed = time.Now().UnixNano()
		}
		return RandomPolicy(rand.NewSource(seed)), nil
	case "predecessor", "left":
		return FixedPolicy(Predecessor), nil
	case "successor", "right":
		return FixedPolicy(Successor), nil
	case "alternate":
		return AlternatePolicy(), nil
	default:
		return nil, fault.ErrInvalidPolicy
	}
}
