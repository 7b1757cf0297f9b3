// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build halfbittable

package halfbit

import "golang.org/x/exp/constraints"

// Strategy names the implementation backing [Of].
const Strategy = "table"

// Of returns the half-bit weight `1<<(shift-1)` of `T`, or 0 if `shift` is 0.
func Of[T constraints.Integer](shift uint8) T { return Table[T](shift) }
