// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package halfbit provides the half-unit bit weight used to detect rounding
// ties when dividing by a power of two.
//
// Two strategies are available: a lookup table populated at initialisation,
// and a mask computed at each call. They return identical values for every
// type and shift. [Of] uses exactly one of them, chosen at build time with the
// `halfbittable` tag.
package halfbit

import "golang.org/x/exp/constraints"

// table[s] is the half-bit weight for a shift of `s`, truncated to the width
// of the requested type on lookup.
var table [65]uint64

func init() {
	for s := 1; s < len(table); s++ {
		table[s] = 1 << (s - 1)
	}
}

// Table returns the half-bit weight for `shift` from a precomputed table. A
// shift of zero has no half-bit and returns 0. Shifts greater than 64 panic.
func Table[T constraints.Integer](shift uint8) T {
	return T(table[shift])
}

// Computed returns the half-bit weight for `shift`, evaluating `1<<(shift-1)`.
// A shift of zero has no half-bit and returns 0.
func Computed[T constraints.Integer](shift uint8) T {
	if shift == 0 {
		return 0
	}
	return T(1) << (shift - 1)
}
