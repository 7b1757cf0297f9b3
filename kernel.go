// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package roundshift

import (
	"golang.org/x/exp/constraints"

	"github.com/ava-labs/roundshift/halfbit"
)

// Round returns `v/2^s`, rounded to the nearest integer with ties away from
// zero, computed without division. It performs no range checking: `s` MUST be
// less than the width of `T`. Unlike the checked functions, Round accepts a
// shift of one less than the width for signed types too.
func Round[T constraints.Integer](v T, s uint8) T {
	return round(v, s, halfbit.Of[T](s))
}

// round is the rounding decision, given the half-bit weight of `s`.
//
// Go defines `>>` on signed operands as an arithmetic shift, so
// `v>>s` is the floor of the quotient for both signs. For negative `v` the
// floor of an exact tie is already the away-from-zero answer, hence the strict
// comparison.
func round[T constraints.Integer](v T, s uint8, half T) T {
	if s == 0 {
		return v
	}
	truncated := v >> s
	low := v & (half<<1 - 1)
	if v < 0 {
		if low > half {
			truncated++
		}
		return truncated
	}
	if low >= half {
		truncated++
	}
	return truncated
}
