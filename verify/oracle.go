// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"golang.org/x/exp/constraints"

	"github.com/ava-labs/roundshift/intmath"
)

// Exact returns `v/2^s` rounded to the nearest integer with ties away from
// zero, computed by integer division of the magnitude. It is the reference
// against which the division-free kernel is checked. `s` MUST be less than the
// width of `T`.
func Exact[T constraints.Integer](v T, s uint8) T {
	if s == 0 {
		return v
	}
	mag := intmath.Abs(v)
	d := uint64(1) << s
	q, r := mag/d, mag%d
	// r*2 >= d, without overflowing
	if r >= d-r {
		q++
	}
	if v < 0 {
		return -T(q)
	}
	return T(q)
}

// ExactScale returns [Exact] of `num*mul`. The boolean is false, and the value
// meaningless, if the product overflows `T`.
func ExactScale[T constraints.Integer](num, mul T, s uint8) (T, bool) {
	if intmath.MulOverflows(num, mul) {
		return 0, false
	}
	return Exact(num*mul, s), true
}
