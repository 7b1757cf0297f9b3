// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package roundshift computes correctly-rounded power-of-two scaling,
// `ROUND(num*mul / 2^shift)`, using only multiplication, bitwise AND and
// arithmetic shifts. Ties round away from zero.
//
// There are two call conventions over the same kernel. When the shift is
// known in advance, index one of the Divisor arrays (e.g. [Int16Divisors])
// with a constant; an out-of-range constant fails to compile and no range
// check happens at run time. When the shift is only known at run time, use
// [Shift] and [Scale], which return 0 for invalid shifts, or [TryShift] and
// [TryScale], which return [ErrInvalidShift].
//
// Products are computed in the operand type and are not checked for
// overflow. Building with the `roundshiftdiag` tag reports invalid shifts and
// overflowing products through package diag, without changing results.
package roundshift

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/ava-labs/roundshift/diag"
	"github.com/ava-labs/roundshift/intmath"
)

// ErrInvalidShift is returned if a shift exceeds [intmath.MaxShift] for the
// operand type.
var ErrInvalidShift = errors.New("invalid shift")

func checkShift[T constraints.Integer](s uint8) error {
	if max := intmath.MaxShift[T](); s > max {
		return fmt.Errorf("%w: %d > %d for %v", ErrInvalidShift, s, max, intmath.KindOf[T]())
	}
	return nil
}

// TryShift returns `num/2^shift`, rounded with ties away from zero. The error
// is non-nil i.f.f. `shift` is out of range, in which case the returned value
// is 0.
func TryShift[T constraints.Integer](num T, shift uint8) (T, error) {
	if err := checkShift[T](shift); err != nil {
		return 0, err
	}
	return Round(num, shift), nil
}

// TryScale returns `num*mul/2^shift`, rounded with ties away from zero. The
// product is computed in `T`; if it overflows then the result is that of the
// wrapped product. The error is non-nil i.f.f. `shift` is out of range, in
// which case the returned value is 0.
func TryScale[T constraints.Integer](num, mul T, shift uint8) (T, error) {
	if err := checkShift[T](shift); err != nil {
		return 0, err
	}
	if diag.Enabled && intmath.MulOverflows(num, mul) {
		diag.Overflow("Scale", intmath.KindOf[T](),
			zap.Any("num", num),
			zap.Any("mul", mul),
			zap.Uint8("shift", shift),
			zap.Any("wrapped", num*mul),
		)
	}
	return Round(num*mul, shift), nil
}

// Shift is equivalent to [TryShift] but returns 0 for an invalid shift
// instead of an error. A zero result is therefore ambiguous unless the shift
// is known to be valid.
func Shift[T constraints.Integer](num T, shift uint8) T {
	v, err := TryShift(num, shift)
	if err != nil && diag.Enabled {
		diag.InvalidShift("Shift", intmath.KindOf[T](), shift, zap.Any("num", num))
	}
	return v
}

// Scale is equivalent to [TryScale] but returns 0 for an invalid shift
// instead of an error. Shift(num, s) == Scale(num, 1, s).
func Scale[T constraints.Integer](num, mul T, shift uint8) T {
	v, err := TryScale(num, mul, shift)
	if err != nil && diag.Enabled {
		diag.InvalidShift("Scale", intmath.KindOf[T](), shift, zap.Any("num", num), zap.Any("mul", mul))
	}
	return v
}
