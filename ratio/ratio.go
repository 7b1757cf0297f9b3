// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ratio represents rational scaling factors of the form `mul/2^shift`,
// applied with correct rounding and without division.
package ratio

import (
	"cmp"
	"fmt"

	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"

	"github.com/ava-labs/roundshift"
	"github.com/ava-labs/roundshift/intmath"
)

// A Ratio is the rational number `mul/2^shift`. It is not thread safe.
type Ratio[T constraints.Integer] struct {
	mul T
	// invariant: shift <= intmath.MaxShift[T]()
	shift uint8

	shiftInvariants []*T
}

// IMPORTANT: keep [Ratio.Clone] next to the struct definition to make it
// easier to check that all fields are copied.

// Clone returns a copy of the ratio. Note that it does NOT copy the pointers
// passed to [Ratio.SetShiftInvariants] as this risks coupling the clone with
// the wrong invariants.
func (r *Ratio[T]) Clone() *Ratio[T] {
	return &Ratio[T]{
		mul:   r.mul,
		shift: r.shift,
	}
}

// New returns the ratio `mul/2^shift`.
func New[T constraints.Integer](mul T, shift uint8) (*Ratio[T], error) {
	if _, err := roundshift.NewDivisor[T](shift); err != nil {
		return nil, err
	}
	return &Ratio[T]{
		mul:   mul,
		shift: shift,
	}, nil
}

// Mul returns the numerator of the ratio.
func (r *Ratio[T]) Mul() T {
	return r.mul
}

// Shift returns the base-2 logarithm of the ratio's denominator.
func (r *Ratio[T]) Shift() uint8 {
	return r.shift
}

// Apply returns `num*r`, rounded to the nearest integer with ties away from
// zero. As with [roundshift.Scale], the intermediate product wraps if it
// overflows `T`.
func (r *Ratio[T]) Apply(num T) T {
	return roundshift.Scale(num, r.mul, r.shift)
}

// SetShift changes the denominator of the ratio to `2^shift`, scaling the
// numerator to match. Increasing the shift is exact, but an [intmath.ErrOverflow]
// is returned if the scaled numerator doesn't fit in `T`. Decreasing the shift
// rounds the numerator to the nearest integer with ties away from zero.
//
// Values registered with [Ratio.SetShiftInvariants] are scaled in the same
// way. If any value can't be scaled then SetShift returns an error and
// nothing is modified.
func (r *Ratio[T]) SetShift(shift uint8) error {
	if _, err := roundshift.NewDivisor[T](shift); err != nil {
		return err
	}
	mul, err := r.rescale(r.mul, shift)
	if err != nil {
		return fmt.Errorf("numerator: %w", err)
	}

	// Avoid scaling some but not all invariants if one results in an error.
	scaled := make([]T, len(r.shiftInvariants))
	for i, v := range r.shiftInvariants {
		scaled[i], err = r.rescale(*v, shift)
		if err != nil {
			return fmt.Errorf("shift invariant [%d]: %w", i, err)
		}
	}
	for i, v := range r.shiftInvariants {
		*v = scaled[i]
	}

	r.mul = mul
	r.shift = shift
	return nil
}

// SetShiftInvariants sets values that, whenever [Ratio.SetShift] is called,
// will be re-denominated along with the ratio. Rounding aside, the rational
// numbers formed by each invariant divided by `2^shift` remain equal despite
// their change in denominator.
//
// The pointers MUST NOT be nil.
func (r *Ratio[T]) SetShiftInvariants(inv ...*T) {
	r.shiftInvariants = inv
}

// rescale returns `v`, re-denominated from the current shift to `to`.
func (r *Ratio[T]) rescale(v T, to uint8) (T, error) {
	if to <= r.shift {
		return roundshift.Round(v, r.shift-to), nil
	}
	by := to - r.shift
	if intmath.ShlOverflows(v, by) {
		return 0, fmt.Errorf("scaling %d from shift %d to %d: %w", v, r.shift, to, intmath.ErrOverflow)
	}
	return v << by, nil
}

// Compare returns
//
//	-1 if r < s
//	 0 if r == s
//	+1 if r > s.
//
// The two ratios MAY have a different [Ratio.Shift].
func (r *Ratio[T]) Compare(s *Ratio[T]) int {
	if r.shift == s.shift {
		return cmp.Compare(r.mul, s.mul)
	}
	// Bring both numerators to the larger denominator. At most 63 bits of
	// shift are added to a 64-bit value so 256 bits never overflow.
	shift := max(r.shift, s.shift)
	a := widen(r.mul, shift-r.shift)
	b := widen(s.mul, shift-s.shift)
	switch {
	case a.Eq(b):
		return 0
	case a.Slt(b):
		return -1
	default:
		return 1
	}
}

// widen returns `v<<by` as a 256-bit two's-complement integer.
func widen[T constraints.Integer](v T, by uint8) *uint256.Int {
	w := uint256.NewInt(intmath.Abs(v))
	if v < 0 {
		w.Neg(w)
	}
	return w.Lsh(w, uint(by))
}

// String returns the ratio as a human-readable string. It is not intended for
// parsing and its format MAY change.
func (r *Ratio[T]) String() string {
	return fmt.Sprintf("%d/2^%d", r.mul, r.shift)
}
