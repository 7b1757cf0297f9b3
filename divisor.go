// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package roundshift

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/ava-labs/roundshift/diag"
	"github.com/ava-labs/roundshift/halfbit"
	"github.com/ava-labs/roundshift/intmath"
)

// A Divisor divides by a fixed power of two, with its half-bit weight
// precomputed. The zero value divides by 2^0.
type Divisor[T constraints.Integer] struct {
	shift uint8
	half  T
}

// Divisors for every valid shift of each type, indexed by shift. Indexing
// with a constant shift that is out of range is a compile-time error, e.g.
// `Int8Divisors[7]`. The arrays MUST NOT be modified.
var (
	Int8Divisors   [7]Divisor[int8]
	Int16Divisors  [15]Divisor[int16]
	Int32Divisors  [31]Divisor[int32]
	Int64Divisors  [63]Divisor[int64]
	Uint8Divisors  [8]Divisor[uint8]
	Uint16Divisors [16]Divisor[uint16]
	Uint32Divisors [32]Divisor[uint32]
	Uint64Divisors [64]Divisor[uint64]
)

func init() {
	fillDivisors(Int8Divisors[:])
	fillDivisors(Int16Divisors[:])
	fillDivisors(Int32Divisors[:])
	fillDivisors(Int64Divisors[:])
	fillDivisors(Uint8Divisors[:])
	fillDivisors(Uint16Divisors[:])
	fillDivisors(Uint32Divisors[:])
	fillDivisors(Uint64Divisors[:])
}

func fillDivisors[T constraints.Integer](ds []Divisor[T]) {
	for s := range ds {
		ds[s] = newDivisor[T](uint8(s)) //nolint:gosec // len(ds) <= 64
	}
}

func newDivisor[T constraints.Integer](s uint8) Divisor[T] {
	return Divisor[T]{
		shift: s,
		half:  halfbit.Of[T](s),
	}
}

// NewDivisor returns a [Divisor] for `2^shift`, for use in generic code where
// the Divisor arrays can't be indexed by type.
func NewDivisor[T constraints.Integer](shift uint8) (Divisor[T], error) {
	if err := checkShift[T](shift); err != nil {
		return Divisor[T]{}, err
	}
	return newDivisor[T](shift), nil
}

// MustDivisor is equivalent to [NewDivisor] but panics on error. It is
// intended for package-level variables, where an invalid shift fails at
// initialisation.
func MustDivisor[T constraints.Integer](shift uint8) Divisor[T] {
	d, err := NewDivisor[T](shift)
	if err != nil {
		panic(err)
	}
	return d
}

// Exponent returns the power of two by which d divides.
func (d Divisor[T]) Exponent() uint8 {
	return d.shift
}

// Shift returns `num/2^d.Exponent()`, rounded with ties away from zero.
func (d Divisor[T]) Shift(num T) T {
	return round(num, d.shift, d.half)
}

// Scale returns `num*mul/2^d.Exponent()`, rounded with ties away from zero.
// The product is computed in `T` and wraps on overflow.
func (d Divisor[T]) Scale(num, mul T) T {
	if diag.Enabled && intmath.MulOverflows(num, mul) {
		diag.Overflow("Divisor.Scale", intmath.KindOf[T](),
			zap.Any("num", num),
			zap.Any("mul", mul),
			zap.Uint8("shift", d.shift),
			zap.Any("wrapped", num*mul),
		)
	}
	return round(num*mul, d.shift, d.half)
}

func (d Divisor[T]) String() string {
	return fmt.Sprintf("%v/2^%d", intmath.KindOf[T](), d.shift)
}
