// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intmath provides special-case integer arithmetic and metadata about
// fixed-width integer types.
package intmath

import (
	"errors"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned if a return value would have overflowed its type.
var ErrOverflow = errors.New("overflow")

// Bits returns the width of `T` in bits.
func Bits[T constraints.Integer]() uint8 {
	var v T
	return uint8(unsafe.Sizeof(v) * 8)
}

// IsSigned reports whether `T` is a signed integer type.
func IsSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}

// MaxShift returns the largest shift accepted by the checked rounding APIs for
// `T`. Unsigned types may shift by up to one less than their width; signed
// types reserve an additional bit for the sign.
func MaxShift[T constraints.Integer]() uint8 {
	if IsSigned[T]() {
		return Bits[T]() - 2
	}
	return Bits[T]() - 1
}

// Max returns the largest value representable by `T`.
func Max[T constraints.Integer]() T {
	if IsSigned[T]() {
		return T(1)<<(Bits[T]()-1) - 1
	}
	return ^T(0)
}

// Min returns the smallest value representable by `T`.
func Min[T constraints.Integer]() T {
	if IsSigned[T]() {
		return T(1) << (Bits[T]() - 1)
	}
	return 0
}

// Abs returns the magnitude of `v` as a uint64. Unlike negation in `T`, it is
// exact for the minimum value of a signed type.
func Abs[T constraints.Integer](v T) uint64 {
	m := uint64(v) // sign-extended for signed `T`
	if v < 0 {
		m = -m
	}
	return m
}

// MulOverflows reports whether `a*b`, computed in unbounded arithmetic, lies
// outside the range of `T`. The product computed in `T` is only exact if
// MulOverflows returns false.
func MulOverflows[T constraints.Integer](a, b T) bool {
	if a == 0 || b == 0 {
		return false
	}
	hi, lo := bits.Mul64(Abs(a), Abs(b))
	if hi != 0 {
		return true
	}
	limit := uint64(Max[T]())
	if (a < 0) != (b < 0) {
		// The negative range has one more value than the positive one.
		limit++
	}
	return lo > limit
}

// ShlOverflows reports whether `v<<s` loses information in `T`, including a
// change of sign for signed types.
func ShlOverflows[T constraints.Integer](v T, s uint8) bool {
	if s >= Bits[T]() {
		return v != 0
	}
	return (v<<s)>>s != v
}
