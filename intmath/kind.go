// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package intmath

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// A Kind identifies one of the fixed-width integer types by width and
// signedness. It allows code that only learns the type at run time to select
// the matching generic instantiation.
type Kind uint8

// Kinds supported by the rounding kernel. The zero value is invalid.
const (
	Int8 Kind = iota + 1
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

// Kinds returns every valid [Kind], signed kinds first.
func Kinds() []Kind {
	return []Kind{Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64}
}

// KindOf returns the [Kind] with the same width and signedness as `T`. Types
// such as `int` and `uintptr` map to the Kind of their platform width.
func KindOf[T constraints.Integer]() Kind {
	var k Kind
	switch Bits[T]() {
	case 8:
		k = Int8
	case 16:
		k = Int16
	case 32:
		k = Int32
	default:
		k = Int64
	}
	if !IsSigned[T]() {
		k += Uint8 - Int8
	}
	return k
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= Int8 && k <= Uint64
}

// Signed reports whether k is a signed kind.
func (k Kind) Signed() bool {
	return k >= Int8 && k <= Int64
}

// Bits returns the width of k, or 0 if k is invalid.
func (k Kind) Bits() uint8 {
	if !k.Valid() {
		return 0
	}
	return 8 << ((k - Int8) % 4)
}

// MaxShift is the [Kind] equivalent of the generic [MaxShift].
func (k Kind) MaxShift() uint8 {
	switch {
	case !k.Valid():
		return 0
	case k.Signed():
		return k.Bits() - 2
	default:
		return k.Bits() - 1
	}
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	prefix := "uint"
	if k.Signed() {
		prefix = "int"
	}
	return fmt.Sprintf("%s%d", prefix, k.Bits())
}

// ParseKind is the inverse of [Kind.String].
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown integer kind %q", s)
}
