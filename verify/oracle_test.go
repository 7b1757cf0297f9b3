// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"
)

func TestExact(t *testing.T) {
	tests := []struct {
		v    int64
		s    uint8
		want int64
	}{
		{v: 3, s: 1, want: 2},   // 1.5
		{v: -3, s: 1, want: -2}, // -1.5
		{v: -4, s: 1, want: -2},
		{v: 5, s: 2, want: 1},   // 1.25
		{v: -5, s: 2, want: -1}, // -1.25
		{v: 6, s: 2, want: 2},   // 1.5
		{v: -6, s: 2, want: -2}, // -1.5
		{v: -7, s: 2, want: -2}, // -1.75
		{v: 42, s: 0, want: 42},
		{v: math.MinInt64, s: 62, want: -2},
		{v: math.MaxInt64, s: 62, want: 2},
	}
	for _, tt := range tests {
		if got := Exact(tt.v, tt.s); got != tt.want {
			t.Errorf("Exact[%T](%[1]d, %d) got %d; want %d", tt.v, tt.s, got, tt.want)
		}
	}

	if got, want := Exact[uint64](math.MaxUint64, 63), uint64(2); got != want {
		t.Errorf("Exact[uint64]([max], 63) got %d; want %d", got, want)
	}
	if got, want := Exact[int8](-128, 7), int8(-1); got != want {
		t.Errorf("Exact[int8](-128, 7) got %d; want %d", got, want)
	}
}

// bigRound is an independent reference, rounding a rational half away from
// zero with [big.Rat].
func bigRound(v int64, s uint8) int64 {
	r := new(big.Rat).SetFrac(big.NewInt(v), new(big.Int).Lsh(big.NewInt(1), uint(s)))
	abs := new(big.Rat).Abs(r)
	abs.Add(abs, big.NewRat(1, 2))
	q := new(big.Int).Quo(abs.Num(), abs.Denom())
	if r.Sign() < 0 {
		q.Neg(q)
	}
	return q.Int64()
}

func TestExactAgainstBig(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is valuable for tests
	for range 10_000 {
		v := int64(rng.Uint64()) >> rng.IntN(64) //nolint:gosec // Bit pattern is all that matters
		s := uint8(rng.IntN(63))                 //nolint:gosec // < 63
		if got, want := Exact(v, s), bigRound(v, s); got != want {
			t.Errorf("Exact[%T](%[1]d, %d) got %d; want %d", v, s, got, want)
		}
	}
}

func TestExactScale(t *testing.T) {
	if got, ok := ExactScale[int8](-3, 5, 2); !ok || got != -4 { // -3.75
		t.Errorf("ExactScale[int8](-3, 5, 2) got (%d, %t); want (-4, true)", got, ok)
	}
	if _, ok := ExactScale[int8](64, 2, 1); ok {
		t.Error("ExactScale[int8](64, 2, 1) got ok; want overflow")
	}
}
