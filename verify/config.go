// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ava-labs/roundshift/intmath"
)

// AllShifts, as [Config.Shift], checks every valid shift of the kind.
const AllShifts = -1

// Config configures a verification [Run].
type Config struct {
	// Kind is the integer type under test.
	Kind intmath.Kind
	// Shift is the single shift to check, or [AllShifts].
	Shift int
	// Samples is the number of random inputs checked per shift. If zero, every
	// value of the kind is checked instead, which is only possible for widths
	// of up to 32 bits.
	Samples uint64
	// Multipliers enables checking of non-unit multipliers. When exhaustive,
	// every (num, mul) pair is checked, which is only possible for widths of
	// up to 16 bits. When sampling, each sample draws a random multiplier.
	Multipliers bool
	// Workers is the number of goroutines checking inputs concurrently.
	Workers int
	// Seed seeds the random source used when sampling.
	Seed uint64
	// MaxFailures is the number of failures recorded in a [Report] before
	// further failures are only counted.
	MaxFailures int
}

// DefaultConfig returns an exhaustive configuration for all shifts of int8,
// using one worker per available CPU.
func DefaultConfig() Config {
	return Config{
		Kind:        intmath.Int8,
		Shift:       AllShifts,
		Workers:     runtime.GOMAXPROCS(0),
		MaxFailures: 16,
	}
}

var (
	errInvalidKind          = errors.New("invalid kind")
	errShiftOutOfRange      = errors.New("shift out of range")
	errExhaustiveTooWide    = errors.New("exhaustive check too wide")
	errExhaustiveMulTooWide = errors.New("exhaustive multiplier check too wide")
	errWorkersNotPositive   = errors.New("workers not positive")
	errMaxFailuresNegative  = errors.New("max failures negative")
)

const (
	maxExhaustiveBits    = 32
	maxExhaustiveMulBits = 16
)

// Validate returns an error if c can't be used for a [Run].
func (c *Config) Validate() error {
	if !c.Kind.Valid() {
		return fmt.Errorf("%w: %v", errInvalidKind, c.Kind)
	}
	if c.Shift != AllShifts && (c.Shift < 0 || c.Shift > int(c.Kind.MaxShift())) {
		return fmt.Errorf("%w: %d not in [0, %d] for %v", errShiftOutOfRange, c.Shift, c.Kind.MaxShift(), c.Kind)
	}
	if c.Samples == 0 {
		if b := c.Kind.Bits(); b > maxExhaustiveBits {
			return fmt.Errorf("%w: %v has %d bits; max %d", errExhaustiveTooWide, c.Kind, b, maxExhaustiveBits)
		}
		if b := c.Kind.Bits(); c.Multipliers && b > maxExhaustiveMulBits {
			return fmt.Errorf("%w: %v has %d bits; max %d", errExhaustiveMulTooWide, c.Kind, b, maxExhaustiveMulBits)
		}
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: %d", errWorkersNotPositive, c.Workers)
	}
	if c.MaxFailures < 0 {
		return fmt.Errorf("%w: %d", errMaxFailuresNegative, c.MaxFailures)
	}
	return nil
}

// shifts returns the shifts selected by c, which MUST be valid.
func (c *Config) shifts() []uint8 {
	if c.Shift != AllShifts {
		return []uint8{uint8(c.Shift)} //nolint:gosec // validated
	}
	s := make([]uint8, c.Kind.MaxShift()+1)
	for i := range s {
		s[i] = uint8(i) //nolint:gosec // <= 63
	}
	return s
}
