// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package verify checks the division-free rounding functions against exact
// integer division, either exhaustively or by sampling, across a pool of
// worker goroutines.
package verify

import (
	"context"
	"fmt"
	"iter"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/roundshift"
	"github.com/ava-labs/roundshift/halfbit"
	"github.com/ava-labs/roundshift/intmath"
)

// A Failure is a single disagreement between a rounding function and the
// exact result, or a violation of monotonicity.
type Failure struct {
	Op        string
	Kind      intmath.Kind
	Num, Mul  string
	Shift     uint8
	Got, Want string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s[%v](num=%s, mul=%s, shift=%d) got %s; want %s", f.Op, f.Kind, f.Num, f.Mul, f.Shift, f.Got, f.Want)
}

// A Report summarises a verification [Run].
type Report struct {
	Kind intmath.Kind
	// Checked is the number of (num, mul, shift) inputs checked.
	Checked uint64
	// Skipped is the number of inputs not checked because the product
	// overflows the kind.
	Skipped uint64
	// FailureCount is the total number of failures, of which at most
	// [Config.MaxFailures] are in Failures.
	FailureCount uint64
	Failures     []Failure
}

// OK reports whether no failures were found.
func (r *Report) OK() bool {
	return r.FailureCount == 0
}

// Run validates `cfg` and checks the kind it specifies.
func Run(ctx context.Context, cfg Config, log logging.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case intmath.Int8:
		return Check[int8](ctx, cfg, log)
	case intmath.Int16:
		return Check[int16](ctx, cfg, log)
	case intmath.Int32:
		return Check[int32](ctx, cfg, log)
	case intmath.Int64:
		return Check[int64](ctx, cfg, log)
	case intmath.Uint8:
		return Check[uint8](ctx, cfg, log)
	case intmath.Uint16:
		return Check[uint16](ctx, cfg, log)
	case intmath.Uint32:
		return Check[uint32](ctx, cfg, log)
	case intmath.Uint64:
		return Check[uint64](ctx, cfg, log)
	}
	return nil, fmt.Errorf("%w: %v", errInvalidKind, cfg.Kind)
}

// Check is the generic equivalent of [Run]. [Config.Kind] is overridden by
// the [intmath.Kind] of `T`.
func Check[T constraints.Integer](ctx context.Context, cfg Config, log logging.Logger) (*Report, error) {
	cfg.Kind = intmath.KindOf[T]()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode := "exhaustive"
	if cfg.Samples > 0 {
		mode = "sampled"
	}
	log = log.With(
		zap.Stringer("kind", cfg.Kind),
		zap.String("mode", mode),
		zap.Bool("multipliers", cfg.Multipliers),
	)
	log.Info("Verifying rounding", zap.Int("workers", cfg.Workers))

	c := &checker[T]{
		cfg: cfg,
		report: &Report{
			Kind: cfg.Kind,
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for _, s := range cfg.shifts() {
		d, err := roundshift.NewDivisor[T](s)
		if err != nil {
			return nil, err
		}
		for u := range c.units(s) {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				return c.run(gctx, d, u)
			})
		}
		log.Debug("Shift scheduled", zap.Uint8("shift", s))
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := c.result()
	log.Info("Verified rounding",
		zap.Uint64("checked", r.Checked),
		zap.Uint64("skipped", r.Skipped),
		zap.Uint64("failures", r.FailureCount),
	)
	return r, nil
}

// A unit is an independent batch of inputs for a single shift.
type unit struct {
	shift uint8
	// Exhaustive mode: num values in [lo, hi) of the kind's bit patterns.
	lo, hi uint64
	// Sampled mode: number of samples and the stream of the random source.
	samples, stream uint64
}

const (
	exhaustiveUnitSize    = 1 << 14
	exhaustiveMulUnitSize = 1 << 6
	sampledUnitSize       = 1 << 14
	// ctxCheckInterval is the number of inputs between checks for
	// cancellation.
	ctxCheckInterval = 1 << 12
)

type checker[T constraints.Integer] struct {
	cfg                       Config
	checked, skipped, failCnt atomic.Uint64

	mu     sync.Mutex
	report *Report
}

func (c *checker[T]) units(s uint8) iter.Seq[unit] {
	return func(yield func(unit) bool) {
		if n := c.cfg.Samples; n > 0 {
			for i := uint64(0); i < n; i += sampledUnitSize {
				u := unit{
					shift:   s,
					samples: min(sampledUnitSize, n-i),
					stream:  uint64(s)<<32 | i/sampledUnitSize,
				}
				if !yield(u) {
					return
				}
			}
			return
		}

		space := uint64(1) << intmath.Bits[T]()
		size := uint64(exhaustiveUnitSize)
		if c.cfg.Multipliers {
			size = exhaustiveMulUnitSize
		}
		for lo := uint64(0); lo < space; lo += size {
			if !yield(unit{shift: s, lo: lo, hi: min(lo+size, space)}) {
				return
			}
		}
	}
}

func (c *checker[T]) run(ctx context.Context, d roundshift.Divisor[T], u unit) error {
	var checked, skipped uint64
	defer func() {
		c.checked.Add(checked)
		c.skipped.Add(skipped)
	}()

	check := func(num, mul T) error {
		if checked%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if c.check(d, num, mul) {
			checked++
		} else {
			skipped++
		}
		return nil
	}

	if u.samples > 0 {
		rng := rand.New(rand.NewPCG(c.cfg.Seed, u.stream)) //nolint:gosec // Reproducibility is required
		if u.stream&(1<<32-1) == 0 {
			for _, num := range boundaries[T]() {
				if err := check(num, 1); err != nil {
					return err
				}
				c.checkMonotonic(d, num)
			}
		}
		for range u.samples {
			num, mul := sample[T](rng), T(1)
			if rng.IntN(2) == 0 {
				num = nearTie(rng, num, u.shift)
			}
			if c.cfg.Multipliers {
				mul = sample[T](rng)
			}
			if err := check(num, mul); err != nil {
				return err
			}
			c.checkMonotonic(d, num)
		}
		return nil
	}

	for i := u.lo; i < u.hi; i++ {
		num := T(i)
		if !c.cfg.Multipliers {
			if err := check(num, 1); err != nil {
				return err
			}
			c.checkMonotonic(d, num)
			continue
		}
		for j := range uint64(1) << intmath.Bits[T]() {
			if err := check(num, T(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

// sample returns a random value with a random magnitude, so that small values
// and non-overflowing products are common.
func sample[T constraints.Integer](rng *rand.Rand) T {
	return T(int64(rng.Uint64()) >> rng.IntN(64)) //nolint:gosec // Bit pattern is all that matters
}

// nearTie returns a value within one of a rounding tie at shift `s`, with the
// same high bits as `v`.
func nearTie[T constraints.Integer](rng *rand.Rand, v T, s uint8) T {
	return (v>>s<<s | halfbit.Of[T](s)) + T(rng.IntN(3)) - 1
}

// boundaries returns the extremes of `T` and the values around zero.
func boundaries[T constraints.Integer]() []T {
	lo, hi := intmath.Min[T](), intmath.Max[T]()
	return []T{lo, lo + 1, lo + 2, ^T(0), 0, 1, 2, hi - 2, hi - 1, hi}
}

// check compares every rounding function against [Exact], returning false if
// the product overflows and nothing was checked.
func (c *checker[T]) check(d roundshift.Divisor[T], num, mul T) bool {
	s := d.Exponent()
	want, ok := ExactScale(num, mul, s)
	if !ok {
		return false
	}

	c.expect("Scale", num, mul, s, roundshift.Scale(num, mul, s), want)
	c.expect("Divisor.Scale", num, mul, s, d.Scale(num, mul), want)
	if mul == 1 {
		c.expect("Shift", num, mul, s, roundshift.Shift(num, s), want)
		c.expect("Divisor.Shift", num, mul, s, d.Shift(num), want)
	}
	return true
}

// checkMonotonic confirms that Shift(num-1) <= Shift(num).
func (c *checker[T]) checkMonotonic(d roundshift.Divisor[T], num T) {
	if num == intmath.Min[T]() {
		return
	}
	if prev, got := d.Shift(num-1), d.Shift(num); prev > got {
		c.fail(Failure{
			Op:    "monotonic",
			Kind:  c.cfg.Kind,
			Num:   fmt.Sprint(num),
			Mul:   "1",
			Shift: d.Exponent(),
			Got:   fmt.Sprint(got),
			Want:  fmt.Sprintf(">= %d", prev),
		})
	}
}

func (c *checker[T]) expect(op string, num, mul T, s uint8, got, want T) {
	if got == want {
		return
	}
	c.fail(Failure{
		Op:    op,
		Kind:  c.cfg.Kind,
		Num:   fmt.Sprint(num),
		Mul:   fmt.Sprint(mul),
		Shift: s,
		Got:   fmt.Sprint(got),
		Want:  fmt.Sprint(want),
	})
}

func (c *checker[T]) fail(f Failure) {
	if c.failCnt.Add(1) > uint64(c.cfg.MaxFailures) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.report.Failures = append(c.report.Failures, f)
}

func (c *checker[T]) result() *Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.report
	r.Checked = c.checked.Load()
	r.Skipped = c.skipped.Load()
	r.FailureCount = c.failCnt.Load()
	return r
}
